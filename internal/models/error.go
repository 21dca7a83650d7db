package models

import "fmt"

// ErrorResponse is the body returned when a single error describes the failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a restaurant pizza fails validation
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse is the body returned by successful deletions
type MessageResponse struct {
	Message string `json:"message"`
}

// Response messages
const (
	MsgMissingRequiredFields = "Missing required fields"
	MsgValidationErrors      = "validation errors"
	MsgInternalServer        = "Internal server error"
)

// Entity names as they appear in response messages
const (
	EntityRestaurant      = "Restaurant"
	EntityPizza           = "Pizza"
	EntityRestaurantPizza = "Restaurant Pizza"
)

// NewNotFoundError builds the 404 body for the given entity name
func NewNotFoundError(entity string) ErrorResponse {
	return ErrorResponse{Error: fmt.Sprintf("%s not found", entity)}
}

// NewDeletedMessage builds the success body for a deleted entity
func NewDeletedMessage(entity string) MessageResponse {
	return MessageResponse{Message: fmt.Sprintf("%s deleted successfully", entity)}
}

// NewValidationError builds the 400 body for a rejected restaurant pizza
func NewValidationError() ValidationErrorResponse {
	return ValidationErrorResponse{Errors: []string{MsgValidationErrors}}
}
