package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id does not resolve to a stored row
var ErrNotFound = errors.New("record not found")

// ValidationError is returned when create input is rejected before persistence
type ValidationError struct {
	// Fields lists the offending input fields, using their JSON names
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(e.Fields, ", "))
}

// translateError maps gorm's missing-row error to ErrNotFound
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
