package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists restaurants without their menus
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant with its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its restaurant pizzas
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants with id, name and address
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	response := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		response = append(response, restaurant.Summary())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with its restaurant pizzas and their pizzas
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.EntityRestaurant))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		respondLookupError(ctx, err, models.EntityRestaurant)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.Detail())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every restaurant pizza that references it
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.EntityRestaurant))
		return
	}

	if err := c.service.DeleteRestaurant(id); err != nil {
		respondLookupError(ctx, err, models.EntityRestaurant)
		return
	}
	// gin drops the body of a 204, the message only documents intent
	ctx.JSON(http.StatusNoContent, models.NewDeletedMessage(models.EntityRestaurant))
}
