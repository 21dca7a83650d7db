package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests for the prices restaurants charge for pizzas
type RestaurantPizzaController interface {
	GetAllRestaurantPizzas(c *gin.Context)
	GetRestaurantPizzaByID(c *gin.Context)
	CreateRestaurantPizza(c *gin.Context)
	DeleteRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// GetAllRestaurantPizzas godoc
// @Summary Get all restaurant pizzas
// @Tags restaurant_pizzas
// @Produce json
// @Success 200 {array} models.RestaurantPizzaDetail
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [get]
func (c *restaurantPizzaController) GetAllRestaurantPizzas(ctx *gin.Context) {
	restaurantPizzas, err := c.service.GetAllRestaurantPizzas()
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	response := make([]models.RestaurantPizzaDetail, 0, len(restaurantPizzas))
	for _, rp := range restaurantPizzas {
		response = append(response, rp.Detail())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurantPizzaByID godoc
// @Summary Get restaurant pizza by ID
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "Restaurant pizza ID"
// @Success 200 {object} models.RestaurantPizzaDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurant_pizzas/{id} [get]
func (c *restaurantPizzaController) GetRestaurantPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.EntityRestaurantPizza))
		return
	}

	rp, err := c.service.GetRestaurantPizzaByID(id)
	if err != nil {
		respondLookupError(ctx, err, models.EntityRestaurantPizza)
		return
	}
	ctx.JSON(http.StatusOK, rp.Detail())
}

// CreateRestaurantPizza godoc
// @Summary Add a pizza to a restaurant
// @Description Price must be between 1 and 30 and both ids must exist
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body services.RestaurantPizzaInput true "Restaurant pizza payload"
// @Success 201 {object} models.RestaurantPizzaDetail
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input services.RestaurantPizzaInput
	if err := ctx.ShouldBind(&input); err != nil {
		log.WithError(err).Debug("Rejected restaurant pizza payload")
		ctx.JSON(http.StatusBadRequest, models.NewValidationError())
		return
	}

	rp, err := c.service.CreateRestaurantPizza(input)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			log.WithField("fields", validationErr.Fields).Debug("Restaurant pizza failed validation")
			ctx.JSON(http.StatusBadRequest, models.NewValidationError())
			return
		}
		respondInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, rp.Detail())
}

// DeleteRestaurantPizza godoc
// @Summary Delete a restaurant pizza
// @Tags restaurant_pizzas
// @Produce json
// @Param id path int true "Restaurant pizza ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /restaurant_pizzas/{id} [delete]
func (c *restaurantPizzaController) DeleteRestaurantPizza(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.EntityRestaurantPizza))
		return
	}

	if err := c.service.DeleteRestaurantPizza(id); err != nil {
		respondLookupError(ctx, err, models.EntityRestaurantPizza)
		return
	}
	ctx.JSON(http.StatusOK, models.NewDeletedMessage(models.EntityRestaurantPizza))
}
