package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas with id, name and ingredients
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.PizzaSummary
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	response := make([]models.PizzaSummary, 0, len(pizzas))
	for _, pizza := range pizzas {
		response = append(response, pizza.Summary())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the restaurants selling it
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.PizzaDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(models.EntityPizza))
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		respondLookupError(ctx, err, models.EntityPizza)
		return
	}
	ctx.JSON(http.StatusOK, pizza.Detail())
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza from a name and an ingredients description. Also served at /pizzas/{id}, where the id is ignored.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body services.PizzaInput true "Pizza payload"
// @Success 201 {object} models.PizzaSummary
// @Failure 400 {object} models.ErrorResponse
// @Router /pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var input services.PizzaInput
	if err := ctx.ShouldBind(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	pizza, err := c.service.CreatePizza(input)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: models.MsgMissingRequiredFields})
			return
		}
		respondInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizza.Summary())
}
