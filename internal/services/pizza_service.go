package services

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// PizzaInput holds the fields accepted when creating a pizza
type PizzaInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Ingredients string `json:"ingredients" form:"ingredients" validate:"required"`
}

// PizzaService provides methods to interact with the pizza table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
	// GetPizzaByID retrieves a pizza with the restaurants that sell it
	GetPizzaByID(id uint) (models.Pizza, error)
	// CreatePizza validates the input and creates a new pizza in the database
	CreatePizza(input PizzaInput) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := s.db.Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Restaurant").
		First(&pizza, id).Error
	if err != nil {
		return models.Pizza{}, translateError(err)
	}
	return pizza, nil
}

func (s *pizzaService) CreatePizza(input PizzaInput) (models.Pizza, error) {
	if err := validateInput(input); err != nil {
		return models.Pizza{}, err
	}
	pizza := models.Pizza{Name: input.Name, Ingredients: input.Ingredients}
	if err := s.db.Create(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}
