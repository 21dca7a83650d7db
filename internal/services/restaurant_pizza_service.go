package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaInput holds the fields accepted when adding a pizza to a restaurant.
// Price is a pointer so that a missing price is distinguishable from zero.
type RestaurantPizzaInput struct {
	Price        *int `json:"price" form:"price" validate:"required,price"`
	RestaurantID uint `json:"restaurant_id" form:"restaurant_id" validate:"required"`
	PizzaID      uint `json:"pizza_id" form:"pizza_id" validate:"required"`
}

// RestaurantPizzaService provides methods to interact with the restaurant_pizzas table
type RestaurantPizzaService interface {
	// GetAllRestaurantPizzas retrieves every association with its restaurant and pizza
	GetAllRestaurantPizzas() ([]models.RestaurantPizza, error)
	// GetRestaurantPizzaByID retrieves one association with its restaurant and pizza
	GetRestaurantPizzaByID(id uint) (models.RestaurantPizza, error)
	// CreateRestaurantPizza validates the price range and both references, then stores the association
	CreateRestaurantPizza(input RestaurantPizzaInput) (models.RestaurantPizza, error)
	// DeleteRestaurantPizza deletes an association by its ID
	DeleteRestaurantPizza(id uint) error
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) GetAllRestaurantPizzas() ([]models.RestaurantPizza, error) {
	var restaurantPizzas []models.RestaurantPizza
	err := s.db.Preload("Restaurant").Preload("Pizza").Order("id").Find(&restaurantPizzas).Error
	if err != nil {
		return nil, err
	}
	return restaurantPizzas, nil
}

func (s *restaurantPizzaService) GetRestaurantPizzaByID(id uint) (models.RestaurantPizza, error) {
	var restaurantPizza models.RestaurantPizza
	if err := s.db.Preload("Restaurant").Preload("Pizza").First(&restaurantPizza, id).Error; err != nil {
		return models.RestaurantPizza{}, translateError(err)
	}
	return restaurantPizza, nil
}

func (s *restaurantPizzaService) CreateRestaurantPizza(input RestaurantPizzaInput) (models.RestaurantPizza, error) {
	if err := validateInput(input); err != nil {
		return models.RestaurantPizza{}, err
	}

	restaurantPizza := models.RestaurantPizza{
		Price:        *input.Price,
		RestaurantID: input.RestaurantID,
		PizzaID:      input.PizzaID,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&restaurantPizza.Restaurant, input.RestaurantID).Error; err != nil {
			return referenceError(err, "restaurant_id")
		}
		if err := tx.First(&restaurantPizza.Pizza, input.PizzaID).Error; err != nil {
			return referenceError(err, "pizza_id")
		}
		return tx.Omit(clause.Associations).Create(&restaurantPizza).Error
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return restaurantPizza, nil
}

func (s *restaurantPizzaService) DeleteRestaurantPizza(id uint) error {
	result := s.db.Delete(&models.RestaurantPizza{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// referenceError reports an unresolved foreign key as a validation failure on field
func referenceError(err error, field string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ValidationError{Fields: []string{field}}
	}
	return err
}
