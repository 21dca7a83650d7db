package services

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// RestaurantInput holds the fields needed to create a restaurant
type RestaurantInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Address string `json:"address" form:"address" validate:"required"`
}

// RestaurantService provides methods to interact with the restaurant table
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants in storage order
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant pizzas and their pizzas
	GetRestaurantByID(id uint) (models.Restaurant, error)
	// CreateRestaurant stores a new restaurant
	CreateRestaurant(input RestaurantInput) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every restaurant pizza referencing it
	DeleteRestaurant(id uint) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id uint) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		return models.Restaurant{}, translateError(err)
	}
	return restaurant, nil
}

func (s *restaurantService) CreateRestaurant(input RestaurantInput) (models.Restaurant, error) {
	if err := validateInput(input); err != nil {
		return models.Restaurant{}, err
	}
	restaurant := models.Restaurant{Name: input.Name, Address: input.Address}
	if err := s.db.Create(&restaurant).Error; err != nil {
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

func (s *restaurantService) DeleteRestaurant(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, id).Error; err != nil {
			return translateError(err)
		}
		// sqlite only enforces ON DELETE CASCADE with foreign keys enabled, so remove
		// the associations explicitly as well
		return tx.Select("RestaurantPizzas").Delete(&restaurant).Error
	})
}
