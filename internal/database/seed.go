package database

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IsEmpty reports whether no restaurants or pizzas have been stored yet
func IsEmpty(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, err
	}
	return restaurants == 0 && pizzas == 0, nil
}

// Seed inserts a small set of restaurants, pizzas and prices in one transaction
func Seed(db *gorm.DB) error {
	log.Info("Seeding database with initial data")

	restaurants := []models.Restaurant{
		{Name: "Karen's Pizza Shack", Address: "address1"},
		{Name: "Sanjay's Pizza", Address: "address2"},
		{Name: "Kiki's Pizza", Address: "address3"},
	}
	pizzas := []models.Pizza{
		{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurants).Error; err != nil {
			return err
		}
		if err := tx.Create(&pizzas).Error; err != nil {
			return err
		}
		prices := []models.RestaurantPizza{
			{Price: 1, RestaurantID: restaurants[0].ID, PizzaID: pizzas[0].ID},
			{Price: 4, RestaurantID: restaurants[1].ID, PizzaID: pizzas[1].ID},
			{Price: 5, RestaurantID: restaurants[2].ID, PizzaID: pizzas[2].ID},
		}
		return tx.Omit(clause.Associations).Create(&prices).Error
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants": len(restaurants),
		"pizzas":      len(pizzas),
	}).Info("Database seeded successfully")
	return nil
}

// Reset removes every row from the three tables
func Reset(db *gorm.DB) error {
	log.Warn("Clearing all restaurant and pizza data")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
