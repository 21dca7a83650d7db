package models

// Pizza represents a pizza with its properties
type Pizza struct {
	ID               uint              `gorm:"primaryKey"`
	Name             string            `gorm:"not null"`
	Ingredients      string            `gorm:"not null"`
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE;"`
}

// PizzaSummary is the reduced view used by pizza listings
type PizzaSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// PizzaDetail is the full view of a pizza including the restaurants selling it
type PizzaDetail struct {
	PizzaSummary
	RestaurantPizzas []RestaurantPizzaWithRestaurant `json:"restaurant_pizzas"`
}

func (p Pizza) Summary() PizzaSummary {
	return PizzaSummary{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// Detail returns the pizza with the restaurants that sell it
func (p Pizza) Detail() PizzaDetail {
	offers := make([]RestaurantPizzaWithRestaurant, 0, len(p.RestaurantPizzas))
	for _, rp := range p.RestaurantPizzas {
		offers = append(offers, RestaurantPizzaWithRestaurant{
			RestaurantPizzaSummary: rp.Summary(),
			Restaurant:             rp.Restaurant.Summary(),
		})
	}
	return PizzaDetail{PizzaSummary: p.Summary(), RestaurantPizzas: offers}
}
