package models

// Restaurant represents a restaurant and the pizzas it sells
type Restaurant struct {
	ID               uint              `gorm:"primaryKey"`
	Name             string            `gorm:"not null"`
	Address          string            `gorm:"not null"`
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE;"`
}

// RestaurantSummary is the reduced view used by restaurant listings
type RestaurantSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetail is the full view of a restaurant including its menu
type RestaurantDetail struct {
	RestaurantSummary
	RestaurantPizzas []RestaurantPizzaWithPizza `json:"restaurant_pizzas"`
}

// Summary returns the listing view of the restaurant
func (r Restaurant) Summary() RestaurantSummary {
	return RestaurantSummary{ID: r.ID, Name: r.Name, Address: r.Address}
}

// Detail returns the restaurant with each of its restaurant pizzas and their pizza.
// RestaurantPizzas must be preloaded with Pizza for the nested view to be complete.
func (r Restaurant) Detail() RestaurantDetail {
	menu := make([]RestaurantPizzaWithPizza, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		menu = append(menu, RestaurantPizzaWithPizza{
			RestaurantPizzaSummary: rp.Summary(),
			Pizza:                  rp.Pizza.Summary(),
		})
	}
	return RestaurantDetail{RestaurantSummary: r.Summary(), RestaurantPizzas: menu}
}
