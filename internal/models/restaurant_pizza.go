package models

const (
	// MinPrice is the lowest price a restaurant may charge for a pizza
	MinPrice = 1
	// MaxPrice is the highest price a restaurant may charge for a pizza
	MaxPrice = 30
)

// RestaurantPizza records that a restaurant sells a pizza at a given price
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey"`
	Price        int  `gorm:"not null"`
	RestaurantID uint `gorm:"not null;index"`
	PizzaID      uint `gorm:"not null;index"`
	Restaurant   Restaurant
	Pizza        Pizza
}

// RestaurantPizzaSummary holds the association's own columns
type RestaurantPizzaSummary struct {
	ID           uint `json:"id"`
	Price        int  `json:"price"`
	RestaurantID uint `json:"restaurant_id"`
	PizzaID      uint `json:"pizza_id"`
}

// RestaurantPizzaWithPizza is how an association appears inside a restaurant
type RestaurantPizzaWithPizza struct {
	RestaurantPizzaSummary
	Pizza PizzaSummary `json:"pizza"`
}

// RestaurantPizzaWithRestaurant is how an association appears inside a pizza
type RestaurantPizzaWithRestaurant struct {
	RestaurantPizzaSummary
	Restaurant RestaurantSummary `json:"restaurant"`
}

// RestaurantPizzaDetail nests both ends of the association
type RestaurantPizzaDetail struct {
	RestaurantPizzaSummary
	Restaurant RestaurantSummary `json:"restaurant"`
	Pizza      PizzaSummary      `json:"pizza"`
}

func (rp RestaurantPizza) Summary() RestaurantPizzaSummary {
	return RestaurantPizzaSummary{
		ID:           rp.ID,
		Price:        rp.Price,
		RestaurantID: rp.RestaurantID,
		PizzaID:      rp.PizzaID,
	}
}

// Detail expects Restaurant and Pizza to be preloaded
func (rp RestaurantPizza) Detail() RestaurantPizzaDetail {
	return RestaurantPizzaDetail{
		RestaurantPizzaSummary: rp.Summary(),
		Restaurant:             rp.Restaurant.Summary(),
		Pizza:                  rp.Pizza.Summary(),
	}
}

// PriceInRange reports whether price lies within [MinPrice, MaxPrice]
func PriceInRange(price int) bool {
	return price >= MinPrice && price <= MaxPrice
}
