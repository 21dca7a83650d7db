package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func intPtr(v int) *int {
	return &v
}

type fixture struct {
	restaurants      RestaurantService
	pizzas           PizzaService
	restaurantPizzas RestaurantPizzaService
	restaurant       models.Restaurant
	pizza            models.Pizza
}

func newFixture(t *testing.T) fixture {
	db := setupTestDB(t)
	f := fixture{
		restaurants:      NewRestaurantService(db),
		pizzas:           NewPizzaService(db),
		restaurantPizzas: NewRestaurantPizzaService(db),
	}
	var err error
	f.restaurant, err = f.restaurants.CreateRestaurant(RestaurantInput{Name: "Sottocasa NYC", Address: "298 Atlantic Ave, Brooklyn, NY 11201"})
	require.NoError(t, err)
	f.pizza, err = f.pizzas.CreatePizza(PizzaInput{Name: "Margherita", Ingredients: "Dough, Tomato Sauce, Mozzarella"})
	require.NoError(t, err)
	return f
}

func TestCreatePizza(t *testing.T) {
	f := newFixture(t)

	pizza, err := f.pizzas.CreatePizza(PizzaInput{Name: "Marinara", Ingredients: "Tomato, Garlic, Oregano"})

	require.NoError(t, err)
	assert.NotZero(t, pizza.ID)
	assert.Equal(t, "Marinara", pizza.Name)
	assert.Equal(t, "Tomato, Garlic, Oregano", pizza.Ingredients)
}

func TestCreatePizzaMissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		input  PizzaInput
		fields []string
	}{
		{"missing name", PizzaInput{Ingredients: "Tomato"}, []string{"name"}},
		{"missing ingredients", PizzaInput{Name: "Plain"}, []string{"ingredients"}},
		{"missing both", PizzaInput{}, []string{"name", "ingredients"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.pizzas.CreatePizza(tt.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.fields, validationErr.Fields)

			pizzas, err := f.pizzas.GetAllPizzas()
			require.NoError(t, err)
			assert.Len(t, pizzas, 1, "nothing should be persisted")
		})
	}
}

func TestGetPizzaByID(t *testing.T) {
	f := newFixture(t)
	_, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(12), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})
	require.NoError(t, err)

	pizza, err := f.pizzas.GetPizzaByID(f.pizza.ID)

	require.NoError(t, err)
	require.Len(t, pizza.RestaurantPizzas, 1)
	assert.Equal(t, "Sottocasa NYC", pizza.RestaurantPizzas[0].Restaurant.Name)

	_, err = f.pizzas.GetPizzaByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRestaurantByID(t *testing.T) {
	f := newFixture(t)
	_, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(9), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})
	require.NoError(t, err)

	restaurant, err := f.restaurants.GetRestaurantByID(f.restaurant.ID)

	require.NoError(t, err)
	assert.Equal(t, "298 Atlantic Ave, Brooklyn, NY 11201", restaurant.Address)
	require.Len(t, restaurant.RestaurantPizzas, 1)
	assert.Equal(t, 9, restaurant.RestaurantPizzas[0].Price)
	assert.Equal(t, "Margherita", restaurant.RestaurantPizzas[0].Pizza.Name)

	_, err = f.restaurants.GetRestaurantByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllRestaurants(t *testing.T) {
	f := newFixture(t)
	_, err := f.restaurants.CreateRestaurant(RestaurantInput{Name: "PizzArte", Address: "69 W 55th St, New York, NY 10019"})
	require.NoError(t, err)

	restaurants, err := f.restaurants.GetAllRestaurants()

	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Sottocasa NYC", restaurants[0].Name)
	assert.Equal(t, "PizzArte", restaurants[1].Name)
}

func TestCreateRestaurantMissingFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurants.CreateRestaurant(RestaurantInput{Name: "No Address"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"address"}, validationErr.Fields)
}

func TestCreateRestaurantPizzaPriceBoundaries(t *testing.T) {
	testCases := []struct {
		price int
		valid bool
	}{
		{0, false},
		{1, true},
		{15, true},
		{30, true},
		{31, false},
		{-5, false},
		{50, false},
	}

	for _, tt := range testCases {
		f := newFixture(t)

		rp, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(tt.price), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})

		all, listErr := f.restaurantPizzas.GetAllRestaurantPizzas()
		require.NoError(t, listErr)
		if tt.valid {
			require.NoError(t, err, "price %d", tt.price)
			assert.Equal(t, tt.price, rp.Price)
			assert.Len(t, all, 1)
		} else {
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr, "price %d", tt.price)
			assert.Equal(t, []string{"price"}, validationErr.Fields)
			assert.Empty(t, all)
		}
	}
}

func TestCreateRestaurantPizzaMissingPrice(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"price"}, validationErr.Fields)
}

func TestCreateRestaurantPizzaUnknownReferences(t *testing.T) {
	f := newFixture(t)

	_, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(5), RestaurantID: 404, PizzaID: f.pizza.ID})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"restaurant_id"}, validationErr.Fields)

	_, err = f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(5), RestaurantID: f.restaurant.ID, PizzaID: 404})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"pizza_id"}, validationErr.Fields)

	all, err := f.restaurantPizzas.GetAllRestaurantPizzas()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateRestaurantPizzaLoadsBothEnds(t *testing.T) {
	f := newFixture(t)

	rp, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(5), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})

	require.NoError(t, err)
	assert.NotZero(t, rp.ID)
	assert.Equal(t, f.restaurant.Name, rp.Restaurant.Name)
	assert.Equal(t, f.pizza.Name, rp.Pizza.Name)

	fetched, err := f.restaurantPizzas.GetRestaurantPizzaByID(rp.ID)
	require.NoError(t, err)
	assert.Equal(t, rp.Detail(), fetched.Detail())
}

func TestDeleteRestaurantPizza(t *testing.T) {
	f := newFixture(t)
	rp, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(5), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})
	require.NoError(t, err)

	require.NoError(t, f.restaurantPizzas.DeleteRestaurantPizza(rp.ID))

	_, err = f.restaurantPizzas.GetRestaurantPizzaByID(rp.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.restaurantPizzas.DeleteRestaurantPizza(rp.ID), ErrNotFound)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	f := newFixture(t)
	other, err := f.restaurants.CreateRestaurant(RestaurantInput{Name: "Joe's Pizza", Address: "7 Carmine St, New York, NY 10014"})
	require.NoError(t, err)

	first, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(5), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})
	require.NoError(t, err)
	second, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(7), RestaurantID: f.restaurant.ID, PizzaID: f.pizza.ID})
	require.NoError(t, err)
	kept, err := f.restaurantPizzas.CreateRestaurantPizza(RestaurantPizzaInput{Price: intPtr(3), RestaurantID: other.ID, PizzaID: f.pizza.ID})
	require.NoError(t, err)

	require.NoError(t, f.restaurants.DeleteRestaurant(f.restaurant.ID))

	_, err = f.restaurants.GetRestaurantByID(f.restaurant.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	for _, id := range []uint{first.ID, second.ID} {
		_, err = f.restaurantPizzas.GetRestaurantPizzaByID(id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
	_, err = f.restaurantPizzas.GetRestaurantPizzaByID(kept.ID)
	assert.NoError(t, err)

	// the pizza itself is untouched
	_, err = f.pizzas.GetPizzaByID(f.pizza.ID)
	assert.NoError(t, err)
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.restaurants.DeleteRestaurant(9999), ErrNotFound)
}
