package routes

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Controllers groups the handlers mounted by Register
type Controllers struct {
	Restaurants      controllers.RestaurantController
	Pizzas           controllers.PizzaController
	RestaurantPizzas controllers.RestaurantPizzaController
}

// NewControllers builds the services and controllers backed by db
func NewControllers(db *gorm.DB) Controllers {
	return Controllers{
		Restaurants:      controllers.NewRestaurantController(services.NewRestaurantService(db)),
		Pizzas:           controllers.NewPizzaController(services.NewPizzaService(db)),
		RestaurantPizzas: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	}
}

// NewRouter initializes a gin engine with the request middleware and every route
func NewRouter(db *gorm.DB, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))

	Register(router, NewControllers(db))

	return router
}

// Register defines the routes for the gin router
func Register(router *gin.Engine, c Controllers) {
	router.GET("/", controllers.Index)
	router.GET("/health", healthCheckHandler)

	router.GET("/restaurants", c.Restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", c.Restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", c.Restaurants.DeleteRestaurant)

	router.GET("/pizzas", c.Pizzas.GetAllPizzas)
	router.GET("/pizzas/:id", c.Pizzas.GetPizzaByID)
	router.POST("/pizzas", c.Pizzas.CreatePizza)
	// older clients post new pizzas to an id path; the id is ignored
	router.POST("/pizzas/:id", c.Pizzas.CreatePizza)

	router.GET("/restaurant_pizzas", c.RestaurantPizzas.GetAllRestaurantPizzas)
	router.GET("/restaurant_pizzas/:id", c.RestaurantPizzas.GetRestaurantPizzaByID)
	router.POST("/restaurant_pizzas", c.RestaurantPizzas.CreateRestaurantPizza)
	router.DELETE("/restaurant_pizzas/:id", c.RestaurantPizzas.DeleteRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
