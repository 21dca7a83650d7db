package main

import (
	"github.com/franciscosanchezn/pizza-restaurants-api/docs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/routes"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:5555
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration := loadConfig()

	// Initialize database connection
	db := setupDatabase(configuration)

	// Initialize Gin router
	docs.SwaggerInfo.Host = configuration.Address()
	router := routes.NewRouter(db, log.StandardLogger())

	// Start the server
	log.Infof("Starting server on %s", configuration.Address())
	if err := router.Run(configuration.Address()); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	level := config.LevelForEnvironment(config.GetEnvWithDefault("APP_ENV", "development"))
	log.SetLevel(level)
	database.SetLogLevel(level)
	if level != log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := database.ParseDatabaseURL(conf.DatabaseURL)
	checkPanicErr(err)

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)

	checkPanicErr(database.Migrate(db))

	if !conf.SeedDatabase {
		return db
	}
	empty, err := database.IsEmpty(db)
	checkPanicErr(err)
	if empty {
		log.Info("Database is empty, seeding initial data")
		checkPanicErr(database.Seed(db))
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}
