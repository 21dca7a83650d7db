package main

import (
	"flag"
	"os"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Parse command line flags
	dbURL := flag.String("db", "", "Database URL (defaults to DATABASE_URL, DB_URI or "+config.DefaultDatabaseURL+")")
	reset := flag.Bool("reset", false, "Delete all existing rows before seeding")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})
	_ = godotenv.Load()

	if *dbURL == "" {
		conf, err := config.LoadConfig()
		if err != nil {
			log.WithError(err).Fatal("Failed to load configuration")
		}
		*dbURL = conf.DatabaseURL
	}

	dbConfig, err := database.ParseDatabaseURL(*dbURL)
	if err != nil {
		log.WithError(err).Fatal("Invalid database URL")
	}

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.WithError(err).Fatal("Failed to clear database")
		}
	} else {
		empty, err := database.IsEmpty(db)
		if err != nil {
			log.WithError(err).Fatal("Failed to inspect database")
		}
		if !empty {
			log.Info("Database already contains data, use -reset to reseed")
			os.Exit(0)
		}
	}

	if err := database.Seed(db); err != nil {
		log.WithError(err).Fatal("Failed to seed database")
	}
	log.WithField("database", dbConfig.String()).Info("Seeding complete")
}
