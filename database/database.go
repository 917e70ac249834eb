package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"socialmentor/config"
	"socialmentor/models"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection using the configured driver
// (sqlite by default, postgres when DB_DRIVER=postgres), runs migrations and
// optionally loads the demo fixture.
func ConnectDb() {
	var db *gorm.DB
	var err error

	switch config.AppConfig.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			config.AppConfig.DBName,
			os.Getenv("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	runMigrations(db)

	if config.AppConfig.SeedData {
		if err := Seed(db, config.AppConfig.SaltRound); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Donation{},
		&models.Certificate{},
		&models.Impact{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
