package database

import (
	"log"
	"os"

	"github.com/ronankibharath98/JobHunt/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// local dev fallback
		dsn = "host=localhost user=postgres password=password dbname=jobhunt port=5432 sslmode=disable"
	}

	// TranslateError maps unique-constraint violations to
	// gorm.ErrDuplicatedKey so the services can report conflicts.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: This creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
