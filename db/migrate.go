package db

import (
	"log"

	"github.com/eletrigo/eletrigo-api/models"
)

// Migrate creates the four collections on the connected store.
func Migrate() {
	if DB == nil {
		log.Println("Skipping migrations: no database connection")
		return
	}

	err := DB.AutoMigrate(
		&models.Electrician{},
		&models.Client{},
		&models.Product{},
		&models.Service{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	log.Println("Migrations applied successfully")
}
