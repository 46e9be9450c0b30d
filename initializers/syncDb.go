package initializers

import (
	"log"

	"github.com/shopline/shopline-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.Product{}, &models.Order{})
	log.Println("Database synced successfully.")
}
