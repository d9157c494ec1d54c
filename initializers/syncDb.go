package initializers

import (
	"log"

	"github.com/melodias-store/melodias-api/models"
)

var defaultCouriers = []string{"DHL", "FedEx", "Estafeta"}

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
		&models.Courier{},
	)

	// Seed the carrier pool once so shipment simulation has something to
	// pick from on a fresh database.
	var count int64
	DB.Model(&models.Courier{}).Count(&count)
	if count == 0 {
		for _, name := range defaultCouriers {
			DB.Create(&models.Courier{Name: name})
		}
	}

	log.Println("Database synced successfully.")
}
