package migration

import (
	"log"

	"gorm.io/gorm"

	"Blood-Donation-Admin/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Printf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Appointment{}); err != nil {
		log.Printf("Error migrating appointment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.DonationDetail{}); err != nil {
		log.Printf("Error migrating donation detail database: %v", err)
		return err
	}

	log.Println("Database migration complete")
	return nil
}
