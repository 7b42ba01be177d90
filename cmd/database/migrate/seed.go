package migration

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/entities"
	"Blood-Donation-Admin/pkg/user"
)

// SeedStaff creates a staff account for email unless one already exists.
func SeedStaff(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	var existing entities.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := user.HashPassword(password)
	if err != nil {
		return err
	}
	staff := entities.User{
		Name:     "Staff",
		Email:    email,
		Password: hashed,
		Role:     domain.RoleStaff,
	}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}

	log.Printf("Seeded staff account %s", email)
	return nil
}
