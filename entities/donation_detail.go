package entities

import (
	"time"

	"github.com/google/uuid"
)

type DonationDetail struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"appointment_id"`
	MemberID      uuid.UUID `gorm:"type:uuid;index" json:"member_id"`
	StaffID       uuid.UUID `gorm:"type:uuid" json:"staff_id"`
	DonationDate  time.Time `gorm:"type:date" json:"donation_date"`
	Location      string    `json:"location"`
	BloodType     string    `json:"blood_type"` // A, B, AB, O
	Volume        int       `json:"volume"`     // ml: 200, 350, 500
	Notes         string    `gorm:"type:text" json:"notes"`

	Appointment *Appointment `gorm:"foreignKey:AppointmentID"`
	Member      *User        `gorm:"foreignKey:MemberID"`
	Staff       *User        `gorm:"foreignKey:StaffID"`
	Timestamp
}
