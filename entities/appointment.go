package entities

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Date      time.Time `gorm:"type:date" json:"date"`
	Phone     string    `json:"phone"`
	Status    string    `gorm:"index" json:"status"` // PENDING, APPROVED, REJECTED, FULFILLED, CANCELLED
	Address   string    `json:"address"`
	TimeRange string    `json:"time_range"`

	Answer1 string `gorm:"type:text" json:"answer1"`
	Answer2 string `gorm:"type:text" json:"answer2"`
	Answer3 string `gorm:"type:text" json:"answer3"`
	Answer4 string `gorm:"type:text" json:"answer4"`
	Answer5 string `gorm:"type:text" json:"answer5"`
	Answer6 string `gorm:"type:text" json:"answer6"`
	Answer7 string `gorm:"type:text" json:"answer7"`
	Answer8 string `gorm:"type:text" json:"answer8"`
	Answer9 string `gorm:"type:text" json:"answer9"`

	User           *User           `gorm:"foreignKey:UserID"`
	DonationDetail *DonationDetail `gorm:"foreignKey:AppointmentID"`
	Timestamp
}

// Answers returns the survey answers in question order.
func (a *Appointment) Answers() [9]string {
	return [9]string{
		a.Answer1, a.Answer2, a.Answer3,
		a.Answer4, a.Answer5, a.Answer6,
		a.Answer7, a.Answer8, a.Answer9,
	}
}
