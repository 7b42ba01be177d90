package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetDonationDetail    = "donation detail retrieved successfully"
	MessageSuccessCreateDonationDetail = "donation detail created successfully"
	MessageSuccessUpdateDonationDetail = "donation detail updated successfully"

	MessageFailedGetDonationDetail    = "failed to retrieve donation detail"
	MessageFailedCreateDonationDetail = "failed to create donation detail"
	MessageFailedUpdateDonationDetail = "failed to update donation detail"

	ErrDonationDetailNotFound        = errors.New("donation detail not found")
	ErrDonationDetailExists          = errors.New("donation detail already recorded for appointment")
	ErrDonationNotAllowed            = errors.New("donation detail requires an approved or fulfilled appointment")
	ErrDonationDateBeforeAppointment = errors.New("donation date must not precede the appointment date")
	ErrInvalidBloodType              = errors.New("invalid blood type")
	ErrInvalidVolume                 = errors.New("invalid donation volume")
)

type BloodType string

const (
	BloodTypeA  BloodType = "A"
	BloodTypeB  BloodType = "B"
	BloodTypeAB BloodType = "AB"
	BloodTypeO  BloodType = "O"
)

var BloodTypes = []BloodType{BloodTypeA, BloodTypeB, BloodTypeAB, BloodTypeO}

func (b BloodType) Valid() bool {
	switch b {
	case BloodTypeA, BloodTypeB, BloodTypeAB, BloodTypeO:
		return true
	}
	return false
}

// DonationVolumes are the accepted bag sizes in milliliters.
var DonationVolumes = []int{200, 350, 500}

func ValidVolume(ml int) bool {
	for _, v := range DonationVolumes {
		if v == ml {
			return true
		}
	}
	return false
}

type (
	DonationDetail struct {
		ID            string    `json:"id"`
		AppointmentID string    `json:"appointment_id"`
		MemberID      string    `json:"member_id"`
		StaffID       string    `json:"staff_id"`
		DonationDate  time.Time `json:"donation_date"`
		Location      string    `json:"location"`
		BloodType     BloodType `json:"blood_type"`
		Volume        int       `json:"volume"`
		Notes         string    `json:"notes"`
		CreatedAt     time.Time `json:"created_at"`
		UpdatedAt     time.Time `json:"updated_at"`
	}

	// DonationDetailRequest is the create and update payload.
	DonationDetailRequest struct {
		AppointmentID string    `json:"appointment_id" validate:"required,uuid"`
		MemberID      string    `json:"member_id" validate:"required,uuid"`
		StaffID       string    `json:"staff_id" validate:"required,uuid"`
		DonationDate  string    `json:"donation_date" validate:"required,datetime=2006-01-02"`
		Location      string    `json:"location" validate:"omitempty,max=255"`
		BloodType     BloodType `json:"blood_type" validate:"required,bloodtype"`
		Volume        int       `json:"volume" validate:"required,oneof=200 350 500"`
		Notes         string    `json:"notes" validate:"omitempty,max=1000"`
	}
)
