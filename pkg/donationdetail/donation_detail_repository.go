package donationdetail

import (
	"context"

	"gorm.io/gorm"

	"Blood-Donation-Admin/entities"
)

type (
	DonationDetailRepository interface {
		GetDonationDetailByAppointmentID(ctx context.Context, appointmentID string) (*entities.DonationDetail, error)
		CreateDonationDetail(ctx context.Context, detail *entities.DonationDetail) error
		UpdateDonationDetail(ctx context.Context, detail *entities.DonationDetail) error
	}

	donationDetailRepository struct {
		db *gorm.DB
	}
)

func NewDonationDetailRepository(db *gorm.DB) DonationDetailRepository {
	return &donationDetailRepository{db: db}
}

func (r *donationDetailRepository) GetDonationDetailByAppointmentID(ctx context.Context, appointmentID string) (*entities.DonationDetail, error) {
	var detail entities.DonationDetail
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *donationDetailRepository) CreateDonationDetail(ctx context.Context, detail *entities.DonationDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *donationDetailRepository) UpdateDonationDetail(ctx context.Context, detail *entities.DonationDetail) error {
	return r.db.WithContext(ctx).
		Model(&entities.DonationDetail{}).
		Where("id = ?", detail.ID).
		Updates(map[string]interface{}{
			"staff_id":      detail.StaffID,
			"donation_date": detail.DonationDate,
			"location":      detail.Location,
			"blood_type":    detail.BloodType,
			"volume":        detail.Volume,
			"notes":         detail.Notes,
		}).Error
}
