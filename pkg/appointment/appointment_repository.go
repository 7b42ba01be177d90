package appointment

import (
	"context"

	"gorm.io/gorm"

	"Blood-Donation-Admin/entities"
)

type (
	AppointmentRepository interface {
		GetAppointments(ctx context.Context) ([]*entities.Appointment, error)
		GetAppointmentByID(ctx context.Context, id string) (*entities.Appointment, error)
		UpdateAppointmentStatus(ctx context.Context, id string, status string) error
	}

	appointmentRepository struct {
		db *gorm.DB
	}
)

func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetAppointments(ctx context.Context) ([]*entities.Appointment, error) {
	var appointments []*entities.Appointment
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) GetAppointmentByID(ctx context.Context, id string) (*entities.Appointment, error) {
	var appointment entities.Appointment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateAppointmentStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
