package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/entities"
	"Blood-Donation-Admin/internal/utils/cache"
)

const appointmentsCacheKey = "appointments:all"

type (
	AppointmentService interface {
		GetAppointments(ctx context.Context, req domain.ListAppointmentsRequest) ([]domain.Appointment, error)
		GetAppointmentByID(ctx context.Context, id string) (*domain.Appointment, error)
		UpdateAppointmentStatus(ctx context.Context, id string, req domain.UpdateAppointmentStatusRequest) error
	}

	appointmentService struct {
		appointmentRepository AppointmentRepository
		cache                 cache.Cache
		cacheTTL              time.Duration
		logger                *zap.Logger
	}
)

func NewAppointmentService(appointmentRepository AppointmentRepository, cache cache.Cache, cacheTTL time.Duration, logger *zap.Logger) AppointmentService {
	return &appointmentService{
		appointmentRepository: appointmentRepository,
		cache:                 cache,
		cacheTTL:              cacheTTL,
		logger:                logger,
	}
}

func (s *appointmentService) GetAppointments(ctx context.Context, req domain.ListAppointmentsRequest) ([]domain.Appointment, error) {
	if req.Sort != "" && !req.Sort.Valid() {
		return nil, domain.ErrInvalidSortKey
	}

	all, err := s.allAppointments(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ApplyListQuery(all, req.Search, req.Sort), nil
}

func (s *appointmentService) allAppointments(ctx context.Context) ([]domain.Appointment, error) {
	var cached []domain.Appointment
	err := s.cache.GetJSON(ctx, appointmentsCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("appointment cache read failed", zap.Error(err))
	}

	appointments, err := s.appointmentRepository.GetAppointments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, ToDomainAppointment(a))
	}

	if err := s.cache.SetJSON(ctx, appointmentsCacheKey, result, s.cacheTTL); err != nil {
		s.logger.Warn("appointment cache write failed", zap.Error(err))
	}
	return result, nil
}

func (s *appointmentService) GetAppointmentByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	appointment, err := s.appointmentRepository.GetAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}

	result := ToDomainAppointment(appointment)
	return &result, nil
}

// UpdateAppointmentStatus sets the status of an appointment. Setting the
// status it already has succeeds without writing.
func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, id string, req domain.UpdateAppointmentStatusRequest) error {
	if !req.Status.Valid() {
		return domain.ErrInvalidAppointmentStatus
	}

	current, err := s.GetAppointmentByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == req.Status {
		return nil
	}

	if err := s.appointmentRepository.UpdateAppointmentStatus(ctx, id, string(req.Status)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAppointmentNotFound
		}
		return err
	}

	s.logger.Info("appointment status changed",
		zap.String("appointment_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(req.Status)),
	)

	if err := s.cache.Delete(ctx, appointmentsCacheKey); err != nil {
		s.logger.Warn("appointment cache invalidation failed", zap.Error(err))
	}
	return nil
}

func ToDomainAppointment(a *entities.Appointment) domain.Appointment {
	return domain.Appointment{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		Date:      a.Date,
		Phone:     a.Phone,
		Status:    domain.AppointmentStatus(a.Status),
		Address:   a.Address,
		TimeRange: a.TimeRange,
		Answers:   a.Answers(),
		CreatedAt: a.CreatedAt,
	}
}
