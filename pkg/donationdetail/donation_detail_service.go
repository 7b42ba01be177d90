package donationdetail

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/entities"
	"Blood-Donation-Admin/internal/utils/mailing"
	"Blood-Donation-Admin/pkg/appointment"
	"Blood-Donation-Admin/pkg/user"
)

const thanksSubject = "Thank you for your blood donation"

type (
	DonationDetailService interface {
		GetDonationDetailByAppointmentID(ctx context.Context, appointmentID string) (*domain.DonationDetail, error)
		CreateDonationDetail(ctx context.Context, req domain.DonationDetailRequest) (*domain.DonationDetail, error)
		UpdateDonationDetail(ctx context.Context, appointmentID string, req domain.DonationDetailRequest) (*domain.DonationDetail, error)
	}

	donationDetailService struct {
		donationDetailRepository DonationDetailRepository
		appointmentRepository    appointment.AppointmentRepository
		userRepository           user.UserRepository
		mailer                   mailing.Mailer
		appURL                   string
		logger                   *zap.Logger
	}
)

func NewDonationDetailService(
	donationDetailRepository DonationDetailRepository,
	appointmentRepository appointment.AppointmentRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
	appURL string,
	logger *zap.Logger,
) DonationDetailService {
	return &donationDetailService{
		donationDetailRepository: donationDetailRepository,
		appointmentRepository:    appointmentRepository,
		userRepository:           userRepository,
		mailer:                   mailer,
		appURL:                   appURL,
		logger:                   logger,
	}
}

func (s *donationDetailService) GetDonationDetailByAppointmentID(ctx context.Context, appointmentID string) (*domain.DonationDetail, error) {
	if _, err := uuid.Parse(appointmentID); err != nil {
		return nil, domain.ErrParseUUID
	}

	detail, err := s.donationDetailRepository.GetDonationDetailByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationDetailNotFound
		}
		return nil, err
	}

	result := ToDomainDonationDetail(detail)
	return &result, nil
}

func (s *donationDetailService) CreateDonationDetail(ctx context.Context, req domain.DonationDetailRequest) (*domain.DonationDetail, error) {
	appt, err := s.loadAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	detail, err := buildDetail(appt, req)
	if err != nil {
		return nil, err
	}

	_, err = s.donationDetailRepository.GetDonationDetailByAppointmentID(ctx, req.AppointmentID)
	switch {
	case err == nil:
		return nil, domain.ErrDonationDetailExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	detail.ID = uuid.New()
	if err := s.donationDetailRepository.CreateDonationDetail(ctx, detail); err != nil {
		return nil, err
	}

	s.logger.Info("donation detail recorded",
		zap.String("appointment_id", req.AppointmentID),
		zap.String("staff_id", req.StaffID),
		zap.Int("volume", detail.Volume),
	)
	s.sendThanks(ctx, detail)

	result := ToDomainDonationDetail(detail)
	return &result, nil
}

// UpdateDonationDetail edits the detail recorded for appointmentID. The
// owning appointment and member never change.
func (s *donationDetailService) UpdateDonationDetail(ctx context.Context, appointmentID string, req domain.DonationDetailRequest) (*domain.DonationDetail, error) {
	req.AppointmentID = appointmentID

	appt, err := s.loadAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	existing, err := s.donationDetailRepository.GetDonationDetailByAppointmentID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationDetailNotFound
		}
		return nil, err
	}

	edited, err := buildDetail(appt, req)
	if err != nil {
		return nil, err
	}

	existing.StaffID = edited.StaffID
	existing.DonationDate = edited.DonationDate
	existing.Location = edited.Location
	existing.BloodType = edited.BloodType
	existing.Volume = edited.Volume
	existing.Notes = edited.Notes

	if err := s.donationDetailRepository.UpdateDonationDetail(ctx, existing); err != nil {
		return nil, err
	}

	result := ToDomainDonationDetail(existing)
	return &result, nil
}

func (s *donationDetailService) loadAppointment(ctx context.Context, appointmentID string) (*entities.Appointment, error) {
	if _, err := uuid.Parse(appointmentID); err != nil {
		return nil, domain.ErrParseUUID
	}

	appt, err := s.appointmentRepository.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}

	if !domain.AppointmentStatus(appt.Status).AllowsDonationDetail() {
		return nil, domain.ErrDonationNotAllowed
	}
	return appt, nil
}

// buildDetail checks the payload against its appointment. Struct tags were
// already checked by the handler; these rules need the appointment.
func buildDetail(appt *entities.Appointment, req domain.DonationDetailRequest) (*entities.DonationDetail, error) {
	if !req.BloodType.Valid() {
		return nil, domain.ErrInvalidBloodType
	}
	if !domain.ValidVolume(req.Volume) {
		return nil, domain.ErrInvalidVolume
	}

	donationDate, err := domain.ParseDate(req.DonationDate)
	if err != nil {
		return nil, err
	}
	if !domain.DonationDateAllowed(appt.Date, donationDate) {
		return nil, domain.ErrDonationDateBeforeAppointment
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	staffID, err := uuid.Parse(req.StaffID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	return &entities.DonationDetail{
		AppointmentID: appt.ID,
		MemberID:      memberID,
		StaffID:       staffID,
		DonationDate:  donationDate,
		Location:      req.Location,
		BloodType:     string(req.BloodType),
		Volume:        req.Volume,
		Notes:         req.Notes,
	}, nil
}

func (s *donationDetailService) sendThanks(ctx context.Context, detail *entities.DonationDetail) {
	member, err := s.userRepository.GetUserByID(ctx, detail.MemberID.String())
	if err != nil {
		s.logger.Warn("skipping donation thanks mail: member lookup failed",
			zap.String("member_id", detail.MemberID.String()),
			zap.Error(err),
		)
		return
	}
	if member.Email == "" {
		return
	}

	body := mailing.DonationThanksBody(member.Name, detail.Volume, detail.DonationDate.Format(domain.DateLayout), s.appURL)
	if err := s.mailer.SendMail(member.Email, thanksSubject, body); err != nil {
		s.logger.Warn("donation thanks mail failed", zap.String("member_id", member.ID.String()), zap.Error(err))
	}
}

func ToDomainDonationDetail(d *entities.DonationDetail) domain.DonationDetail {
	return domain.DonationDetail{
		ID:            d.ID.String(),
		AppointmentID: d.AppointmentID.String(),
		MemberID:      d.MemberID.String(),
		StaffID:       d.StaffID.String(),
		DonationDate:  d.DonationDate,
		Location:      d.Location,
		BloodType:     domain.BloodType(d.BloodType),
		Volume:        d.Volume,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
