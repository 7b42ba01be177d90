package report

import (
	"context"
	"fmt"
	"time"

	"Blood-Donation-Admin/domain"
	"Blood-Donation-Admin/internal/utils/storage"
	"Blood-Donation-Admin/pkg/appointment"
)

type (
	ReportService interface {
		ExportAppointments(ctx context.Context, req domain.ListAppointmentsRequest) ([]byte, int, error)
		ArchiveAppointments(ctx context.Context, req domain.ListAppointmentsRequest) (*domain.ExportAppointmentsResponse, error)
	}

	reportService struct {
		appointmentService appointment.AppointmentService
		s3                 storage.AwsS3
		now                func() time.Time
	}
)

func NewReportService(appointmentService appointment.AppointmentService, s3 storage.AwsS3) ReportService {
	return &reportService{
		appointmentService: appointmentService,
		s3:                 s3,
		now:                time.Now,
	}
}

// ExportAppointments renders the list view for req as a workbook and returns it with its row count.
func (s *reportService) ExportAppointments(ctx context.Context, req domain.ListAppointmentsRequest) ([]byte, int, error) {
	appointments, err := s.appointmentService.GetAppointments(ctx, req)
	if err != nil {
		return nil, 0, err
	}

	file, err := GenerateAppointmentExport(appointments)
	if err != nil {
		return nil, 0, err
	}
	return file, len(appointments), nil
}

func (s *reportService) ArchiveAppointments(ctx context.Context, req domain.ListAppointmentsRequest) (*domain.ExportAppointmentsResponse, error) {
	file, rows, err := s.ExportAppointments(ctx, req)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("reports/appointments-%s.xlsx", s.now().UTC().Format("20060102-150405"))
	key, err := s.s3.UploadBytes(ctx, objectKey, file, storage.ContentTypeXLSX)
	if err != nil {
		return nil, err
	}

	return &domain.ExportAppointmentsResponse{
		ObjectKey: key,
		URL:       s.s3.GetPublicLinkKey(key),
		Rows:      rows,
	}, nil
}
