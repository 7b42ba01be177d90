package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Blood-Donation-Admin/domain"
)

type fakeAppointmentService struct {
	appointments []domain.Appointment
	err          error
	lastRequest  domain.ListAppointmentsRequest
}

func (s *fakeAppointmentService) GetAppointments(ctx context.Context, req domain.ListAppointmentsRequest) ([]domain.Appointment, error) {
	s.lastRequest = req
	return s.appointments, s.err
}

func (s *fakeAppointmentService) GetAppointmentByID(ctx context.Context, id string) (*domain.Appointment, error) {
	return nil, domain.ErrAppointmentNotFound
}

func (s *fakeAppointmentService) UpdateAppointmentStatus(ctx context.Context, id string, req domain.UpdateAppointmentStatusRequest) error {
	return nil
}

type fakeS3 struct {
	uploads map[string][]byte
	err     error
}

func (s *fakeS3) UploadBytes(ctx context.Context, objectKey string, body []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads[objectKey] = body
	return objectKey, nil
}

func (s *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example.com/" + objectKey
}

func sampleAppointments() []domain.Appointment {
	return []domain.Appointment{
		{ID: "a-1", Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Phone: "0901", Status: domain.StatusPending, Address: "12 Main St", TimeRange: "08:00-10:00"},
		{ID: "a-2", Date: time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), Phone: "0902", Status: domain.StatusFulfilled},
	}
}

func TestExportAppointments_WritesRowsInOrder(t *testing.T) {
	appointments := &fakeAppointmentService{appointments: sampleAppointments()}
	svc := NewReportService(appointments, &fakeS3{uploads: map[string][]byte{}})
	req := domain.ListAppointmentsRequest{Search: "a-", Sort: domain.SortByStatus}

	file, rows, err := svc.ExportAppointments(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)
	assert.Equal(t, req, appointments.lastRequest)

	f, err := excelize.OpenReader(bytes.NewReader(file))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, AppointmentExportHeader, got[0])
	assert.Equal(t, []string{"a-1", "2024-05-10", "0901", "PENDING", "12 Main St", "08:00-10:00"}, got[1])
	assert.Equal(t, []string{"a-2", "2024-05-11", "0902", "FULFILLED"}, got[2])
}

func TestExportAppointments_PropagatesListError(t *testing.T) {
	svc := NewReportService(&fakeAppointmentService{err: domain.ErrInvalidSortKey}, &fakeS3{uploads: map[string][]byte{}})

	_, _, err := svc.ExportAppointments(context.Background(), domain.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
}

func TestArchiveAppointments_UploadsWorkbook(t *testing.T) {
	store := &fakeS3{uploads: map[string][]byte{}}
	svc := &reportService{
		appointmentService: &fakeAppointmentService{appointments: sampleAppointments()},
		s3:                 store,
		now:                func() time.Time { return time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC) },
	}

	res, err := svc.ArchiveAppointments(context.Background(), domain.ListAppointmentsRequest{})
	require.NoError(t, err)

	assert.Equal(t, "reports/appointments-20240601-093000.xlsx", res.ObjectKey)
	assert.Equal(t, "https://bucket.example.com/reports/appointments-20240601-093000.xlsx", res.URL)
	assert.Equal(t, 2, res.Rows)
	assert.NotEmpty(t, store.uploads[res.ObjectKey])
}

func TestArchiveAppointments_UploadError(t *testing.T) {
	store := &fakeS3{uploads: map[string][]byte{}, err: errors.New("access denied")}
	svc := NewReportService(&fakeAppointmentService{}, store)

	_, err := svc.ArchiveAppointments(context.Background(), domain.ListAppointmentsRequest{})
	assert.EqualError(t, err, "access denied")
}
