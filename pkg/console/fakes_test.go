package console

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Blood-Donation-Admin/domain"
)

type fakeGateway struct {
	mu           sync.Mutex
	appointments []domain.Appointment
	details      map[string]*domain.DonationDetail
	calls        []string
	requests     []domain.DonationDetailRequest

	fetchErr  error
	statusErr error
	detailErr error
	createErr error
	updateErr error

	// detailHook, when set, replaces the detail lookup.
	detailHook func(ctx context.Context, appointmentID string) (*domain.DonationDetail, error)
}

func newFakeGateway(appointments ...domain.Appointment) *fakeGateway {
	return &fakeGateway{
		appointments: appointments,
		details:      map[string]*domain.DonationDetail{},
	}
}

func (g *fakeGateway) record(call string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)
}

func (g *fakeGateway) Calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.calls...)
}

func (g *fakeGateway) FetchAppointments(ctx context.Context) ([]domain.Appointment, error) {
	g.record("fetch")
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fetchErr != nil {
		return nil, g.fetchErr
	}
	return append([]domain.Appointment(nil), g.appointments...), nil
}

func (g *fakeGateway) UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	g.record("status:" + id + ":" + string(status))
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.statusErr != nil {
		return g.statusErr
	}
	for i := range g.appointments {
		if g.appointments[i].ID == id {
			g.appointments[i].Status = status
		}
	}
	return nil
}

func (g *fakeGateway) FetchDonationDetail(ctx context.Context, appointmentID string) (*domain.DonationDetail, error) {
	g.record("detail:" + appointmentID)
	if g.detailHook != nil {
		return g.detailHook(ctx, appointmentID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.detailErr != nil {
		return nil, g.detailErr
	}
	d, ok := g.details[appointmentID]
	if !ok {
		return nil, domain.ErrDonationDetailNotFound
	}
	copied := *d
	return &copied, nil
}

func (g *fakeGateway) CreateDonationDetail(ctx context.Context, req domain.DonationDetailRequest) (*domain.DonationDetail, error) {
	g.record("create:" + req.AppointmentID)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.createErr != nil {
		return nil, g.createErr
	}
	return &domain.DonationDetail{ID: "detail-" + req.AppointmentID, AppointmentID: req.AppointmentID}, nil
}

func (g *fakeGateway) UpdateDonationDetail(ctx context.Context, appointmentID string, req domain.DonationDetailRequest) (*domain.DonationDetail, error) {
	g.record("update:" + appointmentID)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	if g.updateErr != nil {
		return nil, g.updateErr
	}
	return &domain.DonationDetail{ID: "detail-" + appointmentID, AppointmentID: appointmentID}, nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *fakeNotifier) Error(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

type fakeConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (c *fakeConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, c.err
}

type fixture struct {
	gateway   *fakeGateway
	notifier  *fakeNotifier
	confirmer *fakeConfirmer
	list      *ListController
	form      *DonationForm
	survey    *SurveyViewer
}

func newFixture(t *testing.T, appointments ...domain.Appointment) *fixture {
	t.Helper()
	fx := &fixture{
		gateway:   newFakeGateway(appointments...),
		notifier:  &fakeNotifier{},
		confirmer: &fakeConfirmer{answer: true},
	}
	deps := Deps{
		Gateway:   fx.gateway,
		Identity:  StaticIdentity("staff-7"),
		Notifier:  fx.notifier,
		Confirmer: fx.confirmer,
		Logger:    zap.NewNop(),
	}

	var err error
	fx.list, err = NewListController(deps)
	require.NoError(t, err)
	fx.form, err = NewDonationForm(deps, fx.list)
	require.NoError(t, err)
	fx.survey, err = NewSurveyViewer(deps, fx.list)
	require.NoError(t, err)

	require.NoError(t, fx.list.Refresh(context.Background()))
	return fx
}

func day(value string) time.Time {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func appointment(id string, status domain.AppointmentStatus, date string) domain.Appointment {
	return domain.Appointment{
		ID:     id,
		UserID: "member-" + id,
		Date:   day(date),
		Phone:  "0900000000",
		Status: status,
	}
}

func ids(appointments []domain.Appointment) []string {
	out := make([]string, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, a.ID)
	}
	return out
}
