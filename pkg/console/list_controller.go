package console

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"Blood-Donation-Admin/domain"
)

// ListController owns the search and sort parameters of the appointment
// table, the survey selection, and status changes.
type ListController struct {
	deps Deps

	mu           sync.Mutex
	appointments []domain.Appointment
	loading      bool
	search       string
	sortKey      domain.SortKey
	selection    Selection
	surveyOpen   bool
}

func NewListController(deps Deps) (*ListController, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	return &ListController{
		deps:      deps,
		sortKey:   domain.SortByStatus,
		selection: NoSelection{},
	}, nil
}

// SetAppointments replaces the collection with one supplied by the caller.
func (l *ListController) SetAppointments(appointments []domain.Appointment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setAppointmentsLocked(appointments)
}

func (l *ListController) setAppointmentsLocked(appointments []domain.Appointment) {
	l.appointments = append([]domain.Appointment(nil), appointments...)

	// keep the survey showing the latest copy of the selected appointment
	if current, ok := SelectedAppointment(l.selection); ok {
		for _, a := range l.appointments {
			if a.ID == current.ID {
				l.selection = Selected{Appointment: a}
				break
			}
		}
	}
}

// Refresh fetches all appointments. On failure the previous collection is kept.
func (l *ListController) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	appointments, err := l.deps.Gateway.FetchAppointments(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if err != nil {
		l.deps.Logger.Warn("fetching appointments failed", zap.Error(err))
		return err
	}
	l.setAppointmentsLocked(appointments)
	return nil
}

func (l *ListController) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *ListController) SetSearch(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.search = term
}

func (l *ListController) Search() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.search
}

func (l *ListController) SetSort(key domain.SortKey) error {
	if !key.Valid() {
		return domain.ErrInvalidSortKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sortKey = key
	return nil
}

// ToggleSort switches between status and date ordering and returns the new key.
func (l *ListController) ToggleSort() domain.SortKey {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sortKey == domain.SortByStatus {
		l.sortKey = domain.SortByDate
	} else {
		l.sortKey = domain.SortByStatus
	}
	return l.sortKey
}

func (l *ListController) SortKey() domain.SortKey {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortKey
}

// View returns the filtered and sorted appointments.
func (l *ListController) View() []domain.Appointment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.ApplyListQuery(l.appointments, l.search, l.sortKey)
}

// Rows returns View decorated for display.
func (l *ListController) Rows() []Row {
	view := l.View()
	rows := make([]Row, 0, len(view))
	for _, a := range view {
		rows = append(rows, NewRow(a, *l.deps.Messages))
	}
	return rows
}

// Select opens the survey viewer on appt.
func (l *ListController) Select(appt domain.Appointment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selection = Selected{Appointment: appt}
	l.surveyOpen = true
}

func (l *ListController) Selection() Selection {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selection
}

func (l *ListController) SurveyOpen() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.surveyOpen
}

func (l *ListController) CloseSurvey() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.surveyOpen = false
}

// UpdateStatus requests a status change and reports the outcome to the
// operator. Local state only changes after the request succeeds.
func (l *ListController) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if err := l.setStatus(ctx, id, status); err != nil {
		l.deps.Notifier.Error(l.deps.Messages.StatusUpdateFailed)
		return err
	}

	l.CloseSurvey()
	l.deps.Notifier.Success(fmt.Sprintf(l.deps.Messages.StatusUpdated, status))
	return nil
}

// setStatus sends the request and refetches on success. A failed refetch
// does not fail the status change.
func (l *ListController) setStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	if !status.Valid() {
		return domain.ErrInvalidAppointmentStatus
	}

	if err := l.deps.Gateway.UpdateAppointmentStatus(ctx, id, status); err != nil {
		l.deps.Logger.Warn("appointment status update failed",
			zap.String("appointment_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return err
	}

	_ = l.Refresh(ctx)
	return nil
}
