package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blood-Donation-Admin/domain"
)

func TestNewListControllerRequiresGateway(t *testing.T) {
	_, err := NewListController(Deps{Notifier: &fakeNotifier{}})
	assert.ErrorIs(t, err, ErrMissingCollaborators)
}

func TestViewFiltersByIDIgnoringCase(t *testing.T) {
	fx := newFixture(t,
		appointment("ABC-101", domain.StatusPending, "2024-05-01"),
		appointment("abc-102", domain.StatusApproved, "2024-05-02"),
		appointment("XYZ-200", domain.StatusPending, "2024-05-03"),
	)

	fx.list.SetSearch("aBc")
	assert.ElementsMatch(t, []string{"ABC-101", "abc-102"}, ids(fx.list.View()))

	fx.list.SetSearch("200")
	assert.Equal(t, []string{"XYZ-200"}, ids(fx.list.View()))

	fx.list.SetSearch("")
	assert.Len(t, fx.list.View(), 3)

	fx.list.SetSearch("nothing")
	assert.Empty(t, fx.list.View())
}

func TestViewSortsByStatusPriorityByDefault(t *testing.T) {
	fx := newFixture(t,
		appointment("c", domain.StatusCancelled, "2024-05-01"),
		appointment("x", domain.AppointmentStatus("ARCHIVED"), "2024-05-01"),
		appointment("r", domain.StatusRejected, "2024-05-01"),
		appointment("f", domain.StatusFulfilled, "2024-05-01"),
		appointment("a", domain.StatusApproved, "2024-05-01"),
		appointment("p", domain.StatusPending, "2024-05-01"),
	)

	assert.Equal(t, domain.SortByStatus, fx.list.SortKey())
	assert.Equal(t, []string{"p", "a", "f", "r", "c", "x"}, ids(fx.list.View()))
}

func TestViewSortsByDateNewestFirst(t *testing.T) {
	fx := newFixture(t,
		appointment("mid", domain.StatusPending, "2024-05-10"),
		appointment("old", domain.StatusFulfilled, "2024-01-02"),
		appointment("new", domain.StatusCancelled, "2024-09-30"),
	)

	require.NoError(t, fx.list.SetSort(domain.SortByDate))
	assert.Equal(t, []string{"new", "mid", "old"}, ids(fx.list.View()))

	assert.Equal(t, domain.SortByStatus, fx.list.ToggleSort())
	assert.Equal(t, []string{"mid", "old", "new"}, ids(fx.list.View()))

	assert.ErrorIs(t, fx.list.SetSort("phone"), domain.ErrInvalidSortKey)
}

func TestRowsDescribeDonationAction(t *testing.T) {
	fx := newFixture(t,
		appointment("p", domain.StatusPending, "2024-05-01"),
		appointment("a", domain.StatusApproved, "2024-05-01"),
		appointment("f", domain.StatusFulfilled, "2024-05-01"),
	)

	rows := fx.list.Rows()
	require.Len(t, rows, 3)

	assert.False(t, rows[0].DonationAction.Enabled)
	assert.Equal(t, "gold", rows[0].StatusColor)

	assert.True(t, rows[1].DonationAction.Enabled)
	assert.Equal(t, "Record donation", rows[1].DonationAction.Label)

	assert.True(t, rows[2].DonationAction.Enabled)
	assert.Equal(t, "View donation", rows[2].DonationAction.Label)
	assert.Equal(t, "2024-05-01", rows[2].Date)
	assert.Len(t, rows[2].StatusChoices, 5)
}

func TestUpdateStatusSuccessClosesSurveyAndRefetches(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)
	require.True(t, fx.list.SurveyOpen())

	err := fx.list.UpdateStatus(context.Background(), "p1", domain.StatusApproved)
	require.NoError(t, err)

	assert.Equal(t, []string{"fetch", "status:p1:APPROVED", "fetch"}, fx.gateway.Calls())
	assert.Equal(t, []string{"Status updated: APPROVED"}, fx.notifier.successes)
	assert.Empty(t, fx.notifier.errors)
	assert.False(t, fx.list.SurveyOpen())
	assert.Equal(t, domain.StatusApproved, fx.list.View()[0].Status)

	selected, ok := SelectedAppointment(fx.list.Selection())
	require.True(t, ok)
	assert.Equal(t, domain.StatusApproved, selected.Status)
}

func TestUpdateStatusFailureKeepsState(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)
	fx.gateway.statusErr = errors.New("boom")

	err := fx.list.UpdateStatus(context.Background(), "p1", domain.StatusRejected)
	assert.Error(t, err)

	assert.Equal(t, []string{"Failed to update the appointment status"}, fx.notifier.errors)
	assert.Empty(t, fx.notifier.successes)
	assert.True(t, fx.list.SurveyOpen())
	assert.Equal(t, domain.StatusPending, fx.list.View()[0].Status)
}

func TestUpdateStatusIsRepeatable(t *testing.T) {
	fx := newFixture(t, appointment("a1", domain.StatusApproved, "2024-05-10"))

	for i := 0; i < 2; i++ {
		require.NoError(t, fx.list.UpdateStatus(context.Background(), "a1", domain.StatusCancelled))
	}
	assert.Len(t, fx.notifier.successes, 2)
	assert.Equal(t, domain.StatusCancelled, fx.list.View()[0].Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	fx := newFixture(t, appointment("a1", domain.StatusApproved, "2024-05-10"))

	err := fx.list.UpdateStatus(context.Background(), "a1", "DONE")
	assert.ErrorIs(t, err, domain.ErrInvalidAppointmentStatus)
	assert.Equal(t, []string{"fetch"}, fx.gateway.Calls())
	assert.Len(t, fx.notifier.errors, 1)
}

func TestRefreshFailureKeepsCollection(t *testing.T) {
	fx := newFixture(t, appointment("a1", domain.StatusApproved, "2024-05-10"))
	fx.gateway.fetchErr = errors.New("offline")

	assert.Error(t, fx.list.Refresh(context.Background()))
	assert.Len(t, fx.list.View(), 1)
	assert.False(t, fx.list.Loading())
}

func TestSetAppointmentsUsesSuppliedCollection(t *testing.T) {
	fx := newFixture(t)
	fx.list.SetAppointments([]domain.Appointment{
		appointment("b", domain.StatusFulfilled, "2024-05-10"),
		appointment("a", domain.StatusPending, "2024-05-11"),
	})

	assert.Equal(t, []string{"a", "b"}, ids(fx.list.View()))
	_, ok := fx.list.Selection().(NoSelection)
	assert.True(t, ok)
}
