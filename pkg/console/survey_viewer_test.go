package console

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Blood-Donation-Admin/domain"
)

func TestSurveyViewShowsPlaceholders(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	appt.Answers[0] = "yes"
	appt.Address = "12 Main St"
	fx := newFixture(t, appt)
	fx.list.Select(appt)

	view, ok := fx.survey.View()
	require.True(t, ok)
	assert.Equal(t, "Survey - Appointment #p1", view.Title)
	assert.Equal(t, SurveyAnswer{Question: "1. Survey question", Answer: "yes"}, view.Answers[0])
	assert.Equal(t, SurveyAnswer{Question: "9. Survey question", Answer: "No answer"}, view.Answers[8])
	assert.Equal(t, "12 Main St", view.Address)
	assert.Equal(t, "Unknown", view.TimeRange)
	assert.True(t, view.CanDecide)
}

func TestSurveyViewWithoutSelection(t *testing.T) {
	fx := newFixture(t)

	view, ok := fx.survey.View()
	assert.False(t, ok)
	assert.Equal(t, "No survey data.", view.Title)

	sent, err := fx.survey.Approve(context.Background())
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.False(t, sent)
}

func TestApproveAfterConfirmation(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)

	sent, err := fx.survey.Approve(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)

	assert.Equal(t, []string{"Approve this survey?"}, fx.confirmer.prompts)
	assert.Equal(t, []string{"fetch", "status:p1:APPROVED", "fetch"}, fx.gateway.Calls())
	assert.False(t, fx.list.SurveyOpen())

	view, ok := fx.survey.View()
	require.True(t, ok)
	assert.False(t, view.CanDecide)
}

func TestApproveDeclinedSendsNothing(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)
	fx.confirmer.answer = false

	sent, err := fx.survey.Approve(context.Background())
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Equal(t, []string{"fetch"}, fx.gateway.Calls())
	assert.True(t, fx.list.SurveyOpen())
}

func TestRejectAfterConfirmation(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)

	sent, err := fx.survey.Reject(context.Background())
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, []string{"Reject this survey?"}, fx.confirmer.prompts)
	assert.Contains(t, fx.gateway.Calls(), "status:p1:REJECTED")
	assert.Equal(t, []string{"Status updated: REJECTED"}, fx.notifier.successes)
}

func TestDecisionOnlyForPendingAppointments(t *testing.T) {
	appt := appointment("a1", domain.StatusApproved, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)

	view, ok := fx.survey.View()
	require.True(t, ok)
	assert.False(t, view.CanDecide)

	_, err := fx.survey.Reject(context.Background())
	assert.ErrorIs(t, err, ErrDecisionUnavailable)
	assert.Empty(t, fx.confirmer.prompts)
}

func TestConfirmationErrorIsReturned(t *testing.T) {
	appt := appointment("p1", domain.StatusPending, "2024-05-10")
	fx := newFixture(t, appt)
	fx.list.Select(appt)
	fx.confirmer.err = errors.New("stdin closed")

	sent, err := fx.survey.Approve(context.Background())
	assert.EqualError(t, err, "stdin closed")
	assert.False(t, sent)
	assert.Equal(t, []string{"fetch"}, fx.gateway.Calls())
}

func TestNewSurveyViewerRequiresConfirmer(t *testing.T) {
	deps := Deps{Gateway: newFakeGateway(), Notifier: &fakeNotifier{}}
	list, err := NewListController(deps)
	require.NoError(t, err)

	_, err = NewSurveyViewer(deps, list)
	assert.ErrorIs(t, err, ErrMissingCollaborators)
}
