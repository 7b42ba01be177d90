package console

import (
	"context"
	"fmt"

	"Blood-Donation-Admin/domain"
)

type SurveyAnswer struct {
	Question string
	Answer   string
}

type SurveyView struct {
	Title     string
	Answers   [9]SurveyAnswer
	Address   string
	TimeRange string
	// CanDecide is true when approve and reject are offered.
	CanDecide bool
}

// SurveyViewer shows the survey of the list's selected appointment.
type SurveyViewer struct {
	deps Deps
	list *ListController
}

func NewSurveyViewer(deps Deps, list *ListController) (*SurveyViewer, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	if deps.Confirmer == nil || list == nil {
		return nil, ErrMissingCollaborators
	}
	return &SurveyViewer{deps: deps, list: list}, nil
}

// View returns the survey of the selected appointment, or false and the
// "no survey" text when nothing is selected.
func (v *SurveyViewer) View() (SurveyView, bool) {
	m := v.deps.Messages
	appt, ok := SelectedAppointment(v.list.Selection())
	if !ok {
		return SurveyView{Title: m.NoSurvey}, false
	}

	view := SurveyView{
		Title:     fmt.Sprintf(m.SurveyTitle, appt.ID),
		Address:   orDefault(appt.Address, m.Unknown),
		TimeRange: orDefault(appt.TimeRange, m.Unknown),
		CanDecide: appt.Status == domain.StatusPending,
	}
	for i, answer := range appt.Answers {
		view.Answers[i] = SurveyAnswer{
			Question: fmt.Sprintf(m.SurveyQuestion, i+1),
			Answer:   orDefault(answer, m.NoAnswer),
		}
	}
	return view, true
}

func orDefault(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// Approve asks for confirmation and then approves the selected appointment.
// It reports whether a status update was sent.
func (v *SurveyViewer) Approve(ctx context.Context) (bool, error) {
	return v.decide(ctx, domain.StatusApproved, v.deps.Messages.ConfirmApprove)
}

// Reject asks for confirmation and then rejects the selected appointment.
func (v *SurveyViewer) Reject(ctx context.Context) (bool, error) {
	return v.decide(ctx, domain.StatusRejected, v.deps.Messages.ConfirmReject)
}

func (v *SurveyViewer) decide(ctx context.Context, target domain.AppointmentStatus, prompt string) (bool, error) {
	appt, ok := SelectedAppointment(v.list.Selection())
	if !ok {
		return false, ErrNoSelection
	}
	if appt.Status != domain.StatusPending {
		return false, ErrDecisionUnavailable
	}

	confirmed, err := v.deps.Confirmer.Confirm(ctx, prompt)
	if err != nil || !confirmed {
		return false, err
	}
	return true, v.list.UpdateStatus(ctx, appt.ID, target)
}
