// Package console holds the view state of the appointment administration
// screen: the appointment list, the survey viewer and the donation detail
// form. It renders nothing; callers read snapshots and forward user input.
package console

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"Blood-Donation-Admin/domain"
)

var (
	ErrNoSelection          = errors.New("no appointment selected")
	ErrDecisionUnavailable  = errors.New("only pending appointments can be approved or rejected")
	ErrFormNotEditable      = errors.New("donation form is not editable")
	ErrEditToggleForbidden  = errors.New("edit mode is only available for fulfilled appointments")
	ErrMissingCollaborators = errors.New("console requires a gateway and a notifier")
)

// Gateway is the remote data boundary for appointments and donation details.
// FetchDonationDetail returns domain.ErrDonationDetailNotFound when none is recorded.
type Gateway interface {
	FetchAppointments(ctx context.Context) ([]domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	FetchDonationDetail(ctx context.Context, appointmentID string) (*domain.DonationDetail, error)
	CreateDonationDetail(ctx context.Context, req domain.DonationDetailRequest) (*domain.DonationDetail, error)
	UpdateDonationDetail(ctx context.Context, appointmentID string, req domain.DonationDetailRequest) (*domain.DonationDetail, error)
}

type IdentityProvider interface {
	StaffID() string
}

// StaticIdentity is an IdentityProvider for a fixed staff id.
type StaticIdentity string

func (s StaticIdentity) StaffID() string { return string(s) }

// Notifier shows transient success and error messages to the operator.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type Deps struct {
	Gateway   Gateway
	Identity  IdentityProvider
	Notifier  Notifier
	Confirmer Confirmer
	Logger    *zap.Logger
	Messages  *Messages
}

func (d Deps) withDefaults() (Deps, error) {
	if d.Gateway == nil || d.Notifier == nil {
		return d, ErrMissingCollaborators
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Messages == nil {
		m := EnglishMessages()
		d.Messages = &m
	}
	return d, nil
}
