package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetAppointments    = "appointments retrieved successfully"
	MessageSuccessUpdateAppointment  = "appointment status updated successfully"
	MessageSuccessExportAppointments = "appointments exported successfully"

	MessageFailedGetAppointments    = "failed to retrieve appointments"
	MessageFailedUpdateAppointment  = "failed to update appointment status"
	MessageFailedExportAppointments = "failed to export appointments"

	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrInvalidAppointmentStatus = errors.New("invalid appointment status")
	ErrInvalidSortKey           = errors.New("invalid sort key")
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusApproved  AppointmentStatus = "APPROVED"
	StatusRejected  AppointmentStatus = "REJECTED"
	StatusFulfilled AppointmentStatus = "FULFILLED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

// AppointmentStatuses lists every status in the order a status picker offers them.
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusFulfilled,
	StatusCancelled,
}

// unknownStatusPriority puts statuses outside the enum after every known one.
const unknownStatusPriority = 99

var statusPriority = map[AppointmentStatus]int{
	StatusPending:   1,
	StatusApproved:  2,
	StatusFulfilled: 3,
	StatusRejected:  4,
	StatusCancelled: 5,
}

func (s AppointmentStatus) Valid() bool {
	_, ok := statusPriority[s]
	return ok
}

func (s AppointmentStatus) Priority() int {
	if p, ok := statusPriority[s]; ok {
		return p
	}
	return unknownStatusPriority
}

// AllowsDonationDetail reports whether a donation detail may be created or
// edited for an appointment in this status.
func (s AppointmentStatus) AllowsDonationDetail() bool {
	return s == StatusApproved || s == StatusFulfilled
}

type SortKey string

const (
	SortByStatus SortKey = "status"
	SortByDate   SortKey = "date"
)

func (k SortKey) Valid() bool {
	return k == SortByStatus || k == SortByDate
}

type (
	Appointment struct {
		ID        string            `json:"id"`
		UserID    string            `json:"user_id"`
		Date      time.Time         `json:"date"`
		Phone     string            `json:"phone"`
		Status    AppointmentStatus `json:"status"`
		Address   string            `json:"address"`
		TimeRange string            `json:"time_range"`
		Answers   [9]string         `json:"answers"`
		CreatedAt time.Time         `json:"created_at"`
	}

	ListAppointmentsRequest struct {
		Search string  `query:"search" validate:"omitempty,max=64"`
		Sort   SortKey `query:"sort" validate:"omitempty,oneof=status date"`
	}

	UpdateAppointmentStatusRequest struct {
		Status AppointmentStatus `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED FULFILLED CANCELLED"`
	}

	ExportAppointmentsResponse struct {
		ObjectKey string `json:"object_key"`
		URL       string `json:"url"`
		Rows      int    `json:"rows"`
	}
)
