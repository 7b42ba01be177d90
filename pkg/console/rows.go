package console

import (
	"fmt"

	"Blood-Donation-Admin/domain"
)

var statusColors = map[domain.AppointmentStatus]string{
	domain.StatusPending:   "gold",
	domain.StatusApproved:  "blue",
	domain.StatusRejected:  "red",
	domain.StatusFulfilled: "green",
}

// StatusColor is the tag color for a status; statuses without one get "default".
func StatusColor(status domain.AppointmentStatus) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "default"
}

type DonationAction struct {
	Enabled bool
	Label   string
}

// DonationActionFor describes the donation button of a row. Fulfilled
// appointments open the recorded detail; approved ones open an empty form.
func DonationActionFor(status domain.AppointmentStatus, m Messages) DonationAction {
	label := m.RecordDonation
	if status == domain.StatusFulfilled {
		label = m.ViewDonation
	}
	return DonationAction{
		Enabled: status.AllowsDonationDetail(),
		Label:   label,
	}
}

type Row struct {
	Appointment    domain.Appointment
	Date           string
	StatusColor    string
	DonationAction DonationAction
	// StatusChoices are the statuses the row's status picker offers.
	StatusChoices []domain.AppointmentStatus
}

func NewRow(a domain.Appointment, m Messages) Row {
	return Row{
		Appointment:    a,
		Date:           a.Date.Format(domain.DateLayout),
		StatusColor:    StatusColor(a.Status),
		DonationAction: DonationActionFor(a.Status, m),
		StatusChoices:  domain.AppointmentStatuses,
	}
}

// DonationTitle is the donation modal title for appt.
func DonationTitle(appt domain.Appointment, m Messages) string {
	if appt.Status == domain.StatusFulfilled {
		return fmt.Sprintf(m.DonationTitleView, appt.ID)
	}
	return fmt.Sprintf(m.DonationTitleNew, appt.ID)
}
