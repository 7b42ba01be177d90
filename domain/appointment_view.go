package domain

import (
	"sort"
	"strings"
	"time"
)

// FilterAppointments keeps the appointments whose ID contains search,
// ignoring case. An empty search keeps everything.
func FilterAppointments(appointments []Appointment, search string) []Appointment {
	needle := strings.ToLower(search)
	result := make([]Appointment, 0, len(appointments))
	for _, a := range appointments {
		if strings.Contains(strings.ToLower(a.ID), needle) {
			result = append(result, a)
		}
	}
	return result
}

// SortAppointments orders appointments in place. Ties keep their input order.
func SortAppointments(appointments []Appointment, key SortKey) {
	if key == SortByDate {
		sort.SliceStable(appointments, func(i, j int) bool {
			return appointments[i].Date.After(appointments[j].Date)
		})
		return
	}
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Status.Priority() < appointments[j].Status.Priority()
	})
}

// ApplyListQuery returns a filtered, sorted copy. An empty sort key sorts by status.
func ApplyListQuery(appointments []Appointment, search string, key SortKey) []Appointment {
	view := FilterAppointments(appointments, search)
	if key == "" {
		key = SortByStatus
	}
	SortAppointments(view, key)
	return view
}

// DateOnly drops the clock part of t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DonationDateAllowed reports whether donationDate falls on or after the
// appointment's calendar day.
func DonationDateAllowed(appointmentDate, donationDate time.Time) bool {
	return !DateOnly(donationDate).Before(DateOnly(appointmentDate))
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
