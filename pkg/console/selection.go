package console

import "Blood-Donation-Admin/domain"

// Selection is either NoSelection or Selected.
type Selection interface {
	isSelection()
}

type NoSelection struct{}

type Selected struct {
	Appointment domain.Appointment
}

func (NoSelection) isSelection() {}
func (Selected) isSelection()    {}

// SelectedAppointment unwraps s.
func SelectedAppointment(s Selection) (domain.Appointment, bool) {
	if sel, ok := s.(Selected); ok {
		return sel.Appointment, true
	}
	return domain.Appointment{}, false
}
