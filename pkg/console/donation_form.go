package console

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"Blood-Donation-Admin/domain"
)

type FormState int

const (
	StateClosed FormState = iota
	StateLoading
	StateEditable
	StateReadOnly
	StateSubmitting
)

func (s FormState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoading:
		return "loading"
	case StateEditable:
		return "editable"
	case StateReadOnly:
		return "readOnly"
	case StateSubmitting:
		return "submitting"
	}
	return "unknown"
}

const (
	FieldVolume       = "volume"
	FieldDonationDate = "donation_date"
	FieldBloodType    = "blood_type"
)

// FieldErrors maps a form field to the message shown next to it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid donation form: " + strings.Join(parts, "; ")
}

// DonationFields are the form inputs. Zero values mean "not filled in".
type DonationFields struct {
	Volume       int
	DonationDate time.Time
	BloodType    domain.BloodType
	Location     string
	Notes        string
}

type fieldRules struct {
	Volume       int              `validate:"required,oneof=200 350 500"`
	DonationDate time.Time        `validate:"required"`
	BloodType    domain.BloodType `validate:"required,oneof=A B AB O"`
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// FormSnapshot is a read-only copy of the form for rendering.
type FormSnapshot struct {
	State       FormState
	Appointment Selection
	Fields      DonationFields
	Errors      FieldErrors
	Title       string
	ReadOnly    bool
	// EditMode is on while a fulfilled appointment's detail is being edited.
	EditMode      bool
	CanToggleEdit bool
	CanSave       bool
}

// DonationForm records or edits the donation detail of one appointment at a time.
type DonationForm struct {
	deps Deps
	list *ListController

	mu           sync.Mutex
	state        FormState
	appointment  Selection
	fields       DonationFields
	errors       FieldErrors
	generation   uint64
	cancelLookup context.CancelFunc
}

func NewDonationForm(deps Deps, list *ListController) (*DonationForm, error) {
	deps, err := deps.withDefaults()
	if err != nil {
		return nil, err
	}
	if deps.Identity == nil || list == nil {
		return nil, ErrMissingCollaborators
	}
	return &DonationForm{
		deps:        deps,
		list:        list,
		state:       StateClosed,
		appointment: NoSelection{},
	}, nil
}

// Open shows the form for appt and loads any recorded detail. A failed or
// empty lookup leaves an empty, editable form. Opening again, or closing,
// cancels a lookup still in flight and its result is dropped.
func (f *DonationForm) Open(ctx context.Context, appt domain.Appointment) error {
	if !appt.Status.AllowsDonationDetail() {
		return domain.ErrDonationNotAllowed
	}

	f.mu.Lock()
	f.abortLookupLocked()
	gen := f.generation
	lookupCtx, cancel := context.WithCancel(ctx)
	f.cancelLookup = cancel
	f.appointment = Selected{Appointment: appt}
	f.fields = DonationFields{}
	f.errors = nil
	f.state = StateLoading
	f.mu.Unlock()

	detail, err := f.deps.Gateway.FetchDonationDetail(lookupCtx, appt.ID)
	cancel()

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		f.deps.Logger.Debug("discarding superseded donation detail lookup", zap.String("appointment_id", appt.ID))
		return nil
	}
	f.cancelLookup = nil

	if err != nil || detail == nil {
		if err != nil && !errors.Is(err, domain.ErrDonationDetailNotFound) {
			f.deps.Logger.Warn("donation detail lookup failed",
				zap.String("appointment_id", appt.ID),
				zap.Error(err),
			)
		}
		f.fields = DonationFields{}
		f.state = StateEditable
		return nil
	}

	f.fields = DonationFields{
		Volume:       detail.Volume,
		DonationDate: detail.DonationDate,
		BloodType:    detail.BloodType,
		Location:     detail.Location,
		Notes:        detail.Notes,
	}
	if appt.Status == domain.StatusFulfilled {
		f.state = StateReadOnly
	} else {
		f.state = StateEditable
	}
	return nil
}

// abortLookupLocked cancels the in-flight lookup, if any, and invalidates
// every result that has not been applied yet.
func (f *DonationForm) abortLookupLocked() {
	if f.cancelLookup != nil {
		f.cancelLookup()
		f.cancelLookup = nil
	}
	f.generation++
}

// ToggleEdit flips a fulfilled appointment's form between read-only and editable.
func (f *DonationForm) ToggleEdit() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	appt, ok := SelectedAppointment(f.appointment)
	if !ok || appt.Status != domain.StatusFulfilled {
		return ErrEditToggleForbidden
	}
	switch f.state {
	case StateReadOnly:
		f.state = StateEditable
	case StateEditable:
		f.state = StateReadOnly
		f.errors = nil
	default:
		return ErrEditToggleForbidden
	}
	return nil
}

// Close hides the form, clears its fields and turns edit mode off.
func (f *DonationForm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.abortLookupLocked()
	f.resetLocked()
}

func (f *DonationForm) resetLocked() {
	f.state = StateClosed
	f.fields = DonationFields{}
	f.errors = nil
}

func (f *DonationForm) edit(apply func(*DonationFields)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateEditable {
		return ErrFormNotEditable
	}
	apply(&f.fields)
	return nil
}

func (f *DonationForm) SetVolume(ml int) error {
	return f.edit(func(d *DonationFields) { d.Volume = ml })
}

func (f *DonationForm) SetDonationDate(date time.Time) error {
	return f.edit(func(d *DonationFields) { d.DonationDate = date })
}

func (f *DonationForm) SetBloodType(bloodType domain.BloodType) error {
	return f.edit(func(d *DonationFields) { d.BloodType = bloodType })
}

func (f *DonationForm) SetLocation(location string) error {
	return f.edit(func(d *DonationFields) { d.Location = location })
}

func (f *DonationForm) SetNotes(notes string) error {
	return f.edit(func(d *DonationFields) { d.Notes = notes })
}

// DisabledDate reports whether the date picker must refuse day.
func (f *DonationForm) DisabledDate(day time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := SelectedAppointment(f.appointment)
	if !ok {
		return false
	}
	return !domain.DonationDateAllowed(appt.Date, day)
}

// Validate checks the current fields and records the result for Snapshot.
// It returns nil when the form can be submitted.
func (f *DonationForm) Validate() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = f.validateLocked()
	return f.errors
}

func (f *DonationForm) validateLocked() FieldErrors {
	m := f.deps.Messages
	errs := FieldErrors{}

	err := formValidator.Struct(fieldRules{
		Volume:       f.fields.Volume,
		DonationDate: f.fields.DonationDate,
		BloodType:    f.fields.BloodType,
	})
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			required := fe.Tag() == "required"
			switch fe.StructField() {
			case "Volume":
				errs[FieldVolume] = pick(required, m.VolumeRequired, m.VolumeInvalid)
			case "DonationDate":
				errs[FieldDonationDate] = m.DateRequired
			case "BloodType":
				errs[FieldBloodType] = pick(required, m.BloodTypeRequired, m.BloodTypeInvalid)
			}
		}
	}

	if _, dated := errs[FieldDonationDate]; !dated {
		if appt, ok := SelectedAppointment(f.appointment); ok && !domain.DonationDateAllowed(appt.Date, f.fields.DonationDate) {
			errs[FieldDonationDate] = m.DateBeforeAppointment
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// Submit validates the form and saves it. A fulfilled appointment's detail is
// updated; otherwise one is created and the appointment is marked fulfilled.
// On failure the form stays open with its values.
func (f *DonationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateEditable {
		f.mu.Unlock()
		return ErrFormNotEditable
	}
	appt, _ := SelectedAppointment(f.appointment)
	if errs := f.validateLocked(); errs != nil {
		f.errors = errs
		f.mu.Unlock()
		return errs
	}
	f.errors = nil

	isUpdate := appt.Status == domain.StatusFulfilled
	req := domain.DonationDetailRequest{
		AppointmentID: appt.ID,
		MemberID:      appt.UserID,
		StaffID:       f.deps.Identity.StaffID(),
		DonationDate:  f.fields.DonationDate.Format(domain.DateLayout),
		Location:      f.fields.Location,
		BloodType:     f.fields.BloodType,
		Volume:        f.fields.Volume,
		Notes:         f.fields.Notes,
	}
	f.state = StateSubmitting
	gen := f.generation
	f.mu.Unlock()

	var err error
	if isUpdate {
		_, err = f.deps.Gateway.UpdateDonationDetail(ctx, appt.ID, req)
	} else {
		_, err = f.deps.Gateway.CreateDonationDetail(ctx, req)
	}

	if err != nil {
		f.mu.Lock()
		if gen == f.generation && f.state == StateSubmitting {
			f.state = StateEditable
		}
		f.mu.Unlock()

		f.deps.Logger.Warn("saving donation detail failed",
			zap.String("appointment_id", appt.ID),
			zap.Bool("update", isUpdate),
			zap.Error(err),
		)
		f.deps.Notifier.Error(pick(isUpdate, f.deps.Messages.DonationUpdateFailed, f.deps.Messages.DonationCreateFailed))
		return err
	}

	if err := f.list.setStatus(ctx, appt.ID, domain.StatusFulfilled); err != nil {
		f.deps.Logger.Warn("marking appointment fulfilled failed", zap.String("appointment_id", appt.ID), zap.Error(err))
	}

	f.mu.Lock()
	if gen == f.generation {
		f.resetLocked()
	}
	f.mu.Unlock()

	f.deps.Notifier.Success(pick(isUpdate, f.deps.Messages.DonationUpdated, f.deps.Messages.DonationCreated))
	return nil
}

func (f *DonationForm) Snapshot() FormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := FormSnapshot{
		State:       f.state,
		Appointment: f.appointment,
		Fields:      f.fields,
		Errors:      f.errors,
		ReadOnly:    f.state == StateReadOnly,
	}
	if appt, ok := SelectedAppointment(f.appointment); ok {
		fulfilled := appt.Status == domain.StatusFulfilled
		open := f.state == StateEditable || f.state == StateReadOnly
		snap.Title = DonationTitle(appt, *f.deps.Messages)
		snap.EditMode = fulfilled && f.state == StateEditable
		snap.CanToggleEdit = fulfilled && open
	}
	snap.CanSave = f.state == StateEditable
	return snap
}
