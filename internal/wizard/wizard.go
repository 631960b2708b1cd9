// Package wizard implements the multi-step booking flow layered on the state
// store: per-step validation, back/forward navigation, draft persistence
// across steps, and slot-conflict checks before a booking is committed.
package wizard

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/onlypets/go-petstore-api/internal/model"
	"github.com/onlypets/go-petstore-api/internal/store"
)

type Kind string

const (
	KindAdoption Kind = "adoption"
	KindService  Kind = "service"
)

type Step string

const (
	StepPersonalInfo      Step = "personal_info"
	StepAdoptionSurvey    Step = "adoption_survey"
	StepReviewApplication Step = "review_application"
	StepSchedule          Step = "schedule"
	StepBookingDetails    Step = "booking_details"
	StepReviewConfirm     Step = "review_and_confirm"
	StepConfirmation      Step = "confirmation"
)

var (
	adoptionSteps = []Step{StepPersonalInfo, StepAdoptionSurvey, StepReviewApplication, StepConfirmation}
	serviceSteps  = []Step{StepPersonalInfo, StepSchedule, StepBookingDetails, StepReviewConfirm, StepConfirmation}
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrNoSchedule   = errors.New("adoption flow has no schedule")
	ErrPastDate     = errors.New("date is in the past")
	ErrSlotTaken    = errors.New("time slot is already booked")
	ErrFinished     = errors.New("wizard already completed")
)

// Draft is the in-progress, not-yet-committed field values accumulated across
// steps.
type Draft struct {
	Name  string
	Email string
	Phone string

	AdoptionReason  string
	HomeEnvironment string

	AppointmentDate string
	AppointmentTime model.TimeSlot

	PetName      string
	PetBreed     string
	SpecialNotes string
}

// Fields carries the values the presentation layer has staged for the current
// step. Next and Back persist the relevant subset into the draft.
type Fields struct {
	Name  string
	Email string
	Phone string

	AdoptionReason  string
	HomeEnvironment string

	PetName      string
	PetBreed     string
	SpecialNotes string
}

type Wizard struct {
	st    *store.Store
	kind  Kind
	steps []Step
	idx   int
	now   func() time.Time

	itemID   string
	itemName string

	draft     Draft
	pending   Fields
	calendar  time.Time // first day of the displayed month
	committed bool
}

// New builds a wizard for the given catalog item: a pet for adoption flows, a
// service for booking flows.
func New(st *store.Store, kind Kind, itemID string) (*Wizard, error) {
	w := &Wizard{st: st, kind: kind, itemID: itemID, now: time.Now}

	switch kind {
	case KindAdoption:
		pet, ok := st.PetByID(itemID)
		if !ok {
			return nil, ErrItemNotFound
		}
		w.itemName = pet.Name
		w.steps = adoptionSteps
	case KindService:
		svc, ok := st.ServiceByID(itemID)
		if !ok {
			return nil, ErrItemNotFound
		}
		w.itemName = svc.Name
		w.steps = serviceSteps
	default:
		return nil, ErrItemNotFound
	}

	now := w.now()
	w.calendar = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return w, nil
}

func (w *Wizard) Kind() Kind        { return w.kind }
func (w *Wizard) ItemID() string    { return w.itemID }
func (w *Wizard) ItemName() string  { return w.itemName }
func (w *Wizard) Steps() []Step     { return w.steps }
func (w *Wizard) StepIndex() int    { return w.idx }
func (w *Wizard) CurrentStep() Step { return w.steps[w.idx] }
func (w *Wizard) Draft() Draft      { return w.draft }
func (w *Wizard) Completed() bool   { return w.CurrentStep() == StepConfirmation }

// Apply stages field values for the current step. They are persisted into the
// draft on the next navigation, like form entries read out on submit.
func (w *Wizard) Apply(f Fields) { w.pending = f }

// Next persists the staged fields, validates the step being left, and
// advances. On the transition into the terminal confirmation step the wizard
// commits its domain effects exactly once: a service flow constructs and
// submits a Booking and raises a success toast, an adoption flow raises the
// application-received toast only.
func (w *Wizard) Next() error {
	if w.Completed() {
		return ErrFinished
	}

	w.persistStep()

	if err := w.validateStep(); err != nil {
		w.st.AddToast(err.Error(), model.ToastError)
		return err
	}

	if w.idx == len(w.steps)-2 {
		if err := w.commit(); err != nil {
			w.st.AddToast(err.Error(), model.ToastError)
			return err
		}
	}

	w.idx++
	return nil
}

// Back persists the staged fields without validating and steps back, never
// below the first step. The confirmation step is terminal; there is no
// regression from it.
func (w *Wizard) Back() {
	if w.Completed() {
		return
	}
	w.persistStep()
	if w.idx > 0 {
		w.idx--
	}
}

// persistStep copies the staged values belonging to the current step into the
// draft.
func (w *Wizard) persistStep() {
	switch w.CurrentStep() {
	case StepPersonalInfo:
		w.draft.Name = strings.TrimSpace(w.pending.Name)
		w.draft.Email = strings.TrimSpace(w.pending.Email)
		w.draft.Phone = strings.TrimSpace(w.pending.Phone)
	case StepAdoptionSurvey:
		w.draft.AdoptionReason = strings.TrimSpace(w.pending.AdoptionReason)
		w.draft.HomeEnvironment = strings.TrimSpace(w.pending.HomeEnvironment)
	case StepBookingDetails:
		w.draft.PetName = strings.TrimSpace(w.pending.PetName)
		w.draft.PetBreed = strings.TrimSpace(w.pending.PetBreed)
		w.draft.SpecialNotes = strings.TrimSpace(w.pending.SpecialNotes)
	}
}

func (w *Wizard) commit() error {
	if w.committed {
		return nil
	}

	if w.kind == KindService {
		// Defensive re-check: the slot may have been taken since it was
		// selected.
		if w.st.IsSlotBooked(w.itemID, w.draft.AppointmentDate, w.draft.AppointmentTime) {
			return &ValidationError{Message: "This time slot is no longer available. Please select a different time."}
		}

		userID := ""
		if user := w.st.CurrentUser(); user != nil {
			userID = user.ID
		}
		w.st.AddBooking(model.Booking{
			ID:        strconv.FormatInt(w.now().Unix(), 10),
			ServiceID: w.itemID,
			Date:      w.draft.AppointmentDate,
			TimeSlot:  w.draft.AppointmentTime,
			UserID:    userID,
			Status:    model.BookingConfirmed,
		})
		w.st.AddToast("Service booking confirmed! Your "+w.itemName+" appointment is scheduled.", model.ToastSuccess)
	} else {
		// Adoption applications are not persisted as records; the toast is
		// the whole committed effect.
		w.st.AddToast("Adoption application submitted! We'll contact you about "+w.itemName+" soon.", model.ToastSuccess)
	}

	w.committed = true
	return nil
}

// --- calendar ---

const dateLayout = "2006-01-02"

// Month reports the first day of the month the calendar currently offers.
func (w *Wizard) Month() time.Time { return w.calendar }

func (w *Wizard) PrevMonth() {
	w.calendar = w.calendar.AddDate(0, -1, 0)
}

func (w *Wizard) NextMonth() {
	w.calendar = w.calendar.AddDate(0, 1, 0)
}

// Day is one offered calendar day; days before today are not selectable.
type Day struct {
	Date       string
	Selectable bool
}

func (w *Wizard) Days() []Day {
	today := w.today()
	days := make([]Day, 0, 31)
	for d := w.calendar; d.Month() == w.calendar.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:       d.Format(dateLayout),
			Selectable: !d.Before(today),
		})
	}
	return days
}

// SelectDate picks an appointment date and clears any previously selected
// time slot.
func (w *Wizard) SelectDate(date string) error {
	if w.kind != KindService {
		return ErrNoSchedule
	}
	d, err := time.ParseInLocation(dateLayout, date, w.now().Location())
	if err != nil {
		return &ValidationError{Message: "Please select a valid appointment date."}
	}
	if d.Before(w.today()) {
		return ErrPastDate
	}
	w.draft.AppointmentDate = date
	w.draft.AppointmentTime = ""
	return nil
}

// SelectSlot picks a time slot for the selected date. Slots already booked for
// this service and date are rejected.
func (w *Wizard) SelectSlot(slot model.TimeSlot) error {
	if w.kind != KindService {
		return ErrNoSchedule
	}
	if w.draft.AppointmentDate == "" {
		return &ValidationError{Message: "Please select an appointment date."}
	}
	if w.st.IsSlotBooked(w.itemID, w.draft.AppointmentDate, slot) {
		return ErrSlotTaken
	}
	w.draft.AppointmentTime = slot
	return nil
}

func (w *Wizard) today() time.Time {
	now := w.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
