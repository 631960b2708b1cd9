package wizard

import "unicode/utf8"

// ValidationError carries the user-facing message raised as an error toast.
// The first failing rule wins; there is no aggregation across fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func fail(message string) error { return &ValidationError{Message: message} }

// validateStep checks the step currently being departed. Review steps carry no
// new input and always pass.
func (w *Wizard) validateStep() error {
	switch w.CurrentStep() {
	case StepPersonalInfo:
		return w.validatePersonalInfo()
	case StepAdoptionSurvey:
		return w.validateAdoptionSurvey()
	case StepSchedule:
		return w.validateSchedule()
	case StepBookingDetails:
		return w.validateBookingDetails()
	}
	return nil
}

func (w *Wizard) validatePersonalInfo() error {
	if w.draft.Name == "" {
		return fail("Please enter your full name.")
	}
	if utf8.RuneCountInString(w.draft.Name) < 2 {
		return fail("Please enter a valid full name (at least 2 characters).")
	}
	if w.draft.Email == "" {
		return fail("Please enter your email address.")
	}
	if !validEmail(w.draft.Email) {
		return fail("Please enter a valid email address.")
	}
	if w.draft.Phone == "" {
		return fail("Please enter your phone number.")
	}
	if digitCount(w.draft.Phone) < 10 {
		return fail("Please enter a valid phone number (at least 10 digits).")
	}
	return nil
}

func (w *Wizard) validateAdoptionSurvey() error {
	if w.draft.AdoptionReason == "" {
		return fail("Please tell us why you want to adopt this pet.")
	}
	if utf8.RuneCountInString(w.draft.AdoptionReason) < 20 {
		return fail("Please provide more details about your adoption reason (at least 20 characters).")
	}
	if w.draft.HomeEnvironment == "" {
		return fail("Please describe your home environment.")
	}
	if utf8.RuneCountInString(w.draft.HomeEnvironment) < 20 {
		return fail("Please provide more details about your home environment (at least 20 characters).")
	}
	return nil
}

func (w *Wizard) validateSchedule() error {
	if w.draft.AppointmentDate == "" {
		return fail("Please select an appointment date.")
	}
	if w.draft.AppointmentTime == "" {
		return fail("Please select an appointment time.")
	}
	return nil
}

func (w *Wizard) validateBookingDetails() error {
	if w.draft.PetName == "" {
		return fail("Please enter your pet's name.")
	}
	if utf8.RuneCountInString(w.draft.PetName) < 2 {
		return fail("Please enter a valid pet name (at least 2 characters).")
	}
	if w.draft.PetBreed == "" {
		return fail("Please enter your pet's breed.")
	}
	if utf8.RuneCountInString(w.draft.PetBreed) < 2 {
		return fail("Please enter a valid pet breed (at least 2 characters).")
	}
	return nil
}

// validEmail requires an "@" with a "." somewhere after it; deliberately no
// more than that.
func validEmail(email string) bool {
	at := -1
	for i, r := range email {
		if r == '@' {
			at = i
		}
	}
	if at < 0 {
		return false
	}
	for _, r := range email[at+1:] {
		if r == '.' {
			return true
		}
	}
	return false
}

func digitCount(phone string) int {
	n := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
