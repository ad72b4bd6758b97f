package contact

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
)

var (
	// ErrInvalid is returned by Submit when at least one field is invalid.
	ErrInvalid = errors.New("contact form has invalid fields")
	// ErrSubmitting is returned while a previous submission is in flight.
	ErrSubmitting = errors.New("contact form is already submitting")
	// ErrUnknownField is returned by Set for names outside Fields.
	ErrUnknownField = errors.New("unknown contact form field")
)

// Form is the state behind the contact section: the three fields, the
// errors of the last submit attempt and the submitting flag.
type Form struct {
	mu         sync.Mutex
	values     Values
	errors     Errors
	submitting bool
	submitter  Submitter
}

// NewForm creates an empty form that hands valid messages to s.
func NewForm(s Submitter) *Form {
	return &Form{submitter: s, errors: Errors{}}
}

// Set edits one field. Editing a field clears its error and only its error.
// Fields are locked while a submission is in flight.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.submitting {
		return ErrSubmitting
	}
	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	delete(f.errors, field)
	return nil
}

// Fill sets every field at once, as a posted form does.
func (f *Form) Fill(v Values) error {
	for _, field := range Fields {
		if err := f.Set(field, v.Get(field)); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the current field contents.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.errors)
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the form. Invalid forms keep their values, record the
// field errors and return ErrInvalid. Valid forms are handed to the
// submitter; on success every field is cleared.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}
	if errs := Validate(f.values); len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()
		return ErrInvalid
	}
	f.errors = Errors{}
	f.submitting = true
	values := f.values
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		return fmt.Errorf("submit contact message: %w", err)
	}
	f.values = Values{}
	return nil
}
