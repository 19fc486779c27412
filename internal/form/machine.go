package form

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	// ErrInvalid is returned by Submit when validation fails; the machine
	// stays idle.
	ErrInvalid = errors.New("form: validation failed")
	// ErrBusy is returned by Submit while a submission is in flight or
	// after a successful one that has not been Reset.
	ErrBusy = errors.New("form: not accepting submissions")
)

// FailureMessage is shown in the contact banner when the Submitter fails.
const FailureMessage = "Something went wrong sending your message. Please try again."

type State int

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

func (s State) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "error"
	}
	return "idle"
}

// Machine is the state of one form: idle -> submitting -> success | error,
// with error returning to idle on the next edit. It is safe for concurrent
// use.
type Machine struct {
	fields   []Field
	validate func(Field, string) string
	failure  string

	mu        sync.Mutex
	state     State
	values    map[string]string
	errs      map[string]string
	touched   map[string]bool
	submitErr error
}

func NewMachine(fields []Field) *Machine {
	return newMachine(fields, ValidateField, FailureMessage)
}

func newMachine(fields []Field, validate func(Field, string) string, failure string) *Machine {
	return &Machine{
		fields:   fields,
		validate: validate,
		failure:  failure,
		values:   make(map[string]string, len(fields)),
		errs:     make(map[string]string),
		touched:  make(map[string]bool),
	}
}

func (m *Machine) field(id string) (Field, bool) {
	for _, f := range m.fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

func (m *Machine) Fields() []Field { return m.fields }

// Set records an edit. Ids outside the schema are ignored. Editing after a
// failed submission makes the form idle again, and a touched field is
// revalidated so its error clears as soon as it becomes valid.
func (m *Machine) Set(id, value string) {
	f, ok := m.field(id)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Submitting {
		return
	}
	if m.state == Failed {
		m.state = Idle
	}
	m.values[id] = value
	if m.touched[id] {
		m.setErrLocked(f)
	}
}

// Fill sets every schema field from values, as a full form post does.
func (m *Machine) Fill(values map[string]string) {
	for _, f := range m.fields {
		m.Set(f.ID, values[f.ID])
	}
}

// Blur marks a field touched and validates it.
func (m *Machine) Blur(id string) {
	f, ok := m.field(id)
	if !ok {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched[id] = true
	m.setErrLocked(f)
}

func (m *Machine) setErrLocked(f Field) bool {
	if msg := m.validate(f, m.values[f.ID]); msg != "" {
		m.errs[f.ID] = msg
		return false
	}
	delete(m.errs, f.ID)
	return true
}

// ValidateForm validates every field, marks all of them touched and reports
// whether the whole form is valid.
func (m *Machine) ValidateForm() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validateLocked()
}

func (m *Machine) validateLocked() bool {
	valid := true
	for _, f := range m.fields {
		m.touched[f.ID] = true
		if !m.setErrLocked(f) {
			valid = false
		}
	}
	return valid
}

// Submit validates the form and, when valid, hands a copy of the values to s.
//
// The returned error covers only refusals: ErrInvalid or ErrBusy. A failure
// from s is not returned; it moves the machine to the error state with every
// value kept, and is available from SubmitErr.
func (m *Machine) Submit(ctx context.Context, s Submitter) error {
	m.mu.Lock()
	if m.state == Submitting || m.state == Success {
		m.mu.Unlock()
		return ErrBusy
	}
	if !m.validateLocked() {
		m.state = Idle
		m.mu.Unlock()
		return ErrInvalid
	}
	m.state = Submitting
	m.submitErr = nil
	data := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		data[f.ID] = strings.TrimSpace(m.values[f.ID])
	}
	m.mu.Unlock()

	err := s.Submit(ctx, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = Failed
		m.submitErr = err
		return nil
	}
	m.state = Success
	m.clearLocked()
	return nil
}

// Reset returns the form to an empty idle state, e.g. "send another
// message". It does nothing while a submission is in flight.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Submitting {
		return
	}
	m.state = Idle
	m.submitErr = nil
	m.clearLocked()
}

func (m *Machine) clearLocked() {
	m.values = make(map[string]string, len(m.fields))
	m.errs = make(map[string]string)
	m.touched = make(map[string]bool)
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Value(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[id]
}

// Values returns a copy of every value.
func (m *Machine) Values() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

func (m *Machine) Touched(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.touched[id]
}

// FieldError is the message to display for id: empty unless the field is
// touched and invalid.
func (m *Machine) FieldError(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.touched[id] {
		return ""
	}
	return m.errs[id]
}

// Errors returns a copy of the current error map.
func (m *Machine) Errors() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.errs))
	for k, v := range m.errs {
		out[k] = v
	}
	return out
}

// SubmitErr is the Submitter failure behind the error state, if any.
func (m *Machine) SubmitErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitErr
}

// Banner is the form-level message for the current state.
func (m *Machine) Banner() string {
	if m.State() == Failed {
		return m.failure
	}
	return ""
}
