// Package modal models the review-flow dialogs as one finite state
// machine per session. A single active-modal variant replaces the
// original sibling boolean flags, so two dialogs can never be open at
// the same time.
package modal

import (
	"net/http"
	"sync"

	"leavedesk/internal/shared/apperror"
)

type State string

const (
	StateClosed       State = "closed"
	StateApply        State = "apply"
	StateDetails      State = "details"
	StateRejection    State = "rejection"
	StateCancellation State = "cancellation"
)

var (
	ErrAlreadyOpen = apperror.New(
		apperror.CodeInvalidState,
		"another dialog is already open",
		http.StatusConflict,
	)
	ErrNotOpen = apperror.New(
		apperror.CodeInvalidState,
		"no dialog is open",
		http.StatusConflict,
	)
	ErrWrongSubject = apperror.New(
		apperror.CodeInvalidState,
		"the open dialog refers to a different request",
		http.StatusConflict,
	)
	ErrSubmitting = apperror.New(
		apperror.CodeInvalidState,
		"a submission is already in flight",
		http.StatusConflict,
	)
)

// Machine holds the dialog state for one session. subject is the leave
// or cancellation id the dialog is about (zero for the apply form).
type Machine struct {
	mu         sync.Mutex
	state      State
	subject    int
	submitting bool
	message    string
}

func NewMachine() *Machine {
	return &Machine{state: StateClosed}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Subject() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subject
}

// Message is the last submit failure surfaced to the reopened form.
func (m *Machine) Message() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.message
}

func (m *Machine) open(s State, subject int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitting {
		return ErrSubmitting
	}
	if m.state != StateClosed {
		return ErrAlreadyOpen
	}
	m.state = s
	m.subject = subject
	m.message = ""
	return nil
}

func (m *Machine) OpenApply() error {
	return m.open(StateApply, 0)
}

func (m *Machine) OpenDetails(leaveID int) error {
	return m.open(StateDetails, leaveID)
}

func (m *Machine) OpenCancellation(leaveID int) error {
	return m.open(StateCancellation, leaveID)
}

// OpenRejection is the sequential hand-off: it is only reachable from
// the details dialog of the same request, which it closes first.
func (m *Machine) OpenRejection(leaveID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitting {
		return ErrSubmitting
	}
	if m.state != StateDetails {
		return ErrNotOpen
	}
	if m.subject != leaveID {
		return ErrWrongSubject
	}
	m.state = StateRejection
	m.message = ""
	return nil
}

func (m *Machine) BeginSubmit() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateClosed {
		return ErrNotOpen
	}
	if m.submitting {
		return ErrSubmitting
	}
	m.submitting = true
	return nil
}

// FinishSubmit resolves an in-flight submission. Success closes the
// dialog; failure re-enables the form and keeps the server message for
// display (or the generic fallback when there is none).
func (m *Machine) FinishSubmit(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitting = false
	if err == nil {
		m.state = StateClosed
		m.subject = 0
		m.message = ""
		return
	}
	m.message = err.Error()
	if m.message == "" {
		m.message = "Something went wrong, please try again"
	}
}

func (m *Machine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitting {
		return ErrSubmitting
	}
	m.state = StateClosed
	m.subject = 0
	m.message = ""
	return nil
}

// Registry maps session ids to their machines.
type Registry struct {
	mu       sync.Mutex
	machines map[string]*Machine
}

func NewRegistry() *Registry {
	return &Registry{machines: make(map[string]*Machine)}
}

func (r *Registry) For(sid string) *Machine {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.machines[sid]
	if !ok {
		m = NewMachine()
		r.machines[sid] = m
	}
	return m
}

// Drop forgets a session's machine, typically on logout.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.machines, sid)
}
