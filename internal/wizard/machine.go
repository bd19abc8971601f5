package wizard

import "errors"

var (
	// ErrBusy is returned while an async action is still running
	ErrBusy = errors.New("wizard is busy")
	// ErrAtEnd is returned when advancing past the last step
	ErrAtEnd = errors.New("already at the last step")
	// ErrAtStart is returned when going back from the first step
	ErrAtStart = errors.New("already at the first step")
	// ErrBlocked is returned when the current step's guard fails
	ErrBlocked = errors.New("current step is not complete")
)

// Guard decides whether the machine may leave the named step.
type Guard func(step string) bool

// Machine is a linear stepper with guarded forward transitions and free
// back-navigation. Not safe for concurrent use; each client session owns
// its own machine.
type Machine struct {
	steps []string
	pos   int
	guard Guard
	busy  bool
	done  bool
}

func NewMachine(steps []string, guard Guard) *Machine {
	if guard == nil {
		guard = func(string) bool { return true }
	}
	return &Machine{steps: steps, guard: guard}
}

// Current returns the active step name.
func (m *Machine) Current() string { return m.steps[m.pos] }

// Done reports whether the machine has finished the last step.
func (m *Machine) Done() bool { return m.done }

// Busy reports whether an async action is in flight.
func (m *Machine) Busy() bool { return m.busy }

// Begin marks an async action started. A second Begin before End fails.
func (m *Machine) Begin() error {
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	return nil
}

// End marks the in-flight action finished.
func (m *Machine) End() { m.busy = false }

// Next advances one step when the guard allows leaving the current one.
// Advancing from the last step marks the machine done.
func (m *Machine) Next() error {
	if m.busy {
		return ErrBusy
	}
	if m.done {
		return ErrAtEnd
	}
	if !m.guard(m.Current()) {
		return ErrBlocked
	}
	if m.pos == len(m.steps)-1 {
		m.done = true
		return nil
	}
	m.pos++
	return nil
}

// Back returns to the previous step. No guard applies; completed input is
// kept by the caller.
func (m *Machine) Back() error {
	if m.busy {
		return ErrBusy
	}
	if m.done {
		m.done = false
		return nil
	}
	if m.pos == 0 {
		return ErrAtStart
	}
	m.pos--
	return nil
}

// Reset returns to the first step.
func (m *Machine) Reset() {
	m.pos = 0
	m.busy = false
	m.done = false
}

// Steps returns the ordered step names.
func (m *Machine) Steps() []string {
	out := make([]string, len(m.steps))
	copy(out, m.steps)
	return out
}
