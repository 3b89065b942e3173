package engine

// State is the terminal state of one element's task.
type State int

const (
	// Fulfilled means the element function returned a value.
	Fulfilled State = iota
	// Rejected means the element function returned an error or panicked.
	Rejected
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome records how one element's task settled. Value is meaningful only
// when the state is Fulfilled, Err only when it is Rejected.
type Outcome[R any] struct {
	State State
	Value R
	Err   error
}

// Fulfilled reports whether the task settled with a value.
func (o Outcome[R]) Fulfilled() bool { return o.State == Fulfilled }

// Rejected reports whether the task settled with an error.
func (o Outcome[R]) Rejected() bool { return o.State == Rejected }
