package view

// State is the render state of a list.
type State int

const (
	// StateLoading means data has not arrived yet.
	StateLoading State = iota

	// StateReady means Items holds at least one entry.
	StateReady

	// StateEmpty means the data arrived and nothing matched.
	StateEmpty

	// StateFailed means loading failed; Message explains it.
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// List is a render-ready collection with an explicit state.
//
// The empty state carries its own message and is never confused with
// loading or failure.
type List[T any] struct {
	Items   []T    `json:"items"`
	State   State  `json:"-"`
	Message string `json:"message,omitempty"`
}

// Loading returns a list that is still loading.
func Loading[T any]() List[T] {
	return List[T]{Items: []T{}, State: StateLoading}
}

// Ready returns a ready list, or an empty one carrying emptyMessage.
func Ready[T any](items []T, emptyMessage string) List[T] {
	if len(items) == 0 {
		return List[T]{Items: []T{}, State: StateEmpty, Message: emptyMessage}
	}
	return List[T]{Items: items, State: StateReady}
}

// Failed returns a failed list carrying message.
func Failed[T any](message string) List[T] {
	return List[T]{Items: []T{}, State: StateFailed, Message: message}
}

// Len returns the number of items.
func (l List[T]) Len() int {
	return len(l.Items)
}
