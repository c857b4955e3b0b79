package locked

// Mode is the way an operation acquires the container lock
type Mode uint8

const (
	// ModeShared is taken by operations which only observe the container.
	// Any number of shared holders may run together.
	ModeShared Mode = iota
	// ModeExclusive is taken by operations which may change the container
	// or hand out mutable access to it.
	ModeExclusive
)

func (m Mode) String() string {
	switch m {
	case ModeShared:
		return "shared"
	case ModeExclusive:
		return "exclusive"
	default:
		return "unknown"
	}
}
