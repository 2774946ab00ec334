package model

import "sort"

// ShutterState is the configured state of one shutter position.
type ShutterState int

const (
	StateInactive ShutterState = iota
	StateOpen
	StateClosed
	StateStuckOpen
)

// ParseShutterState maps a configuration grid code onto a state.
func ParseShutterState(code string) (ShutterState, bool) {
	switch code {
	case "x":
		return StateInactive, true
	case "0":
		return StateOpen, true
	case "1":
		return StateClosed, true
	case "s":
		return StateStuckOpen, true
	default:
		return StateInactive, false
	}
}

// Code returns the configuration grid code for the state.
func (s ShutterState) Code() string {
	switch s {
	case StateOpen:
		return "0"
	case StateClosed:
		return "1"
	case StateStuckOpen:
		return "s"
	default:
		return "x"
	}
}

func (s ShutterState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateStuckOpen:
		return "stuck-open"
	default:
		return "inactive"
	}
}

// IsOpen reports whether light passes the shutter (open or stuck open).
func (s ShutterState) IsOpen() bool {
	return s == StateOpen || s == StateStuckOpen
}

// ShutterMap holds the state of every shutter, keyed by grid coordinates.
type ShutterMap map[QIJ]ShutterState

// OpenShutters holds only open shutters; the value reports whether the
// shutter is stuck open rather than deliberately opened.
type OpenShutters map[QIJ]bool

// Open derives the open-shutter map.
func (m ShutterMap) Open() OpenShutters {
	out := make(OpenShutters)
	for g, st := range m {
		if st.IsOpen() {
			out[g] = st == StateStuckOpen
		}
	}
	return out
}

// Sorted returns the keys of m in quadrant, column, row order.
func (m OpenShutters) Sorted() []QIJ {
	keys := make([]QIJ, 0, len(m))
	for g := range m {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].Less(keys[b]) })
	return keys
}

// Stuck counts stuck-open shutters.
func (m OpenShutters) Stuck() int {
	n := 0
	for _, stuck := range m {
		if stuck {
			n++
		}
	}
	return n
}
