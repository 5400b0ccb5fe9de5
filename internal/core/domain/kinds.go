package domain

// InstanceState is the closed set of EC2 instance lifecycle states.
type InstanceState int

const (
	InstanceStateUnknown InstanceState = iota
	InstanceStatePending
	InstanceStateRunning
	InstanceStateShuttingDown
	InstanceStateTerminated
	InstanceStateStopping
	InstanceStateStopped
)

// providerStateNames holds the wire names the provider uses for each state.
var providerStateNames = map[string]InstanceState{
	"pending":       InstanceStatePending,
	"running":       InstanceStateRunning,
	"shutting-down": InstanceStateShuttingDown,
	"terminated":    InstanceStateTerminated,
	"stopping":      InstanceStateStopping,
	"stopped":       InstanceStateStopped,
}

var stateDisplayNames = map[InstanceState]string{
	InstanceStateUnknown:      "UNKNOWN",
	InstanceStatePending:      "PENDING",
	InstanceStateRunning:      "RUNNING",
	InstanceStateShuttingDown: "SHUTTING_DOWN",
	InstanceStateTerminated:   "TERMINATED",
	InstanceStateStopping:     "STOPPING",
	InstanceStateStopped:      "STOPPED",
}

// ParseInstanceState maps a provider state name to an InstanceState.
// Unrecognised names map to InstanceStateUnknown.
func ParseInstanceState(name string) InstanceState {
	if state, ok := providerStateNames[name]; ok {
		return state
	}
	return InstanceStateUnknown
}

func (s InstanceState) String() string {
	if name, ok := stateDisplayNames[s]; ok {
		return name
	}
	return stateDisplayNames[InstanceStateUnknown]
}

// IsActive reports whether the instance is running or on its way there.
func (s InstanceState) IsActive() bool {
	return s == InstanceStatePending || s == InstanceStateRunning
}

// IsHalted reports whether the instance is stopped or on its way there.
func (s InstanceState) IsHalted() bool {
	return s == InstanceStateStopping || s == InstanceStateStopped
}

func (s InstanceState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
