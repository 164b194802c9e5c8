package monitor

import "time"

// State represents the current Monitor mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StateWarning State = "warning"
)

// EventType defines the type of Monitor event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventAccumulated EventType = "accumulated"
	EventWarning     EventType = "warning"
)

// Event represents a Monitor update for observers.
type Event struct {
	Type          EventType
	State         State
	SessionID     string
	CumulativeKJ  float64
	ThresholdKJ   float64
	AverageBPM    float64
	RateKJPerHour float64
	Message       string
	At            time.Time
}

// Status is a point-in-time snapshot of the Monitor.
type Status struct {
	State        State
	SessionID    string
	CumulativeKJ float64
	ThresholdKJ  float64
	BudgetBTU    float64
	Samples      int
	Ticking      bool
}
