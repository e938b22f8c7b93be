package status

import (
	"time"
)

// State is the display state of one status reporter activation.
type State string

const (
	// StateChecking is the initial state while the query is in flight
	StateChecking State = "checking"

	// StateOnline means the backend answered with a success status
	StateOnline State = "online"

	// StateDegraded means the backend answered with a non-success status
	StateDegraded State = "degraded"

	// StateUnavailable means the backend could not be reached or answered garbage
	StateUnavailable State = "unavailable"
)

// Terminal reports whether s ends an activation.
func (s State) Terminal() bool {
	return s == StateOnline || s == StateDegraded || s == StateUnavailable
}

// Display texts shown in the status panel.
const (
	TextChecking     = "Verificando..."
	TextOnlinePrefix = "✅ API Online - "
	TextDegraded     = "❌ API com problemas"
	TextUnavailable  = "❌ API não disponível"
)

// Defaults applied by NewReporter.
const (
	// DefaultAPIURL is queried when Config.APIURL is empty
	DefaultAPIURL = "http://localhost:8000"

	// DefaultTimeout bounds the single outbound query
	DefaultTimeout = 10 * time.Second

	// HealthPath is appended to the base address
	HealthPath = "/health"
)

// Report is the outcome of one activation.
type Report struct {
	// State is the current display state
	State State `json:"state"`

	// Text is the human-readable display string for State
	Text string `json:"text"`

	// Message is the backend's health message (online only)
	Message string `json:"message,omitempty"`

	// Environment is the backend's deployment label (online only)
	Environment string `json:"environment,omitempty"`

	// Target is the URL that was queried
	Target string `json:"target"`

	// CheckedAt is when the activation reached a terminal state
	CheckedAt time.Time `json:"checked_at"`

	// Error carries the failure detail for degraded and unavailable reports
	Error string `json:"error,omitempty"`
}

// Config holds the status reporter settings.
type Config struct {
	// APIURL is the backend base address; "<APIURL>/health" is queried
	APIURL string

	// Timeout bounds the outbound query
	Timeout time.Duration

	// UserAgent is sent with the query when set
	UserAgent string
}

// Recorder receives one call per completed activation.
type Recorder interface {
	RecordStatusCheck(state string)
}
