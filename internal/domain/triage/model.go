package triage

import (
	"time"

	"github.com/swasthya/triage/internal/platform/geo"
)

// Severity is the three-tier triage classification.
type Severity string

const (
	SeverityEmergency Severity = "Emergency"
	SeverityOPDVisit  Severity = "OPD Visit"
	SeveritySelfCare  Severity = "Self-care"

	// SeverityUnknown is used only for the generic analysis-failed response;
	// the classifier itself never emits it.
	SeverityUnknown Severity = "Unknown"
)

// Valid reports whether s is one of the three classifier tiers.
func (s Severity) Valid() bool {
	switch s {
	case SeverityEmergency, SeverityOPDVisit, SeveritySelfCare:
		return true
	}
	return false
}

// Result is the classifier output: a severity tier plus free-text advice and
// reasoning. The severity is always one of the three tiers; out-of-enum
// values from the model are replaced by the fallback.
type Result struct {
	Severity  Severity `json:"severity"`
	Advice    string   `json:"advice"`
	Reasoning string   `json:"reasoning"`
}

// UserData is caller-supplied metadata recorded with a session.
type UserData struct {
	Phone        string          `json:"phone,omitempty"`
	Location     *geo.Coordinate `json:"location,omitempty"`
	AyushmanCard bool            `json:"ayushman_card"`
}

// Session is one completed triage request. Sessions are append-only history,
// never mutated after creation.
type Session struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	UserData  UserData  `json:"user_data"`
	Symptoms  string    `json:"symptoms"`
	Result    Result    `json:"triage_result"`
}
