package reminder

import "time"

// Frequency is how often a dose is taken.
type Frequency string

const (
	OnceDaily   Frequency = "once_daily"
	TwiceDaily  Frequency = "twice_daily"
	ThriceDaily Frequency = "thrice_daily"
	Weekly      Frequency = "weekly"
)

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	switch f {
	case OnceDaily, TwiceDaily, ThriceDaily, Weekly:
		return true
	}
	return false
}

// Interval returns the time between doses.
func (f Frequency) Interval() time.Duration {
	switch f {
	case TwiceDaily:
		return 12 * time.Hour
	case ThriceDaily:
		return 8 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Reminder is a medication reminder schedule for one user.
type Reminder struct {
	ID            string    `json:"id"`
	UserPhone     string    `json:"user_phone"`
	Medicine      string    `json:"medicine_name"`
	Dosage        string    `json:"dosage"`
	Frequency     Frequency `json:"frequency"`
	Active        bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	NextReminder  time.Time `json:"next_reminder"`
	CompletedDose int       `json:"completed_doses"`
	MissedDose    int       `json:"missed_doses"`
}
