// Package reminder manages medication reminder schedules created from triage
// follow-ups.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates and stores a new reminder schedule. The first reminder is
// one dose interval from now.
func (s *Service) Create(ctx context.Context, r *Reminder) error {
	if r.UserPhone == "" {
		return fmt.Errorf("user_phone is required")
	}
	if r.Medicine == "" {
		return fmt.Errorf("medicine_name is required")
	}
	if r.Frequency == "" {
		r.Frequency = OnceDaily
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("invalid frequency: %s (supported: once_daily, twice_daily, thrice_daily, weekly)", r.Frequency)
	}

	now := s.now().UTC()
	r.ID = uuid.NewString()
	r.Active = true
	r.CreatedAt = now
	r.NextReminder = now.Add(r.Frequency.Interval())

	return s.repo.Create(ctx, r)
}

// RecordDose marks the current dose as taken or missed, updates the dose
// counters, and advances the next-reminder time by one interval.
func (s *Service) RecordDose(ctx context.Context, id string, taken bool) (*Reminder, error) {
	if id == "" {
		return nil, fmt.Errorf("reminder id is required")
	}
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.Active {
		return nil, fmt.Errorf("reminder %s is not active", id)
	}

	if taken {
		r.CompletedDose++
	} else {
		r.MissedDose++
	}
	r.NextReminder = s.now().UTC().Add(r.Frequency.Interval())

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListByPhone returns a user's reminder schedules.
func (s *Service) ListByPhone(ctx context.Context, phone string) ([]*Reminder, error) {
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	return s.repo.ListByPhone(ctx, phone)
}
