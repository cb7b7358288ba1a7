package reminder

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no reminder exists for the given id.
var ErrNotFound = errors.New("reminder not found")

// Repository persists medication reminder schedules.
type Repository interface {
	Create(ctx context.Context, r *Reminder) error
	Get(ctx context.Context, id string) (*Reminder, error)
	Update(ctx context.Context, r *Reminder) error
	ListByPhone(ctx context.Context, phone string) ([]*Reminder, error)
}
