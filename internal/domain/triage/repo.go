package triage

import "context"

// SessionRepository persists triage sessions as append-only history.
type SessionRepository interface {
	// Save appends the session and returns its generated session identifier.
	Save(ctx context.Context, s *Session) (string, error)
	List(ctx context.Context, limit, offset int) ([]*Session, int, error)
	ListByPhone(ctx context.Context, phone string, limit, offset int) ([]*Session, int, error)
}
