package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const historyFileName = "triage_history.json"

// FileSessionRepo stores sessions in a single JSON file under the data
// directory. Writes are serialized with a mutex; the file is rewritten whole
// on each save, which is fine for the expected session volume.
type FileSessionRepo struct {
	mu   sync.Mutex
	path string
}

// NewFileSessionRepo creates the data directory if needed and returns a repo
// backed by triage_history.json inside it.
func NewFileSessionRepo(dataDir string) (*FileSessionRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileSessionRepo{path: filepath.Join(dataDir, historyFileName)}, nil
}

// Save assigns a collision-resistant session id and timestamp, then appends
// the session to the history file.
func (r *FileSessionRepo) Save(_ context.Context, s *Session) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.SessionID = uuid.NewString()
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now().UTC()
	}

	history, err := r.load()
	if err != nil {
		return "", err
	}
	history = append(history, s)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal history: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return "", fmt.Errorf("write history: %w", err)
	}
	return s.SessionID, nil
}

// List returns sessions newest first.
func (r *FileSessionRepo) List(_ context.Context, limit, offset int) ([]*Session, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := r.load()
	if err != nil {
		return nil, 0, err
	}
	return page(reverse(history), limit, offset)
}

// ListByPhone returns sessions for a user's phone number, newest first.
func (r *FileSessionRepo) ListByPhone(_ context.Context, phone string, limit, offset int) ([]*Session, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history, err := r.load()
	if err != nil {
		return nil, 0, err
	}
	var matched []*Session
	for _, s := range history {
		if s.UserData.Phone == phone {
			matched = append(matched, s)
		}
	}
	return page(reverse(matched), limit, offset)
}

// load reads the history file. A missing file is an empty history; a corrupt
// file is an error so existing records are not silently overwritten.
func (r *FileSessionRepo) load() ([]*Session, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	var history []*Session
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}
	return history, nil
}

func reverse(in []*Session) []*Session {
	out := make([]*Session, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}

func page(all []*Session, limit, offset int) ([]*Session, int, error) {
	total := len(all)
	if offset >= total {
		return []*Session{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return all[offset:end], total, nil
}
