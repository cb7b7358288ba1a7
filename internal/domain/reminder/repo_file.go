package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const scheduleFileName = "medication_schedules.json"

// FileRepo stores reminder schedules in a JSON file under the data directory.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileRepo{path: filepath.Join(dataDir, scheduleFileName)}, nil
}

func (r *FileRepo) Create(_ context.Context, rem *Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedules, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(schedules, rem))
}

func (r *FileRepo) Get(_ context.Context, id string) (*Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedules, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rem := range schedules {
		if rem.ID == id {
			return rem, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileRepo) Update(_ context.Context, rem *Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedules, err := r.load()
	if err != nil {
		return err
	}
	for i, existing := range schedules {
		if existing.ID == rem.ID {
			schedules[i] = rem
			return r.save(schedules)
		}
	}
	return ErrNotFound
}

func (r *FileRepo) ListByPhone(_ context.Context, phone string) ([]*Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedules, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*Reminder, 0)
	for _, rem := range schedules {
		if rem.UserPhone == phone {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *FileRepo) load() ([]*Reminder, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read schedules: %w", err)
	}
	var schedules []*Reminder
	if err := json.Unmarshal(data, &schedules); err != nil {
		return nil, fmt.Errorf("parse schedules: %w", err)
	}
	return schedules, nil
}

func (r *FileRepo) save(schedules []*Reminder) error {
	data, err := json.MarshalIndent(schedules, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedules: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write schedules: %w", err)
	}
	return nil
}
