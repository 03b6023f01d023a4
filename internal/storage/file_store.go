// Package storage persists the whole schedule as one JSON document on disk.
// Every mutation is a read-modify-write of the full document followed by a
// temp-file write and an atomic rename, so a crashed write can never leave
// a truncated file behind.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/EmreHacihassan/Tarih/internal/models"
)

// ErrNotFound reports a delete that targeted an id absent from the document.
var ErrNotFound = errors.New("event not found")

// FileStore is the single-writer flat-file event store. The mutex serializes
// writers within this process; cross-process locking is out of scope.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

// NewFileStore opens the store at path, creating the parent directory and an
// empty document when the file does not exist yet.
func NewFileStore(path string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	s := &FileStore{path: path, logger: logger.Named("storage")}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.write(models.State{Events: []models.Event{}}); err != nil {
			return nil, err
		}
		s.logger.Info("initialized empty schedule document", zap.String("path", path))
	} else if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}
	return s, nil
}

// Path returns the location of the backing document, for diagnostics.
func (s *FileStore) Path() string {
	return s.path
}

// List reads the whole document and returns its events.
func (s *FileStore) List() ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	return state.Events, nil
}

// Insert appends a new event built from req, assigning the id and creation
// timestamp. It returns the stored event together with the document state
// after the write.
func (s *FileStore) Insert(req models.EventRequest) (models.Event, models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return models.Event{}, models.State{}, err
	}
	event := models.Event{
		ID:        "evt_" + uuid.NewString(),
		Name:      req.Name,
		Day:       req.Day,
		Start:     req.Start,
		End:       req.End,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	state.Events = append(state.Events, event)
	if err := s.write(state); err != nil {
		return models.Event{}, models.State{}, err
	}
	s.logger.Info("event stored",
		zap.String("id", event.ID),
		zap.Int("day", event.Day),
		zap.String("start", event.Start),
		zap.String("end", event.End))
	return event, state, nil
}

// Delete removes the event with the given id. Deleting an id that is not in
// the document fails with ErrNotFound, on the second attempt as much as the
// first.
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	kept := state.Events[:0]
	for _, e := range state.Events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(state.Events) {
		return ErrNotFound
	}
	state.Events = kept
	if err := s.write(state); err != nil {
		return err
	}
	s.logger.Info("event deleted", zap.String("id", id))
	return nil
}

// load reads the current document. A missing, empty or unparseable file
// loads as the empty state so a hand-edited document cannot wedge the
// service; genuine I/O failures are returned as errors.
func (s *FileStore) load() (models.State, error) {
	empty := models.State{Events: []models.Event{}}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return empty, nil
	}
	if err != nil {
		return models.State{}, fmt.Errorf("read data file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return empty, nil
	}
	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("data file is not valid JSON, treating as empty",
			zap.String("path", s.path), zap.Error(err))
		return empty, nil
	}
	if state.Events == nil {
		state.Events = []models.Event{}
	}
	return state, nil
}

// write commits the document: marshal, write to <path>.tmp, rename over the
// previous file. A failure before the rename leaves the committed document
// untouched.
func (s *FileStore) write(state models.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schedule document: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("commit data file: %w", err)
	}
	return nil
}
