package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/EmreHacihassan/Tarih/internal/models"
)

func TestNewFileStoreCreatesEmptyDocument(t *testing.T) {
	store, path := newTestStore(t)
	events, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty store, got %d events", len(events))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read document: %v", err)
	}
	var state models.State
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	store, _ := newTestStore(t)
	event, state, err := store.Insert(models.EventRequest{Name: "Ayşe", Day: 0, Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !strings.HasPrefix(event.ID, "evt_") {
		t.Fatalf("unexpected id %q", event.ID)
	}
	if event.CreatedAt == "" {
		t.Fatalf("createdAt not set")
	}
	if len(state.Events) != 1 || state.Events[0].ID != event.ID {
		t.Fatalf("state does not contain the stored event: %+v", state)
	}

	// Stored event must survive a fresh read.
	events, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0] != event {
		t.Fatalf("persisted event differs: %+v vs %+v", events, event)
	}
}

func TestInsertAssignsUniqueIDs(t *testing.T) {
	store, _ := newTestStore(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		event, _, err := store.Insert(models.EventRequest{Name: "A", Day: 1, Start: "09:00", End: "10:00"})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if seen[event.ID] {
			t.Fatalf("duplicate id %q", event.ID)
		}
		seen[event.ID] = true
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	store, _ := newTestStore(t)
	first, _, err := store.Insert(models.EventRequest{Name: "A", Day: 0, Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, _, err := store.Insert(models.EventRequest{Name: "B", Day: 1, Start: "10:00", End: "11:00"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Delete(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	events, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 || events[0] != second {
		t.Fatalf("remaining events wrong: %+v", events)
	}
}

func TestDeleteMissingIDFailsEveryTime(t *testing.T) {
	store, _ := newTestStore(t)
	event, _, err := store.Insert(models.EventRequest{Name: "A", Day: 0, Start: "09:00", End: "10:00"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Delete(event.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := store.Delete(event.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("repeat delete %d: got %v, want ErrNotFound", i, err)
		}
	}
	if err := store.Delete("evt_never-existed"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: got %v, want ErrNotFound", err)
	}
}

// A crash between the temp write and the rename must leave the committed
// document untouched. Simulated by dropping a stray temp file next to it.
func TestStrayTempFileDoesNotCorruptDocument(t *testing.T) {
	store, path := newTestStore(t)
	if _, _, err := store.Insert(models.EventRequest{Name: "A", Day: 0, Start: "09:00", End: "10:00"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	committed, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read committed: %v", err)
	}
	if err := os.WriteFile(path+".tmp", []byte(`{"events": [truncated garb`), 0o644); err != nil {
		t.Fatalf("write stray temp: %v", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after: %v", err)
	}
	if string(after) != string(committed) {
		t.Fatalf("committed document changed")
	}
	events, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event after simulated crash, got %d", len(events))
	}
}

func TestCorruptDocumentLoadsEmpty(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{{{ not json"), 0o644); err != nil {
		t.Fatalf("write corrupt: %v", err)
	}
	events, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty state from corrupt file, got %d", len(events))
	}
}

func TestEmptyDocumentLoadsEmpty(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("  \n"), 0o644); err != nil {
		t.Fatalf("write blank: %v", err)
	}
	events, err := store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty state from blank file, got %d", len(events))
	}
}

func TestDocumentStaysHumanEditable(t *testing.T) {
	store, path := newTestStore(t)
	if _, _, err := store.Insert(models.EventRequest{Name: "Ayşe", Day: 2, Start: "08:15", End: "09:45"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `"start": "08:15"`) {
		t.Fatalf("times not stored as HH:MM strings:\n%s", text)
	}
	if !strings.Contains(text, "\n  ") {
		t.Fatalf("document not indented:\n%s", text)
	}
}

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.json")
	store, err := NewFileStore(path, zap.NewNop())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store, path
}
