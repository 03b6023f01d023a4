package csvimport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/EmreHacihassan/Tarih/internal/models"
)

func TestImporterCountsImportedFailedRejected(t *testing.T) {
	var received []models.EventRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/events" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req models.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		received = append(received, req)
		if req.Name == "Refused" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	csv := "name,day,start,end\n" +
		"Ayşe,0,09:00,10:00\n" +
		"Refused,1,10:00,11:00\n" +
		",2,09:00,10:00\n" + // dropped client-side
		"Ali,Salı,13:30,15:00\n"

	importer := NewImporter(server.URL, zap.NewNop())
	result, err := importer.Run(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("imported = %d, want 2", result.Imported)
	}
	if result.Failed != 1 {
		t.Fatalf("failed = %d, want 1", result.Failed)
	}
	if result.Rejected != 1 {
		t.Fatalf("rejected = %d, want 1", result.Rejected)
	}
	// Only candidates that survived client-side filtering reach the server.
	if len(received) != 3 {
		t.Fatalf("server saw %d requests, want 3", len(received))
	}
}

func TestImporterSubmitsSequentiallyInOrder(t *testing.T) {
	var order []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		order = append(order, req.Name)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	csv := "name,day,start,end\nA,0,09:00,10:00\nB,1,09:00,10:00\nC,2,09:00,10:00\n"
	importer := NewImporter(server.URL, zap.NewNop())
	result, err := importer.Run(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Imported != 3 {
		t.Fatalf("imported = %d, want 3", result.Imported)
	}
	if strings.Join(order, "") != "ABC" {
		t.Fatalf("rows submitted out of order: %v", order)
	}
}

func TestImporterUnreachableServerCountsFailed(t *testing.T) {
	importer := NewImporter("http://127.0.0.1:1", zap.NewNop())
	csv := "name,day,start,end\nA,0,09:00,10:00\n"
	result, err := importer.Run(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Failed != 1 || result.Imported != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
}
