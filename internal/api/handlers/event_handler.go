package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/EmreHacihassan/Tarih/internal/models"
	"github.com/EmreHacihassan/Tarih/internal/schedule"
	"github.com/EmreHacihassan/Tarih/internal/storage"
	"github.com/EmreHacihassan/Tarih/internal/timeutil"
)

// EventHandler serves the schedule API backed by the flat-file store.
type EventHandler struct {
	store  *storage.FileStore
	logger *zap.Logger
}

func NewEventHandler(store *storage.FileStore, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		store:  store,
		logger: logger.Named("event_handler"),
	}
}

// ListEvents returns the whole stored collection.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.List()
	if err != nil {
		h.logger.Error("listing events", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "failed to read schedule")
		return
	}
	RespondWithJSON(w, http.StatusOK, models.State{Events: events})
}

// CreateEvent validates the request, collecting every violation, and stores
// the event when the list comes back empty.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.EventRequest
	if err := parseJSONBody(r, &req); err != nil {
		RespondWithErrors(w, http.StatusBadRequest, []string{"invalid request body"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		RespondWithErrors(w, http.StatusBadRequest, errs)
		return
	}
	event, state, err := h.store.Insert(req)
	if err != nil {
		h.logger.Error("storing event", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "failed to store event")
		return
	}
	RespondWithJSON(w, http.StatusCreated, struct {
		OK    bool         `json:"ok"`
		Event models.Event `json:"event"`
		State models.State `json:"state"`
	}{OK: true, Event: event, State: state})
}

// DeleteEvent removes one event by id. A missing id is a 404 every time it
// is asked for, including repeats of an already successful delete.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			RespondWithError(w, http.StatusNotFound, "event not found")
			return
		}
		h.logger.Error("deleting event", zap.String("id", id), zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Meta reports which document backs the store.
func (h *EventHandler) Meta(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, map[string]string{"dataFile": h.store.Path()})
}

// DayBlocks is the merged rendering view of one weekday.
type DayBlocks struct {
	Day    int     `json:"day"`
	Blocks []Block `json:"blocks"`
}

// Block is a merged interval with display-ready HH:MM bounds.
type Block struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekSchedule returns the per-day merged intervals used for rendering. The
// merge never feeds back into the stored data.
func (h *EventHandler) WeekSchedule(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.List()
	if err != nil {
		h.logger.Error("listing events for schedule view", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "failed to read schedule")
		return
	}
	perDay := schedule.ByDay(events)
	days := make([]DayBlocks, schedule.DaysPerWeek)
	for d := 0; d < schedule.DaysPerWeek; d++ {
		blocks := []Block{}
		for _, iv := range schedule.Merge(perDay[d]) {
			blocks = append(blocks, Block{
				Start: timeutil.FormatClock(iv.StartMin),
				End:   timeutil.FormatClock(iv.EndMin),
			})
		}
		days[d] = DayBlocks{Day: d, Blocks: blocks}
	}
	RespondWithJSON(w, http.StatusOK, struct {
		Days []DayBlocks `json:"days"`
	}{Days: days})
}

func parseJSONBody(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
