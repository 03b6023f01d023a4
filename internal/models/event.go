// Package models holds the schedule's single entity and the request shapes
// the API exchanges.
package models

import (
	"fmt"

	"github.com/EmreHacihassan/Tarih/internal/timeutil"
)

// Event is one named time reservation on the 7-day grid. Times travel and
// persist as zero-padded HH:MM strings so the data file stays human-editable.
type Event struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Day       int    `json:"day"`
	Start     string `json:"start"`
	End       string `json:"end"`
	CreatedAt string `json:"createdAt"`
}

// State is the whole persisted document: an array of valid events, order
// only significant for display.
type State struct {
	Events []Event `json:"events"`
}

// EventRequest is the creation payload. Day is an integer literal here; the
// day-name mapping is a CSV import convenience, not part of the API contract.
type EventRequest struct {
	Name  string `json:"name"`
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Validate checks every rule and collects every violation instead of
// stopping at the first, so the caller sees the full list in one round-trip.
func (r EventRequest) Validate() []string {
	var errs []string
	if !hasText(r.Name) {
		errs = append(errs, "name is required")
	}
	if r.Day < 0 || r.Day > 6 {
		errs = append(errs, fmt.Sprintf("day must be between 0 and 6 (Mon=0), got %d", r.Day))
	}
	start, startOK := timeutil.ParseClock(r.Start)
	if !startOK {
		errs = append(errs, "start must be a valid HH:MM time")
	}
	end, endOK := timeutil.ParseClock(r.End)
	if !endOK {
		errs = append(errs, "end must be a valid HH:MM time")
	}
	// The ordering rule counts as violated whenever end cannot be shown to
	// follow start, except when end itself already failed to parse.
	if endOK && (!startOK || end <= start) {
		errs = append(errs, "end must be greater than start")
	}
	return errs
}

func hasText(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
