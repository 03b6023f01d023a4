// Package schedule computes the merged per-day view of the week. The merge
// is rendering-only: stored events are never rewritten from its output.
package schedule

import (
	"sort"

	"github.com/EmreHacihassan/Tarih/internal/models"
	"github.com/EmreHacihassan/Tarih/internal/timeutil"
)

// DaysPerWeek is the width of the grid, Monday=0 .. Sunday=6.
const DaysPerWeek = 7

// Interval is a half-open-looking but inclusive-touch time range in minutes
// since midnight. StartMin < EndMin is guaranteed by the callers.
type Interval struct {
	StartMin int
	EndMin   int
}

// Merge unions overlapping and touching intervals into the minimal sorted,
// pairwise disjoint sequence covering exactly the same minutes. The input
// slice is not modified.
func Merge(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].StartMin < sorted[j].StartMin })

	out := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &out[len(out)-1]
		if cur.StartMin <= last.EndMin {
			if cur.EndMin > last.EndMin {
				last.EndMin = cur.EndMin
			}
			continue
		}
		out = append(out, cur)
	}
	return out
}

// ByDay buckets events into per-day interval sets. Events whose day falls
// outside the grid (possible after hand-edits to the data file) are skipped.
func ByDay(events []models.Event) [DaysPerWeek][]Interval {
	var days [DaysPerWeek][]Interval
	for _, e := range events {
		if e.Day < 0 || e.Day >= DaysPerWeek {
			continue
		}
		days[e.Day] = append(days[e.Day], Interval{
			StartMin: timeutil.ToMinutes(e.Start),
			EndMin:   timeutil.ToMinutes(e.End),
		})
	}
	return days
}
