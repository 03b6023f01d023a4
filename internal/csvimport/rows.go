package csvimport

import (
	"strings"

	"github.com/EmreHacihassan/Tarih/internal/models"
	"github.com/EmreHacihassan/Tarih/internal/timeutil"
)

// Recognized header spellings per column, matched case-insensitively.
var headerSynonyms = map[string][]string{
	"name":  {"name", "isim", "kişi", "kisi", "person"},
	"day":   {"day", "gun", "gün", "dayname"},
	"start": {"start", "baslangic", "başlangıç", "from", "start_time"},
	"end":   {"end", "bitis", "bitiş", "to", "end_time"},
}

// MapRows converts parsed CSV rows into creation requests. The first row is
// the header. Rows that fail any of the import rules are dropped silently
// and only counted: this is a best-effort filter, not a validator.
func MapRows(rows [][]string) (requests []models.EventRequest, rejected int) {
	if len(rows) == 0 {
		return nil, 0
	}
	header := rows[0]
	idx := map[string]int{}
	for column, synonyms := range headerSynonyms {
		idx[column] = findColumn(header, synonyms)
	}
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, idx["name"]))
		day, dayOK := timeutil.MapDay(cell(row, idx["day"]))
		start, startOK := timeutil.NormalizeClock(cell(row, idx["start"]))
		end, endOK := timeutil.NormalizeClock(cell(row, idx["end"]))
		if name == "" || !dayOK || !startOK || !endOK {
			rejected++
			continue
		}
		if timeutil.ToMinutes(end) <= timeutil.ToMinutes(start) {
			rejected++
			continue
		}
		requests = append(requests, models.EventRequest{
			Name:  name,
			Day:   day,
			Start: start,
			End:   end,
		})
	}
	return requests, rejected
}

func findColumn(header []string, synonyms []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, s := range synonyms {
			if h == s {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
