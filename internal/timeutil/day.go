package timeutil

import (
	"strconv"
	"strings"
)

// Weekday tables, Monday=0 .. Sunday=6. Turkish names take priority over the
// English fallback; both carry the diacritic-folded spellings users actually
// type. Fixed tables only, the mapping never consults the locale.
var turkishDays = map[string]int{
	"pazartesi": 0, "pzt": 0,
	"salı": 1, "sali": 1,
	"çarşamba": 2, "carsamba": 2, "çarsamba": 2, "crs": 2,
	"perşembe": 3, "persembe": 3, "prs": 3,
	"cuma":      4,
	"cumartesi": 5, "cts": 5,
	"pazar": 6,
}

var englishDays = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

// MapDay resolves a user-supplied day token to a canonical weekday index.
// Numeric tokens must land in [0,6]; anything else is looked up by name.
// An unmapped token is not an error by itself, the caller decides what to
// do with the record.
func MapDay(token string) (int, bool) {
	v := strings.ToLower(strings.TrimSpace(token))
	if v == "" {
		return 0, false
	}
	if isDigits(v) {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 6 {
			return 0, false
		}
		return n, true
	}
	if d, ok := turkishDays[v]; ok {
		return d, true
	}
	if d, ok := englishDays[v]; ok {
		return d, true
	}
	return 0, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
