// Package csvimport turns user-supplied CSV files into creation requests and
// drives the best-effort bulk import against the API.
package csvimport

// Parse splits CSV text into rows of fields with a two-state character
// machine. Quoted fields may contain commas, newlines and doubled quotes;
// carriage returns outside quotes are dropped so CRLF files parse cleanly.
// encoding/csv is too strict for this input: it rejects the ragged rows and
// stray quotes the import has to tolerate.
func Parse(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    []rune
		inQuotes bool
	)
	pushField := func() {
		row = append(row, string(field))
		field = field[:0]
	}
	pushRow := func() {
		rows = append(rows, row)
		row = nil
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					field = append(field, '"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			field = append(field, c)
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			pushField()
		case '\r':
			// ignored
		case '\n':
			pushField()
			pushRow()
		default:
			field = append(field, c)
		}
	}
	pushField()
	pushRow()

	// A file ending in a newline produces one all-empty trailing row; drop it.
	if len(rows) > 0 && allEmpty(rows[len(rows)-1]) {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func allEmpty(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
