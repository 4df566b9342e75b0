package trips

import "strings"

// Column identifies a trip attribute by its source header name.
type Column string

const (
	ColStartTime    Column = "Start Time"
	ColStartStation Column = "Start Station"
	ColEndStation   Column = "End Station"
	ColDuration     Column = "Trip Duration"
	ColUserType     Column = "User Type"
	ColGender       Column = "Gender"
	ColBirthYear    Column = "Birth Year"
)

// RequiredColumns must be present in every city's source.
var RequiredColumns = []Column{ColStartTime, ColStartStation, ColEndStation, ColDuration, ColUserType}

// OptionalColumns may be absent; washington ships without them.
var OptionalColumns = []Column{ColGender, ColBirthYear}

// columnIndex maps each known column to its position in the header; absent
// columns are not in the map.
type columnIndex map[Column]int

func indexColumns(header []string) columnIndex {
	idx := make(columnIndex)
	known := append(append([]Column{}, RequiredColumns...), OptionalColumns...)
	for i, raw := range header {
		name := normalizeHeader(raw)
		for _, c := range known {
			if _, seen := idx[c]; seen {
				continue
			}
			if strings.EqualFold(name, string(c)) {
				idx[c] = i
			}
		}
	}
	return idx
}

func normalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.TrimSpace(name)
}

// cell returns the trimmed value of column c in row, or "" when the column is
// absent or the row is short.
func (ci columnIndex) cell(row []string, c Column) string {
	i, ok := ci[c]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
