package core

import (
	"strings"

	"github.com/JonMunkholm/exportparse/internal/schema"
)

// MaxHeaderSearchRows is the maximum number of rows to scan for the header.
// Export files put at most a few descriptive notes above it.
var MaxHeaderSearchRows = 10

// FieldIndex maps logical field names to their column position in the data
// rows. Unresolved fields are absent; lookups through getField yield "".
type FieldIndex map[string]int

// findHeader returns the index of the row containing the kind's marker cell,
// or -1 if none appears within the scan window. The marker is compared
// against whole cells, case-insensitively.
func findHeader(rows [][]string, marker string) int {
	maxRows := MaxHeaderSearchRows
	if len(rows) < maxRows {
		maxRows = len(rows)
	}

	for i := 0; i < maxRows; i++ {
		for _, cell := range rows[i] {
			if strings.EqualFold(cell, marker) {
				return i
			}
		}
	}
	return -1
}

// resolveFields maps each logical field to a column position using its
// ordered alias list. The first alias matching any header cell wins; a field
// with no matching alias is simply absent from the index. Normalizers, not
// the resolver, decide whether a missing value drops or defaults a row.
func resolveFields(header []string, fields []schema.Field) FieldIndex {
	idx := make(FieldIndex, len(fields))

	for _, field := range fields {
	aliases:
		for _, m := range field.Aliases {
			for col, cell := range header {
				if matchHeaderCell(cell, m) {
					idx[field.Name] = col
					break aliases
				}
			}
		}
	}

	return idx
}

func matchHeaderCell(cell string, m schema.Matcher) bool {
	if m.Literal != "" {
		return strings.EqualFold(cell, m.Literal)
	}
	return strings.Contains(strings.ToLower(cell), m.Substr)
}

// getField returns the row's value for a logical field, or "" when the field
// is unresolved or the row is too short.
func getField(row []string, idx FieldIndex, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}
