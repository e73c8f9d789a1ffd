package core

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode/utf8"
)

// parseCSV reads delimited text into raw rows. No header is assumed: files
// often carry descriptive preamble rows above the real header, which the
// header resolver scans for. FieldsPerRecord is disabled because preamble
// rows rarely match the data width.
func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(sanitizeUTF8(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// NormalizeCell scrubs one text cell: strips a leading byte-order mark,
// trims surrounding whitespace, and collapses internal whitespace runs
// (including tabs and newlines) to a single space.
func NormalizeCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	return strings.Join(strings.Fields(s), " ")
}

// normalizeRows applies NormalizeCell to every cell.
func normalizeRows(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = NormalizeCell(cell)
		}
	}
	return rows
}

// isEmptyRow reports whether every cell is empty after normalization.
func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with the replacement
// character. Spreadsheet tools regularly emit Windows-1252 or Latin-1 bytes
// inside nominally-UTF-8 CSV files.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
