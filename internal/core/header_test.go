package core

import (
	"testing"

	"github.com/JonMunkholm/exportparse/internal/schema"
)

// ============================================================================
// findHeader Tests
// ============================================================================

func TestFindHeader(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]string
		marker string
		want   int
	}{
		{
			name:   "header in first row",
			rows:   [][]string{{"First Name", "Last Name"}},
			marker: "First Name",
			want:   0,
		},
		{
			name: "header below preamble",
			rows: [][]string{
				{"Notes:"},
				{"When exporting your connection data, you may notice..."},
				{""},
				{"First Name", "Last Name", "URL"},
				{"Jane", "Doe", "https://example.com/in/jane"},
			},
			marker: "First Name",
			want:   3,
		},
		{
			name:   "marker is case-insensitive",
			rows:   [][]string{{"FIRST NAME", "LAST NAME"}},
			marker: "First Name",
			want:   0,
		},
		{
			name:   "marker must match whole cell",
			rows:   [][]string{{"First Name (preferred)"}},
			marker: "First Name",
			want:   -1,
		},
		{
			name:   "no header",
			rows:   [][]string{{"a"}, {"b"}},
			marker: "First Name",
			want:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findHeader(tt.rows, tt.marker); got != tt.want {
				t.Errorf("findHeader() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFindHeader_ScanWindow(t *testing.T) {
	// Header on row 11 is outside the 10-row scan window.
	rows := make([][]string, 12)
	for i := range rows {
		rows[i] = []string{"preamble"}
	}
	rows[11] = []string{"First Name"}

	if got := findHeader(rows, "First Name"); got != -1 {
		t.Errorf("findHeader() = %d, want -1 (beyond scan window)", got)
	}
}

// ============================================================================
// resolveFields Tests
// ============================================================================

func TestResolveFields_Contacts(t *testing.T) {
	header := []string{"First Name", "Last Name", "URL", "Email Address", "Company", "Position", "Connected On"}
	fields := resolveFields(header, schema.Contacts.Fields)

	want := map[string]int{
		"firstName":   0,
		"lastName":    1,
		"profileUrl":  2,
		"company":     4,
		"position":    5,
		"connectedOn": 6,
	}
	for name, col := range want {
		if got, ok := fields[name]; !ok || got != col {
			t.Errorf("field %q resolved to %d (ok=%v), want %d", name, got, ok, col)
		}
	}

	// No location column in this vintage: unresolved, not an error.
	if _, ok := fields["location"]; ok {
		t.Error("location should be unresolved for this header")
	}
}

func TestResolveFields_AliasOrder(t *testing.T) {
	// "Connected Date" is an older vintage; the substring fallback catches it.
	header := []string{"First Name", "Last Name", "Connected Date"}
	fields := resolveFields(header, schema.Contacts.Fields)

	if got, ok := fields["connectedOn"]; !ok || got != 2 {
		t.Errorf("connectedOn = %d (ok=%v), want 2", got, ok)
	}
}

func TestGetField(t *testing.T) {
	fields := FieldIndex{"name": 0, "beyond": 5}
	row := []string{"Jane"}

	if got := getField(row, fields, "name"); got != "Jane" {
		t.Errorf("getField(name) = %q, want %q", got, "Jane")
	}
	if got := getField(row, fields, "beyond"); got != "" {
		t.Errorf("getField past row end = %q, want empty", got)
	}
	if got := getField(row, fields, "missing"); got != "" {
		t.Errorf("getField(unresolved) = %q, want empty", got)
	}
}
