package core

import (
	"archive/zip"
	"bytes"
	"sort"
	"strings"
	"testing"
)

// buildZip assembles an in-memory ZIP from path → content pairs.
// Paths ending in "/" become directories.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		content := entries[name]
		if strings.HasSuffix(name, "/") {
			if _, err := zw.Create(name); err != nil {
				t.Fatalf("create dir %q: %v", name, err)
			}
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %q: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// ============================================================================
// extractArchive Tests
// ============================================================================

func TestExtractArchive_FiltersToRecognizedEntries(t *testing.T) {
	data := buildZip(t, map[string]string{
		"Connections.csv":    "First Name,Last Name\nJane,Doe\n",
		"messages.csv":       "FROM,TO,CONTENT\nYou,Jane,hi\n",
		"Company Follows.csv": "Organization,Followed On\nAcme,2024-01-02\n",
		"Rich_Media.csv":     "ignored",
		"folder/":            "",
	})

	entries, warnings, err := extractArchive(data)
	if err != nil {
		t.Fatalf("extractArchive error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	got := make(map[string]bool, len(entries))
	for _, e := range entries {
		got[e.Path] = true
	}
	for _, want := range []string{"Connections.csv", "messages.csv", "Company Follows.csv"} {
		if !got[want] {
			t.Errorf("expected entry %q, got %v", want, entries)
		}
	}
	if got["Rich_Media.csv"] {
		t.Error("unrecognized entry was kept")
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestExtractArchive_AuxiliaryMessageFiles(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"nested canonical name", "exports/messages.csv"},
		{"variant name", "direct messages.csv"},
		{"per-conversation export", "messages/messages-2024.csv"},
		{"directory-only match", "messages/part-1.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZip(t, map[string]string{
				tt.path: "FROM,TO,CONTENT\nYou,Jane,hi\n",
			})

			entries, warnings, err := extractArchive(data)
			if err != nil {
				t.Fatalf("extractArchive error = %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("auxiliary message file was admitted: %v", entries)
			}
			if len(warnings) != 1 {
				t.Fatalf("got %d warnings, want exactly 1: %v", len(warnings), warnings)
			}
			if !strings.Contains(warnings[0], tt.path) {
				t.Errorf("warning %q does not name the entry %q", warnings[0], tt.path)
			}
		})
	}
}

func TestExtractArchive_TopLevelMessagesIsCanonical(t *testing.T) {
	data := buildZip(t, map[string]string{
		"messages.csv": "FROM,TO,CONTENT\nYou,Jane,hi\n",
	})

	entries, warnings, err := extractArchive(data)
	if err != nil {
		t.Fatalf("extractArchive error = %v", err)
	}
	if len(entries) != 1 || entries[0].Path != "messages.csv" {
		t.Errorf("canonical messages.csv not admitted: %v", entries)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestExtractArchive_NotAZip(t *testing.T) {
	_, _, err := extractArchive([]byte("definitely not a zip"))
	if err == nil {
		t.Fatal("expected error for invalid archive")
	}
}
