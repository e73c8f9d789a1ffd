package core

import "fmt"

// Diagnostics accumulates per-file labels, row counts, and warnings for one
// parse invocation. It is append-only and owned exclusively by that
// invocation's Result; no warning is fatal to the run.
type Diagnostics struct {
	files    []string
	rows     map[string]int
	warnings []string
}

func newDiagnostics() *Diagnostics {
	return &Diagnostics{rows: make(map[string]int)}
}

// FileProcessed records that a file with the given canonical label was
// routed to a normalizer, along with its raw data row count.
func (d *Diagnostics) FileProcessed(label string, rows int) {
	d.files = append(d.files, label)
	d.rows[label] += rows
}

// Warn appends one human-readable warning.
func (d *Diagnostics) Warn(msg string) {
	d.warnings = append(d.warnings, msg)
}

// Warnf appends one formatted warning.
func (d *Diagnostics) Warnf(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

// WarnAll appends warnings in order, preserving their relative sequence.
func (d *Diagnostics) WarnAll(msgs []string) {
	d.warnings = append(d.warnings, msgs...)
}

// Summary snapshots the accumulated diagnostics.
func (d *Diagnostics) Summary() Summary {
	s := Summary{
		FilesProcessed: make([]string, len(d.files)),
		Rows:           make(map[string]int, len(d.rows)),
		Warnings:       make([]string, len(d.warnings)),
	}
	copy(s.FilesProcessed, d.files)
	copy(s.Warnings, d.warnings)
	for k, v := range d.rows {
		s.Rows[k] = v
	}
	return s
}
