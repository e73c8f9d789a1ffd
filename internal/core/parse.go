package core

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrNoUsableFiles is returned when an invocation's input yields zero
// recognized entries. It is one of only two terminal failures; everything
// else degrades to warnings.
var ErrNoUsableFiles = errors.New("no usable export files in input")

// Parse runs the ingestion pipeline over a set of file blobs and returns one
// aggregate Result. Files are processed strictly sequentially; the context
// is consulted between files, so abandonment is all-or-nothing per
// invocation rather than mid-file.
func Parse(ctx context.Context, files []InputFile) (*Result, error) {
	res := newResult()
	diag := newDiagnostics()
	acc := newAccumulator(res)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch ext := strings.ToLower(path.Ext(file.Name)); ext {
		case ".zip":
			entries, warnings, err := extractArchive(file.Data)
			if err != nil {
				diag.Warnf("skipping %q: %v", file.Name, err)
				continue
			}
			diag.WarnAll(warnings)
			for _, entry := range entries {
				processEntry(entry.Path, entry.Data, acc, diag)
			}
		case ".csv", ".xlsx", ".xls":
			processEntry(file.Name, file.Data, acc, diag)
		default:
			diag.Warnf("unrecognized file type %q", file.Name)
		}
	}

	res.Summary = diag.Summary()

	if len(res.Summary.FilesProcessed) == 0 {
		return nil, fmt.Errorf("%w (%d file(s) supplied)", ErrNoUsableFiles, len(files))
	}

	return res, nil
}

// processEntry runs one tabular file through the reader, header resolver,
// and its kind's normalizer. Every failure here is fatal only to this entry.
func processEntry(name string, data []byte, acc *accumulator, diag *Diagnostics) {
	def, ok := classify(name)
	if !ok {
		diag.Warnf("unrecognized export file %q", name)
		return
	}

	rows, err := readTable(name, data)
	if err != nil {
		diag.Warnf("skipping %q: %v", name, err)
		return
	}
	rows = normalizeRows(rows)

	headerIdx := findHeader(rows, def.Spec.Marker)
	if headerIdx < 0 {
		diag.Warnf("no header found in %q (expected a %q column)", name, def.Spec.Marker)
		diag.FileProcessed(def.Spec.Label, 0)
		return
	}

	fields := resolveFields(rows[headerIdx], def.Spec.Fields)

	var dataRows [][]string
	for _, row := range rows[headerIdx+1:] {
		if !isEmptyRow(row) {
			dataRows = append(dataRows, row)
		}
	}

	diag.FileProcessed(def.Spec.Label, len(dataRows))
	diag.WarnAll(def.Apply(dataRows, fields, acc))
}

// readTable picks the reader variant by extension. Both variants share one
// output shape: rows of text cells.
func readTable(name string, data []byte) ([][]string, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".xlsx", ".xls":
		return parseXLSX(data)
	default:
		return parseCSV(data)
	}
}
