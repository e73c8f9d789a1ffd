package core

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// canonicalSubstrings identify recognized archive entries by base name,
// case-insensitively. They correspond one-to-one with the registered kinds.
var canonicalSubstrings = []string{
	"connections",
	"messages",
	"invitations",
	"company follows",
	"saved jobs",
	"job applications",
}

// canonicalMessagesFile is the only member of the "messages" family that is
// admitted: the top-level conversation export. Partial or per-conversation
// exports elsewhere in the archive would duplicate thread data.
const canonicalMessagesFile = "messages.csv"

type archiveEntry struct {
	Path string
	Data []byte
}

// extractArchive opens a ZIP container and yields the recognized entries in
// archive order. Unrecognized entries and directories are skipped silently;
// auxiliary message files and unreadable entries each produce one warning.
// Only a failure to open the archive itself is returned as an error.
func extractArchive(data []byte) ([]archiveEntry, []string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("open archive: %w", err)
	}

	var entries []archiveEntry
	var warnings []string

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		// The messages rule holds at path level: anything mentioning
		// "messages" anywhere in its path, other than the top-level
		// conversation export, is auxiliary.
		if strings.Contains(strings.ToLower(f.Name), "messages") && f.Name != canonicalMessagesFile {
			warnings = append(warnings, fmt.Sprintf("skipping auxiliary message file %q", f.Name))
			continue
		}

		if !matchesCanonical(strings.ToLower(path.Base(f.Name))) {
			continue
		}

		content, err := readZipEntry(f)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to extract %q: %v", f.Name, err))
			continue
		}

		entries = append(entries, archiveEntry{Path: f.Name, Data: content})
	}

	return entries, warnings, nil
}

func matchesCanonical(base string) bool {
	for _, s := range canonicalSubstrings {
		if strings.Contains(base, s) {
			return true
		}
	}
	return false
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
