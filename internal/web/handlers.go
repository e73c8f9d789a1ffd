package web

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/JonMunkholm/exportparse/internal/core"
	"github.com/JonMunkholm/exportparse/internal/logging"
	"github.com/go-chi/chi/v5"
)

// handleParse accepts one or more export files as multipart form fields
// named "files" (or a single "file"), runs the pipeline under the configured
// timeout, and replaces the stored result wholesale. The response is the
// run's summary; the full record set is served from /api/result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	maxBytes := s.cfg.Parse.MaxFileSize * int64(s.cfg.Parse.MaxFiles)
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(s.cfg.Parse.MaxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.respondError(w, r, fmt.Errorf("file too large: request body exceeds %d bytes", maxBytes), http.StatusBadRequest)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		headers = r.MultipartForm.File["file"]
	}
	if len(headers) == 0 {
		s.respondError(w, r, fmt.Errorf("no file provided"), http.StatusBadRequest)
		return
	}
	if len(headers) > s.cfg.Parse.MaxFiles {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many files: %d (limit %d)", len(headers), s.cfg.Parse.MaxFiles))
		return
	}

	files := make([]core.InputFile, 0, len(headers))
	for _, fh := range headers {
		if fh.Size > s.cfg.Parse.MaxFileSize {
			s.respondError(w, r,
				fmt.Errorf("file too large: %q (limit %d bytes)", fh.Filename, s.cfg.Parse.MaxFileSize),
				http.StatusBadRequest)
			return
		}

		data, err := readFormFile(fh)
		if err != nil {
			s.respondError(w, r, fmt.Errorf("read %q: %w", fh.Filename, err), http.StatusBadRequest)
			return
		}
		files = append(files, core.InputFile{Name: fh.Filename, Data: data})
	}

	parseID := s.service.StartParse(files)
	logger.Info("parse started", "parse_id", parseID, "files", len(files))

	result, err := s.service.Await(parseID)
	if err != nil {
		s.respondError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	s.results.Set(result)
	logger.Info("parse completed",
		"parse_id", parseID,
		"contacts", len(result.Contacts),
		"messages", len(result.Messages),
		"invites", len(result.Invites),
		"follows", len(result.Follows),
		"jobs", len(result.Jobs),
		"warnings", len(result.Summary.Warnings),
	)

	writeJSON(w, result.Summary)
}

// handleResult returns the full stored record set.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	result, ok := s.results.Get()
	if !ok {
		writeError(w, http.StatusNotFound, "no parse result available")
		return
	}
	writeJSON(w, result)
}

// handleSummary returns only the stored result's summary.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	result, ok := s.results.Get()
	if !ok {
		writeError(w, http.StatusNotFound, "no parse result available")
		return
	}
	writeJSON(w, result.Summary)
}

// handleClearResult drops the stored result.
func (s *Server) handleClearResult(w http.ResponseWriter, r *http.Request) {
	s.results.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// handleRecords returns one collection by kind key.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	result, ok := s.results.Get()
	if !ok {
		writeError(w, http.StatusNotFound, "no parse result available")
		return
	}

	switch kind := chi.URLParam(r, "kind"); kind {
	case "contacts":
		writeJSON(w, result.Contacts)
	case "messages":
		writeJSON(w, result.Messages)
	case "invites":
		writeJSON(w, result.Invites)
	case "follows":
		writeJSON(w, result.Follows)
	case "jobs":
		writeJSON(w, result.Jobs)
	default:
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown record kind %q", kind))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
