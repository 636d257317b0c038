// Package server exposes the schedule generator over HTTP: one generate
// endpoint, download endpoints for the stored results, and health probes.
package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/luminar-edu/studyplan/internal/export"
	"github.com/luminar-edu/studyplan/internal/platform/cache"
	"github.com/luminar-edu/studyplan/internal/rules"
	"github.com/luminar-edu/studyplan/internal/schedule"
)

const maxBodyBytes = 1 << 20

// Server holds the wiring for all HTTP handlers.
type Server struct {
	catalog       *rules.Catalog
	store         export.Store
	cache         *cache.Cache // nil when the in-memory store is used
	allowedOrigin string
}

// New creates a server. cache may be nil; it is only consulted by the
// readiness probe.
func New(catalog *rules.Catalog, store export.Store, c *cache.Cache, allowedOrigin string) *Server {
	return &Server{
		catalog:       catalog,
		store:         store,
		cache:         c,
		allowedOrigin: allowedOrigin,
	}
}

// Routes returns the HTTP handler with CORS applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/download/csv", s.handleDownloadCSV)
	mux.HandleFunc("GET /api/download/xlsx", s.handleDownloadXLSX)
	mux.HandleFunc("GET /api/download/png", s.handleDownloadPNG)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("GET /readyz", s.handleReadyz)
	return s.cors(mux)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body failed", nil)
		return
	}

	req, err := DecodeGenerateRequest(body)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "invalid request", verr.Details)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, explanations := schedule.Generate(req, s.catalog)
	slog.Debug("schedule generated",
		"student", req.StudentName,
		"courses", len(req.Courses),
		"topics", len(req.Topics),
		"rule_firings", len(explanations))
	for _, line := range explanations {
		slog.Debug("rule fired", "explanation", line)
	}

	id := uuid.NewString()
	if err := s.store.Put(r.Context(), id, result); err != nil {
		// The schedule is still valid; only downloads are affected.
		slog.Error("storing schedule for download failed", "error", err)
	} else {
		w.Header().Set("X-Schedule-ID", id)
	}

	writeJSON(w, http.StatusOK, result)
}

// fetchSchedule resolves the addressed (or last) stored schedule.
func (s *Server) fetchSchedule(r *http.Request) (schedule.Result, error) {
	if id := r.URL.Query().Get("id"); id != "" {
		return s.store.Get(r.Context(), id)
	}
	return s.store.Last(r.Context())
}

type downloadResponse struct {
	Filename      string `json:"filename"`
	Content       string `json:"content,omitempty"`
	ContentBase64 string `json:"content_base64,omitempty"`
	MIME          string `json:"mime"`
}

func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	res, err := s.fetchSchedule(r)
	if err != nil {
		s.downloadError(w, err)
		return
	}
	content, filename, err := export.CSV(res)
	if err != nil {
		slog.Error("csv export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, downloadResponse{
		Filename: filename,
		Content:  string(content),
		MIME:     "text/csv",
	})
}

func (s *Server) handleDownloadXLSX(w http.ResponseWriter, r *http.Request) {
	res, err := s.fetchSchedule(r)
	if err != nil {
		s.downloadError(w, err)
		return
	}
	content, filename, err := export.XLSX(res)
	if err != nil {
		slog.Error("xlsx export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, downloadResponse{
		Filename:      filename,
		ContentBase64: base64.StdEncoding.EncodeToString(content),
		MIME:          "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
}

func (s *Server) handleDownloadPNG(w http.ResponseWriter, r *http.Request) {
	res, err := s.fetchSchedule(r)
	if err != nil {
		s.downloadError(w, err)
		return
	}
	content, filename, err := export.PNG(res)
	if err != nil {
		slog.Error("png export failed", "error", err)
		writeError(w, http.StatusInternalServerError, "export failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, downloadResponse{
		Filename:      filename,
		ContentBase64: base64.StdEncoding.EncodeToString(content),
		MIME:          "image/png",
	})
}

func (s *Server) downloadError(w http.ResponseWriter, err error) {
	if errors.Is(err, export.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No schedule available. Please generate one first.", nil)
		return
	}
	slog.Error("fetching stored schedule failed", "error", err)
	writeError(w, http.StatusInternalServerError, "fetching schedule failed", nil)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.cache != nil {
		if err := s.cache.HealthCheck(r.Context()); err != nil {
			slog.Warn("cache not ready", "error", err)
			writeError(w, http.StatusServiceUnavailable, "cache unavailable", nil)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

// cors applies the permissive development CORS policy the frontend needs.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Expose-Headers", "X-Schedule-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, msg string, details []string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}
