// Package web exposes the engine over a small HTTP API: upload a JSONL bank
// for analysis, or upload one for refinement and download the result.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dotcommander/qforge/internal/config"
	"github.com/dotcommander/qforge/internal/question"
	"github.com/dotcommander/qforge/internal/transform"
	"github.com/dotcommander/qforge/internal/validate"
)

// Server wires the engine into HTTP handlers.
type Server struct {
	cfg         *config.Config
	validator   *validate.Validator
	transformer *transform.Transformer
}

// NewServer builds a server bound to an immutable configuration.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg:         cfg,
		validator:   validate.New(cfg),
		transformer: transform.New(cfg),
	}
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	api.HandleFunc("/refine", s.handleRefine).Methods("POST")

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze validates an uploaded bank and returns the batch summary.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	questions, warnings, err := readBank(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	summary, err := s.validator.ValidateBatch(questions)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"summary":  summary,
		"warnings": warnings,
	})
}

// handleRefine runs one refinement pass over an uploaded bank and streams the
// refined bank back as JSONL. The pass summary travels in a response header
// so the body stays a clean download.
func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	questions, _, err := readBank(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	threshold := s.cfg.Scoring.Threshold
	if raw := r.URL.Query().Get("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid threshold %q", raw))
			return
		}
		threshold = parsed
	}

	result := s.transformer.Batch(questions, threshold)

	summaryJSON, err := json.Marshal(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", `attachment; filename="refined.jsonl"`)
	w.Header().Set("X-Refine-Summary", string(summaryJSON))
	w.WriteHeader(http.StatusOK)

	if err := question.WriteJSONL(w, questions); err != nil {
		// Headers are gone; nothing left to do but drop the connection.
		return
	}
}

// readBank parses a bank from either a multipart "bank" file field or the
// raw request body.
func readBank(r *http.Request) ([]*question.Question, []string, error) {
	var src io.Reader = r.Body

	if err := r.ParseMultipartForm(32 << 20); err == nil {
		file, _, err := r.FormFile("bank")
		if err != nil {
			return nil, nil, fmt.Errorf("multipart upload missing 'bank' file field")
		}
		defer file.Close()
		src = file
	}

	res, err := question.ParseJSONL(src)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing uploaded bank: %w", err)
	}
	return res.Questions, res.Warnings, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
