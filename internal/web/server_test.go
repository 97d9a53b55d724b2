package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dotcommander/qforge/internal/config"
)

const testBank = `{"id":"q1","topic":"Functions","question":"scope","style":"single_word","difficulty":"starter"}
{"id":"q2","topic":"Data Types","question":"Write code to swap x and y.","style":"short_question","difficulty":"core"}
`

func newTestRouter() http.Handler {
	return NewServer(config.Default()).Router()
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader(testBank))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var body struct {
		Summary struct {
			Total  int `json:"total"`
			Failed int `json:"failed"`
		} `json:"summary"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Summary.Total != 2 {
		t.Errorf("total = %d, want 2", body.Summary.Total)
	}
	if body.Summary.Failed != 2 {
		t.Errorf("failed = %d, want 2 for weak fixtures", body.Summary.Failed)
	}
}

func TestAnalyzeEndpointRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/analyze", strings.NewReader("{not json}\n"))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRefineEndpoint(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/refine?threshold=5.0", strings.NewReader(testBank))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-ndjson" {
		t.Errorf("content type = %q, want ndjson", ct)
	}
	if rec.Header().Get("X-Refine-Summary") == "" {
		t.Error("missing refinement summary header")
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("body has %d lines, want 2", len(lines))
	}
	for _, line := range lines {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Errorf("body line is not JSON: %v", err)
		}
	}
}

func TestRefineEndpointBadThreshold(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/refine?threshold=abc", strings.NewReader(testBank))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
