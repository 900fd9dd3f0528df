package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/AbdulNafisa/adobe-hackathon/internal/collection"
	"github.com/AbdulNafisa/adobe-hackathon/internal/config"
	"github.com/AbdulNafisa/adobe-hackathon/internal/lexicon"
	"github.com/AbdulNafisa/adobe-hackathon/internal/outline"
	"github.com/AbdulNafisa/adobe-hackathon/internal/pipeline"
	"github.com/AbdulNafisa/adobe-hackathon/internal/relevance"
	"github.com/AbdulNafisa/adobe-hackathon/internal/section"
)

const testAPIKey = "test-key"

// newTestServer wires a server whose orchestrator is not started, so
// submitted jobs stay queued.
func newTestServer(t *testing.T) (*Server, *pipeline.Orchestrator) {
	t.Helper()
	cfg := config.Config{
		Port:           "0",
		APIKey:         testAPIKey,
		WorkerCount:    2,
		MaxQueueSize:   8,
		MaxUploadBytes: 1 << 20,
		JobTTL:         time.Hour,
	}
	lex := lexicon.Default()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	builder := outline.NewBuilder(outline.NewClassifier(lex.StructuralKeywords))
	orch := pipeline.NewOrchestrator(cfg, builder, log)
	ranker := collection.NewRanker(section.NewSegmenter(lex.HeaderIndicators), relevance.NewScorer(lex), log)
	return NewServer(orch, ranker, log, cfg), orch
}

func TestStats_ReportsQueueDepth(t *testing.T) {
	srv, orch := newTestServer(t)

	job := &pipeline.Job{ID: pipeline.NewJobID(), Status: pipeline.StatusQueued}
	if err := orch.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		QueueDepth   int `json:"queue_depth"`
		Workers      int `json:"workers"`
		MaxQueueSize int `json:"max_queue_size"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.QueueDepth != 1 {
		t.Errorf("queue_depth = %d, want 1", body.QueueDepth)
	}
	if body.Workers != 2 || body.MaxQueueSize != 8 {
		t.Errorf("unexpected pool stats: %+v", body)
	}
}

func TestStats_RequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without bearer token, got %d", rec.Code)
	}
}
