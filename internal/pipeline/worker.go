package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/AbdulNafisa/adobe-hackathon/internal/outline"
	"github.com/AbdulNafisa/adobe-hackathon/internal/reader"
)

// Worker processes a single outline-extraction job.
type Worker struct {
	builder *outline.Builder
	log     *slog.Logger
}

func NewWorker(builder *outline.Builder, log *slog.Logger) *Worker {
	return &Worker{builder: builder, log: log}
}

// Process runs the extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	// Phase 1: Materialize and open the document. The reader backends
	// work on paths, so the uploaded bytes go to a temp file keeping
	// the original extension for format dispatch.
	job.SetStatus(StatusReading, "reading")

	data := job.FileData()
	job.ContentHash = ContentHashHex(data)

	tmpPath, err := writeTemp(data, job.Filename)
	if err != nil {
		log.Error("temp file write failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "reading")
		return
	}
	defer os.Remove(tmpPath)

	r, err := reader.Open(tmpPath)
	if err != nil {
		log.Error("open failed", "error", err)
		job.AddError(fmt.Sprintf("open: %s", err))
		job.SetStatus(StatusFailed, "reading")
		return
	}
	defer r.Close()

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "reading")
		return
	}

	// Phase 2: Extract and normalize the outline.
	job.SetStatus(StatusExtracting, "extracting")
	doc := w.builder.Extract(r)
	if doc.Title == "" {
		doc.Title = stem(job.Filename)
	}

	job.SetResult(&doc)
	job.SetStatus(StatusCompleted, "done")
	log.Info("outline extracted", "title", doc.Title, "headings", len(doc.Outline))
}

// writeTemp stores uploaded bytes in a temp file whose name keeps the
// upload's extension.
func writeTemp(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	tmp, err := os.CreateTemp("", "docsift-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
