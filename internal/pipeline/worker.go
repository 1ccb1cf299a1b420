package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/docstyler/internal/decode"
	"github.com/dgallion1/docstyler/internal/format"
	"github.com/dgallion1/docstyler/internal/stats"
)

// Worker formats a single draft job.
type Worker struct {
	log   *slog.Logger
	stats *stats.FormatStats
	opts  decode.Options
}

func NewWorker(log *slog.Logger, st *stats.FormatStats, opts decode.Options) *Worker {
	return &Worker{log: log, stats: st, opts: opts}
}

// Process runs the full formatting pipeline for a job: decode the draft
// into lines, style them into a document, encode the .docx package.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	draft, rules := job.Draft()

	// Phase 1: Decode
	job.SetStatus(StatusDecoding, "decoding")
	dec, err := decode.ForFile(job.Filename, w.opts)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "decoding")
		return
	}

	lines, err := dec.Lines(bytes.NewReader(draft), job.Filename)
	if err != nil {
		log.Error("decode failed", "error", err)
		job.AddError(fmt.Sprintf("decode: %s", err))
		job.SetStatus(StatusFailed, "decoding")
		return
	}

	// Phase 2: Style
	job.SetStatus(StatusStyling, "styling")
	doc, usage := format.Build(lines, rules)
	job.SetCounts(len(lines), len(doc.Paragraphs))

	// Phase 3: Encode
	job.SetStatus(StatusEncoding, "encoding")
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		log.Error("encode failed", "error", err)
		job.AddError(fmt.Sprintf("encode: %s", err))
		job.SetStatus(StatusFailed, "encoding")
		return
	}

	job.SetResult(buf.Bytes(), usage)
	job.SetStatus(StatusCompleted, "done")

	if w.stats != nil {
		w.stats.Record(time.Since(start).Milliseconds())
	}
	log.Info("formatted draft", "lines", len(lines), "bytes", buf.Len(), "duration_ms", time.Since(start).Milliseconds())
}
