package api

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/docstyler/internal/decode"
	"github.com/dgallion1/docstyler/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// BatchJobRef is the per-file entry in a batch submission response.
type BatchJobRef struct {
	JobID    string `json:"job_id"`
	DocID    string `json:"doc_id"`
	Filename string `json:"filename"`
	Status   string `json:"status"`
	PollURL  string `json:"poll_url"`
	Error    string `json:"error,omitempty"`
}

// handleBatchFormat accepts multiple drafts under the "files" field, queues
// one job per draft, and returns 202 with a poll URL for each.
func (s *Server) handleBatchFormat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*4)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	rules, err := s.resolveRules(r.FormValue("style_map_json"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	refs := make([]BatchJobRef, 0, len(headers))
	queued := 0
	for _, h := range headers {
		filename := sanitizeFilename(h.Filename)
		ref := BatchJobRef{Filename: filename}

		if !decode.IsSupportedExtension(filename) {
			ref.Status = string(pipeline.StatusFailed)
			ref.Error = "unsupported file type"
			refs = append(refs, ref)
			continue
		}

		data, err := readFormFile(h, s.cfg.MaxUploadBytes)
		if err != nil {
			ref.Status = string(pipeline.StatusFailed)
			ref.Error = err.Error()
			refs = append(refs, ref)
			continue
		}

		job := &pipeline.Job{
			ID:        pipeline.NewJobID(),
			DocID:     pipeline.ContentHashHex(data)[:16],
			Status:    pipeline.StatusQueued,
			Phase:     "queued",
			Filename:  filename,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		job.SetDraft(data, rules)

		if err := s.orchestrator.Submit(job); err != nil {
			ref.JobID = job.ID
			ref.DocID = job.DocID
			ref.Status = string(pipeline.StatusFailed)
			ref.Error = err.Error()
			refs = append(refs, ref)
			continue
		}

		ref.JobID = job.ID
		ref.DocID = job.DocID
		ref.Status = string(pipeline.StatusQueued)
		ref.PollURL = "/api/format/" + job.ID + "/status"
		refs = append(refs, ref)
		queued++
	}

	// Whole batch rejected by backpressure is a 503; partial failures
	// still get a 202 so the caller can poll what did queue.
	code := http.StatusAccepted
	if queued == 0 {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"jobs":   refs,
		"queued": queued,
	})
}

// handleJobStatus reports a snapshot of the job state.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// handleJobResult streams the styled document for a completed job.
func (s *Server) handleJobResult(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	data, report, ok := job.Result()
	if !ok {
		snap := job.Snapshot()
		if snap.Status == pipeline.StatusFailed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(snap)
			return
		}
		jsonError(w, fmt.Sprintf("job not finished (status=%s)", snap.Status), http.StatusConflict)
		return
	}

	reportJSON, _ := json.Marshal(report)
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", styledFilename(job.Filename)))
	w.Header().Set("X-Delta-Report", string(reportJSON))
	w.Write(data)
}

// readFormFile opens and fully reads one multipart file, enforcing the
// per-file size limit.
func readFormFile(h *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := h.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return readLimited(f, limit)
}

// readLimited reads r fully, failing once more than limit bytes arrive.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file exceeds maximum size of %d bytes", limit)
	}
	return data, nil
}
