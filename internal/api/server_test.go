package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgallion1/docstyler/internal/config"
	"github.com/dgallion1/docstyler/internal/pipeline"
	"github.com/dgallion1/docstyler/internal/stats"
	"github.com/dgallion1/docstyler/internal/styles"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) (*Server, *pipeline.Orchestrator) {
	t.Helper()
	cfg := config.Config{
		Port:            "0",
		DocstylerAPIKey: testAPIKey,
		WorkerCount:     2,
		MaxQueueSize:    8,
		MaxUploadBytes:  1 << 20,
		JobTTL:          time.Hour,
		StatsWindow:     time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := stats.NewFormatStats(cfg.StatsWindow)
	orch := pipeline.NewOrchestrator(cfg, st, log)
	return NewServer(orch, styles.Default(), st, log, cfg), orch
}

// draftRequest builds an authenticated multipart request with one file part.
func draftRequest(t *testing.T, path, field, filename string, content []byte, extra map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write(content)
	for k, v := range extra {
		mw.WriteField(k, v)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	return req
}

func TestHealthNoAuth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/styles", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/styles", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestFormatDraft(t *testing.T) {
	srv, _ := newTestServer(t)

	draft := []byte("# Title\nIntro text.\n- point one\n1. first item\n")
	req := draftRequest(t, "/api/format", "draft", "notes.txt", draft, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != docxContentType {
		t.Errorf("expected docx content type, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="notes-styled.docx"` {
		t.Errorf("unexpected Content-Disposition: %q", cd)
	}

	var report map[string]int
	if err := json.Unmarshal([]byte(rec.Header().Get("X-Delta-Report")), &report); err != nil {
		t.Fatalf("X-Delta-Report is not valid JSON: %v", err)
	}
	if report["Heading 1"] != 1 || report["Normal"] != 2 || report["Normal Bullet"] != 1 {
		t.Errorf("unexpected usage report: %v", report)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected document bytes in response body")
	}
}

func TestFormatUnsupportedExtension(t *testing.T) {
	srv, _ := newTestServer(t)
	req := draftRequest(t, "/api/format", "draft", "image.png", []byte("x"), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFormatMissingDraft(t *testing.T) {
	srv, _ := newTestServer(t)
	req := draftRequest(t, "/api/format", "other", "notes.txt", []byte("x"), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFormatInvalidStyleMap(t *testing.T) {
	srv, _ := newTestServer(t)
	req := draftRequest(t, "/api/format", "draft", "notes.txt", []byte("hello\n"),
		map[string]string{"style_map_json": "{not json"})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestFormatCustomStyleMap(t *testing.T) {
	srv, _ := newTestServer(t)
	styleMap := `{"Normal": {"font_name": "Arial", "font_size_pt": 14}}`
	req := draftRequest(t, "/api/format", "draft", "notes.txt", []byte("plain line\n"),
		map[string]string{"style_map_json": styleMap})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestStylesEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/styles", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var table map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, name := range []string{"Heading 1", "Normal", "Normal Bullet"} {
		if _, ok := table[name]; !ok {
			t.Errorf("expected style %q in table", name)
		}
	}
}

func TestBatchFormatLifecycle(t *testing.T) {
	srv, orch := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	orch.Start(ctx)

	req := draftRequest(t, "/api/format/batch", "files", "notes.txt",
		[]byte("# Title\nbody\n"), nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Jobs   []BatchJobRef `json:"jobs"`
		Queued int           `json:"queued"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Queued != 1 || len(resp.Jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %+v", resp)
	}
	jobID := resp.Jobs[0].JobID

	// Poll until the worker finishes.
	deadline := time.Now().Add(5 * time.Second)
	var snap pipeline.JobSnapshot
	for {
		statusReq := httptest.NewRequest(http.MethodGet, "/api/format/"+jobID+"/status", nil)
		statusReq.Header.Set("Authorization", "Bearer "+testAPIKey)
		statusRec := httptest.NewRecorder()
		srv.ServeHTTP(statusRec, statusReq)
		if statusRec.Code != http.StatusOK {
			t.Fatalf("status poll: expected 200, got %d", statusRec.Code)
		}
		if err := json.Unmarshal(statusRec.Body.Bytes(), &snap); err != nil {
			t.Fatalf("invalid status JSON: %v", err)
		}
		if snap.Status == pipeline.StatusCompleted || snap.Status == pipeline.StatusFailed {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job did not finish in time: %+v", snap)
		}
		time.Sleep(10 * time.Millisecond)
	}
	if snap.Status != pipeline.StatusCompleted {
		t.Fatalf("expected completed, got %s (%v)", snap.Status, snap.Progress.Errors)
	}

	resultReq := httptest.NewRequest(http.MethodGet, "/api/format/"+jobID+"/result", nil)
	resultReq.Header.Set("Authorization", "Bearer "+testAPIKey)
	resultRec := httptest.NewRecorder()
	srv.ServeHTTP(resultRec, resultReq)
	if resultRec.Code != http.StatusOK {
		t.Fatalf("result: expected 200, got %d: %s", resultRec.Code, resultRec.Body.String())
	}
	if ct := resultRec.Header().Get("Content-Type"); ct != docxContentType {
		t.Errorf("expected docx content type, got %q", ct)
	}
	if resultRec.Header().Get("X-Delta-Report") == "" {
		t.Error("expected usage report header on result")
	}
}

func TestJobStatusMissing(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/format/no-such-job/status", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestJobResultNotReady(t *testing.T) {
	srv, orch := newTestServer(t)

	// A queued job with no worker running stays pending.
	job := &pipeline.Job{
		ID:        pipeline.NewJobID(),
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		Filename:  "notes.txt",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := orch.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/format/"+job.ID+"/result", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestFormatStatsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/stats/format", nil)
	req.Header.Set("Authorization", "Bearer "+testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := resp["queue_depth"]; !ok {
		t.Error("expected queue_depth in stats response")
	}
	if _, ok := resp["stats"]; !ok {
		t.Error("expected stats in stats response")
	}
}
