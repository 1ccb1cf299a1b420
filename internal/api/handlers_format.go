package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/docstyler/internal/decode"
	"github.com/dgallion1/docstyler/internal/format"
	"github.com/dgallion1/docstyler/internal/styles"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleFormat styles a single draft synchronously and streams the .docx
// back, with the per-style usage report in the X-Delta-Report header.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("draft")
	if err != nil {
		jsonError(w, "draft is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !decode.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := readLimited(file, s.cfg.MaxUploadBytes)
	if err != nil {
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	rules, err := s.resolveRules(r.FormValue("style_map_json"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	dec, err := decode.ForFile(filename, decode.Options{
		PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext,
	})
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	lines, err := dec.Lines(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "decode draft: "+err.Error(), http.StatusBadRequest)
		return
	}

	doc, usage := format.Build(lines, rules)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		s.log.Error("encode failed", "filename", filename, "error", err)
		jsonError(w, "failed to encode document", http.StatusInternalServerError)
		return
	}

	report, _ := json.Marshal(usage)
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", styledFilename(filename)))
	w.Header().Set("X-Delta-Report", string(report))
	w.Write(buf.Bytes())

	s.stats.Record(time.Since(start).Milliseconds())
}

// handleStyles returns the process's active default rule table.
func (s *Server) handleStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.baseRules)
}

func (s *Server) handleFormatStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       s.stats.Snapshot(),
	})
}

// resolveRules picks the request's rule table: the caller's style map when
// supplied, else the process default. Each caller-supplied map is parsed
// into a fresh table owned by the request.
func (s *Server) resolveRules(styleMapJSON string) (styles.RuleTable, error) {
	if styleMapJSON == "" {
		return s.baseRules, nil
	}
	rules, err := styles.ParseJSON([]byte(styleMapJSON))
	if err != nil {
		return nil, fmt.Errorf("invalid style_map_json: %w", err)
	}
	return rules, nil
}

func styledFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "draft"
	}
	return base + "-styled.docx"
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
