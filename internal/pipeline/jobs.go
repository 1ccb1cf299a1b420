package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/docstyler/internal/format"
	"github.com/dgallion1/docstyler/internal/styles"
)

// JobStatus represents the state of a batch formatting job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusDecoding  JobStatus = "decoding"
	StatusStyling   JobStatus = "styling"
	StatusEncoding  JobStatus = "encoding"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job tracks the state of a single draft being formatted. The draft bytes
// and rule table go in; the styled .docx bytes and usage report come out.
// Everything dies with the job's TTL.
type Job struct {
	mu sync.Mutex

	ID    string `json:"job_id"`
	DocID string `json:"doc_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	draft  []byte
	rules  styles.RuleTable
	result []byte
	report format.Usage
	errors []string
}

// Progress tracks processing progress.
type Progress struct {
	Lines      int      `json:"lines"`
	Paragraphs int      `json:"paragraphs"`
	Errors     []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetCounts records the decoded line count and produced paragraph count.
func (j *Job) SetCounts(lines, paragraphs int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.Lines = lines
	j.Progress.Paragraphs = paragraphs
	j.UpdatedAt = time.Now()
}

// SetDraft sets the raw draft bytes and the rule table the job formats with.
func (j *Job) SetDraft(data []byte, rules styles.RuleTable) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.draft = data
	j.rules = rules
}

// Draft returns the raw draft bytes and the job's rule table.
func (j *Job) Draft() ([]byte, styles.RuleTable) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.draft, j.rules
}

// SetResult stores the styled document bytes and the usage report, and
// releases the draft.
func (j *Job) SetResult(data []byte, report format.Usage) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = data
	j.report = report
	j.draft = nil
	j.UpdatedAt = time.Now()
}

// Result returns the styled document bytes and usage report, and whether a
// result is available yet.
func (j *Job) Result() ([]byte, format.Usage, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result, j.report, j.result != nil
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID       string       `json:"job_id"`
	DocID    string       `json:"doc_id"`
	Status   JobStatus    `json:"status"`
	Phase    string       `json:"phase"`
	Filename string       `json:"filename"`
	Progress Progress     `json:"progress"`
	Report   format.Usage `json:"report,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:       j.ID,
		DocID:    j.DocID,
		Status:   j.Status,
		Phase:    j.Phase,
		Filename: j.Filename,
		Progress: Progress{
			Lines:      j.Progress.Lines,
			Paragraphs: j.Progress.Paragraphs,
			Errors:     errs,
		},
		Report: j.report,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
