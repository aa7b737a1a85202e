package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmn/newsdesk/app/pipeline"
)

type JobStatus string

const (
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusError      JobStatus = "error"
)

// Job tracks one background batch. Progress counts topics attempted, not
// topics that succeeded; per-topic failures live in Results.
type Job struct {
	ID          string                  `json:"id"`
	Status      JobStatus               `json:"status"`
	Progress    int                     `json:"progress"`
	Total       int                     `json:"total"`
	Results     []pipeline.TopicOutcome `json:"results"`
	Error       string                  `json:"error,omitempty"`
	StartedAt   time.Time               `json:"started_at"`
	CompletedAt *time.Time              `json:"completed_at,omitempty"`
}

// JobStore keeps batch jobs in memory. Callers always get snapshot copies;
// only the runner mutates jobs, through the store.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
}

func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*Job)}
}

func (s *JobStore) Create(total int) Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := &Job{
		ID:        uuid.NewString(),
		Status:    StatusProcessing,
		Total:     total,
		Results:   make([]pipeline.TopicOutcome, 0, total),
		StartedAt: time.Now().UTC(),
	}
	s.jobs[job.ID] = job

	return snapshot(job)
}

func (s *JobStore) Get(id string) (Job, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return Job{}, false
	}
	return snapshot(job), true
}

func (s *JobStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Advance records one topic outcome and bumps the progress counter.
func (s *JobStore) Advance(id string, outcome pipeline.TopicOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	job.Results = append(job.Results, outcome)
	job.Progress++
}

func (s *JobStore) Complete(id string) {
	s.finish(id, StatusCompleted, "")
}

func (s *JobStore) Fail(id, message string) {
	s.finish(id, StatusError, message)
}

func (s *JobStore) finish(id string, status JobStatus, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return
	}
	now := time.Now().UTC()
	job.Status = status
	job.Error = message
	job.CompletedAt = &now
}

func snapshot(job *Job) Job {
	copied := *job
	copied.Results = make([]pipeline.TopicOutcome, len(job.Results))
	copy(copied.Results, job.Results)
	return copied
}
