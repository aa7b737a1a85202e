package tasks

import (
	"testing"

	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/pipeline"
)

func TestJobStore_CreateAndGet(t *testing.T) {
	store := NewJobStore()

	job := store.Create(3)
	if job.ID == "" {
		t.Fatalf("Expected a job id")
	}
	if job.Status != StatusProcessing {
		t.Errorf("Expected processing status, got %q", job.Status)
	}
	if job.Total != 3 || job.Progress != 0 {
		t.Errorf("Unexpected counters: %+v", job)
	}
	if job.StartedAt.IsZero() {
		t.Errorf("Expected started timestamp")
	}

	got, ok := store.Get(job.ID)
	if !ok {
		t.Fatalf("Expected job to be retrievable")
	}
	if got.ID != job.ID {
		t.Errorf("Expected id %q, got %q", job.ID, got.ID)
	}
	if store.Count() != 1 {
		t.Errorf("Expected 1 job, got %d", store.Count())
	}
}

func TestJobStore_UnknownJob(t *testing.T) {
	store := NewJobStore()

	if _, ok := store.Get("nope"); ok {
		t.Errorf("Expected no job for unknown id")
	}
}

func TestJobStore_AdvanceAndComplete(t *testing.T) {
	store := NewJobStore()
	job := store.Create(2)

	store.Advance(job.ID, pipeline.TopicOutcome{Topic: "A", Article: &database.Article{Title: "T"}})
	store.Advance(job.ID, pipeline.TopicOutcome{Topic: "B", Err: "no news found"})
	store.Complete(job.ID)

	got, _ := store.Get(job.ID)
	if got.Progress != 2 {
		t.Errorf("Expected progress 2, got %d", got.Progress)
	}
	if len(got.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(got.Results))
	}
	if got.Results[1].Err != "no news found" {
		t.Errorf("Expected failure recorded, got %+v", got.Results[1])
	}
	if got.Status != StatusCompleted {
		t.Errorf("Expected completed status, got %q", got.Status)
	}
	if got.CompletedAt == nil {
		t.Errorf("Expected completion timestamp")
	}
}

func TestJobStore_Fail(t *testing.T) {
	store := NewJobStore()
	job := store.Create(1)

	store.Fail(job.ID, "batch interrupted by shutdown")

	got, _ := store.Get(job.ID)
	if got.Status != StatusError {
		t.Errorf("Expected error status, got %q", got.Status)
	}
	if got.Error != "batch interrupted by shutdown" {
		t.Errorf("Unexpected error message: %q", got.Error)
	}
}

func TestJobStore_SnapshotIsolation(t *testing.T) {
	store := NewJobStore()
	job := store.Create(1)

	first, _ := store.Get(job.ID)
	store.Advance(job.ID, pipeline.TopicOutcome{Topic: "A"})

	if len(first.Results) != 0 {
		t.Errorf("Expected earlier snapshot untouched, got %d results", len(first.Results))
	}

	second, _ := store.Get(job.ID)
	second.Results = append(second.Results, pipeline.TopicOutcome{Topic: "B"})

	third, _ := store.Get(job.ID)
	if len(third.Results) != 1 {
		t.Errorf("Expected snapshot mutation not to leak, got %d results", len(third.Results))
	}
}
