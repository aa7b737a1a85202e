package tasks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lucasmn/newsdesk/app/cfg"
	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/extract"
)

type fakeProcessor struct {
	failTopics map[string]bool
	delay      time.Duration
}

func (f *fakeProcessor) ProcessTopic(ctx context.Context, topic, category string) (*database.Article, error) {
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.failTopics[topic] {
		return nil, fmt.Errorf("no news found for topic %q", topic)
	}
	return &database.Article{Title: "Artigo: " + topic, Category: category}, nil
}

type recordingRepository struct {
	puts []string
}

func (r *recordingRepository) Get(_, _ string) (*database.CachedArticle, error) { return nil, nil }

func (r *recordingRepository) Put(topic, _ string, _ database.Article, _ []byte, _ string) error {
	r.puts = append(r.puts, topic)
	return nil
}

func (r *recordingRepository) SearchByTitle(_ string, _ int) ([]database.CachedArticle, error) {
	return nil, nil
}

func (r *recordingRepository) History(_ int) ([]database.CachedArticle, error) { return nil, nil }
func (r *recordingRepository) Clear() (int, error)                             { return 0, nil }
func (r *recordingRepository) Count() (int, error)                             { return 0, nil }

func waitForStatus(t *testing.T, store *JobStore, id string, status JobStatus) Job {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := store.Get(id)
		if ok && job.Status == status {
			return job
		}
		time.Sleep(10 * time.Millisecond)
	}

	job, _ := store.Get(id)
	t.Fatalf("Job never reached status %q, last: %+v", status, job)
	return Job{}
}

func testTopics(names ...string) []extract.TopicCandidate {
	topics := make([]extract.TopicCandidate, 0, len(names))
	for _, name := range names {
		topics = append(topics, extract.TopicCandidate{Topic: name, Category: "Geral"})
	}
	return topics
}

func TestRunner_BatchWithPartialFailure(t *testing.T) {
	cfg.Set(&cfg.Cfg{BatchPause: 0})

	store := NewJobStore()
	repo := &recordingRepository{}
	processor := &fakeProcessor{failTopics: map[string]bool{"Tópico 3": true}}
	runner := NewRunner(processor, repo, store)
	defer runner.Stop()

	id := runner.EnqueueBatch(testTopics("Tópico 1", "Tópico 2", "Tópico 3", "Tópico 4", "Tópico 5"))

	job := waitForStatus(t, store, id, StatusCompleted)

	if job.Progress != 5 || job.Total != 5 {
		t.Errorf("Unexpected counters: progress=%d total=%d", job.Progress, job.Total)
	}
	if len(job.Results) != 5 {
		t.Fatalf("Expected 5 results, got %d", len(job.Results))
	}

	failures := 0
	for _, outcome := range job.Results {
		if outcome.Err != "" {
			failures++
			if outcome.Topic != "Tópico 3" {
				t.Errorf("Unexpected failed topic: %+v", outcome)
			}
			continue
		}
		if outcome.Article == nil {
			t.Errorf("Expected article for %q", outcome.Topic)
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failure, got %d", failures)
	}

	if len(repo.puts) != 4 {
		t.Errorf("Expected 4 cached articles, got %d", len(repo.puts))
	}
}

func TestRunner_ProgressIncrements(t *testing.T) {
	cfg.Set(&cfg.Cfg{BatchPause: 0})

	store := NewJobStore()
	processor := &fakeProcessor{delay: 50 * time.Millisecond}
	runner := NewRunner(processor, &recordingRepository{}, store)
	defer runner.Stop()

	id := runner.EnqueueBatch(testTopics("A", "B", "C"))

	deadline := time.Now().Add(5 * time.Second)
	sawPartial := false
	for time.Now().Before(deadline) {
		job, _ := store.Get(id)
		if job.Progress > 0 && job.Progress < job.Total {
			sawPartial = true
		}
		if job.Status == StatusCompleted {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if !sawPartial {
		t.Errorf("Expected to observe partial progress while the batch runs")
	}
	waitForStatus(t, store, id, StatusCompleted)
}

func TestRunner_StopInterruptsBatch(t *testing.T) {
	cfg.Set(&cfg.Cfg{BatchPause: 0})

	store := NewJobStore()
	processor := &fakeProcessor{delay: time.Hour}
	runner := NewRunner(processor, &recordingRepository{}, store)

	id := runner.EnqueueBatch(testTopics("A", "B"))

	// Give the goroutine a moment to enter the first topic
	time.Sleep(20 * time.Millisecond)
	runner.Stop()

	job, _ := store.Get(id)
	if job.Status == StatusProcessing {
		t.Errorf("Expected job to leave processing state after stop, got %+v", job)
	}
}

func TestRunner_EmptyBatchCompletes(t *testing.T) {
	cfg.Set(&cfg.Cfg{BatchPause: 0})

	store := NewJobStore()
	runner := NewRunner(&fakeProcessor{}, &recordingRepository{}, store)
	defer runner.Stop()

	id := runner.EnqueueBatch(nil)

	job := waitForStatus(t, store, id, StatusCompleted)
	if job.Total != 0 || job.Progress != 0 {
		t.Errorf("Unexpected counters: %+v", job)
	}
}
