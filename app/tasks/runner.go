package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/lucasmn/newsdesk/app/cfg"
	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/pipeline"
)

// TopicProcessor produces one finished article per topic.
type TopicProcessor interface {
	ProcessTopic(ctx context.Context, topic, category string) (*database.Article, error)
}

// Runner executes batch jobs in the background, one goroutine per job,
// topics processed sequentially with a pause in between.
type Runner struct {
	processor  TopicProcessor
	repository database.ArticleRepository
	store      *JobStore
	pause      time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func NewRunner(processor TopicProcessor, repository database.ArticleRepository, store *JobStore) *Runner {
	ctx, cancel := context.WithCancel(context.Background())

	return &Runner{
		processor:  processor,
		repository: repository,
		store:      store,
		pause:      time.Duration(cfg.Get().BatchPause) * time.Second,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Stop cancels running jobs and waits for their goroutines to return.
func (r *Runner) Stop() {
	r.cancel()
	r.wg.Wait()
}

// EnqueueBatch registers a job for the topics and starts processing it in
// the background. The returned id is used to poll job status.
func (r *Runner) EnqueueBatch(topics []extract.TopicCandidate) string {
	job := r.store.Create(len(topics))

	r.wg.Add(1)
	go r.run(job.ID, topics)

	slog.Info("Batch job enqueued", "job_id", job.ID, "topics", len(topics))

	return job.ID
}

func (r *Runner) run(jobID string, topics []extract.TopicCandidate) {
	defer r.wg.Done()

	for i, candidate := range topics {
		select {
		case <-r.ctx.Done():
			r.store.Fail(jobID, "batch interrupted by shutdown")
			return
		default:
		}

		outcome := pipeline.TopicOutcome{Topic: candidate.Topic, Category: candidate.Category}

		article, err := r.processor.ProcessTopic(r.ctx, candidate.Topic, candidate.Category)
		if err != nil {
			outcome.Err = err.Error()
			slog.Warn("Batch topic failed", "job_id", jobID, "topic", candidate.Topic, "error", err)
		} else {
			outcome.Article = article
			if storeErr := r.repository.Put(candidate.Topic, candidate.Category, *article, nil, ""); storeErr != nil {
				slog.Warn("Failed to cache batch article", "job_id", jobID, "topic", candidate.Topic, "error", storeErr)
			}
		}

		r.store.Advance(jobID, outcome)

		if r.pause > 0 && i < len(topics)-1 {
			select {
			case <-r.ctx.Done():
				r.store.Fail(jobID, "batch interrupted by shutdown")
				return
			case <-time.After(r.pause):
			}
		}
	}

	r.store.Complete(jobID)
	slog.Info("Batch job finished", "job_id", jobID, "topics", len(topics))
}
