package api

import (
	"context"

	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/tasks"
)

type TopicDiscoverer interface {
	Run(ctx context.Context, limit int) ([]extract.TopicCandidate, error)
}

type NewsGenerator interface {
	GenerateAndCache(ctx context.Context, topic, category string) (*database.Article, bool, error)
}

type BatchEnqueuer interface {
	EnqueueBatch(topics []extract.TopicCandidate) string
}

type Handler struct {
	finder      TopicDiscoverer
	generator   NewsGenerator
	runner      BatchEnqueuer
	jobs        *tasks.JobStore
	articleRepo database.ArticleRepository
}
