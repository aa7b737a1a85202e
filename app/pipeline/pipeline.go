package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucasmn/newsdesk/app/agents"
	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/extract"
)

// TopicOutcome records the result of processing one topic inside a batch.
type TopicOutcome struct {
	Topic    string            `json:"topic"`
	Category string            `json:"category"`
	Article  *database.Article `json:"article,omitempty"`
	Err      string            `json:"error,omitempty"`
}

// Pipeline runs the production chain for a topic: search news, expand the
// content, edit, review and publish.
type Pipeline struct {
	searcher   *agents.NewsSearcher
	collector  *agents.ContentCollector
	editor     *agents.ContentEditor
	reviewer   *agents.ContentReviewer
	publisher  *agents.Publisher
	repository database.ArticleRepository
}

func New(searcher *agents.NewsSearcher, collector *agents.ContentCollector,
	editor *agents.ContentEditor, reviewer *agents.ContentReviewer,
	publisher *agents.Publisher, repository database.ArticleRepository) *Pipeline {
	return &Pipeline{
		searcher:   searcher,
		collector:  collector,
		editor:     editor,
		reviewer:   reviewer,
		publisher:  publisher,
		repository: repository,
	}
}

// ProcessTopic produces a finished article for one topic. Stage misses
// surface as errors; a panic inside a stage is converted to an error so a
// batch can keep going.
func (p *Pipeline) ProcessTopic(ctx context.Context, topic, category string) (article *database.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			article = nil
			err = fmt.Errorf("panic while processing topic %q: %v", topic, r)
			slog.Error("Topic processing panicked", "topic", topic, "panic", r)
		}
	}()

	slog.Info("Processing topic", "topic", topic, "category", category)

	items, err := p.searcher.Run(ctx, topic, category)
	if err != nil {
		return nil, fmt.Errorf("news search failed for topic %q: %w", topic, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no news found for topic %q", topic)
	}

	expanded, err := p.collector.Run(ctx, topic, category, items)
	if err != nil {
		return nil, fmt.Errorf("content collection failed for topic %q: %w", topic, err)
	}

	edited, err := p.editor.Run(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("content editing failed for topic %q: %w", topic, err)
	}

	reviewed, err := p.reviewer.Run(ctx, extract.ReviewedContent{
		EditedContent: edited,
		FullText:      expanded.FullText,
	})
	if err != nil {
		return nil, fmt.Errorf("content review failed for topic %q: %w", topic, err)
	}

	result := assemble(category, reviewed, expanded)

	if p.publisher != nil {
		p.publisher.Publish(topic, result)
	}

	slog.Info("Topic processed", "topic", topic, "title", result.Title)

	return &result, nil
}

// ProcessTopics runs topics sequentially and records a per-topic outcome.
// A failed topic never stops the batch.
func (p *Pipeline) ProcessTopics(ctx context.Context, topics []extract.TopicCandidate) []TopicOutcome {
	outcomes := make([]TopicOutcome, 0, len(topics))

	for _, candidate := range topics {
		outcome := TopicOutcome{Topic: candidate.Topic, Category: candidate.Category}

		article, err := p.ProcessTopic(ctx, candidate.Topic, candidate.Category)
		if err != nil {
			outcome.Err = err.Error()
			slog.Warn("Topic failed", "topic", candidate.Topic, "error", err)
		} else {
			outcome.Article = article
		}

		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// GenerateAndCache returns the cached article for (topic, category) when one
// exists, otherwise processes the topic and stores the result. The boolean
// reports a cache hit.
func (p *Pipeline) GenerateAndCache(ctx context.Context, topic, category string) (*database.Article, bool, error) {
	cached, err := p.repository.Get(topic, category)
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup failed for topic %q: %w", topic, err)
	}
	if cached != nil {
		slog.Debug("Cache hit", "topic", topic, "category", category)
		return &cached.Article, true, nil
	}

	article, err := p.ProcessTopic(ctx, topic, category)
	if err != nil {
		return nil, false, err
	}

	if err := p.repository.Put(topic, category, *article, nil, ""); err != nil {
		return nil, false, fmt.Errorf("cache store failed for topic %q: %w", topic, err)
	}

	return article, false, nil
}

func assemble(category string, reviewed extract.ReviewedContent, expanded extract.ExpandedArticle) database.Article {
	return database.Article{
		Title:         reviewed.Title,
		CoverLine:     reviewed.CoverLine,
		Summary:       reviewed.Summary,
		FullText:      reviewed.FullText,
		Source:        expanded.Source,
		Date:          reviewed.Date,
		Category:      category,
		ImageKeywords: reviewed.ImageKeywords,
		ImageEmotion:  reviewed.ImageEmotion,
	}
}
