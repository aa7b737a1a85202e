package agents

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/gateway"
)

// NewsFallback recovers news items from an alternative source when the model
// response yields none.
type NewsFallback interface {
	Search(ctx context.Context, topic string) ([]extract.NewsItem, error)
}

// NewsSearcher asks the model for recent news about a topic. When the
// response contains no parseable items the optional fallback is consulted.
type NewsSearcher struct {
	caller   gateway.Caller
	profiles *Profiles
	fallback NewsFallback
}

func NewNewsSearcher(caller gateway.Caller, profiles *Profiles, fallback NewsFallback) *NewsSearcher {
	return &NewsSearcher{
		caller:   caller,
		profiles: profiles,
		fallback: fallback,
	}
}

func (s *NewsSearcher) Run(ctx context.Context, topic, category string) ([]extract.NewsItem, error) {
	spec, err := s.profiles.Get(ProfileNewsSearcher)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Tópico: %s\nCategoria: %s", topic, category)

	response, err := s.caller.Call(ctx, spec, message)
	if err != nil {
		return nil, err
	}

	items := extract.NewsItems(response)
	if len(items) == 0 && s.fallback != nil {
		slog.Warn("No news parsed from model response, trying fallback", "topic", topic)
		items, err = s.fallback.Search(ctx, topic)
		if err != nil {
			slog.Warn("News fallback failed", "topic", topic, "error", err)
			return nil, nil
		}
	}

	return items, nil
}
