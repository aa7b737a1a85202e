package agents

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/gateway"
)

// TopicFinder asks the model for the week's trending topics and parses the
// numbered list it returns.
type TopicFinder struct {
	caller   gateway.Caller
	profiles *Profiles
	now      func() time.Time
}

func NewTopicFinder(caller gateway.Caller, profiles *Profiles) *TopicFinder {
	return &TopicFinder{
		caller:   caller,
		profiles: profiles,
		now:      time.Now,
	}
}

func (f *TopicFinder) Run(ctx context.Context, limit int) ([]extract.TopicCandidate, error) {
	spec, err := f.profiles.Get(ProfileTopicFinder)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Data de hoje: %s\nListe os %d tópicos mais relevantes e comentados da semana.",
		f.now().Format("2006-01-02"), limit)

	response, err := f.caller.Call(ctx, spec, message)
	if err != nil {
		return nil, err
	}

	topics := extract.Topics(response)
	if len(topics) > limit {
		topics = topics[:limit]
	}

	slog.Debug("Topic discovery finished", "requested", limit, "found", len(topics))

	return topics, nil
}
