package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/gateway"
)

// PageFetcher pulls readable text out of a web page. Used when the model
// produced no full text and the news item carries a source link.
type PageFetcher interface {
	Fetch(ctx context.Context, link string) (string, error)
}

// ContentCollector expands summarized news items into a full article text.
type ContentCollector struct {
	caller   gateway.Caller
	profiles *Profiles
	pages    PageFetcher
}

func NewContentCollector(caller gateway.Caller, profiles *Profiles, pages PageFetcher) *ContentCollector {
	return &ContentCollector{
		caller:   caller,
		profiles: profiles,
		pages:    pages,
	}
}

func (c *ContentCollector) Run(ctx context.Context, topic, category string, items []extract.NewsItem) (extract.ExpandedArticle, error) {
	spec, err := c.profiles.Get(ProfileContentCollector)
	if err != nil {
		return extract.ExpandedArticle{}, err
	}

	response, err := c.caller.Call(ctx, spec, collectorMessage(topic, category, items))
	if err != nil {
		return extract.ExpandedArticle{}, err
	}

	article := extract.Expanded(response)

	if article.FullText == "" && c.pages != nil && len(items) > 0 && items[0].Link != "" {
		slog.Warn("No full text in model response, fetching source page", "topic", topic, "link", items[0].Link)
		text, err := c.pages.Fetch(ctx, items[0].Link)
		if err != nil {
			slog.Warn("Source page fetch failed", "topic", topic, "error", err)
		} else {
			article.FullText = text
		}
	}

	if len(items) > 0 {
		if article.Source == "" || article.Source == extract.DefaultSource {
			if items[0].Source != "" {
				article.Source = items[0].Source
			}
		}
		if article.Date == "" || article.Date == extract.DefaultDate {
			if items[0].Date != "" {
				article.Date = items[0].Date
			}
		}
	}
	if article.Source == "" {
		article.Source = extract.DefaultSource
	}
	if article.Date == "" {
		article.Date = extract.DefaultDate
	}

	return article, nil
}

func collectorMessage(topic, category string, items []extract.NewsItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tópico: %s\nCategoria: %s\n\nNotícias encontradas:\n", topic, category)
	for _, item := range items {
		fmt.Fprintf(&b, "- Título: %s\n  Fonte: %s\n  Resumo: %s\n  Data: %s\n",
			item.Title, item.Source, item.Summary, item.Date)
	}

	return b.String()
}
