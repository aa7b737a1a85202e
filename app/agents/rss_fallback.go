package agents

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/lucasmn/newsdesk/app/extract"
)

const rssFallbackLimit = 3

// RSSFallback searches Google News RSS for a topic. It backs the news
// searcher when the model response carries no parseable items.
type RSSFallback struct {
	parser *gofeed.Parser
}

func NewRSSFallback(userAgent string) *RSSFallback {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	return &RSSFallback{parser: parser}
}

func (r *RSSFallback) Search(ctx context.Context, topic string) ([]extract.NewsItem, error) {
	feedURL := fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=pt-BR&gl=BR&ceid=BR:pt-419",
		url.QueryEscape(topic))

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news feed for %q: %w", topic, err)
	}

	items := make([]extract.NewsItem, 0, rssFallbackLimit)
	for _, entry := range feed.Items {
		if len(items) == rssFallbackLimit {
			break
		}

		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}

		item := extract.NewsItem{
			Title:   title,
			Source:  extract.DefaultSource,
			Summary: title,
			Date:    extract.DefaultDate,
			Link:    entry.Link,
		}
		if summary := strings.TrimSpace(entry.Description); summary != "" {
			item.Summary = summary
		}
		if entry.PublishedParsed != nil {
			item.Date = entry.PublishedParsed.Format("2006-01-02")
		}
		items = append(items, item)
	}

	return items, nil
}
