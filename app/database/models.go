package database

import (
	"time"
)

// Article is the display-ready news bundle persisted as JSON in the cache.
type Article struct {
	Title         string   `json:"title"`
	CoverLine     string   `json:"cover_line"`
	Summary       string   `json:"summary"`
	FullText      string   `json:"full_text"`
	Source        string   `json:"source"`
	Date          string   `json:"date"`
	Category      string   `json:"category"`
	ImageKeywords []string `json:"image_keywords,omitempty"`
	ImageEmotion  string   `json:"image_emotion,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
}

// CachedArticle is one row of the cache, keyed by (topic, category).
type CachedArticle struct {
	Topic         string
	Category      string
	Article       Article
	AudioData     []byte
	AudioMIMEType string
	CreatedAt     time.Time
}
