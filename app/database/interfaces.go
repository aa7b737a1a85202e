package database

// ArticleRepository is the persistence contract for generated articles.
// A put is always a full replace for its (topic, category) key; callers
// must re-supply the article payload on audio-only updates.
type ArticleRepository interface {
	Get(topic, category string) (*CachedArticle, error)
	Put(topic, category string, article Article, audio []byte, mimeType string) error

	SearchByTitle(fragment string, limit int) ([]CachedArticle, error)
	History(limit int) ([]CachedArticle, error)

	Clear() (int, error)
	Count() (int, error)
}
