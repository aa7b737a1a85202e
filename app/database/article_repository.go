package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

type ArticleRepositoryImpl struct {
	db      *DB
	matcher *search.Matcher
}

var _ ArticleRepository = (*ArticleRepositoryImpl)(nil)

func NewArticleRepository(db *DB) *ArticleRepositoryImpl {
	return &ArticleRepositoryImpl{
		db: db,
		// Titles are Portuguese; matching must survive case and accents
		// ("bitcoin" finds "Bitcoin", "eleicoes" finds "Eleições").
		matcher: search.New(language.BrazilianPortuguese, search.IgnoreCase, search.IgnoreDiacritics),
	}
}

func (r *ArticleRepositoryImpl) Get(topic, category string) (*CachedArticle, error) {
	row := r.db.QueryRow(`
		SELECT topic, category, article, audio_data, audio_mime_type, created_at
		FROM articles
		WHERE topic = ? AND category = ?
	`, topic, category)

	cached, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached article: %w", err)
	}

	return cached, nil
}

// Put fully replaces any existing row for the same key. The creation
// timestamp is assigned here, never by the caller.
func (r *ArticleRepositoryImpl) Put(topic, category string, article Article, audio []byte, mimeType string) error {
	payload, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to serialize article: %w", err)
	}

	var mime any
	if mimeType != "" {
		mime = mimeType
	}

	_, err = r.db.Exec(`
		REPLACE INTO articles (topic, category, article, audio_data, audio_mime_type, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, topic, category, string(payload), audio, mime)

	if err != nil {
		return fmt.Errorf("failed to store article: %w", err)
	}

	return nil
}

// SearchByTitle returns cached articles whose stored display title contains
// the fragment, newest first, at most limit entries. Matching ignores case
// and diacritics; the cache key is not consulted.
func (r *ArticleRepositoryImpl) SearchByTitle(fragment string, limit int) ([]CachedArticle, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT topic, category, article, audio_data, audio_mime_type, created_at
		FROM articles
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	defer rows.Close()

	var results []CachedArticle
	for rows.Next() {
		cached, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}

		if start, _ := r.matcher.IndexString(cached.Article.Title, fragment); start < 0 {
			continue
		}

		results = append(results, *cached)
		if len(results) == limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return results, nil
}

func (r *ArticleRepositoryImpl) History(limit int) ([]CachedArticle, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(`
		SELECT topic, category, article, audio_data, audio_mime_type, created_at
		FROM articles
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get article history: %w", err)
	}
	defer rows.Close()

	var results []CachedArticle
	for rows.Next() {
		cached, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		results = append(results, *cached)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}

	return results, nil
}

func (r *ArticleRepositoryImpl) Clear() (int, error) {
	result, err := r.db.Exec("DELETE FROM articles")
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count removed rows: %w", err)
	}

	return int(removed), nil
}

func (r *ArticleRepositoryImpl) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cached articles: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*CachedArticle, error) {
	var cached CachedArticle
	var payload string
	var mime sql.NullString
	var createdAt string

	err := row.Scan(&cached.Topic, &cached.Category, &payload, &cached.AudioData, &mime, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payload), &cached.Article); err != nil {
		return nil, fmt.Errorf("failed to decode article payload: %w", err)
	}

	cached.AudioMIMEType = mime.String
	cached.CreatedAt = parseTimestamp(createdAt)

	return &cached, nil
}

// parseTimestamp handles the formats SQLite emits for CURRENT_TIMESTAMP.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
