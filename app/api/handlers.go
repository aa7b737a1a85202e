package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucasmn/newsdesk/app/audio"
	"github.com/lucasmn/newsdesk/app/database"
	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/tasks"
)

const (
	defaultTopicLimit = 15
	maxTopicLimit     = 50
	maxBatchTopics    = 20
	defaultListLimit  = 10
	maxListLimit      = 100
)

func NewHandler(finder TopicDiscoverer, generator NewsGenerator, runner BatchEnqueuer,
	jobs *tasks.JobStore, articleRepo database.ArticleRepository) *Handler {
	return &Handler{
		finder:      finder,
		generator:   generator,
		runner:      runner,
		jobs:        jobs,
		articleRepo: articleRepo,
	}
}

func (h *Handler) GetTopics(c *gin.Context) {
	limit := clampLimit(c.Query("limit"), defaultTopicLimit, maxTopicLimit)

	topics, err := h.finder.Run(c.Request.Context(), limit)
	if err != nil {
		slog.Error("Topic discovery failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to discover topics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topics": topics,
		"total":  len(topics),
	})
}

func (h *Handler) GetNews(c *gin.Context) {
	topic := strings.TrimSpace(c.Param("topic"))
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing topic parameter"})
		return
	}
	category := requestCategory(c.Query("categoria"), c.Query("category"))

	h.generate(c, topic, category)
}

type newsRequest struct {
	Topico    string `json:"topico"`
	Topic     string `json:"topic"`
	Categoria string `json:"categoria"`
	Category  string `json:"category"`
}

func (r newsRequest) topic() string {
	if topic := strings.TrimSpace(r.Topico); topic != "" {
		return topic
	}
	return strings.TrimSpace(r.Topic)
}

func (r newsRequest) category() string {
	return requestCategory(r.Categoria, r.Category)
}

func (h *Handler) PostNews(c *gin.Context) {
	var req newsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	topic := req.topic()
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing topic"})
		return
	}

	h.generate(c, topic, req.category())
}

func (h *Handler) generate(c *gin.Context, topic, category string) {
	article, fromCache, err := h.generator.GenerateAndCache(c.Request.Context(), topic, category)
	if err != nil {
		slog.Error("News generation failed", "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate news",
			"topic": topic,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"topic":      topic,
		"category":   article.Category,
		"article":    article,
		"from_cache": fromCache,
	})
}

type batchRequest struct {
	Topics  []json.RawMessage `json:"topics"`
	Topicos []json.RawMessage `json:"topicos"`
}

func (h *Handler) PostBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entries := req.Topics
	if len(entries) == 0 {
		entries = req.Topicos
	}
	if len(entries) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No topics provided"})
		return
	}
	if len(entries) > maxBatchTopics {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Too many topics",
			"max":   maxBatchTopics,
		})
		return
	}

	topics := make([]extract.TopicCandidate, 0, len(entries))
	for _, entry := range entries {
		candidate, ok := parseBatchEntry(entry)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic entry"})
			return
		}
		topics = append(topics, candidate)
	}

	jobID := h.runner.EnqueueBatch(topics)

	c.JSON(http.StatusAccepted, gin.H{
		"job_id":     jobID,
		"total":      len(topics),
		"status_url": "/api/status/" + jobID,
	})
}

// parseBatchEntry accepts either a plain topic string or an object with
// topico/categoria fields.
func parseBatchEntry(entry json.RawMessage) (extract.TopicCandidate, bool) {
	var name string
	if err := json.Unmarshal(entry, &name); err == nil {
		name = strings.TrimSpace(name)
		if name == "" {
			return extract.TopicCandidate{}, false
		}
		return extract.TopicCandidate{Topic: name, Category: extract.DefaultCategory}, true
	}

	var req newsRequest
	if err := json.Unmarshal(entry, &req); err != nil {
		return extract.TopicCandidate{}, false
	}
	topic := req.topic()
	if topic == "" {
		return extract.TopicCandidate{}, false
	}
	return extract.TopicCandidate{Topic: topic, Category: req.category()}, true
}

func (h *Handler) GetStatus(c *gin.Context) {
	id := c.Param("id")

	job, ok := h.jobs.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *Handler) GetSearch(c *gin.Context) {
	fragment := strings.TrimSpace(c.Query("q"))
	if fragment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing q parameter"})
		return
	}
	limit := clampLimit(c.Query("limit"), defaultListLimit, maxListLimit)

	results, err := h.articleRepo.SearchByTitle(fragment, limit)
	if err != nil {
		slog.Error("Title search failed", "fragment", fragment, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   fragment,
		"results": cachedEntries(results),
		"total":   len(results),
	})
}

func (h *Handler) GetHistory(c *gin.Context) {
	limit := clampLimit(c.Query("limit"), defaultListLimit, maxListLimit)

	results, err := h.articleRepo.History(limit)
	if err != nil {
		slog.Error("History lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "History lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": cachedEntries(results),
		"total":   len(results),
	})
}

func (h *Handler) PostCacheClear(c *gin.Context) {
	removed, err := h.articleRepo.Clear()
	if err != nil {
		slog.Error("Cache clear failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cache"})
		return
	}

	slog.Info("Cache cleared", "removed", removed)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"removed": removed,
	})
}

func (h *Handler) GetCacheStatus(c *gin.Context) {
	count, err := h.articleRepo.Count()
	if err != nil {
		slog.Error("Cache status failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read cache status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": count,
		"jobs":    h.jobs.Count(),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if count, err := h.articleRepo.Count(); err == nil {
		health["cached_articles"] = count
	}
	health["jobs"] = h.jobs.Count()

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetAudio(c *gin.Context) {
	topic := strings.TrimSpace(c.Param("topic"))
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing topic parameter"})
		return
	}
	category := requestCategory(c.Query("categoria"), c.Query("category"))

	cached, err := h.articleRepo.Get(topic, category)
	if err != nil {
		slog.Error("Audio lookup failed", "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Audio lookup failed"})
		return
	}
	if cached == nil || len(cached.AudioData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No audio for topic"})
		return
	}

	data := cached.AudioData
	mimeType := cached.AudioMIMEType
	if audio.IsPCM(mimeType) {
		wav, err := audio.WrapPCM(data, mimeType)
		if err != nil {
			slog.Error("Audio conversion failed", "topic", topic, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Audio conversion failed"})
			return
		}
		data = wav
		mimeType = "audio/wav"
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	c.Data(http.StatusOK, mimeType, data)
}

func cachedEntries(rows []database.CachedArticle) []gin.H {
	entries := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		entry := gin.H{
			"topic":      row.Topic,
			"category":   row.Category,
			"article":    row.Article,
			"created_at": row.CreatedAt.Format(time.RFC3339),
		}
		if row.AudioMIMEType != "" {
			entry["audio_mime_type"] = row.AudioMIMEType
		}
		entries = append(entries, entry)
	}
	return entries
}

func requestCategory(values ...string) string {
	for _, value := range values {
		if category := strings.TrimSpace(value); category != "" {
			return category
		}
	}
	return extract.DefaultCategory
}

func clampLimit(raw string, fallback, max int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
