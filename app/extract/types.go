package extract

// Sentinel defaults assigned to fields the model response never filled.
// Downstream consumers rely on every field being present.
const (
	DefaultCategory = "A DEFINIR"
	DefaultSource   = "Desconhecida"
	DefaultDate     = "Data não disponível"
	DefaultEmotion  = "neutro"
	DefaultTitle    = "Título não disponível"
)

// DefaultImageKeywords is used when the editor response carries no keywords.
func DefaultImageKeywords() []string {
	return []string{"notícia", "atualidade"}
}

type TopicCandidate struct {
	Topic    string `json:"topic"`
	Category string `json:"category"`
}

type NewsItem struct {
	Title   string `json:"title"`
	Source  string `json:"source"`
	Summary string `json:"summary"`
	Date    string `json:"date"`

	// Link is only set for items recovered through the RSS fallback.
	Link string `json:"link,omitempty"`
}

type ExpandedArticle struct {
	FullText string `json:"full_text"`
	Source   string `json:"source"`
	Date     string `json:"date"`
}

type EditedContent struct {
	Title         string   `json:"title"`
	CoverLine     string   `json:"cover_line"`
	Summary       string   `json:"summary"`
	ImageKeywords []string `json:"image_keywords"`
	ImageEmotion  string   `json:"image_emotion"`
	Date          string   `json:"date"`
}

type ReviewedContent struct {
	EditedContent
	FullText string `json:"full_text"`
}
