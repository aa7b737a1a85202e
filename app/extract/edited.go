package extract

import "strings"

const maxImageKeywords = 3

// Edited parses a content-editing response. Fields the model omitted are
// defaulted from the first item of the batch that was edited, so the
// returned record is always fully populated.
func Edited(response string, items []NewsItem) EditedContent {
	var content EditedContent

	for _, line := range normalizeLines(response) {
		key, value, ok := splitKeyValue(line)
		if !ok || value == "" {
			continue
		}

		switch {
		case strings.EqualFold(key, "Título"):
			content.Title = value
		case strings.EqualFold(key, "Chamada de Capa"), strings.EqualFold(key, "Chamada"):
			content.CoverLine = value
		case strings.EqualFold(key, "Resumo"):
			content.Summary = value
		case strings.EqualFold(key, "Palavras-chave para imagem"):
			content.ImageKeywords = splitKeywords(value)
		case strings.EqualFold(key, "Emoção desejada para imagem"):
			content.ImageEmotion = value
		case strings.EqualFold(key, "Data"):
			content.Date = value
		}
	}

	applyEditedDefaults(&content, items)
	return content
}

// splitKeywords turns a comma-separated value into trimmed tokens,
// order-preserving, capped at maxImageKeywords.
func splitKeywords(value string) []string {
	var keywords []string
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		keywords = append(keywords, token)
		if len(keywords) == maxImageKeywords {
			break
		}
	}
	return keywords
}

func applyEditedDefaults(content *EditedContent, items []NewsItem) {
	var first NewsItem
	if len(items) > 0 {
		first = items[0]
	}

	if content.Title == "" {
		if first.Title != "" {
			content.Title = first.Title
		} else {
			content.Title = DefaultTitle
		}
	}
	if content.CoverLine == "" {
		subject := first.Title
		if subject == "" {
			subject = "este tópico"
		}
		content.CoverLine = "Nova notícia sobre " + subject
	}
	if content.Summary == "" {
		content.Summary = truncateRunes(first.Summary, 50)
	}
	if len(content.ImageKeywords) == 0 {
		content.ImageKeywords = DefaultImageKeywords()
	}
	if content.ImageEmotion == "" {
		content.ImageEmotion = DefaultEmotion
	}
	if content.Date == "" {
		if first.Date != "" {
			content.Date = first.Date
		} else {
			content.Date = DefaultDate
		}
	}
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
