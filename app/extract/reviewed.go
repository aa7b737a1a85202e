package extract

import "strings"

// Reviewed parses a review/polish response. When the response yields no
// recognizable fields at all, the pre-review content is returned verbatim;
// individually missing fields fall back to their pre-review values.
func Reviewed(response string, prior ReviewedContent) ReviewedContent {
	var content ReviewedContent
	var paragraphs []string
	parsed := false
	inText := false

	for _, line := range normalizeLines(response) {
		if v, ok := labelValue(line, "Notícia Completa"); ok {
			parsed = true
			inText = true
			if v != "" {
				paragraphs = append(paragraphs, v)
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if ok && value != "" {
			switch {
			case strings.EqualFold(key, "Título"):
				content.Title = value
			case strings.EqualFold(key, "Chamada"), strings.EqualFold(key, "Chamada de Capa"):
				content.CoverLine = value
			case strings.EqualFold(key, "Resumo"):
				content.Summary = value
			case strings.EqualFold(key, "Data"):
				content.Date = value
			default:
				ok = false
			}
			if ok {
				parsed = true
				inText = false
				continue
			}
		}

		if inText {
			paragraphs = append(paragraphs, line)
		}
	}

	if !parsed {
		return prior
	}

	content.FullText = strings.Join(paragraphs, "\n\n")

	if content.Title == "" {
		content.Title = prior.Title
	}
	if content.CoverLine == "" {
		content.CoverLine = prior.CoverLine
	}
	if content.Summary == "" {
		content.Summary = prior.Summary
	}
	if content.Date == "" {
		content.Date = prior.Date
	}
	if content.FullText == "" {
		content.FullText = prior.FullText
	}
	content.ImageKeywords = prior.ImageKeywords
	content.ImageEmotion = prior.ImageEmotion

	return content
}
