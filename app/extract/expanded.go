package extract

import "strings"

// Expanded parses a content-collection response into a full article. The
// full text accumulates continuation lines (the model tends to emit the
// requested four-plus paragraphs as separate lines after the label) until
// another recognized label appears.
func Expanded(response string) ExpandedArticle {
	var article ExpandedArticle
	var paragraphs []string
	inText := false

	for _, line := range normalizeLines(response) {
		if v, ok := labelValue(line, "Notícia Completa"); ok {
			inText = true
			if v != "" {
				paragraphs = append(paragraphs, v)
			}
			continue
		}
		if v, ok := labelValue(line, "Fonte"); ok {
			article.Source = v
			inText = false
			continue
		}
		if v, ok := labelValue(line, "Data"); ok {
			article.Date = v
			inText = false
			continue
		}
		if inText {
			paragraphs = append(paragraphs, line)
		}
	}

	article.FullText = strings.Join(paragraphs, "\n\n")
	return article
}
