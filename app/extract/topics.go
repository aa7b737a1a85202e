package extract

import (
	"strconv"
	"strings"
)

// Numbered list bound for topic discovery responses. Lines outside 1..50
// are ignored even when otherwise well formed.
const (
	minTopicNumber = 1
	maxTopicNumber = 50
)

// Topics parses a trending-topics response. The requested template is
//
//	[Número]. **[Tópico]** (Categoria: [categoria]): [informações]
//
// but only the numbered bold segment is mandatory; the category defaults to
// DefaultCategory when the parenthesized annotation is missing or empty.
func Topics(response string) []TopicCandidate {
	var topics []TopicCandidate

	for _, line := range normalizeLines(response) {
		rest, ok := numberedBold(line)
		if !ok {
			continue
		}

		parts := strings.SplitN(rest, "**", 2)
		topic := strings.TrimSpace(parts[0])
		if topic == "" {
			continue
		}

		category := DefaultCategory
		if len(parts) == 2 {
			if c := parseCategory(parts[1]); c != "" {
				category = c
			}
		}

		topics = append(topics, TopicCandidate{Topic: topic, Category: category})
	}

	return topics
}

// numberedBold matches "N. **..." with N in the accepted range and returns
// the text after the opening "**".
func numberedBold(line string) (string, bool) {
	idx := strings.Index(line, ". **")
	if idx <= 0 {
		return "", false
	}

	n, err := strconv.Atoi(line[:idx])
	if err != nil || n < minTopicNumber || n > maxTopicNumber {
		return "", false
	}

	return line[idx+len(". **"):], true
}

// parseCategory extracts the category from the text following a topic name.
// The first "(...)" span is used; a "Categoria: value" pattern inside it
// wins over the raw parenthesized text.
func parseCategory(tail string) string {
	open := strings.Index(tail, "(")
	if open < 0 {
		return ""
	}
	close := strings.Index(tail[open:], ")")
	if close < 0 {
		return ""
	}

	span := strings.TrimSpace(tail[open+1 : open+close])
	if span == "" {
		return ""
	}

	if key, value, ok := splitKeyValue(span); ok {
		if strings.EqualFold(key, "categoria") || strings.EqualFold(key, "category") {
			return value
		}
	}

	return span
}
