package extract

// NewsItems parses a news-search response into a list of items. The model
// emits either a single "- Título:" delimited block per item or a looser
// label-per-line layout; after line normalization both reduce to the same
// prefix scan. A new record starts at every title label; the accumulated
// record is flushed only when both title and summary are present, including
// the trailing record at end of input.
func NewsItems(response string) []NewsItem {
	var items []NewsItem
	var current NewsItem

	flush := func() {
		if current.Title == "" || current.Summary == "" {
			return
		}
		if current.Source == "" {
			current.Source = DefaultSource
		}
		if current.Date == "" {
			current.Date = DefaultDate
		}
		items = append(items, current)
	}

	for _, line := range normalizeLines(response) {
		if v, ok := labelValue(line, "Título"); ok {
			flush()
			current = NewsItem{Title: v}
			continue
		}
		if v, ok := labelValue(line, "Fonte"); ok {
			current.Source = v
			continue
		}
		if v, ok := labelValue(line, "Resumo"); ok {
			current.Summary = v
			continue
		}
		if v, ok := labelValue(line, "Data"); ok {
			current.Date = v
		}
	}
	flush()

	return items
}
