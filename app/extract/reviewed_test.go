package extract

import (
	"strings"
	"testing"
)

var priorContent = ReviewedContent{
	EditedContent: EditedContent{
		Title:         "Título original",
		CoverLine:     "Chamada original",
		Summary:       "Resumo original",
		ImageKeywords: []string{"original"},
		ImageEmotion:  "neutro",
		Date:          "2025-08-01",
	},
	FullText: "Texto completo original.",
}

func TestReviewed_AllFieldsReplaced(t *testing.T) {
	response := strings.Join([]string{
		"Título: Título revisado",
		"Chamada: Chamada revisada",
		"Resumo: Resumo revisado",
		"Notícia Completa: Texto revisado com melhorias.",
		"Data: 2025-08-02",
	}, "\n")

	content := Reviewed(response, priorContent)

	if content.Title != "Título revisado" {
		t.Errorf("Unexpected title %q", content.Title)
	}
	if content.FullText != "Texto revisado com melhorias." {
		t.Errorf("Unexpected full text %q", content.FullText)
	}
	if content.Date != "2025-08-02" {
		t.Errorf("Unexpected date %q", content.Date)
	}
	if len(content.ImageKeywords) != 1 || content.ImageKeywords[0] != "original" {
		t.Errorf("Image keywords should carry over: %v", content.ImageKeywords)
	}
}

func TestReviewed_BlankResponseFallsBackVerbatim(t *testing.T) {
	for _, response := range []string{"", "   \n\t", "resposta livre sem rótulos"} {
		content := Reviewed(response, priorContent)

		if content.Title != priorContent.Title || content.FullText != priorContent.FullText ||
			content.Summary != priorContent.Summary || content.CoverLine != priorContent.CoverLine {
			t.Errorf("Expected verbatim fallback for %q, got %+v", response, content)
		}
	}
}

func TestReviewed_PartialFieldsKeepPriorValues(t *testing.T) {
	response := "Título: Só o título mudou"

	content := Reviewed(response, priorContent)

	if content.Title != "Só o título mudou" {
		t.Errorf("Unexpected title %q", content.Title)
	}
	if content.Summary != priorContent.Summary {
		t.Errorf("Summary should fall back to prior, got %q", content.Summary)
	}
	if content.FullText != priorContent.FullText {
		t.Errorf("Full text should fall back to prior, got %q", content.FullText)
	}
}

func TestReviewed_FullTextContinuationLines(t *testing.T) {
	response := strings.Join([]string{
		"Notícia Completa: Primeiro parágrafo revisado.",
		"Segundo parágrafo revisado.",
		"Data: 2025-08-03",
	}, "\n")

	content := Reviewed(response, priorContent)

	if !strings.Contains(content.FullText, "Segundo parágrafo revisado.") {
		t.Errorf("Continuation line lost: %q", content.FullText)
	}
	if strings.Contains(content.FullText, "2025-08-03") {
		t.Errorf("Date line leaked into full text: %q", content.FullText)
	}
}
