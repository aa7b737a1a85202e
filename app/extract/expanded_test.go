package extract

import (
	"strings"
	"testing"
)

func TestExpanded_AccumulatesParagraphs(t *testing.T) {
	response := strings.Join([]string{
		"Notícia Completa: Primeiro parágrafo da matéria.",
		"Segundo parágrafo com mais contexto.",
		"Terceiro parágrafo com detalhes.",
		"Quarto parágrafo de encerramento.",
		"Fonte: Agência Alfa",
		"Data: 2025-08-10",
	}, "\n")

	article := Expanded(response)

	paragraphs := strings.Split(article.FullText, "\n\n")
	if len(paragraphs) != 4 {
		t.Fatalf("Expected 4 paragraphs, got %d: %q", len(paragraphs), article.FullText)
	}
	if article.Source != "Agência Alfa" {
		t.Errorf("Expected source 'Agência Alfa', got %q", article.Source)
	}
	if article.Date != "2025-08-10" {
		t.Errorf("Expected date '2025-08-10', got %q", article.Date)
	}
}

func TestExpanded_TextAfterSourceNotAccumulated(t *testing.T) {
	response := strings.Join([]string{
		"Notícia Completa: Texto principal.",
		"Fonte: Agência Beta",
		"Observação solta que não pertence ao texto.",
	}, "\n")

	article := Expanded(response)

	if article.FullText != "Texto principal." {
		t.Errorf("Unexpected full text %q", article.FullText)
	}
}

func TestExpanded_EmptyResponse(t *testing.T) {
	article := Expanded("   \n  ")

	if article.FullText != "" || article.Source != "" || article.Date != "" {
		t.Errorf("Expected zero record, got %+v", article)
	}
}
