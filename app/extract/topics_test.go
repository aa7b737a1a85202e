package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestTopics_NumberedBound(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 55; i++ {
		fmt.Fprintf(&sb, "%d. **Tópico %d** (Categoria: Geral): detalhes\n", i, i)
	}

	topics := Topics(sb.String())

	if len(topics) != 50 {
		t.Fatalf("Expected 50 topics, got %d", len(topics))
	}
	if topics[0].Topic != "Tópico 1" {
		t.Errorf("Expected first topic 'Tópico 1', got %q", topics[0].Topic)
	}
	if topics[49].Topic != "Tópico 50" {
		t.Errorf("Expected last topic 'Tópico 50', got %q", topics[49].Topic)
	}
}

func TestTopics_CategoryFromKeyValue(t *testing.T) {
	response := "1. **Eleições 2026** (Categoria: Política): cobertura ampla"

	topics := Topics(response)

	if len(topics) != 1 {
		t.Fatalf("Expected 1 topic, got %d", len(topics))
	}
	if topics[0].Category != "Política" {
		t.Errorf("Expected category 'Política', got %q", topics[0].Category)
	}
}

func TestTopics_CategoryFromRawParenthesis(t *testing.T) {
	response := "2. **Copa do Mundo** (Esportes): muita discussão"

	topics := Topics(response)

	if len(topics) != 1 {
		t.Fatalf("Expected 1 topic, got %d", len(topics))
	}
	if topics[0].Category != "Esportes" {
		t.Errorf("Expected category 'Esportes', got %q", topics[0].Category)
	}
}

func TestTopics_MissingCategoryDefaults(t *testing.T) {
	response := "3. **Bitcoin** em alta nesta semana"

	topics := Topics(response)

	if len(topics) != 1 {
		t.Fatalf("Expected 1 topic, got %d", len(topics))
	}
	if topics[0].Category != DefaultCategory {
		t.Errorf("Expected default category %q, got %q", DefaultCategory, topics[0].Category)
	}
}

func TestTopics_IgnoresUnnumberedLines(t *testing.T) {
	response := strings.Join([]string{
		"Aqui estão os tópicos da semana:",
		"1. **Inteligência Artificial** (Categoria: Tecnologia)",
		"- **Sem número** (Categoria: Geral)",
		"0. **Fora do intervalo** (Categoria: Geral)",
		"51. **Também fora** (Categoria: Geral)",
	}, "\n")

	topics := Topics(response)

	if len(topics) != 1 {
		t.Fatalf("Expected 1 topic, got %d: %v", len(topics), topics)
	}
	if topics[0].Topic != "Inteligência Artificial" {
		t.Errorf("Unexpected topic %q", topics[0].Topic)
	}
}

func TestTopics_EmptyResponse(t *testing.T) {
	for _, response := range []string{"", "   \n\t\n  "} {
		if topics := Topics(response); len(topics) != 0 {
			t.Errorf("Expected no topics for %q, got %v", response, topics)
		}
	}
}

func TestTopics_EmptyBoldNameDropped(t *testing.T) {
	response := "4. **** (Categoria: Geral)"

	if topics := Topics(response); len(topics) != 0 {
		t.Errorf("Expected topic with empty name to be dropped, got %v", topics)
	}
}
