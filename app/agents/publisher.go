package agents

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasmn/newsdesk/app/database"
)

// Publisher prints the finished article to its output. It stands in for the
// downstream delivery channel and reports whether the write went through.
type Publisher struct {
	out io.Writer
}

func NewPublisher(out io.Writer) *Publisher {
	if out == nil {
		out = os.Stdout
	}
	return &Publisher{out: out}
}

func (p *Publisher) Publish(topic string, article database.Article) bool {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s (%s) ===\n", topic, article.Category)
	fmt.Fprintf(&b, "Título: %s\n", article.Title)
	fmt.Fprintf(&b, "Chamada: %s\n", article.CoverLine)
	fmt.Fprintf(&b, "Resumo: %s\n", article.Summary)
	fmt.Fprintf(&b, "Fonte: %s\n", article.Source)
	fmt.Fprintf(&b, "Data: %s\n", article.Date)
	if len(article.ImageKeywords) > 0 {
		fmt.Fprintf(&b, "Imagem: %s (%s)\n", strings.Join(article.ImageKeywords, ", "), article.ImageEmotion)
	}
	fmt.Fprintf(&b, "\n%s\n", article.FullText)

	_, err := io.WriteString(p.out, b.String())
	return err == nil
}
