package agents

import (
	"context"
	"fmt"

	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/gateway"
)

// ContentReviewer proofreads the assembled content. The prior content is
// kept verbatim when the review response cannot be parsed.
type ContentReviewer struct {
	caller   gateway.Caller
	profiles *Profiles
}

func NewContentReviewer(caller gateway.Caller, profiles *Profiles) *ContentReviewer {
	return &ContentReviewer{
		caller:   caller,
		profiles: profiles,
	}
}

func (r *ContentReviewer) Run(ctx context.Context, content extract.ReviewedContent) (extract.ReviewedContent, error) {
	spec, err := r.profiles.Get(ProfileContentReviewer)
	if err != nil {
		return content, err
	}

	message := fmt.Sprintf("Título: %s\nChamada: %s\nResumo: %s\nNotícia Completa: %s\nData: %s",
		content.Title, content.CoverLine, content.Summary, content.FullText, content.Date)

	response, err := r.caller.Call(ctx, spec, message)
	if err != nil {
		return content, err
	}

	return extract.Reviewed(response, content), nil
}
