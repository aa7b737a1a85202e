package agents

import (
	"context"
	"fmt"

	"github.com/lucasmn/newsdesk/app/extract"
	"github.com/lucasmn/newsdesk/app/gateway"
)

// ContentEditor derives the presentation fields (headline, cover line,
// summary, image hints) from the searched news.
type ContentEditor struct {
	caller   gateway.Caller
	profiles *Profiles
}

func NewContentEditor(caller gateway.Caller, profiles *Profiles) *ContentEditor {
	return &ContentEditor{
		caller:   caller,
		profiles: profiles,
	}
}

func (e *ContentEditor) Run(ctx context.Context, items []extract.NewsItem) (extract.EditedContent, error) {
	spec, err := e.profiles.Get(ProfileContentEditor)
	if err != nil {
		return extract.EditedContent{}, err
	}

	var message string
	if len(items) > 0 {
		message = fmt.Sprintf("Título: %s\nFonte: %s\nResumo: %s\nData: %s",
			items[0].Title, items[0].Source, items[0].Summary, items[0].Date)
	}

	response, err := e.caller.Call(ctx, spec, message)
	if err != nil {
		return extract.EditedContent{}, err
	}

	return extract.Edited(response, items), nil
}
