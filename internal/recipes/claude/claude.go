// Package claude implements recipe suggestion via the Anthropic Messages API.
package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"shelfwise/internal/recipes"
)

// suggestionPrompt asks for plain text the shared parser can consume.
const suggestionPrompt = `Suggest up to %d recipes that use %s as a main ingredient.
Respond in plain text, one recipe per line, format: title | approximate cooking time.
Do not number the lines or add commentary.`

type Suggester struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewSuggester(apiKey, model string) *Suggester {
	return &Suggester{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

func (s *Suggester) Find(ctx context.Context, ingredient string) ([]recipes.Recipe, error) {
	resp, err := s.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     s.model,
		MaxTokens: 1024,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(fmt.Sprintf(suggestionPrompt, recipes.MaxResults, ingredient)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	return recipes.ParseSuggestions(resp.GetFirstContentText()), nil
}
