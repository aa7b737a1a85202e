package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lucasmn/newsdesk/app/cfg"
)

// AgentSpec describes one configured agent: the model it runs on, its
// system instruction and whether the search tool is enabled.
type AgentSpec struct {
	Name        string
	Model       string
	Instruction string
	UseSearch   bool
}

// Caller is the single entry point the pipeline stages use to talk to the
// generative backend. Implemented by Client; faked in tests.
type Caller interface {
	Call(ctx context.Context, agent AgentSpec, message string) (string, error)
}

type Client struct {
	client         *genai.Client
	maxAttempts    int
	initialBackoff time.Duration
}

var _ Caller = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}

	c := cfg.Get()
	return &Client{
		client:         client,
		maxAttempts:    c.MaxRetries,
		initialBackoff: time.Duration(c.InitialBackoff) * time.Second,
	}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Call sends one message to the agent and returns the concatenated text of
// the response. Every call runs against a fresh model handle, so no
// conversational state leaks between extraction tasks.
func (c *Client) Call(ctx context.Context, agent AgentSpec, message string) (string, error) {
	return callWithRetry(ctx, agent.Name, c.maxAttempts, c.initialBackoff, func(ctx context.Context) (string, error) {
		return c.generate(ctx, agent, message)
	})
}

func (c *Client) generate(ctx context.Context, agent AgentSpec, message string) (string, error) {
	model := c.client.GenerativeModel(agent.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(agent.Instruction)},
	}
	if agent.UseSearch {
		model.Tools = []*genai.Tool{
			{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}

	return responseText(resp), nil
}

// responseText concatenates the text parts of the first candidate in
// emission order. An empty response is a valid "nothing found" outcome for
// the extractors, not an error.
func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
