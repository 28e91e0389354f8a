package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
)

type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey string, model string, baseURL string, timeout time.Duration) *ClaudeClient {
	opts := []anthropic.ClientOption{
		anthropic.WithHTTPClient(httpClientWithBudget(timeout)),
	}
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (c *ClaudeClient) Complete(ctx context.Context, messages []Message, model string) (Completion, error) {
	if model == "" {
		model = c.model
	}
	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(model),
		MaxTokens: 1000,
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			req.System = m.Content
		case RoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantTextMessage(m.Content))
		default:
			req.Messages = append(req.Messages, anthropic.NewUserTextMessage(m.Content))
		}
	}
	resp, err := c.client.CreateMessages(ctx, req)
	if err != nil {
		return Completion{}, err
	}
	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return Completion{Text: *resp.Content[0].Text}, nil
	}
	return Completion{}, fmt.Errorf("no response content")
}
