package fallback

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/llm"
	"github.com/harshitcn/cn-chatbot-sub000/internal/textutil"
)

// DefaultMessage is the terminal answer when every model and retry fails.
const DefaultMessage = "I don't have information about that. Please contact your local Code Ninjas center or visit codeninjas.com for more details."

const maxToolRounds = 3

// Resolver drives the generative tier. Resolve never fails: it degrades to
// DefaultMessage.
type Resolver struct {
	Client     llm.LLMClient
	Model      string
	Fallbacks  []string
	MaxRetries int
	Timeout    time.Duration
	Search     SearchService
	Prompts    Templates
	Logger     zerolog.Logger
}

func NewResolver(client llm.LLMClient, model string, fallbacks []string, maxRetries int, timeout time.Duration, search SearchService, prompts Templates, logger zerolog.Logger) *Resolver {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	if timeout <= 0 {
		timeout = 180 * time.Second
	}
	return &Resolver{
		Client:     client,
		Model:      model,
		Fallbacks:  fallbacks,
		MaxRetries: maxRetries,
		Timeout:    timeout,
		Search:     search,
		Prompts:    prompts,
		Logger:     logger,
	}
}

// Resolve generates an answer for the query. locationDisplay, when set, is
// appended to the prompt as context.
func (r *Resolver) Resolve(ctx context.Context, query, locationDisplay string) string {
	category := DetectCategory(query)
	prompt := r.Prompts.Build(category, query, locationDisplay)
	messages := []llm.Message{{Role: llm.RoleUser, Content: prompt}}

	text := r.completeWithLadder(ctx, messages, category)
	if text == "" {
		return DefaultMessage
	}
	return textutil.TruncateWords(text, textutil.AnswerWordBudget)
}

// completeWithLadder walks the model list. Within a model, transient errors
// (timeouts, network failures, 5xx) and empty replies are retried up to
// MaxRetries; a 4xx or any other non-retryable error moves straight to the
// next model.
func (r *Resolver) completeWithLadder(ctx context.Context, messages []llm.Message, category PromptCategory) string {
	models := append([]string{r.Model}, r.Fallbacks...)

	for _, model := range models {
		for attempt := 1; attempt <= r.MaxRetries; attempt++ {
			attemptCtx, cancel := context.WithTimeout(ctx, r.Timeout)
			text, err := r.invoke(attemptCtx, messages, model)
			cancel()

			if err == nil && text != "" {
				r.Logger.Info().Str("model", model).Str("category", string(category)).Int("attempt", attempt).Msg("generative answer produced")
				return text
			}
			if err != nil && llm.IsClientError(err) {
				r.Logger.Warn().Err(err).Str("model", model).Msg("model rejected request, trying next model")
				break
			}
			if err != nil && !llm.IsRetryable(err) {
				r.Logger.Warn().Err(err).Str("model", model).Msg("non-retryable error, trying next model")
				break
			}
			if err != nil {
				r.Logger.Warn().Err(err).Str("model", model).Int("attempt", attempt).Msg("generative attempt failed")
			} else {
				r.Logger.Warn().Str("model", model).Int("attempt", attempt).Msg("generative attempt returned empty text")
			}
			if ctx.Err() != nil {
				return ""
			}
		}
	}

	r.Logger.Error().Str("model", r.Model).Msg("all generative models exhausted")
	return ""
}

var webSearchTool = llm.Tool{
	Name:        "web_search",
	Description: "Search the web for current information. Use only when the question needs facts you do not know.",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "The search query",
			},
		},
		"required": []string{"query"},
	},
}

// invoke runs one completion, satisfying tool calls up to maxToolRounds.
// After the round budget the last available text is returned as-is.
func (r *Resolver) invoke(ctx context.Context, messages []llm.Message, model string) (string, error) {
	toolClient, hasTools := r.Client.(llm.ToolCapableClient)
	if r.Search == nil || !hasTools {
		comp, err := r.Client.Complete(ctx, messages, model)
		return comp.Text, err
	}

	convo := make([]llm.Message, len(messages))
	copy(convo, messages)

	var lastText string
	for round := 0; round <= maxToolRounds; round++ {
		comp, err := toolClient.CompleteWithTools(ctx, convo, model, []llm.Tool{webSearchTool})
		if err != nil {
			return lastText, err
		}
		if comp.Text != "" {
			lastText = comp.Text
		}
		if comp.ToolCall == nil {
			return comp.Text, nil
		}

		result := r.runTool(ctx, comp.ToolCall)
		convo = append(convo,
			llm.Message{Role: llm.RoleAssistant, ToolCall: comp.ToolCall},
			llm.Message{Role: llm.RoleTool, Content: result, ToolCallID: comp.ToolCall.ID, Name: comp.ToolCall.Name},
		)
	}
	return lastText, nil
}

func (r *Resolver) runTool(ctx context.Context, call *llm.ToolCall) string {
	if call.Name != "web_search" {
		return "Unknown tool: " + call.Name
	}
	args, err := llm.ParseJSON[struct {
		Query string `json:"query"`
	}](call.Arguments)
	if err != nil || args.Query == "" {
		return "Invalid search arguments."
	}
	result, err := r.Search.Search(ctx, args.Query, 5)
	if err != nil {
		r.Logger.Warn().Err(err).Str("query", args.Query).Msg("web search failed")
		return "Search failed."
	}
	return result
}
