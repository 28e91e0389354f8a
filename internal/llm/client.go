package llm

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn of a chat exchange. ToolCallID links a tool-result
// message back to the call that produced it.
type Message struct {
	Role       string
	Content    string
	ToolCallID string
	Name       string
	ToolCall   *ToolCall
}

// ToolCall is a model-requested function invocation.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Completion is the model's reply: either final text or a tool call the
// caller must satisfy before re-invoking.
type Completion struct {
	Text     string
	ToolCall *ToolCall
}

// Tool describes a function the model may call. Parameters is a JSON schema.
type Tool struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type LLMClient interface {
	Complete(ctx context.Context, messages []Message, model string) (Completion, error)
}

type EmbedderClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ToolCapableClient is implemented by providers that support function
// calling. Callers fall back to plain Complete when the assertion fails.
type ToolCapableClient interface {
	CompleteWithTools(ctx context.Context, messages []Message, model string, tools []Tool) (Completion, error)
}
