package fallback

import (
	"context"
	"sync"

	"github.com/harshitcn/cn-chatbot-sub000/internal/llm"
)

// scripted is one canned completion outcome.
type scripted struct {
	comp llm.Completion
	err  error
}

// mockLLM replays scripted outcomes in order and records the model used for
// each call. Implements ToolCapableClient so the tool loop is testable.
type mockLLM struct {
	mu      sync.Mutex
	script  []scripted
	calls   int
	models  []string
	lastMsg []llm.Message
}

func (m *mockLLM) next(messages []llm.Message, model string) (llm.Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models = append(m.models, model)
	m.lastMsg = messages
	if m.calls >= len(m.script) {
		return llm.Completion{}, nil
	}
	s := m.script[m.calls]
	m.calls++
	return s.comp, s.err
}

func (m *mockLLM) Complete(_ context.Context, messages []llm.Message, model string) (llm.Completion, error) {
	return m.next(messages, model)
}

func (m *mockLLM) CompleteWithTools(_ context.Context, messages []llm.Message, model string, _ []llm.Tool) (llm.Completion, error) {
	return m.next(messages, model)
}

// plainLLM never supports tools.
type plainLLM struct {
	text string
	err  error
}

func (p *plainLLM) Complete(context.Context, []llm.Message, string) (llm.Completion, error) {
	return llm.Completion{Text: p.text}, p.err
}

// mockSearch returns a fixed result and records queries.
type mockSearch struct {
	result  string
	err     error
	queries []string
}

func (m *mockSearch) Search(_ context.Context, query string, _ int) (string, error) {
	m.queries = append(m.queries, query)
	return m.result, m.err
}
