package fallback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshitcn/cn-chatbot-sub000/internal/llm"
)

func newTestResolver(client llm.LLMClient, search SearchService) *Resolver {
	return NewResolver(client, "primary", []string{"backup-a", "backup-b"}, 3, time.Second, search, Templates{}, zerolog.Nop())
}

func TestDetectCategory(t *testing.T) {
	assert.Equal(t, CategoryFranchise, DetectCategory("what are the royalty fees for a franchise"))
	assert.Equal(t, CategoryParent, DetectCategory("which camps suit my daughter"))
	assert.Equal(t, CategoryGeneral, DetectCategory("what is Code Ninjas"))

	// Franchise wins when both vocabularies appear.
	assert.Equal(t, CategoryFranchise, DetectCategory("do franchise owners run the camps"))
}

func TestBuildPromptLocationLine(t *testing.T) {
	p := Templates{}.Build(CategoryParent, "when are camps", "TX – Houston")
	assert.Contains(t, p, "Question: when are camps")
	assert.Contains(t, p, "TX – Houston")

	p = Templates{}.Build(CategoryParent, "when are camps", "")
	assert.NotContains(t, p, "center.")
}

func TestBuildPromptOverride(t *testing.T) {
	p := Templates{General: "Custom: {query}"}.Build(CategoryGeneral, "hi", "")
	assert.Equal(t, "Custom: hi", p)
}

func TestResolveHappyPath(t *testing.T) {
	client := &plainLLM{text: "Code Ninjas teaches kids to code."}
	r := newTestResolver(client, nil)

	answer := r.Resolve(context.Background(), "what is code ninjas", "")
	assert.Equal(t, "Code Ninjas teaches kids to code.", answer)
}

func TestResolveRetriesTransientErrors(t *testing.T) {
	client := &mockLLM{script: []scripted{
		{err: &openai.APIError{HTTPStatusCode: 500}},
		{err: &openai.APIError{HTTPStatusCode: 503}},
		{comp: llm.Completion{Text: "Recovered."}},
	}}
	r := newTestResolver(client, nil)

	answer := r.Resolve(context.Background(), "hello", "")
	assert.Equal(t, "Recovered.", answer)
	assert.Equal(t, []string{"primary", "primary", "primary"}, client.models)
}

func TestResolveFallsThroughModelsOn4xx(t *testing.T) {
	client := &mockLLM{script: []scripted{
		{err: &openai.APIError{HTTPStatusCode: 404}},
		{err: &openai.APIError{HTTPStatusCode: 400}},
		{comp: llm.Completion{Text: "From the backup."}},
	}}
	r := newTestResolver(client, nil)

	answer := r.Resolve(context.Background(), "hello", "")
	assert.Equal(t, "From the backup.", answer)
	assert.Equal(t, []string{"primary", "backup-a", "backup-b"}, client.models)
}

func TestResolveDefaultMessageWhenExhausted(t *testing.T) {
	client := &mockLLM{script: []scripted{
		{err: &openai.APIError{HTTPStatusCode: 500}},
		{err: &openai.APIError{HTTPStatusCode: 500}},
		{err: &openai.APIError{HTTPStatusCode: 500}},
		{err: &openai.APIError{HTTPStatusCode: 404}},
		{err: &openai.APIError{HTTPStatusCode: 404}},
	}}
	r := newTestResolver(client, nil)

	answer := r.Resolve(context.Background(), "hello", "")
	assert.Equal(t, DefaultMessage, answer)
}

func TestResolveTruncatesTo50Words(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("Centers offer coding. ", 40))
	client := &plainLLM{text: long}
	r := newTestResolver(client, nil)

	answer := r.Resolve(context.Background(), "hello", "")
	assert.LessOrEqual(t, len(strings.Fields(answer)), 50)
	assert.True(t, strings.HasSuffix(answer, "."))
}

func TestToolLoop(t *testing.T) {
	client := &mockLLM{script: []scripted{
		{comp: llm.Completion{ToolCall: &llm.ToolCall{ID: "1", Name: "web_search", Arguments: `{"query":"code ninjas hours"}`}}},
		{comp: llm.Completion{Text: "Open 3pm to 7pm."}},
	}}
	search := &mockSearch{result: "Hours: 3pm-7pm weekdays."}
	r := newTestResolver(client, search)

	answer := r.Resolve(context.Background(), "what are the hours", "")
	assert.Equal(t, "Open 3pm to 7pm.", answer)
	require.Equal(t, []string{"code ninjas hours"}, search.queries)

	// The tool result was appended to the conversation.
	var sawToolMsg bool
	for _, m := range client.lastMsg {
		if m.Role == llm.RoleTool && strings.Contains(m.Content, "3pm-7pm") {
			sawToolMsg = true
		}
	}
	assert.True(t, sawToolMsg)
}

func TestToolLoopBounded(t *testing.T) {
	var script []scripted
	for i := 0; i < 10; i++ {
		script = append(script, scripted{comp: llm.Completion{ToolCall: &llm.ToolCall{ID: "x", Name: "web_search", Arguments: `{"query":"q"}`}}})
	}
	client := &mockLLM{script: script}
	search := &mockSearch{result: "nothing useful"}
	r := newTestResolver(client, search)

	text, err := r.invoke(context.Background(), []llm.Message{{Role: llm.RoleUser, Content: "hello"}}, "primary")
	require.NoError(t, err)
	assert.Empty(t, text)
	assert.Len(t, search.queries, maxToolRounds+1)
}

func TestLadderSkipsModelOnNonRetryableError(t *testing.T) {
	client := &mockLLM{script: []scripted{
		{err: errors.New("no response content")},
		{comp: llm.Completion{Text: "Recovered on the backup model."}},
	}}
	r := newTestResolver(client, nil)

	answer := r.Resolve(context.Background(), "when do camps start", "")
	assert.Equal(t, "Recovered on the backup model.", answer)
	assert.Equal(t, []string{"primary", "backup-a"}, client.models)
}
