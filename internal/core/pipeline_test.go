package core

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshitcn/cn-chatbot-sub000/internal/faq"
)

type stubSemantic struct {
	answer string
	ok     bool
	hint   string
	called bool
}

func (s *stubSemantic) Resolve(_ context.Context, _, hint string) (string, bool) {
	s.called = true
	s.hint = hint
	return s.answer, s.ok
}

type stubStructured struct {
	answer string
	ok     bool
	slug   string
	called bool
}

func (s *stubStructured) Resolve(_ context.Context, _, slug string) (string, bool) {
	s.called = true
	s.slug = slug
	return s.answer, s.ok
}

type stubGenerative struct {
	answer  string
	display string
	called  bool
}

func (s *stubGenerative) Resolve(_ context.Context, _, display string) string {
	s.called = true
	s.display = display
	return s.answer
}

func newPipeline(sem *stubSemantic, str *stubStructured, gen *stubGenerative) *Pipeline {
	return &Pipeline{
		Matcher:    faq.NewMatcher(),
		Semantic:   sem,
		Structured: str,
		Generative: gen,
		Logger:     zerolog.Nop(),
	}
}

func TestResolveMenuShortCircuit(t *testing.T) {
	sem := &stubSemantic{}
	gen := &stubGenerative{answer: "generated"}
	p := newPipeline(sem, &stubStructured{}, gen)

	res := p.Resolve(context.Background(), "main menu", "")
	assert.Equal(t, TierCurated, res.Tier)
	assert.Contains(t, res.Answer, "Welcome to Code Ninjas")
	assert.Contains(t, res.Answer, `"Parent/Guardian"`)
	assert.False(t, sem.called)
	assert.False(t, gen.called)
}

func TestResolveCuratedWinsOverLaterTiers(t *testing.T) {
	sem := &stubSemantic{answer: "semantic", ok: true}
	gen := &stubGenerative{answer: "generated"}
	p := newPipeline(sem, &stubStructured{}, gen)

	res := p.Resolve(context.Background(), "Do I need coding or teaching experience?", "")
	assert.Equal(t, TierCurated, res.Tier)
	assert.Contains(t, res.Answer, "curriculum")
	assert.False(t, sem.called)
}

func TestResolveEscalationSkipsEverything(t *testing.T) {
	sem := &stubSemantic{answer: "semantic", ok: true}
	str := &stubStructured{answer: "structured", ok: true}
	gen := &stubGenerative{answer: "a longer generated answer"}
	p := newPipeline(sem, str, gen)

	// "I have another concern" has a curated payload, but the side table
	// forces the generative tier.
	res := p.Resolve(context.Background(), "I have another concern", "cn-tx-houston")
	assert.Equal(t, TierGenerative, res.Tier)
	assert.Equal(t, "a longer generated answer", res.Answer)
	assert.Equal(t, "true", res.Meta["escalated"])
	assert.False(t, sem.called)
	assert.False(t, str.called)
}

func TestResolveSemanticTier(t *testing.T) {
	sem := &stubSemantic{answer: "answer from the index", ok: true}
	str := &stubStructured{}
	gen := &stubGenerative{}
	p := newPipeline(sem, str, gen)

	res := p.Resolve(context.Background(), "some niche frandchise question", "")
	assert.Equal(t, TierSemantic, res.Tier)
	assert.Equal(t, "answer from the index", res.Answer)
	assert.False(t, str.called)
	assert.False(t, gen.called)
}

func TestResolveStructuredNeedsSlug(t *testing.T) {
	sem := &stubSemantic{}
	str := &stubStructured{answer: "camp listing here", ok: true}
	gen := &stubGenerative{answer: "generated instead"}

	p := newPipeline(sem, str, gen)
	res := p.Resolve(context.Background(), "zzz unmatched query qqq", "")
	assert.Equal(t, TierGenerative, res.Tier)
	assert.False(t, str.called)

	str2 := &stubStructured{answer: "camp listing here", ok: true}
	p2 := newPipeline(&stubSemantic{}, str2, &stubGenerative{})
	res2 := p2.Resolve(context.Background(), "zzz unmatched query qqq", "cn-tx-houston")
	assert.Equal(t, TierStructured, res2.Tier)
	assert.Equal(t, "cn-tx-houston", str2.slug)
}

func TestResolveLocationHintFlow(t *testing.T) {
	sem := &stubSemantic{}
	gen := &stubGenerative{answer: "generated"}
	p := newPipeline(sem, &stubStructured{}, gen)

	// Explicit slug: the semantic tier gets the slug, the generative tier
	// the display form.
	p.Resolve(context.Background(), "zzz unmatched query qqq", "cn-tx-houston")
	assert.Equal(t, "cn-tx-houston", sem.hint)
	assert.Equal(t, "TX – Houston", gen.display)

	// No slug: the location mention in the question is used.
	sem2 := &stubSemantic{}
	gen2 := &stubGenerative{answer: "generated"}
	p2 := newPipeline(sem2, &stubStructured{}, gen2)
	p2.Resolve(context.Background(), "do you have anything in Houston", "")
	assert.Equal(t, "Houston", sem2.hint)
	assert.Equal(t, "Houston", gen2.display)
}

func TestResolveAppliesURLFormatting(t *testing.T) {
	gen := &stubGenerative{answer: "Visit [our site](www.codeninjas.com) today"}
	p := newPipeline(&stubSemantic{}, &stubStructured{}, gen)

	res := p.Resolve(context.Background(), "zzz unmatched query qqq", "")
	assert.Equal(t, TierGenerative, res.Tier)
	assert.Contains(t, res.Answer, "https://www.codeninjas.com")
	assert.NotContains(t, res.Answer, "[our site]")
}

func TestResolveAlwaysReturnsAnswer(t *testing.T) {
	gen := &stubGenerative{answer: "fallback text"}
	p := newPipeline(&stubSemantic{}, &stubStructured{}, gen)

	res := p.Resolve(context.Background(), "zzz unmatched query qqq", "")
	require.NotEmpty(t, res.Answer)
	assert.True(t, strings.TrimSpace(res.Answer) != "")
}
