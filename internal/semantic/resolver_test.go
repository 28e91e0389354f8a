package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshitcn/cn-chatbot-sub000/internal/vector"
)

// fakeIndex serves canned candidates. merged, when set, is returned by
// WithEntries so location-augmented searches can be asserted on.
type fakeIndex struct {
	cands  []vector.Candidate
	err    error
	merged *fakeIndex

	mergedWith []vector.Entry
}

func (f *fakeIndex) Search(_ context.Context, _ string, k int) ([]vector.Candidate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if k < len(f.cands) {
		return f.cands[:k], nil
	}
	return f.cands, nil
}

func (f *fakeIndex) WithEntries(_ context.Context, extra []vector.Entry) (vector.Searcher, error) {
	f.mergedWith = extra
	if f.merged != nil {
		return f.merged, nil
	}
	return f, nil
}

type fakeLocation struct {
	entries []vector.Entry
	err     error
}

func (f *fakeLocation) Entries(_ context.Context, _, _ string) ([]vector.Entry, error) {
	return f.entries, f.err
}

func newTestResolver(idx vector.Searcher, loc LocationSource) *Resolver {
	return NewResolver(idx, loc, 0, 1, zerolog.Nop())
}

func TestResolveAccepts(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "What does a franchise cost to open", Answer: "Costs are detailed in the FDD document.", Distance: 0.4},
	}}
	r := newTestResolver(idx, nil)

	answer, ok := r.Resolve(context.Background(), "franchise cost breakdown", "")
	require.True(t, ok)
	assert.Equal(t, "Costs are detailed in the FDD document.", answer)
}

func TestResolveRejectsBeyondThreshold(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "What does a franchise cost to open", Answer: "Costs are detailed in the FDD document.", Distance: 1.8},
	}}
	r := newTestResolver(idx, nil)

	_, ok := r.Resolve(context.Background(), "franchise cost breakdown", "")
	assert.False(t, ok)
}

func TestResolveRejectsWithoutKeywordSupport(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "Robotics workshops overview", Answer: "We run robotics workshops monthly.", Distance: 0.6},
		{Question: "Belt progression explained", Answer: "Belts track student progress.", Distance: 0.65},
	}}
	r := newTestResolver(idx, nil)

	// Close in embedding space but zero shared keywords.
	_, ok := r.Resolve(context.Background(), "franchise royalty schedule", "")
	assert.False(t, ok)
}

func TestRerankPrefersKeywordOverlapWithinWindow(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "unrelated gibberish entry", Answer: "Not this one, surely not.", Distance: 0.50},
		{Question: "camp schedule and times", Answer: "Camps run weekly in summer.", Distance: 0.55},
	}}
	r := newTestResolver(idx, nil)

	answer, ok := r.Resolve(context.Background(), "camp schedule for kids", "")
	require.True(t, ok)
	assert.Equal(t, "Camps run weekly in summer.", answer)
}

func TestRerankSubsetMatchWins(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "franchise cost presentation deck", Answer: "See the intro deck for numbers.", Distance: 0.2},
		{Question: "How much does a franchise cost to open in Texas", Answer: "Texas openings run 150k to 300k.", Distance: 0.9},
	}}
	r := newTestResolver(idx, nil)

	answer, ok := r.Resolve(context.Background(), "how much does a franchise cost", "")
	require.True(t, ok)
	assert.Equal(t, "Texas openings run 150k to 300k.", answer)
}

func TestEscapeHatch(t *testing.T) {
	// Only one shared keyword, so the keyword gate fails, but the best
	// candidate is far ahead of the runner-up.
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "royalty rates for owners", Answer: "Royalty rates are in the FDD.", Distance: 0.5},
		{Question: "summer camp themes", Answer: "Minecraft and Roblox themes.", Distance: 0.9},
	}}
	r := newTestResolver(idx, nil)

	answer, ok := r.Resolve(context.Background(), "royalty percentage", "")
	require.True(t, ok)
	assert.Equal(t, "Royalty rates are in the FDD.", answer)
}

func TestEscapeHatchNeedsGap(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "royalty rates for owners", Answer: "Royalty rates are in the FDD.", Distance: 0.5},
		{Question: "summer camp themes", Answer: "Minecraft and Roblox themes.", Distance: 0.7},
	}}
	r := newTestResolver(idx, nil)

	_, ok := r.Resolve(context.Background(), "royalty percentage", "")
	assert.False(t, ok)
}

func TestResolveRejectsShortAnswers(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "What does a franchise cost to open", Answer: "Yes.", Distance: 0.3},
	}}
	r := newTestResolver(idx, nil)

	_, ok := r.Resolve(context.Background(), "franchise cost breakdown", "")
	assert.False(t, ok)
}

func TestResolveIndexErrorIsNoMatch(t *testing.T) {
	idx := &fakeIndex{err: errors.New("index unavailable")}
	r := newTestResolver(idx, nil)

	_, ok := r.Resolve(context.Background(), "franchise cost breakdown", "")
	assert.False(t, ok)
}

func TestResolveMergesLocationEntries(t *testing.T) {
	merged := &fakeIndex{cands: []vector.Candidate{
		{Question: "What is the address for Houston center", Answer: "The center address is 123 Main St.", Distance: 0.3},
	}}
	base := &fakeIndex{merged: merged}
	loc := &fakeLocation{entries: []vector.Entry{
		{Question: "What is the address for Houston center", Answer: "The center address is 123 Main St."},
	}}
	r := newTestResolver(base, loc)

	answer, ok := r.Resolve(context.Background(), "address of the Houston center location", "cn-tx-houston")
	require.True(t, ok)
	assert.Equal(t, "The center address is 123 Main St.", answer)
	assert.Len(t, base.mergedWith, 1)
}

func TestResolveLocationGateIsTighter(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "What does a franchise cost to open", Answer: "Costs are detailed in the FDD document.", Distance: 0.4},
	}}
	r := newTestResolver(idx, &fakeLocation{})

	// Two common keywords pass the plain gate but not the location gate.
	_, ok := r.Resolve(context.Background(), "franchise cost breakdown", "cn-tx-houston")
	assert.False(t, ok)
}

func TestResolveLocationFetchFailureFallsBack(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "What does a franchise cost to open", Answer: "Costs are detailed in the FDD document.", Distance: 0.4},
	}}
	r := newTestResolver(idx, &fakeLocation{err: errors.New("api down")})

	// Fetch failure degrades to the base index; the tightened gate still
	// applies because a hint was supplied.
	_, ok := r.Resolve(context.Background(), "franchise cost breakdown", "cn-tx-houston")
	assert.False(t, ok)
}

func TestRerankEqualDistancePrefersHigherOverlap(t *testing.T) {
	idx := &fakeIndex{cands: []vector.Candidate{
		{Question: "holiday hours information", Answer: "Centers post holiday hours on their local pages.", Distance: 0.50},
		{Question: "belt progression timeline explained", Answer: "Students advance through belts at their own pace, typically every few months.", Distance: 0.50},
	}}
	r := newTestResolver(idx, nil)

	answer, ok := r.Resolve(context.Background(), "belt progression timeline for students", "")
	require.True(t, ok)
	assert.Contains(t, answer, "belts")
}
