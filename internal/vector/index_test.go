package vector

import (
	"context"
	"hash/fnv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenEmbedder maps each token onto a fixed dimension, so texts sharing
// tokens land close together. Deterministic across calls.
type tokenEmbedder struct {
	calls int
}

func (e *tokenEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.calls++
	vec := make([]float32, 32)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[h.Sum32()%32]++
	}
	return vec, nil
}

func testEntries() []Entry {
	return []Entry{
		{Question: "how much does a franchise cost", Answer: "Costs are in the FDD."},
		{Question: "what programs do you offer kids", Answer: "Camps, clubs, and CREATE."},
		{Question: "can I sell my franchise", Answer: "Yes, with approval."},
	}
}

func TestSearchRanksByDistance(t *testing.T) {
	ctx := context.Background()
	idx, err := BuildIndex(ctx, &tokenEmbedder{}, testEntries())
	require.NoError(t, err)

	hits, err := idx.Search(ctx, "franchise cost", 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, "how much does a franchise cost", hits[0].Question)
	assert.Less(t, hits[0].Distance, hits[1].Distance)

	// Identical text is at distance ~0.
	same, err := idx.Search(ctx, "how much does a franchise cost", 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, same[0].Distance, 1e-6)
}

func TestSearchTruncatesToK(t *testing.T) {
	ctx := context.Background()
	idx, err := BuildIndex(ctx, &tokenEmbedder{}, testEntries())
	require.NoError(t, err)

	hits, err := idx.Search(ctx, "franchise", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestWithEntriesLeavesBaseUntouched(t *testing.T) {
	ctx := context.Background()
	idx, err := BuildIndex(ctx, &tokenEmbedder{}, testEntries())
	require.NoError(t, err)

	merged, err := idx.WithEntries(ctx, []Entry{
		{Question: "center address houston", Answer: "123 Main St"},
	})
	require.NoError(t, err)

	hits, err := merged.Search(ctx, "center address houston", 1)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", hits[0].Answer)

	assert.Equal(t, 3, idx.Len())
}

func TestCorpusHashChangesWithContent(t *testing.T) {
	a := CorpusHash(testEntries())
	entries := testEntries()
	entries[0].Answer = "changed"
	b := CorpusHash(entries)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, CorpusHash(testEntries()))
}

func TestStoreLoadOrBuildReusesEmbeddings(t *testing.T) {
	ctx := context.Background()
	store, err := OpenStore("", zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	emb := &tokenEmbedder{}
	entries := testEntries()

	idx, err := store.LoadOrBuild(ctx, emb, entries)
	require.NoError(t, err)
	assert.Equal(t, 3, idx.Len())
	buildCalls := emb.calls

	// Second load hits the store: only the search query gets embedded.
	idx2, err := store.LoadOrBuild(ctx, emb, entries)
	require.NoError(t, err)
	assert.Equal(t, buildCalls, emb.calls)

	hits, err := idx2.Search(ctx, "sell my franchise", 1)
	require.NoError(t, err)
	assert.Equal(t, "Yes, with approval.", hits[0].Answer)
}
