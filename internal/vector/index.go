// Package vector implements the embedding index used by the semantic tier:
// an in-memory brute-force cosine index with badger-backed persistence of
// the computed embeddings.
package vector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"

	"github.com/harshitcn/cn-chatbot-sub000/internal/llm"
)

// Entry is one indexable document: the text that gets embedded and the
// answer returned when it matches.
type Entry struct {
	Question string
	Answer   string
}

// Candidate is a search hit. Distance is cosine distance, lower is closer.
type Candidate struct {
	Question string
	Answer   string
	Distance float64
}

type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]Candidate, error)
}

// Mergeable searchers can produce a transient copy extended with extra
// entries, leaving the base index untouched.
type Mergeable interface {
	WithEntries(ctx context.Context, extra []Entry) (Searcher, error)
}

type indexed struct {
	entry  Entry
	vector []float32
}

// MemoryIndex is a brute-force cosine index. It is immutable after build,
// so concurrent searches need no locking.
type MemoryIndex struct {
	embedder llm.EmbedderClient
	items    []indexed
	hash     string
}

// BuildIndex embeds every entry and assembles the index. The corpus hash
// identifies this exact entry set for persistence.
func BuildIndex(ctx context.Context, embedder llm.EmbedderClient, entries []Entry) (*MemoryIndex, error) {
	idx := &MemoryIndex{
		embedder: embedder,
		items:    make([]indexed, 0, len(entries)),
		hash:     CorpusHash(entries),
	}
	for _, e := range entries {
		vec, err := embedder.Embed(ctx, e.Question)
		if err != nil {
			return nil, fmt.Errorf("embed %q: %w", e.Question, err)
		}
		idx.items = append(idx.items, indexed{entry: e, vector: normalize(vec)})
	}
	return idx, nil
}

// CorpusHash fingerprints an entry set so persisted embeddings can be
// invalidated when the corpus changes.
func CorpusHash(entries []Entry) string {
	h := sha256.New()
	for _, e := range entries {
		h.Write([]byte(e.Question))
		h.Write([]byte{0})
		h.Write([]byte(e.Answer))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Hash returns the corpus fingerprint this index was built from.
func (m *MemoryIndex) Hash() string { return m.hash }

// Len returns the number of indexed entries.
func (m *MemoryIndex) Len() int { return len(m.items) }

func (m *MemoryIndex) Search(ctx context.Context, query string, k int) ([]Candidate, error) {
	if len(m.items) == 0 {
		return nil, nil
	}
	qv, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	qv = normalize(qv)

	out := make([]Candidate, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, Candidate{
			Question: it.entry.Question,
			Answer:   it.entry.Answer,
			Distance: cosineDistance(qv, it.vector),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out, nil
}

// WithEntries returns a transient index holding this index's entries plus
// the extras. Only the extras are embedded.
func (m *MemoryIndex) WithEntries(ctx context.Context, extra []Entry) (Searcher, error) {
	merged := &MemoryIndex{
		embedder: m.embedder,
		items:    make([]indexed, len(m.items), len(m.items)+len(extra)),
	}
	copy(merged.items, m.items)
	for _, e := range extra {
		vec, err := m.embedder.Embed(ctx, e.Question)
		if err != nil {
			return nil, fmt.Errorf("embed %q: %w", e.Question, err)
		}
		merged.items = append(merged.items, indexed{entry: e, vector: normalize(vec)})
	}
	return merged, nil
}

// normalize scales to unit length so cosine distance reduces to 1 - dot.
func normalize(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return v
	}
	inv := 1 / math.Sqrt(sum)
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) * inv)
	}
	return out
}

func cosineDistance(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	return 1 - dot
}
