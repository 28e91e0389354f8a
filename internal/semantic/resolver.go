// Package semantic resolves queries against the embedding index, re-ranking
// nearest neighbors with keyword evidence before accepting an answer.
package semantic

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/textutil"
	"github.com/harshitcn/cn-chatbot-sub000/internal/vector"
)

const (
	// DefaultThreshold is the maximum cosine distance a candidate may have.
	DefaultThreshold = 1.2

	rerankWindow  = 0.15
	escapeGap     = 0.3
	escapeMaxDist = 1.0
	prefixLen     = 30
	minAnswerLen  = 10
)

// LocationSource supplies center-specific entries used to extend the index
// for a single request.
type LocationSource interface {
	Entries(ctx context.Context, nameOrSlug, question string) ([]vector.Entry, error)
}

// Resolver wraps the shared index. Location, when set, enables per-request
// merged indexes.
type Resolver struct {
	Index     vector.Searcher
	Location  LocationSource
	Threshold float64
	TopK      int
	Logger    zerolog.Logger
}

func NewResolver(index vector.Searcher, loc LocationSource, threshold float64, topK int, logger zerolog.Logger) *Resolver {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if topK <= 0 {
		topK = 1
	}
	return &Resolver{Index: index, Location: loc, Threshold: threshold, TopK: topK, Logger: logger}
}

type scored struct {
	vector.Candidate
	overlap float64
	common  int
}

// Resolve returns the best semantic answer for the query, or ok=false when
// nothing clears the gates. Index failures are logged and treated as no
// match.
func (r *Resolver) Resolve(ctx context.Context, query, locationHint string) (string, bool) {
	searcher := r.searcherFor(ctx, query, locationHint)

	k := r.TopK + 2
	if k > 3 {
		k = 3
	}
	cands, err := searcher.Search(ctx, query, k)
	if err != nil {
		r.Logger.Error().Err(err).Msg("semantic index search failed")
		return "", false
	}
	if len(cands) == 0 {
		return "", false
	}

	queryNorm := textutil.Normalize(query)
	queryKW := textutil.Keywords(query)

	scoredCands := make([]scored, 0, len(cands))
	for _, c := range cands {
		candKW := textutil.Keywords(c.Question)
		common := textutil.CommonCount(queryKW, candKW)
		scoredCands = append(scoredCands, scored{
			Candidate: c,
			overlap:   textutil.OverlapRatio(queryKW, candKW),
			common:    common,
		})
	}

	best := r.rerank(queryNorm, scoredCands)

	if !r.accept(best, locationHint != "") && !r.escapeHatch(best, scoredCands) {
		r.Logger.Debug().
			Float64("distance", best.Distance).
			Float64("overlap", best.overlap).
			Int("common", best.common).
			Msg("semantic candidate rejected")
		return "", false
	}

	if len(strings.TrimSpace(best.Answer)) <= minAnswerLen {
		return "", false
	}
	return best.Answer, true
}

// searcherFor returns the shared index, or a transient merged copy when a
// location hint yields extra entries. The merged index is request-scoped.
func (r *Resolver) searcherFor(ctx context.Context, query, locationHint string) vector.Searcher {
	if locationHint == "" || r.Location == nil {
		return r.Index
	}
	mergeable, ok := r.Index.(vector.Mergeable)
	if !ok {
		return r.Index
	}

	entries, err := r.Location.Entries(ctx, locationHint, query)
	if err != nil {
		r.Logger.Warn().Err(err).Str("location", locationHint).Msg("location entries fetch failed")
		return r.Index
	}
	if len(entries) == 0 {
		return r.Index
	}

	merged, err := mergeable.WithEntries(ctx, entries)
	if err != nil {
		r.Logger.Warn().Err(err).Str("location", locationHint).Msg("merged index build failed")
		return r.Index
	}
	return merged
}

// rerank starts with the top-1 hit and promotes candidates within the
// threshold: subset matches always win, keyword matches win on distance or
// strong overlap within the window.
func (r *Resolver) rerank(queryNorm string, cands []scored) scored {
	best := cands[0]
	for _, c := range cands {
		if c.Distance > r.Threshold {
			continue
		}
		if subsetMatch(queryNorm, c.Question) {
			best = c
			continue
		}
		if c.overlap >= 0.5 && c.common >= 2 && c.Distance <= best.Distance+rerankWindow {
			if c.Distance < best.Distance || c.overlap > 0.6 {
				best = c
			}
		}
	}
	return best
}

func subsetMatch(queryNorm, candQuestion string) bool {
	candNorm := textutil.Normalize(candQuestion)
	if queryNorm == "" || candNorm == "" {
		return false
	}
	if strings.Contains(candNorm, queryNorm) {
		return true
	}
	prefix := candNorm
	if len(prefix) > prefixLen {
		prefix = prefix[:prefixLen]
	}
	return strings.HasPrefix(queryNorm, prefix)
}

func (r *Resolver) accept(best scored, hasLocation bool) bool {
	if best.Distance > r.Threshold {
		return false
	}
	if hasLocation {
		return (best.overlap >= 0.5 && best.common >= 3) || best.common >= 4
	}
	return (best.overlap >= 0.4 && best.common >= 2) || best.common >= 3
}

// escapeHatch accepts a marginal candidate that is clearly ahead of every
// alternative.
func (r *Resolver) escapeHatch(best scored, cands []scored) bool {
	if len(cands) < 2 {
		return false
	}
	secondBest := -1.0
	for _, c := range cands {
		if c.Candidate == best.Candidate {
			continue
		}
		if secondBest < 0 || c.Distance < secondBest {
			secondBest = c.Distance
		}
	}
	if secondBest < 0 {
		return false
	}
	return secondBest-best.Distance > escapeGap &&
		best.Distance < escapeMaxDist &&
		best.overlap >= 0.5
}
