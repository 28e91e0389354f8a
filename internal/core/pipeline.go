// Package core wires the resolution tiers into a single pipeline: curated
// matching, semantic search, structured center data, then the generative
// fallback.
package core

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/faq"
	"github.com/harshitcn/cn-chatbot-sub000/internal/location"
	"github.com/harshitcn/cn-chatbot-sub000/internal/textutil"
)

// Tier names which stage produced the answer.
type Tier string

const (
	TierCurated    Tier = "CURATED"
	TierSemantic   Tier = "SEMANTIC"
	TierStructured Tier = "STRUCTURED"
	TierGenerative Tier = "GENERATIVE"
	TierNone       Tier = "NONE"
)

// Result is what the pipeline hands back. Callers normally use only Answer.
type Result struct {
	Answer string
	Tier   Tier
	Meta   map[string]string
}

// SemanticResolver answers from the embedding index.
type SemanticResolver interface {
	Resolve(ctx context.Context, query, locationHint string) (string, bool)
}

// StructuredResolver answers from center data. Needs a slug.
type StructuredResolver interface {
	Resolve(ctx context.Context, query, slug string) (string, bool)
}

// GenerativeResolver always produces a string, degrading to a default.
type GenerativeResolver interface {
	Resolve(ctx context.Context, query, locationDisplay string) string
}

// Pipeline runs the tiers in order. Matcher and Generative must be set;
// Semantic and Structured may be nil (their tiers are skipped).
type Pipeline struct {
	Matcher    *faq.Matcher
	Semantic   SemanticResolver
	Structured StructuredResolver
	Generative GenerativeResolver
	Logger     zerolog.Logger
}

// Resolve walks the tiers until one produces an answer. It always returns a
// non-empty answer string. locationSlug is optional; when absent, a location
// mention is extracted from the question itself.
func (p *Pipeline) Resolve(ctx context.Context, question, locationSlug string) Result {
	if payload, ok := faq.MenuShortCircuit(question); ok {
		return p.finish(TierCurated, payload.Encode(), map[string]string{"menu": "true"})
	}

	escalate := faq.EscalatesToGenerative(question)
	if !escalate {
		if payload, ok := p.Matcher.Match(question); ok {
			return p.finish(TierCurated, payload.Encode(), nil)
		}
	} else {
		p.Logger.Debug().Str("question", question).Msg("curated entry escalates to generative tier")
	}

	hint := locationSlug
	display := location.FormatDisplay(locationSlug)
	if hint == "" {
		if name := location.ExtractLocation(question); name != "" {
			hint = name
			display = name
		}
	}

	if !escalate {
		if p.Semantic != nil {
			if answer, ok := p.Semantic.Resolve(ctx, question, hint); ok {
				return p.finish(TierSemantic, answer, nil)
			}
		}
		if p.Structured != nil && locationSlug != "" {
			if answer, ok := p.Structured.Resolve(ctx, question, locationSlug); ok {
				return p.finish(TierStructured, answer, nil)
			}
		}
	}

	answer := p.Generative.Resolve(ctx, question, display)
	meta := map[string]string{}
	if escalate {
		meta["escalated"] = "true"
	}
	return p.finish(TierGenerative, answer, meta)
}

// finish applies the URL normalization every tier's answer gets.
func (p *Pipeline) finish(tier Tier, answer string, meta map[string]string) Result {
	if meta == nil {
		meta = map[string]string{}
	}
	p.Logger.Info().Str("tier", string(tier)).Msg("query resolved")
	return Result{
		Answer: textutil.FormatURLs(answer),
		Tier:   tier,
		Meta:   meta,
	}
}
