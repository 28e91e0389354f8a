// Package structured answers queries from center data: camps, programs,
// events, clubs, and facility details.
package structured

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harshitcn/cn-chatbot-sub000/internal/intent"
	"github.com/harshitcn/cn-chatbot-sub000/internal/textutil"
)

// DataSource is the center-data collaborator.
type DataSource interface {
	GetFacility(ctx context.Context, slug string) (map[string]any, error)
	GetCamps(ctx context.Context, slug string, year, week int) ([]map[string]any, error)
	GetPrograms(ctx context.Context, slug string) ([]map[string]any, error)
}

// Resolver classifies query intent, fetches the matching center data, and
// formats it into prose.
type Resolver struct {
	Source DataSource
	Logger zerolog.Logger
}

func NewResolver(source DataSource, logger zerolog.Logger) *Resolver {
	return &Resolver{Source: source, Logger: logger}
}

var (
	yearRe = regexp.MustCompile(`\b(20\d{2})\b`)
	weekRe = regexp.MustCompile(`(?i)\bweek\s+(\d+)\b`)
)

const generalCampLimit = 5

// Resolve answers the query from center data. ok is false when no data was
// found, the fetch failed, or the relevance gate rejected the result.
func (r *Resolver) Resolve(ctx context.Context, query, slug string) (string, bool) {
	if slug == "" {
		return "", false
	}

	category := intent.Classify(query)
	r.Logger.Debug().Str("intent", string(category)).Str("slug", slug).Msg("structured lookup")

	answer, err := r.fetch(ctx, query, slug, category)
	if err != nil {
		r.Logger.Error().Err(err).Str("intent", string(category)).Msg("structured data fetch failed")
		return "", false
	}
	if answer == "" {
		return "", false
	}
	if !relevant(query, category, answer) {
		r.Logger.Debug().Str("intent", string(category)).Msg("structured answer rejected as off-topic")
		return "", false
	}
	return textutil.TruncateWords(answer, textutil.AnswerWordBudget), true
}

func (r *Resolver) fetch(ctx context.Context, query, slug string, category intent.Category) (string, error) {
	switch category {
	case intent.Camps:
		year, week := parseYearWeek(query)
		camps, err := r.Source.GetCamps(ctx, slug, year, week)
		if err != nil {
			return "", err
		}
		return joinRecords(camps, FormatCamp), nil

	case intent.Events:
		facility, err := r.Source.GetFacility(ctx, slug)
		if err != nil {
			return "", err
		}
		return joinRecords(embeddedRecords(facility, "events", "upcomingEvents"), FormatEvent), nil

	case intent.Clubs:
		facility, err := r.Source.GetFacility(ctx, slug)
		if err != nil {
			return "", err
		}
		return joinRecords(embeddedRecords(facility, "clubs"), FormatClub), nil

	case intent.Programs:
		programs, err := r.Source.GetPrograms(ctx, slug)
		if err != nil {
			return "", err
		}
		if strings.Contains(strings.ToLower(query), "create") {
			programs = filterCreate(programs)
		}
		return joinRecords(programs, FormatProgram), nil

	case intent.Facility:
		facility, err := r.Source.GetFacility(ctx, slug)
		if err != nil {
			return "", err
		}
		if facility == nil {
			return "", nil
		}
		return FormatFacility(facility), nil

	default:
		// Best-effort default: upcoming camps, capped.
		camps, err := r.Source.GetCamps(ctx, slug, 0, 0)
		if err != nil {
			return "", err
		}
		if len(camps) > generalCampLimit {
			camps = camps[:generalCampLimit]
		}
		body := joinRecords(camps, FormatCamp)
		if body == "" {
			return "", nil
		}
		return "UPCOMING CAMPS:\n\n" + body, nil
	}
}

func parseYearWeek(query string) (int, int) {
	var year, week int
	if m := yearRe.FindStringSubmatch(query); m != nil {
		year, _ = strconv.Atoi(m[1])
	}
	if m := weekRe.FindStringSubmatch(query); m != nil {
		week, _ = strconv.Atoi(m[1])
	}
	return year, week
}

func filterCreate(programs []map[string]any) []map[string]any {
	var out []map[string]any
	for _, p := range programs {
		for _, key := range []string{"name", "title", "programType", "type"} {
			if s, ok := p[key].(string); ok && strings.Contains(strings.ToLower(s), "create") {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func embeddedRecords(facility map[string]any, keys ...string) []map[string]any {
	if facility == nil {
		return nil
	}
	for _, key := range keys {
		list, ok := facility[key].([]any)
		if !ok {
			continue
		}
		var out []map[string]any
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// Topic keywords per returned data type, used by the relevance gate. These
// are broader than the intent table so natural phrasings still pass.
var gateTopics = map[intent.Category][]string{
	intent.Camps:    {"camp"},
	intent.Events:   {"event"},
	intent.Clubs:    {"club"},
	intent.Programs: {"program", "create", "academy", "jr"},
	intent.Facility: {"facility", "location", "address", "contact", "info", "about", "center", "phone", "email", "hours", "where"},
}

var businessKeywords = []string{
	"franchise", "franchisee", "franchising", "ownership", "royalty", "royalties",
	"fdd", "invest", "investment", "business", "cost", "fee", "fees",
}

var offTopicForCamps = []string{"franchise", "program", "event", "club", "facility", "contact"}

// relevant decides whether the query plausibly asked for the data type that
// came back.
func relevant(query string, category intent.Category, answer string) bool {
	queryLower := strings.ToLower(query)

	if topics, ok := gateTopics[category]; ok {
		hit := false
		for _, kw := range topics {
			if strings.Contains(queryLower, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
		return true
	}

	// General: the camps fallback must not answer business questions.
	for _, kw := range businessKeywords {
		if strings.Contains(queryLower, kw) {
			return false
		}
	}
	if strings.Contains(strings.ToLower(answer), "camp") && !strings.Contains(queryLower, "camp") {
		for _, kw := range offTopicForCamps {
			if strings.Contains(queryLower, kw) {
				return false
			}
		}
	}
	return true
}
