package structured

import (
	"context"
	"errors"
)

// mockSource returns canned center data and records which calls were made.
type mockSource struct {
	facility map[string]any
	camps    []map[string]any
	programs []map[string]any

	campsYear int
	campsWeek int
	fail      bool
}

var errMockFetch = errors.New("fetch failed")

func (m *mockSource) GetFacility(_ context.Context, slug string) (map[string]any, error) {
	if m.fail {
		return nil, errMockFetch
	}
	return m.facility, nil
}

func (m *mockSource) GetCamps(_ context.Context, slug string, year, week int) ([]map[string]any, error) {
	if m.fail {
		return nil, errMockFetch
	}
	m.campsYear, m.campsWeek = year, week
	return m.camps, nil
}

func (m *mockSource) GetPrograms(_ context.Context, slug string) ([]map[string]any, error) {
	if m.fail {
		return nil, errMockFetch
	}
	return m.programs, nil
}
