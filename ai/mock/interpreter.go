package mock

import (
	"context"
	"strings"

	"github.com/poiesic/newsrank/core"
)

// MockInterpreter is a test double for ai.CriteriaInterpreter.
// It allows custom behavior injection via function fields.
type MockInterpreter struct {
	// InterpretQueryFunc is called by InterpretQuery if set.
	// If nil, uses default deterministic behavior.
	InterpretQueryFunc func(ctx context.Context, query string) (*core.SearchCriteria, error)

	callCount int
}

// NewMockInterpreter creates a mock interpreter with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockInterpreter().
func NewMockInterpreter() *MockInterpreter {
	return &MockInterpreter{}
}

// InterpretQuery derives criteria from the query words.
// Default behavior keeps every whitespace-separated token as a keyword and
// leaves date and content filters open.
func (m *MockInterpreter) InterpretQuery(ctx context.Context, query string) (*core.SearchCriteria, error) {
	m.callCount++

	if m.InterpretQueryFunc != nil {
		return m.InterpretQueryFunc(ctx, query)
	}

	keywords := strings.Fields(strings.ToLower(query))
	if len(keywords) == 0 {
		return nil, nil
	}

	criteria := &core.SearchCriteria{
		Keywords:    keywords,
		DateFilter:  core.DateFilterAny,
		ContentType: core.ContentTypeAny,
	}
	return criteria, nil
}

// CallCount returns the number of times InterpretQuery was called.
func (m *MockInterpreter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockInterpreter) Reset() {
	m.callCount = 0
	m.InterpretQueryFunc = nil
}
