package mock

import (
	"context"

	"github.com/MOMOGSDIOP/zoomETFsProject/ai"
)

// MockCriteriaExtractor is a test double for ai.CriteriaExtractor.
// It allows custom behavior injection via function fields.
type MockCriteriaExtractor struct {
	// ExtractCriteriaFunc is called by ExtractCriteria if set.
	// If nil, the extractor returns an empty criteria object.
	ExtractCriteriaFunc func(ctx context.Context, query string) (string, error)

	callCount int
}

var _ ai.CriteriaExtractor = (*MockCriteriaExtractor)(nil)

// NewMockCriteriaExtractor creates a mock criteria extractor with default behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockCriteriaExtractor() *MockCriteriaExtractor {
	return &MockCriteriaExtractor{}
}

// ExtractCriteria returns the injected payload, or the empty criteria
// object when no behavior was injected.
func (m *MockCriteriaExtractor) ExtractCriteria(ctx context.Context, query string) (string, error) {
	m.callCount++

	if m.ExtractCriteriaFunc != nil {
		return m.ExtractCriteriaFunc(ctx, query)
	}

	return `{}`, nil
}

// CallCount returns the number of times ExtractCriteria was called.
func (m *MockCriteriaExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockCriteriaExtractor) Reset() {
	m.callCount = 0
	m.ExtractCriteriaFunc = nil
}
