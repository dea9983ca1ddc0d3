// Copyright 2026 zoomETFs Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package mock

import "github.com/MOMOGSDIOP/zoomETFsProject/ai"

// MockProvider is a test double for ai.AIProvider.
type MockProvider struct {
	extractor *MockCriteriaExtractor
}

// NewMockProvider creates a new mock provider with a default mock extractor.
//
// Returns ai.AIProvider interface for consistency with production
// constructors. Use GetMockExtractor() to access the concrete type for
// test assertions.
func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		extractor: NewMockCriteriaExtractor(),
	}
}

// NewMockProviderWithExtractor creates a mock provider around a custom
// mock extractor, giving the test full control over its behavior.
func NewMockProviderWithExtractor(extractor *MockCriteriaExtractor) ai.AIProvider {
	return &MockProvider{
		extractor: extractor,
	}
}

// CriteriaExtractor returns the mock criteria extractor.
func (p *MockProvider) CriteriaExtractor() ai.CriteriaExtractor {
	return p.extractor
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockExtractor returns the underlying mock extractor for test assertions.
func (p *MockProvider) GetMockExtractor() *MockCriteriaExtractor {
	return p.extractor
}
