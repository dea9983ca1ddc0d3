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


// Package ai defines abstractions for the semantic-analysis service
// that turns free-text investment queries into structured criteria.
//
// The package follows the dependency inversion principle: the search
// flow depends on the CriteriaExtractor and AIProvider interfaces, not
// on a concrete model client.
//
// # Implementation Packages
//
//   - ai/openai: production implementation for OpenAI-compatible chat
//     APIs (Ollama, LocalAI, vLLM, OpenAI itself)
//   - ai/mock: test doubles for unit testing without a model service
//
// Public constructors return interface types to enforce abstraction;
// the mock constructors return concrete types so tests can inject
// behavior and assert call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	payload, err := provider.CriteriaExtractor().ExtractCriteria(ctx, "tech ETF, fees under 0.5%")
//
// The extractor returns the model's raw payload; the criteria package
// owns coercion into core.SearchCriteria and degrades malformed bodies
// to the all-defaults criteria.
package ai
