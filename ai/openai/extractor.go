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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/MOMOGSDIOP/zoomETFsProject/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// CriteriaExtractor implements ai.CriteriaExtractor using OpenAI-compatible chat APIs.
type CriteriaExtractor struct {
	client      llms.Model
	maxAttempts int
	logger      *slog.Logger
}

// newCriteriaExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newCriteriaExtractor(config *ai.Config) (*CriteriaExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &CriteriaExtractor{
		client:      client,
		maxAttempts: config.MaxAttempts,
		logger:      slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewCriteriaExtractor creates a new criteria extractor using the provided configuration.
//
// Returns ai.CriteriaExtractor interface to enforce abstraction.
func NewCriteriaExtractor(config *ai.Config) (ai.CriteriaExtractor, error) {
	return newCriteriaExtractor(config)
}

// ExtractCriteria asks the model to structure the query and returns its
// raw JSON payload. Responses that do not parse as a JSON object are
// retried up to the configured attempt budget; after that the last
// payload is returned as-is and the criteria normalizer decides what to
// do with it. Only transport and service failures are returned as errors.
func (e *CriteriaExtractor) ExtractCriteria(ctx context.Context, query string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	var payload string
	for attempt := 0; attempt < e.maxAttempts; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return "", err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return "", nil
		}

		// Strip markdown code fences if present
		payload = strings.TrimSpace(response.Choices[0].Content)
		payload = strings.TrimPrefix(payload, "```json")
		payload = strings.TrimPrefix(payload, "```")
		payload = strings.TrimSuffix(payload, "```")
		payload = strings.TrimSpace(payload)

		// Try to repair common JSON issues
		payload = repairJSON(payload)

		if json.Valid([]byte(payload)) {
			return payload, nil
		}

		e.logger.Warn("model produced malformed criteria payload",
			"attempt", attempt+1,
			"response", payload)
	}

	// Hand the malformed payload over anyway; downstream degrades it to
	// the all-defaults criteria rather than failing the search.
	return payload, nil
}
