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


package criteria

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// Normalizer converts the loosely-typed criteria payload returned by
// the semantic-analysis service into a canonical core.SearchCriteria.
//
// Normalization never fails: a malformed payload degrades to the
// all-defaults criteria (a pass-through search) and the problem is
// reported through the logger only. Criteria are advisory; a query the
// model could not structure must broaden the search, not break it.
type Normalizer struct {
	logger *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		if logger == nil {
			logger = slog.Default()
		}
		n.logger = logger
	}
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{logger: slog.Default()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Defaults returns the all-defaults criteria: every dimension a wildcard.
func Defaults() core.SearchCriteria {
	return core.SearchCriteria{}
}

var errUnusablePayload = errors.New("criteria payload is not a JSON object")

// Normalize accepts either a serialized payload (string, []byte,
// json.RawMessage) or an already-structured map[string]any, and coerces
// the recognized snake-case keys to their canonical types. Unrecognized
// keys are ignored; wrong-typed values fall back to the field default.
func (n *Normalizer) Normalize(raw any) core.SearchCriteria {
	data, err := payloadObject(raw)
	if err != nil {
		n.logger.Warn("falling back to default criteria", "err", err, "payload", raw)
		return Defaults()
	}

	risk := intValue(data["risk"])
	if risk == nil && data["risk"] != nil {
		n.logger.Debug("discarding non-integral risk criterion", "risk", data["risk"])
	}

	return core.SearchCriteria{
		Sectors:        stringSlice(data["sectors"]),
		FeesMax:        floatValue(data["fees_max"]),
		MinPerformance: floatValue(data["min_performance"]),
		Region:         stringSlice(data["region"]),
		Type:           stringSlice(data["type"]),
		Replication:    stringValue(data["replication"]),
		Availability:   stringSlice(data["availability"]),
		Risk:           risk,
		Strategy:       stringValue(data["strategy"]),
		ESG:            floatValue(data["esg"]),
		Issuers:        stringSlice(data["emetteur"]),
	}
}

func payloadObject(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case string:
		return parseObject([]byte(v))
	case []byte:
		return parseObject(v)
	case json.RawMessage:
		return parseObject(v)
	default:
		return nil, errUnusablePayload
	}
}

func parseObject(payload []byte) (map[string]any, error) {
	text := strings.TrimSpace(string(payload))
	// Models occasionally wrap the object in markdown code fences.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return nil, err
	}
	return data, nil
}

// stringSlice coerces a raw value to a string sequence.
// Anything that is not a sequence yields an empty result.
func stringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// floatValue coerces a raw value to a number. Absent or non-coercible
// values yield nil; numeric strings are accepted.
func floatValue(raw any) *float64 {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// intValue coerces a raw value to an integer. Fractional numbers are
// discarded rather than rounded: risk matching is exact tier equality,
// so a fractional tier could never match anything.
func intValue(raw any) *int {
	f := floatValue(raw)
	if f == nil {
		return nil
	}
	if *f != math.Trunc(*f) {
		return nil
	}
	i := int(*f)
	return &i
}

func stringValue(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return ""
}
