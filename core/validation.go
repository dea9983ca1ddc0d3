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


package core

import (
	"math"
	"regexp"
)

// ValidationResult is the outcome of validating an ETF record.
// Errors is nil when the record is valid; otherwise it lists every
// failed check in the order the checks were run.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// NumericConstraints bounds a numeric field. A nil bound is unset.
type NumericConstraints struct {
	Min *float64
	Max *float64
}

// FieldRule pairs a field name with its specific validator.
// The validator is invoked only when the field is present on the record.
type FieldRule struct {
	Field    string
	Validate func(etf *ETF) bool
}

// ValidationConfig is the static rule table driving ValidateETF.
//
// The three lists are evaluated as three ordered passes: required
// fields, then generic numeric checks, then field-specific validators.
// The generic and specific checks for a field are independent; both
// can report an error for the same value.
type ValidationConfig struct {
	RequiredFields  []string
	NumericFields   []string
	FieldValidators []FieldRule
}

// DefaultValidationConfig returns the rule table every match operation
// uses as its validity gate.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		RequiredFields: []string{
			"name", "isin", "category", // base fields
			"sectors", "region", "type", // semantic-analysis fields
		},
		NumericFields: []string{
			"fees", "performance", "risk", "esg",
		},
		FieldValidators: []FieldRule{
			{Field: "isin", Validate: func(etf *ETF) bool { return ValidateISIN(etf.ISIN) }},
			{Field: "fees", Validate: numericRule(func(etf *ETF) float64 { return *etf.Fees }, bounds(0, 5))},
			{Field: "performance", Validate: numericRule(func(etf *ETF) float64 { return *etf.Performance }, bounds(-100, 500))},
			{Field: "risk", Validate: numericRule(func(etf *ETF) float64 { return float64(*etf.Risk) }, bounds(1, 7))},
			{Field: "esg", Validate: numericRule(func(etf *ETF) float64 { return *etf.ESGScore }, bounds(0, 100))},
		},
	}
}

// ValidationOption overrides part of the default rule table.
type ValidationOption func(*ValidationConfig)

// WithRequiredFields replaces the required-field list.
func WithRequiredFields(fields ...string) ValidationOption {
	return func(c *ValidationConfig) {
		c.RequiredFields = fields
	}
}

// WithNumericFields replaces the generically-checked numeric field list.
func WithNumericFields(fields ...string) ValidationOption {
	return func(c *ValidationConfig) {
		c.NumericFields = fields
	}
}

// WithFieldValidators replaces the field-specific validator table.
func WithFieldValidators(rules ...FieldRule) ValidationOption {
	return func(c *ValidationConfig) {
		c.FieldValidators = rules
	}
}

// ValidateETF checks an ETF record against the rule table.
//
// A record is either fully valid or excluded from matching entirely;
// there is no partial validity. The returned errors preserve pass
// order (required, numeric, specific) and field-declaration order
// within a pass.
func ValidateETF(etf *ETF, opts ...ValidationOption) ValidationResult {
	config := DefaultValidationConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if etf == nil {
		return ValidationResult{Valid: false, Errors: []string{"Invalid ETF object structure"}}
	}

	var errs []string

	for _, field := range config.RequiredFields {
		if !fieldPresent(etf, field) {
			errs = append(errs, "missing required field: "+field)
		}
	}

	for _, field := range config.NumericFields {
		if value, ok := numericFieldValue(etf, field); ok {
			if !ValidateNumericField(value, NumericConstraints{}) {
				errs = append(errs, "invalid numeric value for field: "+field)
			}
		}
	}

	for _, rule := range config.FieldValidators {
		if !fieldPresent(etf, rule.Field) {
			continue
		}
		if !rule.Validate(etf) {
			errs = append(errs, "validation failed for field: "+rule.Field)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

var isinPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ValidateISIN checks the standard ISIN shape: two uppercase letters,
// nine uppercase alphanumerics, one trailing digit. Format only; no
// checksum or country-code verification.
func ValidateISIN(isin string) bool {
	return isinPattern.MatchString(isin)
}

// ValidateNumericField checks that a value is finite and, when bounds
// are supplied, lies within [Min, Max] inclusive.
func ValidateNumericField(value float64, constraints NumericConstraints) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	if constraints.Min != nil && value < *constraints.Min {
		return false
	}
	if constraints.Max != nil && value > *constraints.Max {
		return false
	}
	return true
}

// fieldPresent reports whether a named field carries a usable value.
// Empty strings, empty slices, and nil numerics count as missing.
func fieldPresent(etf *ETF, field string) bool {
	switch field {
	case "name":
		return etf.Name != ""
	case "isin":
		return etf.ISIN != ""
	case "category":
		return etf.Category != ""
	case "sectors":
		return len(etf.Sectors) > 0
	case "region":
		return etf.Region != ""
	case "type":
		return etf.Type != ""
	case "fees":
		return etf.Fees != nil
	case "performance":
		return etf.Performance != nil
	case "risk":
		return etf.Risk != nil
	case "esg":
		return etf.ESGScore != nil
	default:
		return false
	}
}

// numericFieldValue resolves a named numeric field to its value.
// The second return is false when the field is absent.
func numericFieldValue(etf *ETF, field string) (float64, bool) {
	switch field {
	case "fees":
		if etf.Fees != nil {
			return *etf.Fees, true
		}
	case "performance":
		if etf.Performance != nil {
			return *etf.Performance, true
		}
	case "risk":
		if etf.Risk != nil {
			return float64(*etf.Risk), true
		}
	case "esg":
		if etf.ESGScore != nil {
			return *etf.ESGScore, true
		}
	}
	return 0, false
}

func numericRule(value func(etf *ETF) float64, constraints NumericConstraints) func(etf *ETF) bool {
	return func(etf *ETF) bool {
		return ValidateNumericField(value(etf), constraints)
	}
}

func bounds(min, max float64) NumericConstraints {
	return NumericConstraints{Min: &min, Max: &max}
}
