// Copyright 2026 zoomETFs Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package search implements criteria matching and relevance ranking
// over an ETF catalog.
//
// Matching is boolean and conservative: every specified criterion must
// hold, and missing data on a record counts against it. Ranking is a
// separate additive pass that rewards keyword, intent, and numeric
// affinity without ever excluding a matched record.
package search
