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

package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/MOMOGSDIOP/zoomETFsProject/ai"
	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/criteria"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
)

// Searcher runs the full semantic search flow: criteria extraction,
// normalization, catalog matching, and relevance ranking.
type Searcher struct {
	catalog    storage.CatalogRepository
	extractor  ai.CriteriaExtractor
	normalizer *criteria.Normalizer
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithLogger sets the logger used by the searcher and its normalizer.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// NewSearcher creates a Searcher over the given catalog, using the
// provider's criteria extractor to interpret queries.
func NewSearcher(catalog storage.CatalogRepository, provider ai.AIProvider, opts ...Option) (*Searcher, error) {
	if catalog == nil {
		return nil, ErrCatalogRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		catalog:   catalog,
		extractor: provider.CriteriaExtractor(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.normalizer = criteria.NewNormalizer(criteria.WithLogger(s.logger))
	return s, nil
}

// Search runs a query against the catalog and returns up to maxHits
// results ranked by descending relevance. maxHits <= 0 means no limit.
//
// A degraded extraction payload is not an error: the normalizer falls
// back to unconstrained criteria and the search proceeds. Only a
// failure to reach the extraction service returns an error, wrapping
// ErrSemanticUnavailable.
func (s *Searcher) Search(ctx context.Context, query string, maxHits int) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, query, maxHits, noopMonitor{})
}

// SearchWithMonitor is Search with stage callbacks for observability.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	monitor.Start(query)

	payload, err := s.extractor.ExtractCriteria(ctx, query)
	if err != nil {
		s.logger.Error("criteria extraction failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSemanticUnavailable, err)
	}

	crit := s.normalizer.Normalize(payload)
	monitor.AfterCriteriaExtraction(&crit)
	s.logger.Debug("criteria normalized", "unconstrained", crit.IsUnconstrained())

	etfs, err := s.catalog.AllETFs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	matched := Filter(etfs, &crit)
	monitor.AfterFilter(matched)

	keywords := QueryKeywords(query)
	numeric := NumericCriteria{
		MaxFees:        crit.FeesMax,
		MinPerformance: crit.MinPerformance,
	}

	results := make([]*core.SearchResult, 0, len(matched))
	for _, etf := range matched {
		results = append(results, &core.SearchResult{
			ETF:   etf,
			Score: MatchScore(etf, keywords, IntentAll, numeric),
		})
	}

	// Stable sort keeps catalog order among equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if maxHits > 0 && len(results) > maxHits {
		results = results[:maxHits]
	}

	monitor.Finish(results)
	s.logger.Info("search completed",
		"matched", len(matched),
		"returned", len(results))
	return results, nil
}
