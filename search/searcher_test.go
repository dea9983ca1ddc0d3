package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOMOGSDIOP/zoomETFsProject/ai/mock"
	"github.com/MOMOGSDIOP/zoomETFsProject/core"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage"
	"github.com/MOMOGSDIOP/zoomETFsProject/storage/badger"
)

func newTestCatalog(t *testing.T, etfs ...*core.ETF) storage.CatalogRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryCatalog()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(); backend.Close() })

	if len(etfs) > 0 {
		_, err = repo.AddETFs(context.Background(), etfs)
		require.NoError(t, err)
	}
	return repo
}

func TestNewSearcher(t *testing.T) {
	t.Run("requires a catalog", func(t *testing.T) {
		_, err := NewSearcher(nil, mock.NewMockProvider())
		assert.ErrorIs(t, err, ErrCatalogRepositoryRequired)
	})

	t.Run("requires a provider", func(t *testing.T) {
		_, err := NewSearcher(newTestCatalog(t), nil)
		assert.ErrorIs(t, err, ErrAIProviderRequired)
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("ranks matches by relevance", func(t *testing.T) {
		world := worldETF()
		bonds := worldETF()
		bonds.ISIN = "LU0908500753"
		bonds.Name = "Lyxor Euro Bond"
		bonds.Description = "Obligations euro"
		bonds.Tags = []string{"obligations"}

		catalog := newTestCatalog(t, world, bonds)
		provider := mock.NewMockProvider()
		searcher, err := NewSearcher(catalog, provider)
		require.NoError(t, err)

		results, err := searcher.Search(ctx, "actions monde", 10)
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "FR0010315770", results[0].ETF.ISIN)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("applies extracted criteria", func(t *testing.T) {
		catalog := newTestCatalog(t, worldETF())
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(ctx context.Context, query string) (string, error) {
			return `{"fees_max": 0.5, "min_performance": 3}`, nil
		}
		searcher, err := NewSearcher(catalog, mock.NewMockProviderWithExtractor(extractor))
		require.NoError(t, err)

		results, err := searcher.Search(ctx, "cheap performers", 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		// Fees and performance both clear their thresholds.
		assert.Equal(t, 6, results[0].Score)
		assert.Equal(t, 1, extractor.CallCount())
	})

	t.Run("tight criteria yield an empty result without error", func(t *testing.T) {
		catalog := newTestCatalog(t, worldETF())
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(ctx context.Context, query string) (string, error) {
			return `{"fees_max": 0.1}`, nil
		}
		searcher, err := NewSearcher(catalog, mock.NewMockProviderWithExtractor(extractor))
		require.NoError(t, err)

		results, err := searcher.Search(ctx, "impossibly cheap", 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("extraction failure wraps ErrSemanticUnavailable", func(t *testing.T) {
		catalog := newTestCatalog(t, worldETF())
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(ctx context.Context, query string) (string, error) {
			return "", errors.New("connection refused")
		}
		searcher, err := NewSearcher(catalog, mock.NewMockProviderWithExtractor(extractor))
		require.NoError(t, err)

		_, err = searcher.Search(ctx, "anything", 10)
		assert.ErrorIs(t, err, ErrSemanticUnavailable)
	})

	t.Run("malformed payload degrades to an unconstrained search", func(t *testing.T) {
		catalog := newTestCatalog(t, worldETF())
		extractor := mock.NewMockCriteriaExtractor()
		extractor.ExtractCriteriaFunc = func(ctx context.Context, query string) (string, error) {
			return "not json at all", nil
		}
		searcher, err := NewSearcher(catalog, mock.NewMockProviderWithExtractor(extractor))
		require.NoError(t, err)

		results, err := searcher.Search(ctx, "garbage in", 10)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("maxHits truncates after ranking", func(t *testing.T) {
		first := worldETF()
		second := worldETF()
		second.ISIN = "LU0908500753"
		third := worldETF()
		third.ISIN = "IE00B4L5Y983"

		catalog := newTestCatalog(t, first, second, third)
		searcher, err := NewSearcher(catalog, mock.NewMockProvider())
		require.NoError(t, err)

		results, err := searcher.Search(ctx, "actions", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("monitor sees every stage", func(t *testing.T) {
		catalog := newTestCatalog(t, worldETF())
		searcher, err := NewSearcher(catalog, mock.NewMockProvider())
		require.NoError(t, err)

		monitor := &recordingMonitor{}
		results, err := searcher.SearchWithMonitor(ctx, "actions monde", 10, monitor)
		require.NoError(t, err)

		assert.Equal(t, "actions monde", monitor.query)
		require.NotNil(t, monitor.criteria)
		assert.True(t, monitor.criteria.IsUnconstrained())
		assert.Len(t, monitor.matched, 1)
		assert.Equal(t, results, monitor.results)
	})
}

type recordingMonitor struct {
	query    string
	criteria *core.SearchCriteria
	matched  []*core.ETF
	results  []*core.SearchResult
}

func (m *recordingMonitor) Start(query string) { m.query = query }
func (m *recordingMonitor) AfterCriteriaExtraction(criteria *core.SearchCriteria) {
	m.criteria = criteria
}
func (m *recordingMonitor) AfterFilter(matched []*core.ETF)     { m.matched = matched }
func (m *recordingMonitor) Finish(results []*core.SearchResult) { m.results = results }
