package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func worldETF() *core.ETF {
	return &core.ETF{
		Name:         "Amundi MSCI World",
		ISIN:         "FR0010315770",
		Category:     "Actions Monde",
		Description:  "Exposition aux actions des marches developpes",
		Sectors:      []string{"global"},
		Region:       "Monde",
		Type:         "ETF",
		Tags:         []string{"monde", "actions", "technologie"},
		Replication:  "physique",
		Availability: "france",
		Strategies:   []string{"passive"},
		Issuer:       "Amundi",
		Fees:         floatPtr(0.38),
		Performance:  floatPtr(8.5),
		Risk:         intPtr(6),
		ESGScore:     floatPtr(61.0),
	}
}

func TestMatches(t *testing.T) {
	t.Run("unconstrained criteria match any valid record", func(t *testing.T) {
		crit := core.SearchCriteria{}
		assert.True(t, Matches(worldETF(), &crit))
	})

	t.Run("invalid record never matches", func(t *testing.T) {
		etf := worldETF()
		etf.ISIN = ""
		assert.False(t, Matches(etf, &core.SearchCriteria{}))
	})

	t.Run("sector matches tag case-insensitively", func(t *testing.T) {
		crit := core.SearchCriteria{Sectors: []string{"Technologie"}}
		assert.True(t, Matches(worldETF(), &crit))
	})

	t.Run("sector matches category substring", func(t *testing.T) {
		crit := core.SearchCriteria{Sectors: []string{"monde"}}
		assert.True(t, Matches(worldETF(), &crit))
	})

	t.Run("no sector overlap excludes", func(t *testing.T) {
		crit := core.SearchCriteria{Sectors: []string{"sante"}}
		assert.False(t, Matches(worldETF(), &crit))
	})

	t.Run("fee cap", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{FeesMax: floatPtr(0.5)}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{FeesMax: floatPtr(0.1)}))
	})

	t.Run("missing fees fail a fee cap", func(t *testing.T) {
		etf := worldETF()
		etf.Fees = nil
		assert.False(t, Matches(etf, &core.SearchCriteria{FeesMax: floatPtr(1.0)}))
	})

	t.Run("performance floor", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{MinPerformance: floatPtr(3.0)}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{MinPerformance: floatPtr(10.0)}))
	})

	t.Run("region and type membership", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Region: []string{"Europe", "Monde"}}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Region: []string{"Europe"}}))
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Type: []string{"ETF"}}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Type: []string{"SCPI"}}))
	})

	t.Run("replication ignores case", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Replication: "Physique"}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Replication: "synthetique"}))
	})

	t.Run("availability membership", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Availability: []string{"france"}}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Availability: []string{"belgique"}}))
	})

	t.Run("everywhere satisfies any availability", func(t *testing.T) {
		etf := worldETF()
		etf.Availability = core.AvailabilityEverywhere
		assert.True(t, Matches(etf, &core.SearchCriteria{Availability: []string{"belgique"}}))
	})

	t.Run("risk is exact equality", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Risk: intPtr(6)}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Risk: intPtr(5)}))

		etf := worldETF()
		etf.Risk = nil
		assert.False(t, Matches(etf, &core.SearchCriteria{Risk: intPtr(6)}))
	})

	t.Run("strategy membership", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Strategy: "passive"}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Strategy: "active"}))
	})

	t.Run("esg threshold requires a score", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{ESG: floatPtr(50.0)}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{ESG: floatPtr(80.0)}))

		etf := worldETF()
		etf.ESGScore = nil
		assert.False(t, Matches(etf, &core.SearchCriteria{ESG: floatPtr(0.0)}))
	})

	t.Run("issuer membership", func(t *testing.T) {
		assert.True(t, Matches(worldETF(), &core.SearchCriteria{Issuers: []string{"Amundi", "Lyxor"}}))
		assert.False(t, Matches(worldETF(), &core.SearchCriteria{Issuers: []string{"Lyxor"}}))
	})

	t.Run("dimensions combine conjunctively", func(t *testing.T) {
		crit := core.SearchCriteria{
			FeesMax:        floatPtr(0.5),
			MinPerformance: floatPtr(3.0),
			Region:         []string{"Monde"},
		}
		assert.True(t, Matches(worldETF(), &crit))

		crit.Region = []string{"Europe"}
		assert.False(t, Matches(worldETF(), &crit))
	})
}

func TestFilter(t *testing.T) {
	cheap := worldETF()
	expensive := worldETF()
	expensive.ISIN = "LU0908500753"
	expensive.Fees = floatPtr(0.9)
	catalog := []*core.ETF{cheap, expensive}

	t.Run("preserves catalog order", func(t *testing.T) {
		matched := Filter(catalog, &core.SearchCriteria{})
		require.Len(t, matched, 2)
		assert.Same(t, cheap, matched[0])
		assert.Same(t, expensive, matched[1])
	})

	t.Run("fee cap excludes the expensive record", func(t *testing.T) {
		matched := Filter(catalog, &core.SearchCriteria{FeesMax: floatPtr(0.5)})
		require.Len(t, matched, 1)
		assert.Same(t, cheap, matched[0])

		assert.Empty(t, Filter(catalog, &core.SearchCriteria{FeesMax: floatPtr(0.1)}))
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		crit := core.SearchCriteria{FeesMax: floatPtr(0.5)}
		once := Filter(catalog, &crit)
		twice := Filter(once, &crit)
		assert.Equal(t, once, twice)
	})
}
