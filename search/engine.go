package search

import (
	"slices"
	"strings"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// Matches reports whether an ETF satisfies every specified criterion.
//
// Records that fail validation never match. Criteria left at their
// defaults are wildcards; the specified dimensions are AND-combined, so
// a single failing dimension excludes the record. Only the sector
// dimension (tag or category substring) and the availability dimension
// (the "everywhere" sentinel) accept anything other than exact matches.
func Matches(etf *core.ETF, criteria *core.SearchCriteria) bool {
	if !core.ValidateETF(etf).Valid {
		return false
	}

	if len(criteria.Sectors) > 0 && !sectorMatch(etf, criteria.Sectors) {
		return false
	}

	// A record without a fee figure cannot prove it satisfies a fee cap.
	if criteria.FeesMax != nil {
		if etf.Fees == nil || *etf.Fees > *criteria.FeesMax {
			return false
		}
	}

	if criteria.MinPerformance != nil {
		if etf.Performance == nil || *etf.Performance < *criteria.MinPerformance {
			return false
		}
	}

	if len(criteria.Region) > 0 && !slices.Contains(criteria.Region, etf.Region) {
		return false
	}

	if len(criteria.Type) > 0 && !slices.Contains(criteria.Type, etf.Type) {
		return false
	}

	if criteria.Replication != "" && !strings.EqualFold(etf.Replication, criteria.Replication) {
		return false
	}

	if len(criteria.Availability) > 0 {
		if etf.Availability != core.AvailabilityEverywhere &&
			!slices.Contains(criteria.Availability, etf.Availability) {
			return false
		}
	}

	// Exact tier equality, no range tolerance.
	if criteria.Risk != nil {
		if etf.Risk == nil || *etf.Risk != *criteria.Risk {
			return false
		}
	}

	if criteria.Strategy != "" && !slices.Contains(etf.Strategies, criteria.Strategy) {
		return false
	}

	// An absent ESG score fails an ESG threshold; absence must be
	// checked explicitly rather than letting a zero value sneak past.
	if criteria.ESG != nil {
		if etf.ESGScore == nil || *etf.ESGScore < *criteria.ESG {
			return false
		}
	}

	if len(criteria.Issuers) > 0 && !slices.Contains(criteria.Issuers, etf.Issuer) {
		return false
	}

	return true
}

// Filter returns the order-preserving subsequence of catalog whose
// records satisfy the criteria.
func Filter(catalog []*core.ETF, criteria *core.SearchCriteria) []*core.ETF {
	matched := make([]*core.ETF, 0, len(catalog))
	for _, etf := range catalog {
		if Matches(etf, criteria) {
			matched = append(matched, etf)
		}
	}
	return matched
}

// sectorMatch checks whether any requested sector appears among the
// ETF's tags (case-insensitive) or as a substring of its category.
func sectorMatch(etf *core.ETF, sectors []string) bool {
	category := strings.ToLower(etf.Category)
	for _, sector := range sectors {
		sector = strings.ToLower(sector)
		if strings.Contains(category, sector) {
			return true
		}
		for _, tag := range etf.Tags {
			if strings.EqualFold(tag, sector) {
				return true
			}
		}
	}
	return false
}
