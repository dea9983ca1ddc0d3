package search

import (
	"slices"
	"strings"

	"github.com/MOMOGSDIOP/zoomETFsProject/core"
)

// IntentAll is the neutral intent value; it earns no intent bonus.
const IntentAll = "all"

// NumericCriteria carries the numeric bonus thresholds for scoring.
// Unlike the match engine, the scorer treats them as rewards rather
// than gates: a record that misses a threshold simply earns nothing.
type NumericCriteria struct {
	MaxFees        *float64
	MinPerformance *float64
}

// Scoring weights. Keyword hits are worth the least individually but
// accumulate per keyword; the intent bonus dominates a single keyword.
const (
	keywordWeight    = 2
	intentBonus      = 5
	feesBonus        = 3
	performanceBonus = 3
)

// MatchScore computes the relevance score of an ETF against query
// keywords, a user intent, and numeric thresholds. Scores are additive
// and start at zero; the same inputs always yield the same score.
func MatchScore(etf *core.ETF, keywords []string, intent string, numeric NumericCriteria) int {
	score := 0

	content := strings.ToLower(etf.Name + " " + etf.Description + " " + strings.Join(etf.Tags, " "))
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(content, strings.ToLower(keyword)) {
			score += keywordWeight
		}
	}

	// Intent matches against tags verbatim, case included.
	if intent != IntentAll && slices.Contains(etf.Tags, intent) {
		score += intentBonus
	}

	if numeric.MaxFees != nil && etf.Fees != nil && *etf.Fees <= *numeric.MaxFees {
		score += feesBonus
	}

	if numeric.MinPerformance != nil && etf.Performance != nil && *etf.Performance >= *numeric.MinPerformance {
		score += performanceBonus
	}

	return score
}
