package search

import "github.com/MOMOGSDIOP/zoomETFsProject/core"

// SearchMonitor receives callbacks at each stage of a search. All
// callbacks run synchronously on the searching goroutine; slow
// implementations slow the search down.
type SearchMonitor interface {
	// Start is called once before criteria extraction begins.
	Start(query string)

	// AfterCriteriaExtraction is called with the normalized criteria,
	// including the defaults substituted for a malformed payload.
	AfterCriteriaExtraction(criteria *core.SearchCriteria)

	// AfterFilter is called with the records that survived matching,
	// before scoring.
	AfterFilter(matched []*core.ETF)

	// Finish is called with the final ranked, truncated results.
	Finish(results []*core.SearchResult)
}

// noopMonitor is the default monitor; it does nothing.
type noopMonitor struct{}

func (noopMonitor) Start(string)                                 {}
func (noopMonitor) AfterCriteriaExtraction(*core.SearchCriteria) {}
func (noopMonitor) AfterFilter([]*core.ETF)                      {}
func (noopMonitor) Finish([]*core.SearchResult)                  {}
