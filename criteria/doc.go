// Package criteria turns the loosely-typed payloads produced by the
// semantic-analysis service into canonical search criteria, degrading
// to unconstrained defaults instead of failing.
package criteria
