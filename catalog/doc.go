// Package catalog loads, validates, and enriches ETF records on their
// way into the store.
//
// The pipeline validates concurrently and rejects invalid records
// without failing the batch; the enricher decorates records with live
// market prices from their symbols.
package catalog
