// Package storage defines the catalog persistence contract and the
// binary serialization used by its implementations.
package storage
