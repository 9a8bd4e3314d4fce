// Package check validates a built entity graph.
//
// The checks are pure functions over the registry (plus the dump, where
// record-level resolution is needed). Each returns a Result with the
// offending ids when a property does not hold; All bundles them into one
// Report. The conversion pipeline is supposed to establish every checked
// property, so a failed check means a pipeline bug or a hand-corrupted
// registry, not bad game data.
package check
