// Package inference defines the records nilfer produces for analyzed
// symbols and the aggregation that builds them from raw evidence.
//
// The entities here provide a consistent vocabulary for everything that
// crosses the boundary between evidence collection and reporting: evidence
// items, per-slot inferences and per-symbol records. Records are produced
// once per analysis pass and are immutable afterwards, except for the
// explicit trivial-entry pruning which is a pure filter.
package inference
