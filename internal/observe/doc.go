// Package observe collects nullability evidence from the functions of a
// single compilation unit.
//
// It walks function declarations and records, per signature slot:
//
//   - Annotation evidence
//     Explicit null.Nonnull/null.Nullable markers recovered from the
//     signature's alias sugar by the sugar package.
//
//   - Usage evidence
//     Local, purely syntactic observations: literal nil returns,
//     address-of returns, dereferences of pointer parameters outside any
//     nil-check region, and nil passed at same-unit call sites.
//
// Core components:
//
//   - Engine
//     Drives the collection for one unit and hands the accumulated
//     per-slot evidence to the aggregator.
//
//   - Guards
//     A containment tree of [start,end] body regions protected by an
//     explicit nil check of some pointer variable. Dereferences inside a
//     guarded region are not reported as evidence.
//
// Everything here is deliberately best-effort and flow-insensitive: the
// observations are one evidence source among several, not a soundness
// claim. Function literal bodies are skipped entirely, and calls into
// other units are ignored — this engine sees exactly one unit at a time.
package observe
