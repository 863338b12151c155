// Package evkind defines the canonical evidence kinds recognized by nilfer.
//
// Every nullability observation the analyzer collects is tagged with a Kind.
// The set provides a stable textual identity for every observation, so that
// findings can be reported, filtered and serialized consistently across
// analysis passes, record dumps and diagnostics.
//
// # Purpose
//
// The evkind package serves as the single source of truth for evidence
// kinds. It is used by:
//   - the observer (to tag what it saw in the source);
//   - the aggregator (to classify annotation evidence and detect conflicts);
//   - and the renderer (to print evidence provenance notes).
//
// # Structure
//
// Two members are special: AnnotatedNonnull and AnnotatedNullable mean a
// human-written annotation was observed syntactically at a slot. The
// aggregator pattern-matches only on these two; every other kind — the
// built-in observation kinds below and the Other escape hatch — is treated
// uniformly as collected usage evidence.
//
// Each kind knows which verdict it argues for:
//
//	evkind.NilReturn.Implies()  → nullness.Nullable
//	evkind.NilReturn.String()   → "nil return"
//
// # Notes
//
//   - Kind names are stable; they appear verbatim in diagnostics and in
//     serialized records. Never rename existing kinds.
//   - External collectors that observe something this package does not
//     enumerate use Other and name the observation on the evidence item
//     itself.
package evkind
