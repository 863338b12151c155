package inference

import (
	"github.com/nilfer/nilfer/internal/evkind"
	"github.com/nilfer/nilfer/internal/nullness"
)

// Evidence is a single nullability observation for one slot.
type Evidence struct {
	Kind evkind.Kind `yaml:"kind"`

	// Tag and Implies describe evidence of kind evkind.Other, supplied
	// by collectors this package has no knowledge of. They are empty for
	// the built-in kinds.
	Tag     string            `yaml:"tag,omitempty"`
	Implies nullness.Nullness `yaml:"implies,omitempty"`

	// Loc is a serialized "path:line:col" source coordinate, or empty when
	// the observation has no useful position. It is textual on purpose:
	// records outlive the file set they were collected from.
	Loc string `yaml:"loc,omitempty"`
}

// Observed builds an evidence item of one of the built-in kinds.
func Observed(kind evkind.Kind, loc string) Evidence {
	return Evidence{Kind: kind, Loc: loc}
}

// Annotation builds direct-annotation evidence for the verdict.
// Only Nonnull and Nullable verdicts have an annotation form.
func Annotation(verdict nullness.Nullness, loc string) (Evidence, bool) {
	kind, ok := evkind.Annotated(verdict)
	if !ok {
		return Evidence{}, false
	}

	return Evidence{Kind: kind, Loc: loc}, true
}

// External builds an evidence item for an observation made outside of
// this module. The tag names the observation, implies is the verdict it
// argues for (possibly Unspecified).
func External(tag string, implies nullness.Nullness, loc string) Evidence {
	return Evidence{Kind: evkind.Other, Tag: tag, Implies: implies, Loc: loc}
}

// ImpliedNullness returns the verdict this item argues for.
func (e Evidence) ImpliedNullness() nullness.Nullness {
	if e.Kind == evkind.Other {
		return e.Implies
	}

	return e.Kind.Implies()
}

// KindName returns the display name of the observation, as used in
// evidence provenance notes.
func (e Evidence) KindName() string {
	if e.Kind == evkind.Other && e.Tag != "" {
		return e.Tag
	}

	return e.Kind.String()
}
