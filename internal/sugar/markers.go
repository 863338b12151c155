package sugar

import (
	"go/types"

	"github.com/nilfer/nilfer/internal/nullness"
)

// DefaultMarkerPackage is the annotation vocabulary shipped with nilfer.
const DefaultMarkerPackage = "github.com/nilfer/nilfer/null"

// Markers tells the extractor which alias names act as nullability
// annotations. Several vocabularies can be registered at once, so that
// codebases with their own marker packages stay analyzable.
type Markers struct {
	packages map[string]markerNames
}

type markerNames struct {
	nonnull  string
	nullable string
}

// NewMarkers returns an empty marker set.
func NewMarkers() Markers {
	return Markers{packages: map[string]markerNames{}}
}

// DefaultMarkers returns the marker set recognizing the null package of
// this module.
func DefaultMarkers() Markers {
	m := NewMarkers()
	m.Register(DefaultMarkerPackage, "Nonnull", "Nullable")
	return m
}

// Register adds a marker vocabulary: the package import path plus the
// alias names playing the non-null and nullable roles there. Empty names
// fall back to Nonnull and Nullable.
func (m Markers) Register(pkgPath, nonnull, nullable string) {
	if nonnull == "" {
		nonnull = "Nonnull"
	}
	if nullable == "" {
		nullable = "Nullable"
	}

	m.packages[pkgPath] = markerNames{nonnull: nonnull, nullable: nullable}
}

// kindOf reports whether obj names a marker alias and which verdict it
// annotates.
func (m Markers) kindOf(obj *types.TypeName) (nullness.Nullness, bool) {
	if obj == nil || obj.Pkg() == nil {
		return nullness.Unspecified, false
	}

	names, ok := m.packages[obj.Pkg().Path()]
	if !ok {
		return nullness.Unspecified, false
	}

	switch obj.Name() {
	case names.nonnull:
		return nullness.Nonnull, true
	case names.nullable:
		return nullness.Nullable, true
	default:
		return nullness.Unspecified, false
	}
}
