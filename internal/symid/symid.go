// Package symid produces stable cross-reference identifiers for
// declarations of a single type-checked unit.
//
// Identifiers are deterministic across independent traversals of the same
// unit and collision-free within one run, which is all the record index
// needs. They are not meant to survive refactorings.
package symid

import (
	"go/types"

	"golang.org/x/tools/go/types/objectpath"
)

// For returns the stable identifier of obj. Function-scoped objects have
// no identifier; ok is false for them.
func For(obj types.Object) (string, bool) {
	if obj == nil || obj.Pkg() == nil {
		return "", false
	}

	if p, err := objectpath.For(obj); err == nil {
		return obj.Pkg().Path() + "#" + string(p), true
	}

	// Unexported package-level objects carry no object path yet still need
	// identifiers. Their name is unique within the package scope, so it
	// serves directly.
	if obj.Parent() == obj.Pkg().Scope() {
		return obj.Pkg().Path() + "#" + obj.Name(), true
	}

	return "", false
}
