// Package sugar recovers explicit nullability annotations from go/types
// type expressions.
//
// Annotations are marker aliases (see the null package). Being aliases,
// they are invisible in the canonical type: the only way to find them is
// to look through the alias sugar go/types keeps on the side, desugaring
// one alias application at a time and substituting alias type parameters
// with the arguments written at the use site. This is what the walker
// below does. It is a pure syntactic facility: it consults no global
// state, mutates nothing, and is safe to call concurrently.
package sugar

import (
	"go/types"

	"github.com/nilfer/nilfer/internal/nullness"
)

// AnnotationsFromType returns the nullability annotation attached to every
// pointer indirection level of t, ordered outer to inner: a pointer to
// pointer yields two entries, the outer one first. Levels with no
// discoverable annotation are present as explicit Unspecified entries.
// Non-pointer types yield an empty sequence.
//
// The traversal covers t's canonical structure: pointers descend into the
// pointee, instantiated named types descend into their type arguments in
// order, function types into results then parameters, and slices, arrays,
// maps and channels into their element (and key) types.
//
// Known limitations, kept deliberately — the extractor is one best-effort
// evidence source, not a type checker:
//
//   - type parameters of an enclosing declaration are not substituted;
//     positions depending on them come out Unspecified or absent;
//   - defined (non-alias) named types erase the sugar of their definition,
//     so a `type P *int` position yields no entries at all.
func AnnotationsFromType(t types.Type, markers Markers) []nullness.Nullness {
	w := walker{markers: markers}
	w.walk(t, nil, nullness.Unspecified)
	return w.out
}

// scope binds one alias application's type parameters to the argument
// types written at the use site. next is the scope those arguments were
// written in, so that a resolved parameter keeps desugaring with exactly
// the bindings that were visible where the argument appeared. Only the
// innermost application's parameters are ever consulted directly.
type scope struct {
	bind map[*types.TypeParam]types.Type
	next *scope
}

type walker struct {
	markers Markers
	out     []nullness.Nullness
}

// walk appends one entry per pointer level found in t, outer first.
// pending is an annotation discovered in the sugar above t that still
// waits for its pointer level.
func (w *walker) walk(t types.Type, env *scope, pending nullness.Nullness) {
	switch t := t.(type) {
	case *types.Alias:
		w.walkAlias(t, env, pending)

	case *types.TypeParam:
		if env != nil {
			if arg, ok := env.bind[t]; ok {
				w.walk(arg, env.next, pending)
				return
			}
		}
		// A parameter of an enclosing declaration. Its structure is not
		// visible from here, so it contributes no pointer levels.

	case *types.Pointer:
		w.out = append(w.out, pending)
		w.walk(t.Elem(), env, nullness.Unspecified)

	case *types.Named:
		// Defined types are opaque apart from their type arguments.
		if args := t.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				w.walk(args.At(i), env, nullness.Unspecified)
			}
		}

	case *types.Signature:
		if res := t.Results(); res != nil {
			for i := 0; i < res.Len(); i++ {
				w.walk(res.At(i).Type(), env, nullness.Unspecified)
			}
		}
		if params := t.Params(); params != nil {
			for i := 0; i < params.Len(); i++ {
				w.walk(params.At(i).Type(), env, nullness.Unspecified)
			}
		}

	case *types.Slice:
		w.walk(t.Elem(), env, nullness.Unspecified)

	case *types.Array:
		w.walk(t.Elem(), env, nullness.Unspecified)

	case *types.Map:
		w.walk(t.Key(), env, nullness.Unspecified)
		w.walk(t.Elem(), env, nullness.Unspecified)

	case *types.Chan:
		w.walk(t.Elem(), env, nullness.Unspecified)
	}

	// Basic, Struct, Interface, Tuple, Union: nothing to collect.
}

// walkAlias handles one layer of alias sugar: a marker annotation, a
// generic alias application, or a plain alias.
func (w *walker) walkAlias(t *types.Alias, env *scope, pending nullness.Nullness) {
	if kind, ok := w.markers.kindOf(t.Obj()); ok {
		args := t.TypeArgs()
		if args == nil || args.Len() != 1 {
			// A marker used without exactly one argument is malformed;
			// fall back to its expansion.
			w.walk(types.Unalias(t), env, pending)
			return
		}

		// The annotation belongs to the outermost pointer of the wrapped
		// type. When markers nest directly the outermost one wins.
		if pending == nullness.Unspecified {
			pending = kind
		}
		w.walk(args.At(0), env, pending)
		return
	}

	if args := t.TypeArgs(); args != nil && args.Len() > 0 {
		// One alias application: bind the alias's own type parameters to
		// the sugared arguments and continue in the generic right-hand
		// side. The current scope becomes the resolution context of the
		// arguments.
		origin := t.Origin()
		params := origin.TypeParams()
		if params == nil || params.Len() != args.Len() {
			w.walk(types.Unalias(t), env, pending)
			return
		}

		bind := make(map[*types.TypeParam]types.Type, args.Len())
		for i := 0; i < args.Len(); i++ {
			bind[params.At(i)] = args.At(i)
		}

		w.walk(origin.Rhs(), &scope{bind: bind, next: env}, pending)
		return
	}

	w.walk(t.Rhs(), env, pending)
}
