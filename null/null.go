// Package null exports the nullability annotation vocabulary recognized
// by nilfer.
//
// The markers are generic type aliases and therefore carry no runtime or
// canonical-type meaning: null.Nonnull[*T] is exactly *T. They do survive
// type checking as alias sugar, which is how the analyzer recovers them
// from go/types when it inspects annotated signatures.
//
// Typical use:
//
//	func Lookup(key string) null.Nullable[*Entry]
//	func Render(w null.Nonnull[*bytes.Buffer]) error
package null

// Nonnull marks a pointer position that must never hold nil.
type Nonnull[T any] = T

// Nullable marks a pointer position that is expected to hold nil at times.
type Nullable[T any] = T
