package evkind

import (
	"fmt"

	"github.com/nilfer/nilfer/internal/nullness"
)

// Kind identifies the origin of a single nullability observation.
type Kind int

const (
	kindInvalid Kind = iota

	// AnnotatedNonnull means an explicit non-null annotation was written
	// at the slot.
	AnnotatedNonnull

	// AnnotatedNullable means an explicit nullable annotation was written
	// at the slot.
	AnnotatedNullable

	// NilReturn means the function returns an untyped nil at the slot.
	NilReturn

	// AddressOfReturn means the function returns the address of something,
	// which cannot be nil.
	AddressOfReturn

	// UncheckedDereference means a pointer parameter is dereferenced with
	// no nil check protecting the access.
	UncheckedDereference

	// NilArgument means a call in the same unit passes nil for the
	// parameter.
	NilArgument

	// Other is the escape hatch for evidence produced by collectors this
	// package knows nothing about. The evidence item carries the name and
	// the implied verdict itself.
	Other
)

var kindValueMap = map[Kind]string{
	AnnotatedNonnull:     "annotated nonnull",
	AnnotatedNullable:    "annotated nullable",
	NilReturn:            "nil return",
	AddressOfReturn:      "address-of return",
	UncheckedDereference: "unchecked dereference",
	NilArgument:          "nil argument",
	Other:                "other",
}

// String returns the canonical name of the kind. Example: "nil return".
func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("kind-unknown(%d)", k)
	}

	return v
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("unknown evidence kind %d", k)
	}

	return []byte(v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(data []byte) error {
	for kind, name := range kindValueMap {
		if name == string(data) {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown evidence kind %q", string(data))
}

// Description returns the human-readable explanation of the kind.
func (k Kind) Description() string {
	switch k {
	case AnnotatedNonnull:
		return "An explicit non-null annotation is present at the position."
	case AnnotatedNullable:
		return "An explicit nullable annotation is present at the position."
	case NilReturn:
		return "The function returns a literal nil at the position."
	case AddressOfReturn:
		return "The function returns a freshly taken address, which is never nil."
	case UncheckedDereference:
		return "A pointer parameter is dereferenced outside of any nil-check region."
	case NilArgument:
		return "A call within the unit passes nil for the parameter."
	case Other:
		return "Evidence supplied by an external collector."
	default:
		return fmt.Sprintf("unknown-kind(%d)", k)
	}
}

// Implies returns the verdict the kind argues for. Other has no intrinsic
// implication; the evidence item carries it instead.
func (k Kind) Implies() nullness.Nullness {
	switch k {
	case AnnotatedNonnull, AddressOfReturn, UncheckedDereference:
		return nullness.Nonnull
	case AnnotatedNullable, NilReturn, NilArgument:
		return nullness.Nullable
	default:
		return nullness.Unspecified
	}
}

// IsAnnotation reports whether the kind is direct annotation evidence,
// i.e. a human already wrote the verdict down.
func (k Kind) IsAnnotation() bool {
	return k == AnnotatedNonnull || k == AnnotatedNullable
}

// Annotated returns the direct-annotation kind matching the verdict.
// Only Nonnull and Nullable have one; ok is false otherwise.
func Annotated(v nullness.Nullness) (Kind, bool) {
	switch v {
	case nullness.Nonnull:
		return AnnotatedNonnull, true
	case nullness.Nullable:
		return AnnotatedNullable, true
	default:
		return kindInvalid, false
	}
}
