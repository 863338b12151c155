package nullness

import "fmt"

// Nullness is a verdict about a single pointer position.
type Nullness int

const (
	// Unspecified means no determination was made. It is an explicit
	// "nothing was found here" value, not an absence.
	Unspecified Nullness = iota

	// Nonnull means the position must never hold nil.
	Nonnull

	// Nullable means the position is expected to hold nil at times.
	Nullable
)

var nullnessValueMap = map[Nullness]string{
	Unspecified: "unspecified",
	Nonnull:     "nonnull",
	Nullable:    "nullable",
}

func (n Nullness) String() string {
	v, ok := nullnessValueMap[n]
	if !ok {
		return fmt.Sprintf("invalid(%d)", n)
	}

	return v
}

// MarshalText for rendering values into configs, records, etc.
func (n Nullness) MarshalText() ([]byte, error) {
	v, ok := nullnessValueMap[n]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Nullness(%d)", n)
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (n *Nullness) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range nullnessValueMap {
		if v == text {
			*n = k
			return nil
		}
	}

	return fmt.Errorf("unknown nullness %q", text)
}
