package nullness

import "fmt"

// Slot addresses a pointer-typed position within a symbol's signature.
// Slot ids are unique within one symbol; the absence of a slot in a
// record means "no pointer there", not "unspecified".
type Slot uint32

const (
	// SlotReturn is the return type position.
	SlotReturn Slot = 0

	// SlotParam is the base offset of parameter positions: parameter i
	// in declaration order lives at SlotParam + i.
	SlotParam Slot = 1
)

// Param returns the slot of the i-th parameter (0-based).
func Param(i int) Slot {
	return SlotParam + Slot(i)
}

// Name renders the slot for human display.
func (s Slot) Name() string {
	if s == SlotReturn {
		return "return type"
	}

	return fmt.Sprintf("parameter %d", s-SlotParam)
}
