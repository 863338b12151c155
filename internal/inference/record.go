package inference

import (
	"github.com/nilfer/nilfer/internal/nullness"
)

// SlotInference is the aggregated view of one pointer position.
//
// When Conflict is set the verdict is best-effort only and must not be
// treated as authoritative by consumers.
type SlotInference struct {
	Slot     nullness.Slot     `yaml:"slot"`
	Verdict  nullness.Nullness `yaml:"verdict"`
	Conflict bool              `yaml:"conflict,omitempty"`
	Evidence []Evidence        `yaml:"evidence"`
}

// Trivial reports whether there is nothing left to infer for this slot:
// a human already wrote an unambiguous annotation and no collected
// evidence contradicts it. Reporting such slots is noise by default.
func (s SlotInference) Trivial() bool {
	if s.Conflict {
		return false
	}

	for _, ev := range s.Evidence {
		if ev.Kind.IsAnnotation() {
			return true
		}
	}

	return false
}

// Record is everything inferred about one symbol within a single unit.
type Record struct {
	// Symbol is the stable cross-reference identifier of the declaration
	// the record describes.
	Symbol string `yaml:"symbol"`

	// Slots holds one entry per slot with evidence, ordered by slot id.
	// A missing slot means no evidence was ever collected there.
	Slots []SlotInference `yaml:"slots"`
}
