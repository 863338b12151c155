package inference

import (
	"slices"

	"github.com/nilfer/nilfer/internal/nullness"
)

// Aggregate combines per-slot evidence into the record of one symbol.
//
// Slots with no evidence at all are omitted entirely, which is distinct
// from a slot whose evidence implies nothing: the latter is present with
// an Unspecified verdict.
func Aggregate(symbol string, perSlot map[nullness.Slot][]Evidence) Record {
	slots := make([]nullness.Slot, 0, len(perSlot))
	for slot := range perSlot {
		slots = append(slots, slot)
	}
	slices.Sort(slots)

	rec := Record{Symbol: symbol}
	for _, slot := range slots {
		items := perSlot[slot]
		if len(items) == 0 {
			continue
		}

		rec.Slots = append(rec.Slots, aggregateSlot(slot, items))
	}

	return rec
}

func aggregateSlot(slot nullness.Slot, items []Evidence) SlotInference {
	var sawNonnull, sawNullable bool
	first := nullness.Unspecified
	for _, ev := range items {
		switch ev.ImpliedNullness() {
		case nullness.Nonnull:
			sawNonnull = true
		case nullness.Nullable:
			sawNullable = true
		default:
			continue
		}

		if first == nullness.Unspecified {
			first = ev.ImpliedNullness()
		}
	}

	conflict := sawNonnull && sawNullable

	var verdict nullness.Nullness
	switch {
	case conflict:
		// Best effort: side with whatever was observed first.
		verdict = first
	case sawNonnull:
		verdict = nullness.Nonnull
	case sawNullable:
		verdict = nullness.Nullable
	}

	return SlotInference{
		Slot:     slot,
		Verdict:  verdict,
		Conflict: conflict,
		Evidence: slices.Clone(items),
	}
}

// PruneTrivial removes trivial slot inferences from every record and then
// drops records left with no slots. With includeTrivial set it is the
// identity transform. The filter is pure, idempotent and order-preserving;
// evidence items are never mutated.
func PruneTrivial(records []Record, includeTrivial bool) []Record {
	if includeTrivial {
		return records
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		kept := make([]SlotInference, 0, len(rec.Slots))
		for _, slot := range rec.Slots {
			if slot.Trivial() {
				continue
			}

			kept = append(kept, slot)
		}

		if len(kept) == 0 {
			continue
		}

		out = append(out, Record{Symbol: rec.Symbol, Slots: kept})
	}

	return out
}
