package render

import (
	"github.com/nilfer/nilfer/internal/inference"
)

// Index maps stable symbol identifiers to their inference records. It is
// a non-owning view: records stay owned by the aggregation output.
type Index map[string]*inference.Record

// BuildIndex builds the lookup used while walking declarations. One entry
// per record; duplicate identifiers within a run are a caller error and
// are not handled here.
func BuildIndex(records []inference.Record) Index {
	idx := make(Index, len(records))
	for i := range records {
		idx[records[i].Symbol] = &records[i]
	}

	return idx
}
