package observe

import (
	"go/token"
	"go/types"

	"github.com/sirkon/rbtree"
)

// guardSpan stores a [start,end] guarded region together with the
// variables it guards and, if needed, a nested RB-tree for child spans
// fully contained in this span.
type guardSpan struct {
	start token.Pos
	end   token.Pos

	vars     map[*types.Var]bool
	children *rbtree.Tree[*guardSpan]
}

// Cmp orders spans by position, with 0 meaning any overlap. Guard regions
// are blocks of properly nested if statements, so overlapping spans are
// always in strict containment (equal boundaries included, two checks on
// the same block guard the same region). Treating containment as equality
// makes InsertReturn hand back the overlapping node, and attachInto sorts
// out who nests inside whom.
func (n *guardSpan) Cmp(other *guardSpan) int {
	if n.end < other.start { // strictly before
		return -1
	}
	if n.start > other.end { // strictly after
		return 1
	}
	return 0 // overlapping (containment or equal boundaries)
}

func contains(a, b *guardSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto places span s into the containment hierarchy rooted at t.
// Disjoint spans become siblings. When s swallows an existing node the
// node is rewritten in place to carry s and its old content moves one
// level down, which spares the tree a replace operation; when an existing
// node swallows s, s descends into that node's children.
func attachInto(t *rbtree.Tree[*guardSpan], s *guardSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint: brand new top-level entry.
		return
	}

	// Overlap found. Decide by containment.
	if contains(s, r) {
		// s is the superspan, overwrite r in-place.
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*guardSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		// New span is a subspan of the existing node r, descend.
		if r.children == nil {
			r.children = rbtree.New[*guardSpan]()
		}

		attachInto(r.children, s)
		return
	}

	// Partial overlap cannot come out of properly nested blocks.
	panic("attachInto: partial-overlap spans are not supported")
}
