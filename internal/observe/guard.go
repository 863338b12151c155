package observe

import (
	"go/token"
	"go/types"

	"github.com/sirkon/rbtree"
)

// NewGuards returns an empty guard region collection.
func NewGuards() *Guards {
	return &Guards{tree: rbtree.New[*guardSpan]()}
}

// Guards holds the [start,end] regions of one function body that are
// protected by an explicit nil check of some pointer variable.
type Guards struct {
	tree *rbtree.Tree[*guardSpan]
}

// Add registers a region guarded for the variable. The tree orders only
// disjoint spans; any overlap is reported back via InsertReturn and gets
// resolved into a strict containment hierarchy.
func (g *Guards) Add(v *types.Var, start, end token.Pos) {
	span := &guardSpan{
		start: start,
		end:   end,
		vars:  map[*types.Var]bool{v: true},
	}
	attachInto(g.tree, span)
}

// Guarded reports whether pos sits inside a region guarded for v,
// checking every covering span from the outermost down.
func (g *Guards) Guarded(v *types.Var, pos token.Pos) bool {
	probe := &guardSpan{start: pos, end: pos}
	return descendGuard(g.tree.Search(probe), v, pos)
}

func descendGuard(n *guardSpan, v *types.Var, pos token.Pos) bool {
	if n == nil {
		return false
	}
	if n.vars[v] {
		return true
	}
	if n.children == nil {
		return false
	}

	probe := &guardSpan{start: pos, end: pos}
	return descendGuard(n.children.Search(probe), v, pos)
}
