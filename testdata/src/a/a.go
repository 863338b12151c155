package a

import "github.com/nilfer/nilfer/null"

type node struct {
	next *node
}

// Annotation and usage agree, nothing new to infer.
func annotatedOnly(p null.Nonnull[*int]) null.Nullable[*int] {
	_ = p
	return nil
}

func conflicted() null.Nonnull[*node] { // want `would mark return type as nonnull here \(conflicting evidence\)`
	return nil
}

func derefNoCheck(n *node) *node { // want `would mark parameter 0 as nonnull here`
	return n.next
}

func derefGuarded(n *node) *node { // want `would mark return type as nullable here`
	if n != nil {
		return n.next
	}
	return nil
}

func makesOne() *node { // want `would mark return type as nonnull here`
	return &node{}
}

func callee(n *node) {} // want `would mark parameter 0 as nullable here`

func caller() {
	callee(nil)
}
