package deck

import (
	"github.com/npillmayer/slidetheme/tree"
)

// Predicates to be used with a tree.Walker on a document.

// ElementIsKind matches elements of a given kind.
func ElementIsKind(kind Tag) tree.Predicate[*Element] {
	return func(n *tree.Node[*Element], unused *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if e := ElementOf(n); e != nil && e.kind.name == kind {
			return n, nil
		}
		return nil, nil
	}
}

// ElementCarries matches elements whose own kind carries tag t.
func ElementCarries(t Tag) tree.Predicate[*Element] {
	return func(n *tree.Node[*Element], unused *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if e := ElementOf(n); e != nil && e.kind.tags.Contains(t) {
			return n, nil
		}
		return nil, nil
	}
}

// ElementHasTags matches live elements which match tags, read from
// outer to inner (see Element.Is).
func ElementHasTags(tags ...Tag) tree.Predicate[*Element] {
	return func(n *tree.Node[*Element], unused *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if e := ElementOf(n); e != nil && !e.IsRemoved() && e.Is(tags...) {
			return n, nil
		}
		return nil, nil
	}
}

// ElementIsLive matches elements which have not been removed.
func ElementIsLive() tree.Predicate[*Element] {
	return func(n *tree.Node[*Element], unused *tree.Node[*Element]) (*tree.Node[*Element], error) {
		if e := ElementOf(n); e != nil && !e.IsRemoved() {
			return n, nil
		}
		return nil, nil
	}
}
