package tree

import (
	"errors"
)

// ErrInvalidFilter is flagged if a walker step is called with a nil
// predicate.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is flagged if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is flagged if a client already called Promise(), but
// tried to re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//    w := NewWalker(node)
//    nodes, err := w.DescendentsWith(isHeadline).Filter(isVisible).Promise()()
//
// Every step operates on the selection of the previous step. A step
// which fails records its error; subsequent steps are no-ops.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection, in document order
	err       error      // last error occured
	promising bool       // client has called Promise()
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{
		initial:   initial,
		selection: []*Node[T]{initial},
	}
}

// Promise is the synchronisation point of a walker chain. Calling the
// returned function yields the selection and the last error occured.
// After Promise() has been called, no more filters are accepted.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.promising = true
	selection, err := w.selection, w.err
	return func() ([]*Node[T], error) {
		return selection, err
	}
}

// step maps every node of the current selection to zero or more result
// nodes. Results are collected as a set, keeping the order of first
// occurence.
func (w *Walker[T]) step(f func(n *Node[T], emit func(*Node[T])) error) *Walker[T] {
	if w == nil {
		return nil
	}
	if w.promising {
		w.err = ErrNoMoreFiltersAccepted
		return w
	}
	if w.err != nil {
		return w
	}
	seen := make(map[*Node[T]]struct{}, len(w.selection))
	var result []*Node[T]
	emit := func(n *Node[T]) {
		if n == nil {
			return
		}
		if _, dup := seen[n]; !dup {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}
	for _, n := range w.selection {
		if err := f(n, emit); err != nil {
			w.err = err
		}
	}
	w.selection = result
	return w
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// ----------------------------------------------------------------------

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w != nil && predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step(func(n *Node[T], emit func(*Node[T])) error {
		for anc := n.Parent(); anc != nil; anc = anc.Parent() {
			match, err := predicate(anc, n)
			if err != nil {
				return err
			}
			if match != nil {
				emit(match)
				return nil
			}
		}
		return nil // no matching ancestor found, not an error
	})
}

// DescendentsWith finds descendents matching a predicate, in document order.
// The search does not include the start node. If the predicate returns
// an error for a node, the walker does not descend below that node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w != nil && predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step(func(n *Node[T], emit func(*Node[T])) error {
		var lasterr error
		for _, ch := range n.Children(true) {
			if err := descendentsWith(ch, n, predicate, emit); err != nil {
				lasterr = err
			}
		}
		return lasterr
	})
}

func descendentsWith[T comparable](node, origin *Node[T], predicate Predicate[T], emit func(*Node[T])) error {
	match, err := predicate(node, origin)
	if err != nil {
		tracer().Debugf("predicate for node %v returned error %v", node, err)
		return err // do not descend further
	}
	emit(match)
	var lasterr error
	for _, ch := range node.Children(true) {
		if err := descendentsWith(ch, origin, predicate, emit); err != nil {
			lasterr = err
		}
	}
	return lasterr
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w != nil && f == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step(func(n *Node[T], emit func(*Node[T])) error {
		match, err := f(n, n)
		if err != nil {
			return err
		}
		emit(match)
		return nil
	})
}
