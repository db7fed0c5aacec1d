/*
Package tree implements an all-purpose ordered tree type.

Slide decks are trees of typed elements. Theme rules select elements
from such a tree and mutate them. This package provides the generic
part of that: nodes carrying a payload, and a Walker to select nodes.

Walker

Clients chain search & filter functions on a Walker to select tree
nodes, similar in concept to JQuery. Selections are kept in document
order (pre-order) and contain every node at most once.

   AncestorWith(predicate)      // find ancestor with a given predicate
   DescendentsWith(predicate)   // find descendents with a given predicate
   AllDescendents()             // all descendents of the selection
   Filter(predicate)            // apply a user-provided filter function

Clients must call Promise() as the final link of the chain to fetch
the selection and the last error occured.

Theme application is a single, sequential pass, so walking happens
synchronously on the caller's goroutine. Child slices of nodes are still
guarded by a mutex, so building a tree from several goroutines is safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slidetheme.tree'.
func tracer() tracing.Trace {
	return tracing.Select("slidetheme.tree")
}
