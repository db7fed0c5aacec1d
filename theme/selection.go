package theme

import (
	"github.com/npillmayer/slidetheme/deck"
)

// Selection is an ordered collection of matched elements, handed to a
// match handler. Operations on a selection apply to every member.
type Selection struct {
	elements []*deck.Element
	scope    *deck.Element
	pass     *Scope
}

// Len returns the number of elements in the selection.
func (sel Selection) Len() int {
	return len(sel.elements)
}

// Elements returns the members of the selection in document order.
func (sel Selection) Elements() []*deck.Element {
	r := make([]*deck.Element, len(sel.elements))
	copy(r, sel.elements)
	return r
}

// At returns the i-th member of the selection.
func (sel Selection) At(i int) *deck.Element {
	return sel.elements[i]
}

// First returns the first member of the selection. For singular matches
// this is the matched element.
func (sel Selection) First() *deck.Element {
	if len(sel.elements) == 0 {
		return nil
	}
	return sel.elements[0]
}

// Scope returns the element enclosing all members of the selection,
// e.g. the slide of a group of headlines.
func (sel Selection) Scope() *deck.Element {
	return sel.scope
}

// Each calls f for every member of the selection.
func (sel Selection) Each(f func(*deck.Element)) {
	for _, e := range sel.elements {
		f(e)
	}
}

// PropSet sets a property on every member, overwriting prior values for
// the same key. Values are not validated.
func (sel Selection) PropSet(key string, value string) {
	for _, e := range sel.elements {
		if e.PropSet(key, value) {
			tracer().P("key", key).Debugf("%s: %s = %s", e, key, value)
		}
	}
}

// Delete marks every member as removed from the render tree.
func (sel Selection) Delete() {
	n := 0
	for _, e := range sel.elements {
		if e.Delete() {
			n++
		}
	}
	if sel.pass != nil {
		sel.pass.countDeleted(n)
	}
}
