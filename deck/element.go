package deck

import (
	"fmt"

	"github.com/npillmayer/slidetheme/style"
	"github.com/npillmayer/slidetheme/tree"
)

// Element is a typed node of a slide deck, the building block of a document.
type Element struct {
	tree.Node[*Element] // we build on top of general purpose tree
	kind                *Kind
	text                string
	props               *style.PropertyMap
	deleted             bool
}

// newElement creates an element of a given kind, not yet linked into a tree.
func newElement(kind *Kind, text string) *Element {
	e := &Element{kind: kind, text: text, props: style.NewPropertyMap()}
	e.Payload = e // Payload will always reference the element itself
	return e
}

// ElementOf gets the element from a generic tree node.
func ElementOf(n *tree.Node[*Element]) *Element {
	if n == nil {
		return nil
	}
	return n.Payload
}

func (e *Element) String() string {
	if e == nil {
		return "<nil element>"
	}
	if e.text == "" {
		return fmt.Sprintf("<%s>", e.kind.name)
	}
	return fmt.Sprintf("<%s %q>", e.kind.name, e.text)
}

// TreeNode returns the generic tree node of an element.
func (e *Element) TreeNode() *tree.Node[*Element] {
	return &e.Node
}

// Kind returns the element's kind.
func (e *Element) Kind() *Kind {
	return e.kind
}

// Text returns the textual content of an element, if any.
func (e *Element) Text() string {
	return e.text
}

// ParentElement returns the enclosing element, or nil for the root.
func (e *Element) ParentElement() *Element {
	return ElementOf(e.Parent())
}

// Children returns the child elements, in order.
func (e *Element) Children() []*Element {
	nodes := e.Node.Children(true)
	r := make([]*Element, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

// Classification returns the union of the tags of the element's kind and
// of the kinds of all its ancestors, i.e. the tags an element is
// contextually within. Is tests the innermost tag of a match against the
// element's own kind only and uses the classification for outer tags.
func (e *Element) Classification() TagSet {
	ts := NewTagSet()
	for it := e; it != nil; it = it.ParentElement() {
		ts.Union(it.kind.tags)
	}
	return ts
}

// Is is true if the element matches a list of tags, read from outer to
// inner: the last tag has to be carried by the element's own kind, all
// other tags by the element or one of its ancestors. Thus a HeadLine
// within a Slide is a (Slide, HeadLine), but a Title within a TitleSlide
// is not a TitleSlide.
func (e *Element) Is(tags ...Tag) bool {
	if len(tags) == 0 {
		return true
	}
	if !e.kind.tags.Contains(tags[len(tags)-1]) {
		return false
	}
	outer := tags[:len(tags)-1]
	if e.kind.tags.ContainsAll(outer...) { // quick check for the common case
		return true
	}
	return e.Classification().ContainsAll(outer...)
}

// NearestWith returns the element itself or its nearest ancestor whose
// kind carries tag t, or nil.
func (e *Element) NearestWith(t Tag) *Element {
	if e.kind.tags.Contains(t) {
		return e
	}
	anc, err := tree.NewWalker(e.TreeNode()).AncestorWith(ElementCarries(t)).Promise()()
	if err != nil || len(anc) == 0 {
		return nil
	}
	return anc[0].Payload
}

// --- Properties ------------------------------------------------------------

// Styles returns the element's property map.
func (e *Element) Styles() *style.PropertyMap {
	return e.props
}

// PropSet sets a property, overwriting any prior value for key.
// Shortcut properties like "margin" are split into their components.
// Returns true if a stored value changed.
func (e *Element) PropSet(key string, value string) bool {
	if style.IsCompoundProperty(key) {
		kvs, err := style.SplitCompoundProperty(key, style.Property(value))
		if err == nil {
			changed := false
			for _, kv := range kvs {
				changed = e.props.Set(kv.Key, kv.Value) || changed
			}
			return changed
		}
		tracer().Infof("cannot split %s = %q, storing as is: %v", key, value, err)
	}
	return e.props.Set(key, style.Property(value))
}

// Prop returns a property set locally on this element. No cascading is
// performed.
func (e *Element) Prop(key string) (style.Property, bool) {
	return e.props.Property(key)
}

// Property returns the effective value of a property for the element.
// Local values take precedence. Inherited properties (fonts, colors)
// cascade to enclosing elements. Otherwise the renderer default for the
// element's kind is returned.
func (e *Element) Property(key string) style.Property {
	p, ok := e.Prop(key)
	if ok && !p.IsInherit() {
		return p
	}
	if p.IsInherit() || style.IsCascading(key) {
		for anc := e.ParentElement(); anc != nil; anc = anc.ParentElement() {
			if p, ok := anc.Prop(key); ok && !p.IsInherit() {
				tracer().P("key", key).Debugf("styling: %s cascaded from %s", key, anc)
				return p
			}
		}
	}
	return style.DefaultProperty(string(e.kind.name), key)
}

// Dimen returns the effective value of a length property, e.g. "margin-top".
func (e *Element) Dimen(key string) (style.DimenT, error) {
	return style.ParseDimen(e.Property(key))
}

// --- Deletion --------------------------------------------------------------

// Delete marks the element as removed from the render tree. Deletion is
// terminal. Returns true if the element has not been deleted before.
func (e *Element) Delete() bool {
	if e.deleted {
		return false
	}
	tracer().Debugf("deleting element %s", e)
	e.deleted = true
	return true
}

// IsDeleted is true if the element itself has been deleted.
func (e *Element) IsDeleted() bool {
	return e.deleted
}

// IsRemoved is true if the element or one of its ancestors has been
// deleted, i.e. the element will not be rendered.
func (e *Element) IsRemoved() bool {
	for it := e; it != nil; it = it.ParentElement() {
		if it.deleted {
			return true
		}
	}
	return false
}
