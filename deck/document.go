package deck

import (
	"fmt"

	"github.com/npillmayer/slidetheme/tree"
)

// Document is a slide deck: a tree of elements below a root of kind Deck.
type Document struct {
	registry *Registry
	root     *Element
}

// Outline describes an element and its children, used to build documents
// in one go:
//
//    doc, err := deck.NewDocument(reg,
//        deck.Item(deck.TitleSlide, "", deck.Item(deck.Title, "TGIF")),
//        deck.Item(deck.Slide, "", deck.Item(deck.HeadLine, "Agenda")),
//    )
//
type Outline struct {
	Kind     Tag
	Text     string
	Children []Outline
}

// Item creates an outline entry.
func Item(kind Tag, text string, children ...Outline) Outline {
	return Outline{Kind: kind, Text: text, Children: children}
}

// NewDocument creates a document using the kinds of registry reg.
// If reg is nil, the default registry is used. The registry has to
// contain kind Deck.
func NewDocument(reg *Registry, outline ...Outline) (*Document, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}
	kind, ok := reg.Lookup(Deck)
	if !ok {
		return nil, fmt.Errorf("%w: registry lacks root kind %s", ErrUnknownTag, Deck)
	}
	doc := &Document{registry: reg, root: newElement(kind, "")}
	for _, o := range outline {
		if err := doc.addOutline(doc.root, o); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (doc *Document) addOutline(parent *Element, o Outline) error {
	e, err := doc.Add(parent, o.Kind, o.Text)
	if err != nil {
		return err
	}
	for _, ch := range o.Children {
		if err := doc.addOutline(e, ch); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns the document's kind registry.
func (doc *Document) Registry() *Registry {
	return doc.registry
}

// Root returns the root element of kind Deck.
func (doc *Document) Root() *Element {
	return doc.root
}

// Add appends a new element of a given kind to parent. If parent is nil,
// the element is appended to the root.
func (doc *Document) Add(parent *Element, kind Tag, text string) (*Element, error) {
	if parent == nil {
		parent = doc.root
	}
	if parent.TreeNode().Root() != doc.root.TreeNode() {
		return nil, ErrNoParent
	}
	k, ok := doc.registry.Lookup(kind)
	if !ok {
		tracer().Errorf("cannot add element of unknown kind %q", kind)
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, kind)
	}
	e := newElement(k, text)
	parent.AddChild(e.TreeNode())
	return e, nil
}

// Elements returns all elements except the root, in document order,
// including deleted ones.
func (doc *Document) Elements() []*Element {
	return elementsOf(tree.NewWalker(doc.root.TreeNode()).AllDescendents().Promise()())
}

// RenderTree returns all elements which have not been removed, in
// document order.
func (doc *Document) RenderTree() []*Element {
	w := tree.NewWalker(doc.root.TreeNode())
	return elementsOf(w.AllDescendents().Filter(ElementIsLive()).Promise()())
}

// Select returns all elements below the root matching a predicate, in
// document order. A nil predicate matches every element.
func (doc *Document) Select(predicate tree.Predicate[*Element]) []*Element {
	if predicate == nil {
		return doc.Elements()
	}
	return elementsOf(tree.NewWalker(doc.root.TreeNode()).DescendentsWith(predicate).Promise()())
}

func elementsOf(nodes []*tree.Node[*Element], err error) []*Element {
	if err != nil {
		tracer().Errorf("selecting elements: %v", err)
	}
	r := make([]*Element, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

// Count returns the number of elements of a kind, including deleted ones.
func (doc *Document) Count(kind Tag) int {
	return len(doc.Select(ElementIsKind(kind)))
}
