package theme

import (
	"fmt"
	"strings"

	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/tree"
)

// Handler is called by Match for every group of matched elements.
type Handler func(Selection)

// Scope is the context of a single theme application pass over a
// document. Theme rules use it to match elements and to include other
// themes. A scope is not safe for concurrent use.
type Scope struct {
	engine *Engine
	doc    *deck.Document
	stack  []string // names of themes currently being applied
}

func newScope(engine *Engine, doc *deck.Document) *Scope {
	return &Scope{engine: engine, doc: doc}
}

// Document returns the document being themed.
func (sc *Scope) Document() *deck.Document {
	return sc.doc
}

// Theme returns the name of the theme whose rules are currently applied.
func (sc *Scope) Theme() string {
	if len(sc.stack) == 0 {
		return ""
	}
	return sc.stack[len(sc.stack)-1]
}

// IncludeTheme applies a named theme, registered with the engine, at
// this point of the pass. Rules applied afterwards override the included
// theme's properties.
func (sc *Scope) IncludeTheme(name string) error {
	for _, active := range sc.stack {
		if active == name {
			chain := strings.Join(append(sc.stack, name), " → ")
			tracer().Errorf("theme include cycle: %s", chain)
			return fmt.Errorf("%w: %s", ErrIncludeCycle, chain)
		}
	}
	th, ok := sc.engine.Lookup(name)
	if !ok {
		tracer().Errorf("theme %q includes unknown theme %q", sc.Theme(), name)
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if parent := sc.Theme(); parent != "" {
		tracer().Infof("theme %s includes theme %s", parent, name)
	} else {
		tracer().Infof("applying theme %s", name)
	}
	sc.stack = append(sc.stack, name)
	defer func() {
		sc.stack = sc.stack[:len(sc.stack)-1]
	}()
	return th.Apply(sc)
}

// Match selects all live elements of the document matching tags, and
// calls handler with them. The innermost (last) tag has to be carried by
// the element's own kind, outer tags by the element or one of its
// ancestors (see deck.Element.Is). Match([TitleSlide]) therefore selects
// title slides only, not the titles and authors within them.
//
// If the innermost (last) tag names a singular kind, handler is called
// once per matched element. Otherwise matched elements are grouped by
// their scope and handler is called once per group: with more than one
// tag, the scope is the nearest enclosing element carrying the first tag
// (e.g. the slide for Match([Slide, HeadLine])); with a single tag it is
// the document root. Groups are handed to the handler in document order.
//
// Not finding any matches is not an error; handler is simply never called.
// Unknown tags result in an error wrapping deck.ErrUnknownTag.
func (sc *Scope) Match(tags []deck.Tag, handler Handler) error {
	if len(tags) == 0 {
		return ErrEmptyMatch
	}
	if handler == nil {
		return fmt.Errorf("%w: no handler for match %v", ErrInvalidRule, tags)
	}
	reg := sc.doc.Registry()
	if err := reg.CheckTags(tags...); err != nil {
		tracer().Errorf("theme %s: %v", sc.Theme(), err)
		return fmt.Errorf("theme %q: %w", sc.Theme(), err)
	}
	sc.engine.metrics.ruleApplied(sc.Theme())
	candidates := sc.doc.Select(deck.ElementHasTags(tags...))
	tracer().Debugf("theme %s: match %v selects %d elements", sc.Theme(), tags, len(candidates))
	for _, g := range groupByScope(candidates, tags, sc.doc, reg) {
		live := g.elements[:0]
		for _, e := range g.elements {
			if !e.IsRemoved() { // an earlier handler may have deleted it
				live = append(live, e)
			}
		}
		if len(live) == 0 {
			continue
		}
		sc.engine.metrics.elementsMatched(sc.Theme(), len(live))
		handler(Selection{elements: live, scope: g.scope, pass: sc})
	}
	return nil
}

func (sc *Scope) countDeleted(n int) {
	sc.engine.metrics.elementsDeleted(sc.Theme(), n)
}

type group struct {
	scope    *deck.Element
	elements []*deck.Element
}

func groupByScope(candidates []*deck.Element, tags []deck.Tag, doc *deck.Document,
	reg *deck.Registry) []*group {
	//
	singular := false
	if k, ok := reg.Lookup(tags[len(tags)-1]); ok {
		singular = k.Singular()
	}
	scopeOf := func(e *deck.Element) *deck.Element {
		if len(tags) > 1 {
			ancestors := tree.NewWalker(e.TreeNode()).AncestorWith(deck.ElementCarries(tags[0]))
			if s, err := ancestors.Promise()(); err == nil && len(s) > 0 {
				return s[0].Payload
			}
		}
		return doc.Root()
	}
	var groups []*group
	byScope := make(map[*deck.Element]*group)
	for _, e := range candidates {
		scope := scopeOf(e)
		if singular {
			groups = append(groups, &group{scope: scope, elements: []*deck.Element{e}})
			continue
		}
		g, ok := byScope[scope]
		if !ok {
			g = &group{scope: scope}
			byScope[scope] = g
			groups = append(groups, g)
		}
		g.elements = append(g.elements, e)
	}
	return groups
}

// Step is a single step of a theme: a rule or the inclusion of another
// theme.
type Step func(*Scope) error

// Rule creates a step matching tags and calling handler for the matches.
func Rule(handler Handler, tags ...deck.Tag) Step {
	return func(sc *Scope) error {
		return sc.Match(tags, handler)
	}
}

// Include creates a step including a named theme.
func Include(name string) Step {
	return func(sc *Scope) error {
		return sc.IncludeTheme(name)
	}
}

// Run executes steps in order, stopping at the first error.
func (sc *Scope) Run(steps ...Step) error {
	for _, step := range steps {
		if err := step(sc); err != nil {
			return err
		}
	}
	return nil
}
