package stylesheet

import (
	"strings"

	"github.com/npillmayer/slidetheme/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients will have to provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	AtRule() string                 // name of an at-rule without '@', "" for qualified rules
	Selector() string               // the prelude / selectors of the rule
	Selectors() []string            // comma-separated parts of the prelude
	Properties() []string           // property keys, e.g. "margin-top"
	Value(string) style.Property    // property value for key, e.g. "15pt"
	IsImportant(string) bool        // is property key marked as important?
	Declarations() []style.KeyValue // all declarations in source order
}

// SelectorTags splits a selector like "Slide HeadLine" into its tags.
// Descendant combinators and compound selectors ("Slide.HeadLine") are
// both read as a conjunction of tags.
func SelectorTags(selector string) []string {
	fields := strings.FieldsFunc(selector, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '.' || r == '>'
	})
	tracer().Debugf("selector %q has tags %v", selector, fields)
	return fields
}

// Unquote strips quotes and a url(…) wrapper from an at-rule prelude,
// e.g. `"default"` or `url(default)`.
func Unquote(prelude string) string {
	s := strings.TrimSpace(prelude)
	if strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSpace(s[4 : len(s)-1])
	}
	return strings.Trim(s, `"'`)
}
