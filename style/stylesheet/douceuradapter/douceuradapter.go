/*
Package douceuradapter is a concrete implementation of interface stylesheet.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/slidetheme/style"
	"github.com/npillmayer/slidetheme/style/stylesheet"
	"golang.org/x/net/html"
)

// CSSStyles is an adapter for interface stylesheet.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS source text into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("cannot parse theme stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface stylesheet.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface stylesheet.StyleSheet
func (sheet *CSSStyles) AppendRules(other stylesheet.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	panic("douceuradapter: cannot append rules from a foreign stylesheet implementation")
}

// Rules returns all the rules of a stylesheet.
//
// Interface stylesheet.StyleSheet
func (sheet *CSSStyles) Rules() []stylesheet.Rule {
	rules := make([]stylesheet.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule{r}
	}
	return rules
}

var _ stylesheet.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface stylesheet.Rule.
type Rule struct {
	rule *css.Rule
}

// AtRule returns the name of an at-rule, without the leading '@'.
// For qualified rules it returns "".
func (r Rule) AtRule() string {
	if r.rule.Kind != css.AtRule {
		return ""
	}
	return strings.TrimPrefix(r.rule.Name, "@")
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Prelude
}

// Selectors returns the comma-separated parts of the prelude.
func (r Rule) Selectors() []string {
	if len(r.rule.Selectors) > 0 {
		return r.rule.Selectors
	}
	var sels []string
	for _, s := range strings.Split(r.rule.Prelude, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sels = append(sels, s)
		}
	}
	return sels
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15pt".
// If a key is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	decl := r.rule.Declarations
	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Property == key {
			return style.Property(decl[i].Value)
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.rule.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// Declarations returns all declarations of the rule in source order.
func (r Rule) Declarations() []style.KeyValue {
	kvs := make([]style.KeyValue, 0, len(r.rule.Declarations))
	for _, d := range r.rule.Declarations {
		kvs = append(kvs, style.KeyValue{Key: d.Property, Value: style.Property(d.Value)})
	}
	return kvs
}

var _ stylesheet.Rule = Rule{}

// styleElements selects <style> elements within the document head or body.
var styleElements = cascadia.MustCompile("head style, body style")

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets, in document order.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	if htmldoc == nil {
		return nil, nil
	}
	var css []*CSSStyles
	for _, st := range cascadia.QueryAll(htmldoc, styleElements) {
		if st.FirstChild == nil {
			continue
		}
		c, err := Parse(st.FirstChild.Data)
		if err != nil {
			return css, err
		}
		css = append(css, c)
	}
	return css, nil
}

// ParseHTML reads an HTML document and merges all of its <style> elements
// into one stylesheet.
func ParseHTML(r io.Reader) (*CSSStyles, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML theme document: %w", err)
	}
	merged := &CSSStyles{}
	doc.Find("head style, body style").EachWithBreak(func(_ int, st *goquery.Selection) bool {
		var c *CSSStyles
		if c, err = Parse(st.Text()); err != nil {
			return false
		}
		merged.AppendRules(c)
		return true
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
