/*
Package slidetheme styles slide decks with declarative themes.

Themes are collections of rules which select deck elements by tags and
set style properties on them or delete them. Package deck holds the
element model, package style the property store, and package theme the
rule engine and theme loaders. This package offers shortcuts for the
common case of applying one of the built-in themes:

    doc, _ := deck.NewDocument(nil,
        deck.Item(deck.Slide, "", deck.Item(deck.HeadLine, "Agenda")))
    err := slidetheme.ApplySlideCenter(doc)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slidetheme

import (
	"sync"

	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/theme"
)

var defaultEngine *theme.Engine
var engineOnce sync.Once

// Engine returns a shared engine holding the built-in themes.
func Engine() *theme.Engine {
	engineOnce.Do(func() {
		defaultEngine = theme.NewEngine()
	})
	return defaultEngine
}

// Apply applies a theme of the shared engine to a document.
func Apply(doc *deck.Document, name string) error {
	return Engine().Apply(doc, name)
}

// ApplySlideCenter applies theme "slide-center" to a document: title
// slides and slide headlines are centered, horizontal rules on slides
// are removed.
func ApplySlideCenter(doc *deck.Document) error {
	return Apply(doc, theme.SlideCenter.Name)
}
