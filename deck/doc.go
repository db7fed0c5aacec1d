/*
Package deck provides a minimal model of a slide deck to be themed.

Overview

A deck is a tree of typed elements: a Deck root holding a TitleSlide and
a sequence of Slides, which in turn hold HeadLines, Paragraphs, lists,
HorizontalRules and so on. Parsing slide sources is left to a host
presentation engine; this package just holds what themes need to
operate on.

Element kinds are organised in a Registry. A kind carries a set of tags:
its own name plus capability tags it shares with other kinds (e.g. both
TitleSlide and Slide are a SlideElement). An element's classification is
the union of the tags of its own kind and of the kinds of all its
ancestors. Matching an element against a list of tags is a simple set
membership test: a HeadLine within a Slide "is" a HeadLine and a Slide.

Tree Implementation

Elements are built on top of the general purpose tree type of package
tree. In Go we resort to composition, thus including a generic tree node
in every element. Clients use ElementOf() to get an element back from a
tree node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deck

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slidetheme.deck'.
func tracer() tracing.Trace {
	return tracing.Select("slidetheme.deck")
}

// ErrUnknownTag is flagged for element tags not known to a registry.
var ErrUnknownTag = errors.New("unknown element tag")

// ErrDuplicateKind is flagged if an element kind is registered twice.
var ErrDuplicateKind = errors.New("element kind already registered")

// ErrNoParent is flagged if an element is to be added to a parent which
// does not belong to the document.
var ErrNoParent = errors.New("parent element does not belong to document")
