/*
Package theme applies styling rules to slide decks.

Overview

A theme is a named bundle of styling rules. Each rule selects elements
of a document by a conjunction of element tags and either sets style
properties on them or deletes them:

    var SlideCenter = theme.Theme{
        Name: "slide-center",
        Apply: func(sc *theme.Scope) error {
            if err := sc.IncludeTheme("default"); err != nil {
                return err
            }
            return sc.Match([]deck.Tag{deck.Slide, deck.HorizontalRule}, func(rules theme.Selection) {
                rules.Delete()
            })
        },
    }

Rules are applied once, in order, when a theme is applied to a document.
Themes may include other themes; included rules run at the point of
inclusion, so later rules override earlier ones for the same property
of the same element.

Besides Go code, themes may be written as YAML files or as stylesheets
(see LoadYAML and FromStyleSheet). An Engine holds a set of named themes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slidetheme.theme'.
func tracer() tracing.Trace {
	return tracing.Select("slidetheme.theme")
}

// ErrUnknownTheme is flagged if a theme name is not registered with an engine.
var ErrUnknownTheme = errors.New("unknown theme")

// ErrIncludeCycle is flagged if a theme includes itself, directly or indirectly.
var ErrIncludeCycle = errors.New("theme include cycle")

// ErrEmptyMatch is flagged for a match without any tags.
var ErrEmptyMatch = errors.New("match needs at least one tag")

// ErrInvalidRule is flagged for declarative rules which are malformed.
var ErrInvalidRule = errors.New("invalid theme rule")

// ErrInvalidTheme is flagged for themes without a name or rules function.
var ErrInvalidTheme = errors.New("invalid theme")
