/*
Package stylesheet abstracts away stylesheet implementations.

Themes may be written as stylesheets instead of Go code. A theme stylesheet
uses element kinds as selectors:

    @import "default";

    TitleSlide {
        vertical-align: middle;
        align: center;
        font-size: x-large;
    }

    Slide HorizontalRule { display: none }

A selector is a list of element tags, all of which an element has to
carry to be matched. Parsing CSS is left to a concrete implementation
of interface StyleSheet (see package douceuradapter).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stylesheet

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'slidetheme.style'.
func tracer() tracing.Trace {
	return tracing.Select("slidetheme.style")
}
