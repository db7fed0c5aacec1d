/*
Package style holds the property store for slide elements.

Every slide element links to a property map. A property map segments
style properties into property groups, e.g. "Alignment" or "Font".
Themes set property values by key; a renderer will later read them.
Neither keys nor values are validated here: a property value is just
a string, with helpers to convert it into something more useful.

Some properties (fonts, colors) are inherited by child elements. Property
groups may link to a parent group to support this kind of cascading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slidetheme.style'.
func tracer() tracing.Trace {
	return tracing.Select("slidetheme.style")
}
