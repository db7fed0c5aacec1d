package style

// Default values are what a renderer assumes for properties no theme has
// set. They are never stored in an element's property map.
var defaultProperties = map[string]Property{
	"align":            "left",
	"vertical-align":   "top",
	"font-size":        "medium",
	"font-family":      "sans",
	"font-weight":      "normal",
	"font-style":       "normal",
	"color":            "black",
	"background-color": "default",
	"display":          "block",
	"visibility":       "visible",
	"line-height":      "normal",
	"letter-spacing":   "normal",
	"white-space":      "normal",
	"underline":        "none",
	"margin-top":       "0",
	"margin-left":      "0",
	"margin-right":     "0",
	"margin-bottom":    "0",
	"padding-top":      "0",
	"padding-left":     "0",
	"padding-right":    "0",
	"padding-bottom":   "0",
}

// Some element kinds deviate from the general defaults.
var kindDefaults = map[string]map[string]Property{
	"Deck": {
		"display": "none",
	},
	"TitleSlide": {
		"align":          "center",
		"vertical-align": "middle",
	},
	"Title": {
		"font-size": "xx-large",
		"align":     "center",
	},
	"HeadLine": {
		"font-size":   "large",
		"font-weight": "bold",
	},
	"Text": {
		"display": "inline",
	},
	"PreformattedBlock": {
		"font-family": "monospace",
		"white-space": "pre",
	},
	"HorizontalRule": {
		"color": "gray",
	},
}

// DefaultProperty returns the renderer default for a property key and
// an element kind. Unknown keys return NullStyle.
func DefaultProperty(kind string, key string) Property {
	if props, ok := kindDefaults[kind]; ok {
		if p, ok := props[key]; ok {
			return p
		}
	}
	if p, ok := defaultProperties[key]; ok {
		return p
	}
	tracer().Debugf("no default for property %s of kind %s", key, kind)
	return NullStyle
}

// DefaultPropertyMap creates a property map holding all the default
// values for an element kind. Extension properties may be provided by
// the client; they will be put into group X.
func DefaultPropertyMap(kind string, additionalProps []KeyValue) *PropertyMap {
	pmap := NewPropertyMap()
	for key := range defaultProperties {
		pmap.Set(key, DefaultProperty(kind, key))
	}
	for _, kv := range additionalProps {
		pmap.group(PGX).Set(kv.Key, kv.Value)
	}
	return pmap
}
