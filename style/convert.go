package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Alignment is the horizontal alignment of an element's content.
type Alignment uint8

// Values for horizontal alignment
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	}
	return "left"
}

// Alignment interprets p as a horizontal alignment. Unknown values
// fall back to AlignLeft.
func (p Property) Alignment() Alignment {
	switch p {
	case "center", "centre":
		return AlignCenter
	case "right", "end":
		return AlignRight
	case "justify":
		return AlignJustify
	}
	return AlignLeft
}

// VerticalAlignment is the vertical alignment of an element within its
// containing slide.
type VerticalAlignment uint8

// Values for vertical alignment
const (
	VAlignTop VerticalAlignment = iota
	VAlignMiddle
	VAlignBottom
)

func (v VerticalAlignment) String() string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	}
	return "top"
}

// VerticalAlignment interprets p as a vertical alignment. Unknown values
// fall back to VAlignTop.
func (p Property) VerticalAlignment() VerticalAlignment {
	switch p {
	case "middle", "center":
		return VAlignMiddle
	case "bottom":
		return VAlignBottom
	}
	return VAlignTop
}

// Scaling factors for font size keywords, relative to "medium".
var fontScale = map[Property]float64{
	"xx-small": 0.5787,
	"x-small":  0.6944,
	"small":    0.8333,
	"medium":   1.0,
	"large":    1.2,
	"x-large":  1.44,
	"xx-large": 1.728,
	"larger":   1.2,
	"smaller":  0.8333,
}

// FontSize resolves a font size property against a base size, which is
// the size of "medium". It understands the CSS keywords xx-small … xx-large,
// percentages ("150%") and point sizes ("24pt").
// An empty property resolves to base.
func (p Property) FontSize(base dimen.DU) (dimen.DU, error) {
	if p.IsEmpty() || p.IsInherit() || p.IsInitial() {
		return base, nil
	}
	if scale, ok := fontScale[p]; ok {
		return dimen.DU(float64(base) * scale), nil
	}
	s := string(p)
	switch {
	case strings.HasSuffix(s, "%"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return base, fmt.Errorf("illegal font size %q: %w", s, err)
		}
		return dimen.DU(float64(base) * n / 100), nil
	case strings.HasSuffix(s, "pt"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
		if err != nil {
			return base, fmt.Errorf("illegal font size %q: %w", s, err)
		}
		return dimen.DU(n * float64(dimen.PT)), nil
	}
	tracer().Infof("unknown font size %q, using base size", s)
	return base, fmt.Errorf("unknown font size %q", s)
}

// Color interprets p as a color: one of the named colors black, white,
// red, green, blue and gray, or a hex value "#rrggbb" or "#rgb".
// "default" yields nil, telling a renderer to use its own default.
// Unknown names and malformed hex values yield nil as well.
func (p Property) Color() color.Color {
	if p == "default" || p.IsEmpty() {
		return nil
	}
	if strings.HasPrefix(string(p), "#") {
		hex := string(p[1:])
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
			}
		}
		tracer().Infof("malformed color %q, using renderer default", p)
		return nil
	}
	switch p {
	case "black":
		return color.Black
	case "white":
		return color.White
	case "red":
		return color.RGBA{0xff, 0, 0, 0xff}
	case "green":
		return color.RGBA{0, 0xff, 0, 0xff}
	case "blue":
		return color.RGBA{0, 0, 0xff, 0xff}
	case "gray", "grey":
		return color.RGBA{0x80, 0x80, 0x80, 0xff}
	}
	tracer().Infof("unknown color %q, using renderer default", p)
	return nil
}

// ColorString is a coarse inverse of Property.Color, used for debugging.
func ColorString(c color.Color) string {
	if c == nil {
		return "default"
	}
	r, g, b, a := c.RGBA()
	if r == a && g == a && b == a {
		return "white"
	}
	if r == 0 && g == 0 && b == 0 {
		return "black"
	}
	if r == g && g == b {
		return "gray"
	}
	if r >= 0x9000 {
		return "red"
	} else if g >= 0x9000 {
		return "green"
	} else if b >= 0x9000 {
		return "blue"
	}
	return "gray"
}
