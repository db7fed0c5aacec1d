package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for lengths, e.g. margins and paddings.
//
//    type DimenT
//        = Auto
//        | Inherit
//        | Initial
//        | JustDimen dimen
//        | Percentage Percent
//
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// Auto creates a dimension with value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension with value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension with value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsNone is true for the zero value of DimenT.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// ParseDimen reads a length property. It understands "auto", "inherit",
// "initial", "0", point values ("12pt") and integer percentages ("80%").
func ParseDimen(p Property) (DimenT, error) {
	s := strings.TrimSpace(string(p))
	switch s {
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "0":
		return JustDimen(0), nil
	}
	switch {
	case strings.HasSuffix(s, "%"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil {
			return DimenT{}, fmt.Errorf("illegal percentage %q: %w", s, err)
		}
		return Percentage(percent.FromInt(n)), nil
	case strings.HasSuffix(s, "pt"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "pt"), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("illegal dimension %q: %w", s, err)
		}
		return JustDimen(dimen.DU(n * float64(dimen.PT))), nil
	}
	return DimenT{}, fmt.Errorf("cannot parse dimension %q", s)
}

// ---------------------------------------------------------------------------

// Match starts a pattern match on d, e.g.
//
//    switch m := d.Match(); m {
//    case m.Just(&du):
//        …
//    case m.IsKind(style.Auto()):
//        …
//    }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper type for matching on DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask) != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches absolute dimensions and extracts the value into du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches relative dimensions and extracts the value into p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results for each kind of dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match on d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a match expression producing values of type T.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern result for the kind of dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With extracts the absolute value of the dimension into du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
