package theme

import (
	"github.com/npillmayer/slidetheme/deck"
)

// Default is the base theme other themes build upon. It gives slides a
// sans-serif black-on-white look with top-aligned, left-aligned content.
var Default = Theme{
	Name: "default",
	Apply: func(sc *Scope) error {
		return sc.Run(
			Rule(func(sel Selection) {
				sel.PropSet("font-family", "sans-serif")
				sel.PropSet("color", "black")
				sel.PropSet("vertical-align", "top")
			}, deck.SlideElement),
			Rule(func(sel Selection) {
				sel.PropSet("align", "center")
				sel.PropSet("font-size", "xx-large")
			}, deck.Title),
			Rule(func(heads Selection) {
				heads.PropSet("align", "left")
				heads.PropSet("font-size", "large")
				heads.PropSet("font-weight", "bold")
			}, deck.Slide, deck.HeadLine),
			Rule(func(paras Selection) {
				paras.PropSet("align", "left")
				paras.PropSet("font-size", "medium")
			}, deck.Paragraph),
			Rule(func(rules Selection) {
				rules.PropSet("color", "gray")
			}, deck.HorizontalRule),
		)
	},
}

// SlideCenter centers title slides and slide headlines and removes
// horizontal rules from slides. It builds upon theme "default".
var SlideCenter = Theme{
	Name: "slide-center",
	Apply: func(sc *Scope) error {
		if err := sc.IncludeTheme(Default.Name); err != nil {
			return err
		}
		return SlideCenterRules(sc)
	},
}

// SlideCenterRules are the rules of theme "slide-center", without
// including theme "default". Other themes may use them as a building block.
func SlideCenterRules(sc *Scope) error {
	return sc.Run(
		Rule(func(title Selection) {
			title.PropSet("vertical-align", "middle")
			title.PropSet("align", "center")
			title.PropSet("font-size", "x-large")
		}, deck.TitleSlide),
		Rule(func(heads Selection) {
			heads.PropSet("vertical-align", "middle")
			heads.PropSet("align", "center")
			heads.PropSet("font-size", "large")
		}, deck.Slide, deck.HeadLine),
		Rule(func(rules Selection) {
			rules.Delete()
		}, deck.Slide, deck.HorizontalRule),
	)
}
