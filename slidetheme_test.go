package slidetheme_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slidetheme"
	"github.com/npillmayer/slidetheme/deck"
	"github.com/npillmayer/slidetheme/style"
	"github.com/npillmayer/slidetheme/theme"
)

func TestApplySlideCenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc, err := deck.NewDocument(nil,
		deck.Item(deck.TitleSlide, "", deck.Item(deck.Title, "TGIF")),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "Agenda"),
			deck.Item(deck.HorizontalRule, ""),
		),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err = slidetheme.ApplySlideCenter(doc); err != nil {
		t.Fatalf("cannot apply theme: %v", err)
	}
	head := doc.Select(deck.ElementIsKind(deck.HeadLine))[0]
	if head.Property("align").Alignment() != style.AlignCenter {
		t.Errorf("expected headline to be centered, is %q", head.Property("align"))
	}
	ts := doc.Select(deck.ElementIsKind(deck.TitleSlide))[0]
	if ts.Property("vertical-align").VerticalAlignment() != style.VAlignMiddle {
		t.Errorf("expected title slide to be vertically centered, is %q", ts.Property("vertical-align"))
	}
	if n := len(doc.RenderTree()); n != 4 {
		t.Errorf("expected horizontal rule to be removed from render tree of 4, have %d", n)
	}
}

func TestApplyUnknown(t *testing.T) {
	doc, _ := deck.NewDocument(nil)
	if err := slidetheme.Apply(doc, "no-such-theme"); !errors.Is(err, theme.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, have %v", err)
	}
	if slidetheme.Engine() != slidetheme.Engine() {
		t.Error("expected engine to be shared")
	}
}
