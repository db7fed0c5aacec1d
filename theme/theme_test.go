package theme

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slidetheme/deck"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tgif(t *testing.T) *deck.Document {
	doc, err := deck.NewDocument(nil,
		deck.Item(deck.TitleSlide, "",
			deck.Item(deck.Title, "TGIF"),
			deck.Item(deck.Author, "N.N."),
		),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "Agenda"),
			deck.Item(deck.Body, "",
				deck.Item(deck.Paragraph, "Hello"),
				deck.Item(deck.HorizontalRule, ""),
			),
		),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "Thanks"),
			deck.Item(deck.HorizontalRule, ""),
			deck.Item(deck.Paragraph, "Bye"),
		),
	)
	require.NoError(t, err)
	return doc
}

type snapshot struct {
	props   map[string]string
	deleted bool
}

func takeSnapshot(doc *deck.Document) []snapshot {
	var snap []snapshot
	for _, e := range doc.Elements() {
		snap = append(snap, snapshot{props: e.Styles().AsMap(), deleted: e.IsDeleted()})
	}
	return snap
}

func only(t *testing.T, doc *deck.Document, kind deck.Tag) []*deck.Element {
	elems := doc.Select(deck.ElementIsKind(kind))
	require.NotEmpty(t, elems, "expected elements of kind %s", kind)
	return elems
}

func themeOf(name string, steps ...Step) Theme {
	return Theme{Name: name, Apply: func(sc *Scope) error { return sc.Run(steps...) }}
}

func TestSlideCenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	require.NoError(t, NewEngine().Apply(doc, "slide-center"))
	ts := only(t, doc, deck.TitleSlide)[0]
	assert.Equal(t, "middle", ts.Property("vertical-align").String())
	assert.Equal(t, "center", ts.Property("align").String())
	assert.Equal(t, "x-large", ts.Property("font-size").String())
	for _, h := range only(t, doc, deck.HeadLine) {
		assert.Equal(t, "middle", h.Property("vertical-align").String(), h.Text())
		assert.Equal(t, "center", h.Property("align").String(), h.Text())
		assert.Equal(t, "large", h.Property("font-size").String(), h.Text())
		assert.Equal(t, "bold", h.Property("font-weight").String(), "expected default theme to show through")
	}
	for _, hr := range only(t, doc, deck.HorizontalRule) {
		assert.True(t, hr.IsDeleted())
	}
	for _, p := range only(t, doc, deck.Paragraph) {
		assert.Equal(t, "top", p.Property("vertical-align").String())
		assert.False(t, p.IsRemoved())
	}
	assert.Len(t, doc.Elements(), 12)
	assert.Len(t, doc.RenderTree(), 10)
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	engine := NewEngine()
	require.NoError(t, engine.Apply(doc, "slide-center"))
	first := takeSnapshot(doc)
	require.NoError(t, engine.Apply(doc, "slide-center"))
	assert.Equal(t, first, takeSnapshot(doc))
}

func TestUnrelatedDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc, err := deck.NewDocument(nil, deck.Item(deck.Image, "logo.png"))
	require.NoError(t, err)
	require.NoError(t, NewEngine().Apply(doc, "slide-center"))
	img := only(t, doc, deck.Image)[0]
	assert.Equal(t, 0, img.Styles().Len())
	assert.False(t, img.IsDeleted())
	//
	empty, err := deck.NewDocument(nil)
	require.NoError(t, err)
	assert.NoError(t, NewEngine().Apply(empty, "slide-center"))
}

func TestSlideWithoutCenteredElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc, err := deck.NewDocument(nil,
		deck.Item(deck.Slide, "",
			deck.Item(deck.Body, "", deck.Item(deck.Paragraph, "just text")),
		),
	)
	require.NoError(t, err)
	engine := NewEngine(WithoutBuiltins(), WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, engine.Register(Theme{Name: "center-rules", Apply: SlideCenterRules}))
	require.NoError(t, engine.Apply(doc, "center-rules"))
	m := engine.metrics
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rules.WithLabelValues("center-rules")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.matched.WithLabelValues("center-rules")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.deleted.WithLabelValues("center-rules")))
	for _, e := range doc.Elements() {
		assert.Equal(t, 0, e.Styles().Len(), "expected %s to stay unstyled", e)
		assert.False(t, e.IsDeleted())
	}
}

func TestTitleSlideKeepsInnerStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	require.NoError(t, NewEngine().Apply(doc, "slide-center"))
	title := only(t, doc, deck.Title)[0]
	assert.Equal(t, "xx-large", title.Property("font-size").String())
	assert.Equal(t, "center", title.Property("align").String())
	author := only(t, doc, deck.Author)[0]
	_, ok := author.Prop("vertical-align")
	assert.False(t, ok, "did not expect author to carry a local vertical-align")
	_, ok = author.Prop("font-size")
	assert.False(t, ok, "did not expect author to carry a local font-size")
	assert.Equal(t, "x-large", author.Property("font-size").String(), "expected author to inherit from title slide")
	//
	var matched []*deck.Element
	engine := NewEngine()
	require.NoError(t, engine.Register(themeOf("title-slides", Rule(func(sel Selection) {
		matched = append(matched, sel.Elements()...)
	}, deck.TitleSlide))))
	require.NoError(t, engine.Apply(doc, "title-slides"))
	require.Len(t, matched, 1)
	assert.Equal(t, deck.TitleSlide, matched[0].Kind().Name())
}

func TestDescendantsOfCenteredElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc, err := deck.NewDocument(nil,
		deck.Item(deck.TitleSlide, "",
			deck.Item(deck.Title, "", deck.Item(deck.Text, "TGIF")),
		),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "", deck.Item(deck.Text, "Agenda")),
		),
	)
	require.NoError(t, err)
	require.NoError(t, NewEngine().Apply(doc, "slide-center"))
	texts := only(t, doc, deck.Text)
	require.Len(t, texts, 2)
	for _, txt := range texts {
		assert.Equal(t, 0, txt.Styles().Len(), "expected text %q to carry no local properties", txt.Text())
		assert.False(t, txt.IsRemoved())
	}
	assert.Equal(t, "large", texts[1].Property("font-size").String(), "expected text to inherit from its headline")
}

func TestMatchGroupsByScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc, err := deck.NewDocument(nil,
		deck.Item(deck.Slide, "", deck.Item(deck.HeadLine, "a"), deck.Item(deck.HeadLine, "b")),
		deck.Item(deck.Slide, "", deck.Item(deck.HeadLine, "c")),
	)
	require.NoError(t, err)
	var groups [][]string
	var scopes []*deck.Element
	engine := NewEngine(WithoutBuiltins())
	require.NoError(t, engine.Register(themeOf("heads", Rule(func(heads Selection) {
		var texts []string
		heads.Each(func(e *deck.Element) { texts = append(texts, e.Text()) })
		groups = append(groups, texts)
		scopes = append(scopes, heads.Scope())
	}, deck.Slide, deck.HeadLine))))
	require.NoError(t, engine.Apply(doc, "heads"))
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, groups)
	slides := only(t, doc, deck.Slide)
	assert.Equal(t, []*deck.Element{slides[0], slides[1]}, scopes)
}

func TestMatchSingleTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	calls := 0
	var sizes []int
	engine := NewEngine()
	require.NoError(t, engine.Register(themeOf("paragraphs", Rule(func(sel Selection) {
		sizes = append(sizes, sel.Len())
		assert.Equal(t, doc.Root(), sel.Scope())
	}, deck.Paragraph), Rule(func(sel Selection) {
		calls++
		assert.Equal(t, 1, sel.Len())
		assert.Equal(t, deck.Title, sel.First().Kind().Name())
	}, deck.Title))))
	require.NoError(t, engine.Apply(doc, "paragraphs"))
	assert.Equal(t, []int{2}, sizes, "expected paragraphs as one group below the root")
	assert.Equal(t, 1, calls, "expected singular kind to be matched once per element")
}

func TestMatchSkipsRemovedElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	calls := 0
	engine := NewEngine()
	require.NoError(t, engine.Register(themeOf("greedy", Rule(func(heads Selection) {
		calls++
		for _, slide := range doc.Select(deck.ElementIsKind(deck.Slide)) {
			if slide != heads.Scope() {
				slide.Delete()
			}
		}
	}, deck.Slide, deck.HeadLine))))
	require.NoError(t, engine.Apply(doc, "greedy"))
	assert.Equal(t, 1, calls, "expected headline of deleted slide not to be handed out")
	assert.Len(t, doc.RenderTree(), 8)
}

func TestMatchErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	engine := NewEngine()
	called := false
	handler := func(Selection) { called = true }
	require.NoError(t, engine.Register(themeOf("banner", Rule(handler, deck.Slide, "Banner"))))
	err := engine.Apply(doc, "banner")
	assert.True(t, errors.Is(err, deck.ErrUnknownTag), "expected ErrUnknownTag, have %v", err)
	assert.False(t, called)
	//
	require.NoError(t, engine.Register(themeOf("empty", Rule(handler))))
	err = engine.Apply(doc, "empty")
	assert.True(t, errors.Is(err, ErrEmptyMatch), "expected ErrEmptyMatch, have %v", err)
	//
	require.NoError(t, engine.Register(themeOf("nohandler", Rule(nil, deck.Slide))))
	err = engine.Apply(doc, "nohandler")
	assert.True(t, errors.Is(err, ErrInvalidRule), "expected ErrInvalidRule, have %v", err)
	for _, e := range doc.Elements() {
		assert.Equal(t, 0, e.Styles().Len(), "expected failing themes not to set properties")
	}
}

func TestIncludeErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	engine := NewEngine()
	err := engine.Apply(doc, "no-such-theme")
	assert.True(t, errors.Is(err, ErrUnknownTheme), "expected ErrUnknownTheme, have %v", err)
	require.NoError(t, engine.Register(themeOf("ping", Include("pong"))))
	require.NoError(t, engine.Register(themeOf("pong", Include("ping"))))
	err = engine.Apply(doc, "ping")
	assert.True(t, errors.Is(err, ErrIncludeCycle), "expected ErrIncludeCycle, have %v", err)
	require.NoError(t, engine.Register(themeOf("selfish", Include("selfish"))))
	err = engine.Apply(doc, "selfish")
	assert.True(t, errors.Is(err, ErrIncludeCycle), "expected ErrIncludeCycle, have %v", err)
	assert.True(t, errors.Is(engine.Register(Theme{Name: "x"}), ErrInvalidTheme))
}

func TestLayering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	doc := tgif(t)
	engine := NewEngine()
	require.NoError(t, engine.Register(themeOf("serif",
		Include("slide-center"),
		Rule(func(heads Selection) {
			heads.PropSet("font-family", "serif")
			heads.PropSet("align", "right")
		}, deck.Slide, deck.HeadLine),
	)))
	require.NoError(t, engine.Apply(doc, "serif"))
	for _, h := range only(t, doc, deck.HeadLine) {
		assert.Equal(t, "serif", h.Property("font-family").String())
		assert.Equal(t, "right", h.Property("align").String())
		assert.Equal(t, "middle", h.Property("vertical-align").String())
	}
	// paragraphs inherit the font family from their slide
	for _, p := range only(t, doc, deck.Paragraph) {
		assert.Equal(t, "sans-serif", p.Property("font-family").String())
	}
	assert.Equal(t, []string{"default", "serif", "slide-center"}, engine.Names())
}

func TestMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.theme")
	defer teardown()
	//
	reg := prometheus.NewRegistry()
	engine := NewEngine(WithMetrics(reg))
	require.NoError(t, engine.Apply(tgif(t), "slide-center"))
	m := engine.metrics
	assert.Equal(t, 5.0, testutil.ToFloat64(m.rules.WithLabelValues("default")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rules.WithLabelValues("slide-center")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.deleted.WithLabelValues("slide-center")))
	// title slide, two headlines, two rules
	assert.Equal(t, 5.0, testutil.ToFloat64(m.matched.WithLabelValues("slide-center")))
	//
	doc := tgif(t)
	require.NoError(t, engine.Apply(doc, "slide-center"))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.deleted.WithLabelValues("slide-center")))
	require.NoError(t, engine.Apply(doc, "slide-center")) // rules are gone already
	assert.Equal(t, 4.0, testutil.ToFloat64(m.deleted.WithLabelValues("slide-center")))
}
