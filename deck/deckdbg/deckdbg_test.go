package deckdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slidetheme/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDeck(t *testing.T) *deck.Document {
	doc, err := deck.NewDocument(nil,
		deck.Item(deck.TitleSlide, "", deck.Item(deck.Title, "TGIF")),
		deck.Item(deck.Slide, "",
			deck.Item(deck.HeadLine, "Agenda"),
			deck.Item(deck.HorizontalRule, ""),
		),
	)
	require.NoError(t, err)
	head := doc.Select(deck.ElementIsKind(deck.HeadLine))[0]
	head.PropSet("align", "center")
	doc.Select(deck.ElementIsKind(deck.HorizontalRule))[0].Delete()
	return doc
}

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.deck")
	defer teardown()
	//
	out := Print(buildDeck(t))
	t.Logf("\n%s", out)
	assert.True(t, strings.HasPrefix(out, "Deck"))
	assert.Contains(t, out, `HeadLine "Agenda" {align=center}`)
	assert.Contains(t, out, "HorizontalRule ✗")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.deck")
	defer teardown()
	//
	var buf bytes.Buffer
	ToGraphViz(buildDeck(t), &buf, nil)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Equal(t, 1, strings.Count(dot, "style=dashed ]"), "expected exactly one deleted element")
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "Alignment")
}
