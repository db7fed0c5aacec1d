package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPropertyGroupSet(t *testing.T) {
	pg := NewPropertyGroup(PGAlignment)
	if !pg.Set("align", "Center") {
		t.Error("expected first Set to change the group")
	}
	if p, _ := pg.Get("align"); p != "center" {
		t.Errorf("expected value to be lower-cased 'center', is %q", p)
	}
	if pg.Set("align", "center") {
		t.Error("expected setting an identical value to be a no-op")
	}
	pg.Add("align", "right")
	if p, _ := pg.Get("align"); p != "center" {
		t.Errorf("expected Add not to overwrite, value is %q", p)
	}
	if !pg.IsSet("align") || pg.IsSet("vertical-align") {
		t.Error("IsSet reports wrong keys")
	}
}

func TestGroupNameFromPropertyKey(t *testing.T) {
	for key, group := range map[string]string{
		"vertical-align": PGAlignment,
		"font-size":      PGFont,
		"margin-left":    PGMargins,
		"color":          PGColor,
		"funny-shadow":   PGX,
	} {
		if g := GroupNameFromPropertyKey(key); g != group {
			t.Errorf("expected %s to be in group %s, is in %s", key, group, g)
		}
	}
}

func TestPropertyMapSetAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.style")
	defer teardown()
	//
	pmap := NewPropertyMap()
	pmap.Set("vertical-align", "middle")
	pmap.Set("align", "center")
	pmap.Set("font-size", "x-large")
	if pmap.Size() != 2 {
		t.Errorf("expected 2 property groups, have %d", pmap.Size())
	}
	if pmap.Len() != 3 {
		t.Errorf("expected 3 properties, have %d", pmap.Len())
	}
	if p, ok := pmap.Property("font-size"); !ok || p != "x-large" {
		t.Errorf("expected font-size = x-large, is %q", p)
	}
	if _, ok := pmap.Property("color"); ok {
		t.Error("did not expect color to be set")
	}
	m := pmap.AsMap()
	if m["align"] != "center" || m["vertical-align"] != "middle" {
		t.Errorf("unexpected property map %v", m)
	}
	t.Logf("%s", pmap)
}

func TestNilPropertyMap(t *testing.T) {
	var pmap *PropertyMap
	if pmap.Size() != 0 || pmap.Len() != 0 {
		t.Error("expected nil property map to be empty")
	}
	if _, ok := pmap.Property("align"); ok {
		t.Error("expected nil property map to have no properties")
	}
	if pmap.Set("align", "left") {
		t.Error("expected Set on nil map to do nothing")
	}
}

func TestAddAllFromGroup(t *testing.T) {
	pg := NewPropertyGroup(PGFont)
	pg.Set("font-size", "large")
	pg.Set("font-weight", "bold")
	pmap := NewPropertyMap()
	pmap.Set("font-size", "small")
	pmap.AddAllFromGroup(pg, false)
	if p, _ := pmap.Property("font-size"); p != "small" {
		t.Errorf("expected font-size to stay small, is %q", p)
	}
	if p, _ := pmap.Property("font-weight"); p != "bold" {
		t.Errorf("expected font-weight bold, is %q", p)
	}
	pmap.AddAllFromGroup(pg, true)
	if p, _ := pmap.Property("font-size"); p != "large" {
		t.Errorf("expected font-size to be overwritten with large, is %q", p)
	}
}

func TestSplitCompoundProperty(t *testing.T) {
	kvs, err := SplitCompoundProperty("margin", "1pt 2pt")
	if err != nil {
		t.Fatal(err)
	}
	expected := []KeyValue{
		{"margin-top", "1pt"},
		{"margin-right", "2pt"},
		{"margin-bottom", "1pt"},
		{"margin-left", "2pt"},
	}
	for i, kv := range kvs {
		if kv != expected[i] {
			t.Errorf("expected %v, have %v", expected[i], kv)
		}
	}
	if _, err := SplitCompoundProperty("padding", ""); err == nil {
		t.Error("expected error for empty compound value")
	}
	if _, err := SplitCompoundProperty("align", "left"); err == nil {
		t.Error("expected error for non-compound property")
	}
}

func TestIsCascading(t *testing.T) {
	if !IsCascading("font-family") || !IsCascading("color") {
		t.Error("expected fonts and colors to cascade")
	}
	if IsCascading("align") || IsCascading("margin-top") {
		t.Error("did not expect alignment or margins to cascade")
	}
}

func TestDefaultProperty(t *testing.T) {
	if p := DefaultProperty("Paragraph", "align"); p != "left" {
		t.Errorf("expected default align left, is %q", p)
	}
	if p := DefaultProperty("Title", "font-size"); p != "xx-large" {
		t.Errorf("expected title font-size xx-large, is %q", p)
	}
	if p := DefaultProperty("Paragraph", "no-such-thing"); p != NullStyle {
		t.Errorf("expected unknown key to have no default, is %q", p)
	}
	pmap := DefaultPropertyMap("HeadLine", []KeyValue{{"x-transition", "off"}})
	if p, _ := pmap.Property("font-weight"); p != "bold" {
		t.Errorf("expected headline default font-weight bold, is %q", p)
	}
	if p, _ := pmap.Group(PGX).Get("x-transition"); p != "off" {
		t.Errorf("expected extension property in group X, is %q", p)
	}
}
