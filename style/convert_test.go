package style_test

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/slidetheme/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignment(t *testing.T) {
	assert.Equal(t, style.AlignCenter, style.Property("center").Alignment())
	assert.Equal(t, style.AlignRight, style.Property("right").Alignment())
	assert.Equal(t, style.AlignLeft, style.Property("").Alignment())
	assert.Equal(t, style.VAlignMiddle, style.Property("middle").VerticalAlignment())
	assert.Equal(t, style.VAlignTop, style.Property("whatever").VerticalAlignment())
	assert.Equal(t, "middle", style.VAlignMiddle.String())
}

func TestFontSize(t *testing.T) {
	base := 10 * dimen.PT
	size, err := style.Property("medium").FontSize(base)
	require.NoError(t, err)
	assert.Equal(t, base, size)

	large, err := style.Property("x-large").FontSize(base)
	require.NoError(t, err)
	assert.Greater(t, int64(large), int64(base))

	half, err := style.Property("50%").FontSize(base)
	require.NoError(t, err)
	assert.Equal(t, 5*dimen.PT, half)

	pt, err := style.Property("24pt").FontSize(base)
	require.NoError(t, err)
	assert.Equal(t, 24*dimen.PT, pt)

	_, err = style.Property("enormous").FontSize(base)
	assert.Error(t, err)
}

func TestColor(t *testing.T) {
	assert.Nil(t, style.Property("default").Color())
	assert.Equal(t, "red", style.ColorString(style.Property("red").Color()))
	assert.Equal(t, "gray", style.ColorString(style.Property("grey").Color()))
	assert.Equal(t, "blue", style.ColorString(style.Property("#0000ff").Color()))
	assert.Equal(t, "black", style.ColorString(style.Property("black").Color()))
	assert.Equal(t, "red", style.ColorString(style.Property("#f00").Color()))
}

func TestColorUnknown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "slidetheme.style")
	defer teardown()
	//
	for _, p := range []style.Property{"purple", "#12", "#abcd", "#zzzzzz"} {
		assert.Nil(t, p.Color(), "expected %q to yield no color", p)
	}
	assert.Equal(t, "default", style.ColorString(style.Property("purple").Color()))
}

func TestDimenParse(t *testing.T) {
	d, err := style.ParseDimen("10pt")
	require.NoError(t, err)
	var du dimen.DU
	switch m := d.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected 10pt to be a fixed value, isn't: %#v", d)
	}
	assert.Equal(t, 10*dimen.PT, du)

	auto, err := style.ParseDimen("auto")
	require.NoError(t, err)
	switch m := auto.Match(); m {
	case m.IsKind(style.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt, err := style.ParseDimen("80%")
	require.NoError(t, err)
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected 80%% to be a percentage value, isn't: %#v", pcnt)
	}
	assert.Equal(t, percent.FromInt(80), p)

	_, err = style.ParseDimen("wide")
	assert.Error(t, err)
}

func TestDimenPattern(t *testing.T) {
	d := style.JustDimen(dimen.PT * 10)
	var du dimen.DU
	e := style.DimenPattern[dimen.DU](d).With(&du)
	distance := e.OneOf(style.DimenPatterns[dimen.DU]{
		Just:    e.Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	assert.Equal(t, 2*10*dimen.PT, distance)

	m := style.DimenPattern[string](style.Inherit())
	assert.Equal(t, "inherit", m.OneOf(style.DimenPatterns[string]{
		Inherit: "inherit",
		Default: "other",
	}))
}
