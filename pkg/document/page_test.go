package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joeblew999/plat-fonts/pkg/font"
)

func TestLoadIntoPage(t *testing.T) {
	t.Run("LinkRendersInHead", func(t *testing.T) {
		p := New("Preview")
		font.LoadGoogleFont(p, "Roboto")

		var b strings.Builder
		require.NoError(t, p.Render(&b))
		out := b.String()

		head := out[:strings.Index(out, "</head>")]
		assert.Contains(t, head, `<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Roboto:wght@100;&amp;wght=300`)
		assert.Contains(t, out, "<title>Preview</title>")
	})

	t.Run("TwoLoadsTwoLinks", func(t *testing.T) {
		p := New("Preview")
		font.LoadGoogleFont(p, "Roboto")
		font.LoadGoogleFont(p, "Roboto")

		assert.Len(t, p.Links(), 2)

		var b strings.Builder
		require.NoError(t, p.Render(&b))
		assert.Equal(t, 2, strings.Count(b.String(), `rel="stylesheet"`))
	})

	t.Run("UnknownFamilyAddsNothing", func(t *testing.T) {
		p := New("Preview")
		font.LoadGoogleFont(p, "Nonexistent")
		assert.Empty(t, p.Links())
	})

	t.Run("HeadNodesPrecedeLinks", func(t *testing.T) {
		p := New("Preview", WithHead(h.StyleEl(g.Raw("body{}"))))
		font.LoadGoogleFont(p, "Inter")

		var b strings.Builder
		require.NoError(t, p.Render(&b))
		out := b.String()
		assert.Less(t, strings.Index(out, "<style>"), strings.Index(out, "<link"))
	})
}

func TestCheckFont(t *testing.T) {
	p := New("Check", WithSystemFonts("Arial", "Georgia"))

	assert.True(t, font.IsFontLoaded(p, "Arial"))
	assert.True(t, p.CheckFont(`1em "Arial", Georgia`))
	assert.False(t, font.IsFontLoaded(p, "Roboto"))
	assert.False(t, p.CheckFont("1em"))
	assert.False(t, p.CheckFont(""))

	font.LoadGoogleFont(p, "Roboto")
	assert.False(t, font.IsFontLoaded(p, "Roboto"), "a link alone does not make the face ready")

	p.MarkLoaded("roboto")
	assert.True(t, font.IsFontLoaded(p, "Roboto"))
}

func TestParseFontSpec(t *testing.T) {
	tests := []struct {
		spec string
		want []string
		ok   bool
	}{
		{"1em Roboto", []string{"Roboto"}, true},
		{"1em Noto Sans JP", []string{"Noto Sans JP"}, true},
		{`12px "Noto Serif JP", serif`, []string{"Noto Serif JP", "serif"}, true},
		{"1em", nil, false},
		{"1em  ", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := parseFontSpec(tt.spec)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
