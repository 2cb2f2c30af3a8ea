package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPTools(t *testing.T) {
	ctx := context.Background()

	t.Run("ListFonts", func(t *testing.T) {
		out, err := listFontsTool(ctx, map[string]any{})
		require.NoError(t, err)

		res := out.(map[string]any)
		assert.Equal(t, 4, res["count"])
		categories := res["categories"].([]map[string]any)
		require.Len(t, categories, 2)
		assert.Equal(t, "Sans Serif", categories[0]["name"])
		assert.Equal(t, []string{"Noto Serif JP"}, categories[1]["families"])
	})

	t.Run("GetFont", func(t *testing.T) {
		out, err := getFontTool(nil)(ctx, map[string]any{"family": "Inter"})
		require.NoError(t, err)
		res := out.(map[string]any)
		assert.Equal(t, "Inter", res["family"])
		assert.Contains(t, res["stylesheet_url"], "family=Inter:100,200")
	})

	t.Run("GetFontMissing", func(t *testing.T) {
		_, err := getFontTool(nil)(ctx, map[string]any{"family": "Nonexistent"})
		assert.EqualError(t, err, "font not found: Nonexistent")
	})

	t.Run("FontsByCategoryUnknown", func(t *testing.T) {
		out, err := fontsByCategoryTool(ctx, map[string]any{"category": "Nope"})
		require.NoError(t, err)
		assert.Equal(t, 0, out.(map[string]any)["count"])
	})

	t.Run("BuildStylesheetURL", func(t *testing.T) {
		out, err := buildStylesheetTool(nil)(ctx, map[string]any{
			"fonts": []any{
				map[string]any{"family": "Noto Sans JP", "variants": []any{"regular", "700"}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t,
			"https://fonts.googleapis.com/css2?family=Noto+Sans+JP:regular,700&display=swap",
			out.(map[string]any)["url"])
	})

	t.Run("BuildStylesheetURLEmpty", func(t *testing.T) {
		_, err := buildStylesheetTool(nil)(ctx, map[string]any{"fonts": []any{}})
		assert.Error(t, err)
	})

	t.Run("BuildStylesheetURLBlankFamily", func(t *testing.T) {
		_, err := buildStylesheetTool(nil)(ctx, map[string]any{
			"fonts": []any{
				map[string]any{"family": "Roboto"},
				map[string]any{"family": "   "},
			},
		})
		assert.EqualError(t, err, "family is required")
	})

	t.Run("CatalogResource", func(t *testing.T) {
		text := catalogText()
		assert.Contains(t, text, "Sans Serif:\n- Roboto (100, 300, regular, 500, 700, 900)\n")
		assert.Contains(t, text, "- Noto Serif JP")
	})
}
