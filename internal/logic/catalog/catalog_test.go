package catalog

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeblew999/plat-fonts/internal/config"
	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/joeblew999/plat-fonts/pkg/usage"
)

func newTestContext(t *testing.T) *svc.ServiceContext {
	t.Helper()

	d, err := db.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	recorder, err := usage.NewRecorder(d.SqlConn())
	require.NoError(t, err)
	return svc.NewServiceContext(config.Config{}, recorder)
}

func TestListFonts(t *testing.T) {
	resp, err := NewListFontsLogic(context.Background(), newTestContext(t)).ListFonts()
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Count)
	assert.Equal(t, []string{"Roboto", "Inter", "Noto Sans JP", "Noto Serif JP"}, resp.Families)
}

func TestGetFont(t *testing.T) {
	ctx := context.Background()
	svcCtx := newTestContext(t)

	t.Run("Found", func(t *testing.T) {
		resp, err := NewGetFontLogic(ctx, svcCtx).GetFont(&types.GetFontRequest{Family: "Noto Sans JP"})
		require.NoError(t, err)
		assert.Equal(t, "Noto Sans JP", resp.Family)
		assert.Equal(t, "sans-serif", resp.Category)
		assert.Equal(t,
			"https://fonts.googleapis.com/css2?family=Noto+Sans+JP:100,200,300,regular,500,600,700,800,900&display=swap",
			resp.StylesheetUrl)
		assert.Equal(t, "'Noto Sans JP', Arial, Helvetica, sans-serif", resp.FontStack)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := NewGetFontLogic(ctx, svcCtx).GetFont(&types.GetFontRequest{Family: "Nonexistent"})
		require.Error(t, err)

		var codeErr *errorx.CodeError
		require.ErrorAs(t, err, &codeErr)
		assert.Equal(t, http.StatusNotFound, codeErr.Code)
	})

	t.Run("LookupsRecorded", func(t *testing.T) {
		svcCtx.Usage.Flush()
		stats, err := svcCtx.Usage.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats[usage.EventLookup])
		assert.Equal(t, 1, stats[usage.EventLookupMiss])
	})
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	svcCtx := newTestContext(t)

	t.Run("List", func(t *testing.T) {
		resp, err := NewListCategoriesLogic(ctx, svcCtx).ListCategories()
		require.NoError(t, err)
		assert.Equal(t, []types.CategoryItem{
			{Name: "Sans Serif", Count: 3},
			{Name: "Serif", Count: 1},
		}, resp.Categories)
	})

	t.Run("Fonts", func(t *testing.T) {
		resp, err := NewCategoryFontsLogic(ctx, svcCtx).CategoryFonts(&types.CategoryFontsRequest{Name: "Serif"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "Noto Serif JP", resp.Fonts[0].Family)
	})

	t.Run("UnknownIsEmpty", func(t *testing.T) {
		resp, err := NewCategoryFontsLogic(ctx, svcCtx).CategoryFonts(&types.CategoryFontsRequest{Name: "Nope"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.Fonts)
	})
}

func TestBuildStylesheet(t *testing.T) {
	ctx := context.Background()
	svcCtx := newTestContext(t)

	t.Run("Url", func(t *testing.T) {
		resp, err := NewBuildStylesheetLogic(ctx, svcCtx).BuildStylesheet(&types.BuildStylesheetRequest{
			Fonts: []types.FontRequest{{Family: "Noto Sans JP", Variants: []string{"regular", "700"}}},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://fonts.googleapis.com/css2?family=Noto+Sans+JP:regular,700&display=swap", resp.Url)
	})

	t.Run("FamilyOutsideCatalog", func(t *testing.T) {
		resp, err := NewBuildStylesheetLogic(ctx, svcCtx).BuildStylesheet(&types.BuildStylesheetRequest{
			Fonts: []types.FontRequest{{Family: "Open Sans"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://fonts.googleapis.com/css2?family=Open+Sans&display=swap", resp.Url)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewBuildStylesheetLogic(ctx, svcCtx).BuildStylesheet(&types.BuildStylesheetRequest{})
		assert.Equal(t, errorx.ErrBadRequest("fonts is required"), err)
	})

	t.Run("BlankFamily", func(t *testing.T) {
		_, err := NewBuildStylesheetLogic(ctx, svcCtx).BuildStylesheet(&types.BuildStylesheetRequest{
			Fonts: []types.FontRequest{{Family: " "}},
		})
		assert.Error(t, err)
	})
}

func TestWithoutRecorder(t *testing.T) {
	svcCtx := svc.NewServiceContext(config.Config{}, nil)
	_, err := NewGetFontLogic(context.Background(), svcCtx).GetFont(&types.GetFontRequest{Family: "Roboto"})
	assert.NoError(t, err)
}
