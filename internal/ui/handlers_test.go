package ui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"

	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/usage"
)

type stubChecker struct {
	loaded bool
	err    error
	urls   []string
}

func (c *stubChecker) CheckFontAt(_ context.Context, url, _ string) (bool, error) {
	c.urls = append(c.urls, url)
	return c.loaded, c.err
}

func newRecorder(t *testing.T) *usage.Recorder {
	t.Helper()

	d, err := db.Open(filepath.Join(t.TempDir(), "ui.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	r, err := usage.NewRecorder(d.SqlConn())
	require.NoError(t, err)
	return r
}

func withFamily(r *http.Request, family string) *http.Request {
	return pathvar.WithVars(r, map[string]string{"family": family})
}

func TestCatalogPage(t *testing.T) {
	h := NewHandlers(nil, nil, "")
	w := httptest.NewRecorder()
	h.handleCatalog(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	for _, family := range font.AllFamilies() {
		assert.Contains(t, body, family)
	}
	assert.Contains(t, body, `href="/preview/Noto%20Sans%20JP"`)
}

func TestPreview(t *testing.T) {
	recorder := newRecorder(t)
	h := NewHandlers(recorder, nil, "")

	t.Run("InjectsStylesheet", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.handlePreview(w, withFamily(httptest.NewRequest(http.MethodGet, "/preview/Roboto", nil), "Roboto"))

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		head := body[:strings.Index(body, "</head>")]
		assert.Equal(t, 1, strings.Count(head, `rel="stylesheet"`))
		assert.Contains(t, head, "family=Roboto:wght@100;&amp;wght=300")
		assert.Contains(t, body, "document.fonts.check(&#39;1em Roboto&#39;)")
		assert.NotContains(t, body, "Check in headless browser")
	})

	t.Run("UnknownFamily", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.handlePreview(w, withFamily(httptest.NewRequest(http.MethodGet, "/preview/Nope", nil), "Nope"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("EventsRecorded", func(t *testing.T) {
		recorder.Flush()
		stats, err := recorder.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, stats[usage.EventLoad])
		assert.Equal(t, 1, stats[usage.EventLookupMiss])
	})
}

func TestBrowserCheck(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		h := NewHandlers(nil, nil, "")
		w := httptest.NewRecorder()
		h.handleBrowserCheck(w, withFamily(httptest.NewRequest(http.MethodGet, "/api/check/preview/Roboto", nil), "Roboto"))
		assert.Contains(t, w.Body.String(), "Browser checks are disabled")
	})

	t.Run("Loaded", func(t *testing.T) {
		checker := &stubChecker{loaded: true}
		h := NewHandlers(nil, checker, "http://127.0.0.1:8891/")
		w := httptest.NewRecorder()
		h.handleBrowserCheck(w, withFamily(httptest.NewRequest(http.MethodGet, "/api/check/preview/Noto%20Serif%20JP", nil), "Noto Serif JP"))

		assert.Contains(t, w.Body.String(), "Loaded in headless browser")
		assert.Equal(t, []string{"http://127.0.0.1:8891/preview/Noto%20Serif%20JP"}, checker.urls)
	})

	t.Run("CheckerError", func(t *testing.T) {
		h := NewHandlers(nil, &stubChecker{err: errors.New("no browser")}, "http://127.0.0.1:8891")
		w := httptest.NewRecorder()
		h.handleBrowserCheck(w, withFamily(httptest.NewRequest(http.MethodGet, "/api/check/preview/Inter", nil), "Inter"))
		assert.Contains(t, w.Body.String(), "Error: no browser")
	})

	t.Run("UnknownFamily", func(t *testing.T) {
		checker := &stubChecker{}
		h := NewHandlers(nil, checker, "")
		w := httptest.NewRecorder()
		h.handleBrowserCheck(w, withFamily(httptest.NewRequest(http.MethodGet, "/api/check/preview/Nope", nil), "Nope"))
		assert.Contains(t, w.Body.String(), "font not found: Nope")
		assert.Empty(t, checker.urls)
	})
}

func TestStatsSSE(t *testing.T) {
	recorder := newRecorder(t)
	recorder.Lookup("Inter", usage.SourceAPI, true)

	h := NewHandlers(recorder, nil, "")
	w := httptest.NewRecorder()
	h.handleStats(w, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	body := w.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `"lookup":1`)
	assert.Contains(t, body, "Inter")
}

func TestCSSWeight(t *testing.T) {
	assert.Equal(t, "400", cssWeight("regular"))
	assert.Equal(t, "700", cssWeight("700"))
	assert.Equal(t, "300", cssWeight("300italic"))
}
