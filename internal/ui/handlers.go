package ui

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/usage"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

// FontChecker opens a URL in a real browser and reports whether family is
// ready to render there.
type FontChecker interface {
	CheckFontAt(ctx context.Context, url, family string) (bool, error)
}

const checkTimeout = 30 * time.Second

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	usage   *usage.Recorder
	checker FontChecker
	baseURL string
}

// NewHandlers creates new UI handlers. checker may be nil, in which case
// browser checks are not offered. baseURL is how the checker's browser
// reaches this server.
func NewHandlers(recorder *usage.Recorder, checker FontChecker, baseURL string) *Handlers {
	return &Handlers{
		usage:   recorder,
		checker: checker,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleCatalog},
		{Method: http.MethodGet, Path: "/preview/:family", Handler: h.handlePreview},
		{Method: http.MethodGet, Path: "/stats", Handler: h.handleStatsPage},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/stats", Handler: h.handleStats},
		{Method: http.MethodGet, Path: "/api/check/preview/:family", Handler: h.handleBrowserCheck},
	}
}

func (h *Handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := CatalogPage(font.Categories()).Render(w); err != nil {
		logx.Errorf("render catalog: %v", err)
	}
}

func (h *Handlers) handlePreview(w http.ResponseWriter, r *http.Request) {
	family := pathvar.Vars(r)["family"]
	f, ok := font.FontByFamily(family)
	h.usage.Lookup(family, usage.SourceUI, ok)
	if !ok {
		http.NotFound(w, r)
		return
	}

	page := PreviewPage(f, h.checker != nil)
	h.usage.Record(f.Family, usage.EventLoad, usage.SourceUI)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		logx.Errorf("render preview %s: %v", family, err)
	}
}

func (h *Handlers) handleStatsPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := StatsPage().Render(w); err != nil {
		logx.Errorf("render stats page: %v", err)
	}
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	if h.usage == nil {
		h.sendDatastarSignals(w, r, map[string]any{"stats": map[string]int{}, "loading": false})
		return
	}

	h.usage.Flush()
	stats, err := h.usage.Stats(r.Context())
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	top, err := h.usage.TopFamilies(r.Context(), usage.EventLookup, 5)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementf(`<div id="top-families">%s</div>`, renderTopFamilies(top)); err != nil {
		logx.Errorf("datastar patch top families: %v", err)
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{"stats": stats, "loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleBrowserCheck(w http.ResponseWriter, r *http.Request) {
	family := pathvar.Vars(r)["family"]
	if h.checker == nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"checking":      false,
			"browserResult": "Browser checks are disabled",
		})
		return
	}
	if _, ok := font.FontByFamily(family); !ok {
		h.sendDatastarError(w, r, fmt.Errorf("font not found: %s", family))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	loaded, err := h.checker.CheckFontAt(ctx, h.baseURL+PreviewPath(family), family)
	if err != nil {
		logx.WithContext(r.Context()).Errorf("browser check %s: %v", family, err)
		h.sendDatastarSignals(w, r, map[string]any{
			"checking":      false,
			"browserResult": "Error: " + err.Error(),
		})
		return
	}

	result := "Not loaded in headless browser"
	if loaded {
		result = "Loaded in headless browser"
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"checking":      false,
		"browserResult": result,
	})
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"loading": false,
		"error":   msg,
	})
}

func renderTopFamilies(top []usage.FamilyCount) string {
	if len(top) == 0 {
		return `<p class="hint">No lookups yet</p>`
	}

	var b strings.Builder
	b.WriteString(`<div class="section"><h2>Most looked up</h2><ol>`)
	for _, fc := range top {
		b.WriteString(fmt.Sprintf(`<li>%s <span class="hint">%d</span></li>`, html.EscapeString(fc.Family), fc.Count))
	}
	b.WriteString(`</ol></div>`)
	return b.String()
}
