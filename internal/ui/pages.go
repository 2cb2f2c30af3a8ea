// Package ui provides the Datastar-based font catalog browser.
package ui

import (
	"net/url"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"

	"github.com/joeblew999/plat-fonts/pkg/document"
	"github.com/joeblew999/plat-fonts/pkg/font"
)

const datastarSrc = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

// sampleText is shown in every preview. It covers Latin and Japanese so
// the JP families render something meaningful.
const sampleText = "The quick brown fox jumps over the lazy dog. いろはにほへと 色は匂へど"

func headNodes() []g.Node {
	return []g.Node{
		h.Script(h.Type("module"), h.Src(datastarSrc)),
		h.StyleEl(h.Type("text/css"), g.Raw(styles)),
	}
}

func navbar() g.Node {
	return h.Nav(h.Class("navbar"),
		h.Div(h.Class("nav-brand"), g.Text("plat-fonts")),
		h.Div(h.Class("nav-links"),
			h.A(h.Href("/"), g.Text("Catalog")),
			h.A(h.Href("/stats"), g.Text("Usage")),
		),
	)
}

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(title)),
				g.Group(headNodes()),
			),
			h.Body(
				navbar(),
				h.Main(h.Class("container"), g.Group(content)),
				h.Footer(h.Class("footer"), g.Text("plat-fonts - Google Fonts catalog")),
			),
		),
	)
}

// CatalogPage lists every category with its fonts.
func CatalogPage(categories []font.Category) g.Node {
	var buttons []g.Node
	buttons = append(buttons, h.Button(
		data.On("click", "$category = ''"),
		data.Class("active", "$category === ''"),
		g.Text("All"),
	))
	for _, c := range categories {
		name := c.Name
		buttons = append(buttons, h.Button(
			data.On("click", "$category = '"+name+"'"),
			data.Class("active", "$category === '"+name+"'"),
			g.Text(name),
		))
	}

	var sections []g.Node
	for _, c := range categories {
		name := c.Name
		sections = append(sections, h.Div(h.Class("section"),
			data.Show("$category === '' || $category === '"+name+"'"),
			h.H2(g.Textf("%s (%d)", name, len(c.Fonts))),
			h.Div(h.Class("font-grid"), g.Map(c.Fonts, FontCard)),
		))
	}

	return Layout("Catalog - plat-fonts",
		data.Signals(map[string]any{
			"category": "",
		}),
		h.H1(g.Text("Font Catalog")),
		h.Div(h.Class("filter-bar"), g.Group(buttons)),
		g.Group(sections),
	)
}

// FontCard renders a single catalog font.
func FontCard(f font.Font) g.Node {
	return h.Div(h.Class("font-card"),
		h.H3(g.Text(f.DisplayName)),
		h.P(h.Class("hint"), g.Text(f.Category)),
		h.P(h.Class("variants"), g.Text(strings.Join(f.Variants, " · "))),
		h.A(h.Href(PreviewPath(f.Family)), g.Text("Preview")),
	)
}

// PreviewPath returns the UI path previewing family.
func PreviewPath(family string) string {
	return "/preview/" + url.PathEscape(family)
}

// PreviewPage builds a page for f whose head carries the font's stylesheet
// link, injected through the font loader.
func PreviewPage(f font.Font, browserCheck bool) *document.Page {
	page := document.New(f.DisplayName+" - plat-fonts", document.WithHead(headNodes()...))
	font.NewLoader(font.WithDocument(page)).Load(f.Family)

	var href string
	if links := page.Links(); len(links) > 0 {
		href = links[len(links)-1].Href
	}

	spec := font.CheckSize + " " + f.Family
	var check g.Node
	if browserCheck {
		check = h.Div(h.Class("actions"),
			h.Button(
				data.On("click", "$checking = true; @get('/api/check"+PreviewPath(f.Family)+"')"),
				data.Attr("disabled", "$checking"),
				g.Text("Check in headless browser"),
			),
			h.Span(data.Text("$browserResult")),
		)
	}

	page.Body(
		navbar(),
		h.Main(h.Class("container"),
			data.Signals(map[string]any{
				"loaded":        false,
				"checking":      false,
				"browserResult": "",
			}),
			data.OnInterval("$loaded = document.fonts.check('"+spec+"')", data.ModifierDuration, data.Duration(time.Second)),
			h.H1(g.Text(f.DisplayName)),
			h.P(h.Class("hint"),
				g.Text("Stylesheet: "),
				h.Code(g.Text(href)),
			),
			h.P(h.Class("status"),
				h.Span(data.Show("$loaded"), g.Text("Loaded")),
				h.Span(data.Show("!$loaded"), g.Text("Loading...")),
			),
			g.Map(f.Variants, func(v string) g.Node {
				return h.Div(h.Class("sample"),
					h.StyleAttr("font-family: "+font.FallbackStack(f.Family)+"; font-weight: "+cssWeight(v)+";"),
					h.Span(h.Class("variant"), g.Text(v)),
					g.Text(sampleText),
				)
			}),
			check,
		),
	)
	return page
}

// cssWeight maps a Google Fonts variant token onto a CSS font-weight
func cssWeight(variant string) string {
	if variant == font.RegularVariant {
		return "400"
	}
	return strings.TrimSuffix(variant, "italic")
}

// StatsPage shows usage event counts, refreshed over SSE.
func StatsPage() g.Node {
	return Layout("Usage - plat-fonts",
		data.Signals(map[string]any{
			"stats":   map[string]int{},
			"loading": true,
		}),
		data.Init("@get('/api/stats')"),
		data.OnInterval("@get('/api/stats')", data.ModifierDuration, data.Duration(5*time.Second)),

		h.H1(g.Text("Usage")),
		h.Div(h.Class("stats-grid"),
			StatCard("lookup", "Lookups"),
			StatCard("lookup_miss", "Misses"),
			StatCard("build_url", "URLs built"),
			StatCard("load", "Preview loads"),
		),
		h.Div(h.ID("top-families")),
	)
}

// StatCard renders a statistics card.
func StatCard(key, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), data.Text("$stats."+key+" || 0")),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

const styles = `
:root {
	--primary: #0f766e;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
}

.nav-brand { font-size: 1.5rem; font-weight: bold; }
.nav-links a { color: white; text-decoration: none; margin-left: 2rem; }

.container { max-width: 1200px; margin: 0 auto; padding: 2rem; }
.footer { text-align: center; padding: 2rem; color: var(--text-muted); border-top: 1px solid var(--border); }

h1 { margin-bottom: 1.5rem; }
h2 { margin-bottom: 1rem; font-size: 1.25rem; }

.section, .font-card, .stat-card {
	background: var(--card-bg);
	border: 1px solid var(--border);
	border-radius: 12px;
	padding: 1.5rem;
	margin-bottom: 1.5rem;
}

.font-grid, .stats-grid {
	display: grid;
	grid-template-columns: repeat(auto-fit, minmax(240px, 1fr));
	gap: 1.5rem;
}

.filter-bar { margin-bottom: 1.5rem; }
.filter-bar button { margin-right: 0.5rem; }

button {
	background: var(--primary);
	color: white;
	border: none;
	border-radius: 8px;
	padding: 0.5rem 1rem;
	cursor: pointer;
	opacity: 0.8;
}

button.active { opacity: 1; }

.hint, .variants, .stat-label { color: var(--text-muted); font-size: 0.875rem; }
.stat-value { font-size: 2.5rem; font-weight: bold; color: var(--primary); text-align: center; }

.sample { font-size: 1.5rem; padding: 0.75rem 0; border-bottom: 1px solid var(--border); }
.sample .variant { display: inline-block; width: 6rem; font-size: 0.75rem; color: var(--text-muted); font-family: monospace; }
`
