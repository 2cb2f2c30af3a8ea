// Package document provides a server-side HTML page that can act as the host
// document for font loading. Links appended to it end up in the rendered
// <head>, so a page served to a browser fetches the same stylesheets a
// client-side loader would have injected.
package document

import (
	"io"
	"strings"
	"sync"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/joeblew999/plat-fonts/pkg/font"
)

var _ font.Document = (*Page)(nil)

// Page is an HTML document under construction
type Page struct {
	mu        sync.RWMutex
	title     string
	head      []g.Node
	links     []font.Link
	available map[string]bool
	body      []g.Node
}

// Option configures a Page
type Option func(*Page)

// WithSystemFonts marks families the host can render without a web font
func WithSystemFonts(families ...string) Option {
	return func(p *Page) {
		for _, f := range families {
			p.available[normalizeFamily(f)] = true
		}
	}
}

// WithHead adds extra nodes (scripts, styles) to the head, before any links
func WithHead(nodes ...g.Node) Option {
	return func(p *Page) {
		p.head = append(p.head, nodes...)
	}
}

// New creates an empty page
func New(title string, opts ...Option) *Page {
	p := &Page{
		title:     title,
		available: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AppendHeadLink implements font.Document
func (p *Page) AppendHeadLink(link font.Link) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.links = append(p.links, link)
}

// CheckFont implements font.Document. spec is a CSS font shorthand such as
// `1em Roboto` or `1em "Noto Sans JP", serif`; every listed family must be
// available.
func (p *Page) CheckFont(spec string) bool {
	families, ok := parseFontSpec(spec)
	if !ok {
		return false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, f := range families {
		if !p.available[normalizeFamily(f)] {
			return false
		}
	}
	return true
}

// MarkLoaded records that the client reported family as ready
func (p *Page) MarkLoaded(family string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.available[normalizeFamily(family)] = true
}

// Links returns the links appended so far, in order
func (p *Page) Links() []font.Link {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]font.Link(nil), p.links...)
}

// Body appends nodes to the page body
func (p *Page) Body(nodes ...g.Node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.body = append(p.body, nodes...)
}

// Node returns the page as a gomponents node
func (p *Page) Node() g.Node {
	p.mu.RLock()
	defer p.mu.RUnlock()

	head := []g.Node{
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(p.title)),
	}
	head = append(head, p.head...)
	for _, l := range p.links {
		head = append(head, h.Link(h.Rel(l.Rel), h.Href(l.Href)))
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(head...),
			h.Body(p.body...),
		),
	)
}

// Render writes the page as HTML
func (p *Page) Render(w io.Writer) error {
	return p.Node().Render(w)
}

// parseFontSpec pulls the family list out of a font shorthand. The size is
// the first token; everything after it is a comma separated family list.
func parseFontSpec(spec string) ([]string, bool) {
	spec = strings.TrimSpace(spec)
	i := strings.IndexByte(spec, ' ')
	if i < 0 {
		return nil, false
	}

	var families []string
	for _, f := range strings.Split(spec[i+1:], ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" {
			families = append(families, f)
		}
	}
	return families, len(families) > 0
}

func normalizeFamily(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
