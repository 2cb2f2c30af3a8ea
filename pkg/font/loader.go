package font

import (
	"github.com/joeblew999/plat-fonts/pkg/log"
)

// Link is a <link> element destined for a document head
type Link struct {
	Rel  string
	Href string
}

// Document is the host environment a font gets loaded into. A browser page,
// a server-rendered HTML page or a test double can all serve.
type Document interface {
	// AppendHeadLink attaches link as the last child of the document head
	AppendHeadLink(link Link)
	// CheckFont reports whether the host can render the CSS font shorthand
	// spec (e.g. "1em Roboto") without fetching anything further
	CheckFont(spec string) bool
}

// LoadGoogleFont appends a stylesheet link for a catalog family to doc.
// A nil doc (no host) and unknown families are silent no-ops. Calls are not
// deduplicated: loading the same family twice appends two links.
func LoadGoogleFont(doc Document, family string) {
	if doc == nil {
		return
	}
	f, ok := FontByFamily(family)
	if !ok {
		return
	}
	appendStylesheet(doc, f)
}

func appendStylesheet(doc Document, f Font) {
	doc.AppendHeadLink(Link{Rel: RelStylesheet, Href: StylesheetURL(f)})
	linksInjected.Inc(f.Family)
}

// IsFontLoaded asks the host whether family is ready to render. Without a
// host it is false.
func IsFontLoaded(doc Document, family string) bool {
	if doc == nil {
		return false
	}
	return doc.CheckFont(CheckSize + " " + family)
}

// Loader binds a Document so callers do not have to pass it around
type Loader struct {
	doc Document
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithDocument sets the host document. Without it the loader has no host and
// every Load is a no-op.
func WithDocument(doc Document) LoaderOption {
	return func(l *Loader) {
		l.doc = doc
	}
}

// NewLoader creates a loader
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// HasDocument reports whether a host document is bound
func (l *Loader) HasDocument() bool {
	return l.doc != nil
}

// Load injects the stylesheet for family into the bound document
func (l *Loader) Load(family string) {
	if l.doc == nil {
		log.Debug("No host document, skipping font load", "family", family)
		return
	}
	f, ok := FontByFamily(family)
	if !ok {
		log.Debug("Font not in catalog, skipping load", "family", family)
		return
	}
	appendStylesheet(l.doc, f)
	log.Info("Injected font stylesheet", "family", f.Family)
}

// IsLoaded reports whether the bound document can render family
func (l *Loader) IsLoaded(family string) bool {
	return IsFontLoaded(l.doc, family)
}
