// Package browser drives a Chromium page through the DevTools protocol so the
// font loader can run against a real document.
package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/joeblew999/plat-fonts/pkg/log"
)

const (
	appendLinkJS = `(rel, href) => {
		const link = document.createElement('link');
		link.rel = rel;
		link.href = href;
		document.head.appendChild(link);
	}`

	checkFontJS = `(spec) => document.fonts.check(spec)`

	fontsReadyJS = `() => document.fonts.ready.then(() => true)`

	headLinksJS = `() => Array.from(document.head.querySelectorAll('link')).map(l => ({rel: l.rel, href: l.href}))`
)

// DefaultTimeout bounds each script evaluation
const DefaultTimeout = 10 * time.Second

// Browser is a connected Chromium instance
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// Connect attaches to the browser at controlURL, or launches a local
// headless one when controlURL is empty.
func Connect(ctx context.Context, controlURL string) (*Browser, error) {
	b := &Browser{}
	if controlURL == "" {
		b.launcher = launcher.New().Headless(true)
		u, err := b.launcher.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		controlURL = u
	}

	b.browser = rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.browser.Connect(); err != nil {
		b.cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	log.Info("Connected to browser", "launched", b.launcher != nil)
	return b, nil
}

// Open navigates a new tab to url and waits for it to load
func (b *Browser) Open(ctx context.Context, url string) (*Page, error) {
	p, err := b.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("open page %s: %w", url, err)
	}
	if err := p.Context(ctx).WaitLoad(); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("wait load %s: %w", url, err)
	}
	return &Page{page: p, timeout: DefaultTimeout}, nil
}

// Close shuts the browser and any launcher process
func (b *Browser) Close() error {
	err := b.browser.Close()
	b.cleanup()
	return err
}

func (b *Browser) cleanup() {
	if b.launcher != nil {
		b.launcher.Cleanup()
	}
}

// CheckFontAt opens url in a fresh tab and reports whether family is ready
// there once the page has loaded
func (b *Browser) CheckFontAt(ctx context.Context, url, family string) (bool, error) {
	p, err := b.Open(ctx, url)
	if err != nil {
		return false, err
	}
	defer p.Close()

	if err := p.waitFonts(ctx); err != nil {
		return false, err
	}
	return font.IsFontLoaded(p, family), nil
}

var _ font.Document = (*Page)(nil)

// Page is a browser tab usable as a font.Document
type Page struct {
	page    *rod.Page
	timeout time.Duration
}

// AppendHeadLink implements font.Document. Failures are logged, the document
// contract has no error path.
func (p *Page) AppendHeadLink(link font.Link) {
	if _, err := p.eval(appendLinkJS, link.Rel, link.Href); err != nil {
		log.Warn("Failed to append link", "href", link.Href, "error", err)
	}
}

// CheckFont implements font.Document via document.fonts.check
func (p *Page) CheckFont(spec string) bool {
	res, err := p.eval(checkFontJS, spec)
	if err != nil {
		log.Warn("Font check failed", "spec", spec, "error", err)
		return false
	}
	return res.Value.Bool()
}

// HeadLinks lists the link elements currently in the document head
func (p *Page) HeadLinks() ([]font.Link, error) {
	res, err := p.eval(headLinksJS)
	if err != nil {
		return nil, err
	}

	var links []font.Link
	for _, v := range res.Value.Arr() {
		links = append(links, font.Link{
			Rel:  v.Get("rel").Str(),
			Href: v.Get("href").Str(),
		})
	}
	return links, nil
}

// waitFonts resolves once the document has finished loading its fonts
func (p *Page) waitFonts(ctx context.Context) error {
	_, err := p.page.Context(ctx).Evaluate(rod.Eval(fontsReadyJS).ByPromise())
	if err != nil {
		return fmt.Errorf("wait fonts: %w", err)
	}
	return nil
}

// Close closes the tab
func (p *Page) Close() error {
	return p.page.Close()
}

func (p *Page) eval(js string, args ...any) (*proto.RuntimeRemoteObject, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	res, err := p.page.Context(ctx).Evaluate(rod.Eval(js, args...).ByPromise())
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	return res, nil
}
