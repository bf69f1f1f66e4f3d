package pageobjects

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// PageConfig declares a page object: its display name, how it is addressed
// relative to the base URL, and the selectors it knows about. Exactly one of
// URI and URITemplate should be set; setting neither is an error at URL
// resolution time, not at construction.
type PageConfig struct {
	// Name is the page's display name, e.g. "Pub Med". When empty it is
	// derived from TypeName by splitting at case boundaries.
	Name string

	// TypeName is the Go type name of the concrete page object, used to
	// derive Name and to match the page against loaded library names.
	TypeName string

	// URI is the page's address relative to the base URL.
	URI string

	// URITemplate is an RFC 6570 template for pages whose address varies,
	// e.g. "/pubmed/{pid}".
	URITemplate string

	// BaseURL overrides the environment-configured base URL for this page.
	BaseURL string

	// Selectors are the page's own named locators. They override any
	// selector of the same name contributed by Sources.
	Selectors Selectors

	// Sources are shared selector contributions, furthest ancestor first.
	Sources []SelectorSource
}

// Page is the base for all page objects. Concrete pages embed a *Page and
// register their operations on a Library.
type Page struct {
	name      string
	typeName  string
	uri       string
	uriTmpl   string
	baseURL   string
	selectors Selectors
	browser   Browser
	opts      Options
}

// NewPage builds a page from its configuration, merging selector sources.
// Conflicting selector definitions across unrelated sources surface here as
// ErrDuplicateSelectorKey.
func NewPage(cfg PageConfig, browser Browser, opts Options) (*Page, error) {
	selectors, err := mergeSelectors(cfg.Selectors, cfg.Sources)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", pageDisplayName(cfg), err)
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = opts.BaseURL
	}
	return &Page{
		name:      pageDisplayName(cfg),
		typeName:  cfg.TypeName,
		uri:       cfg.URI,
		uriTmpl:   cfg.URITemplate,
		baseURL:   baseURL,
		selectors: selectors,
		browser:   browser,
		opts:      opts,
	}, nil
}

func pageDisplayName(cfg PageConfig) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	if cfg.TypeName != "" {
		return Titleize(cfg.TypeName)
	}
	return "Page"
}

// Name returns the page's display name.
func (p *Page) Name() string { return p.name }

// Browser returns the automation session the page delegates to.
func (p *Page) Browser() Browser { return p.browser }

// Selectors returns a copy of the page's merged selector mapping.
func (p *Page) Selectors() Selectors {
	out := make(Selectors, len(p.selectors))
	for name, locator := range p.selectors {
		out[name] = locator
	}
	return out
}

// BaseURL returns the base URL the page resolves against, normalized to
// carry a scheme.
func (p *Page) BaseURL() string {
	if p.baseURL == "" {
		return ""
	}
	return normalizeBaseURL(p.baseURL)
}

// ResolveURL computes the page's absolute URL. vars substitutes the page's
// URI template and must match its placeholders exactly; pass nil for pages
// addressed by a plain URI.
func (p *Page) ResolveURL(vars map[string]string) (string, error) {
	return resolveURL(p.baseURL, p.uri, p.uriTmpl, vars)
}

// Open resolves the page's URL and navigates the browser to it, returning
// the page for chaining.
func (p *Page) Open(vars map[string]string) (*Page, error) {
	u, err := p.ResolveURL(vars)
	if err != nil {
		return nil, err
	}
	if err := p.browser.Get(u); err != nil {
		return nil, fmt.Errorf("open %s: %w", u, err)
	}
	return p, nil
}

// Find locates an element by selector name or raw locator. A name registered
// in the page's selectors wins; otherwise the string is parsed as a locator
// ("css=...", "xpath=...", a bare id, or an "//" xpath).
func (p *Page) Find(selectorOrLocator string) (selenium.WebElement, error) {
	locator := selectorOrLocator
	if registered, ok := p.selectors[selectorOrLocator]; ok {
		locator = registered
	}
	by, value := parseLocator(locator)
	elem, err := p.browser.FindElement(by, value)
	if err != nil {
		return nil, fmt.Errorf("find %q (%s=%s): %w", selectorOrLocator, by, value, err)
	}
	return elem, nil
}

// FindAll is Find for every matching element.
func (p *Page) FindAll(selectorOrLocator string) ([]selenium.WebElement, error) {
	locator := selectorOrLocator
	if registered, ok := p.selectors[selectorOrLocator]; ok {
		locator = registered
	}
	by, value := parseLocator(locator)
	elems, err := p.browser.FindElements(by, value)
	if err != nil {
		return nil, fmt.Errorf("find all %q (%s=%s): %w", selectorOrLocator, by, value, err)
	}
	return elems, nil
}

// Close ends the browser session.
func (p *Page) Close() error {
	return p.browser.Quit()
}
