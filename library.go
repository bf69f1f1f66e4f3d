package pageobjects

import (
	"fmt"
	"sort"

	"github.com/golang/glog"
)

// PageObject identifies values that are, or embed, a *Page. Keywords that
// return a PageObject hand control to that page: the dispatch layer marks
// it as the run's active page.
type PageObject interface {
	AsPage() *Page
}

// AsPage lets concrete page objects that embed *Page satisfy PageObject.
func (p *Page) AsPage() *Page { return p }

// Library exposes one page object to a keyword-driven runner through the
// dynamic-library API: GetKeywordNames lists the aliases, RunKeyword
// dispatches one. Operations are registered explicitly; registration
// validates the name and wraps the function with the must-return check.
type Library struct {
	page       *Page
	ctx        *Context
	convention NamingConvention
	keywords   map[string]KeywordFunc
	excluded   map[string]KeywordFunc

	lastScreenshot []byte
}

// LastScreenshot returns the most recent diagnostic screenshot captured
// after a keyword failure, or nil. The harness decides where to persist it.
func (l *Library) LastScreenshot() []byte { return l.lastScreenshot }

// NewLibrary wraps a page for the given run context.
func NewLibrary(page *Page, ctx *Context) *Library {
	return &Library{
		page:       page,
		ctx:        ctx,
		convention: DefaultConvention,
		keywords:   make(map[string]KeywordFunc),
		excluded:   make(map[string]KeywordFunc),
	}
}

// SetConvention replaces the alias naming convention. Call before the
// runner first asks for keyword names.
func (l *Library) SetConvention(c NamingConvention) {
	l.convention = c
}

// Page returns the wrapped page object.
func (l *Library) Page() *Page { return l.page }

// Register exposes fn as a keyword under name and its page-qualified
// aliases. The name must not be empty, start with an underscore, or shadow
// the browser automation library's own API. fn is wrapped so that returning
// no value fails with ErrKeywordReturnsNoValue for every caller.
func (l *Library) Register(name string, fn KeywordFunc) error {
	if err := validateKeywordName(name); err != nil {
		return fmt.Errorf("page %q: %w", l.page.Name(), err)
	}
	if _, dup := l.keywords[name]; dup {
		return fmt.Errorf("page %q: keyword %q registered twice", l.page.Name(), name)
	}
	if _, dup := l.excluded[name]; dup {
		return fmt.Errorf("page %q: %q already registered as excluded", l.page.Name(), name)
	}
	l.keywords[name] = mustReturn(name, fn)
	return nil
}

// RegisterExcluded makes fn callable through Call but keeps it off the
// exposed keyword list, the equivalent of marking a public method
// not-a-keyword.
func (l *Library) RegisterExcluded(name string, fn KeywordFunc) error {
	if err := validateKeywordName(name); err != nil {
		return fmt.Errorf("page %q: %w", l.page.Name(), err)
	}
	if _, dup := l.keywords[name]; dup {
		return fmt.Errorf("page %q: %q already registered as a keyword", l.page.Name(), name)
	}
	l.excluded[name] = fn
	return nil
}

// MustRegister is Register for static page definitions where a registration
// failure is a programming error.
func (l *Library) MustRegister(name string, fn KeywordFunc) {
	if err := l.Register(name, fn); err != nil {
		panic(err)
	}
}

// Call invokes a registered operation by its method name, excluded ones
// included. Keywords run through their must-return wrapper here too.
func (l *Library) Call(name string, args ...string) (interface{}, error) {
	if fn, ok := l.keywords[name]; ok {
		return fn(args...)
	}
	if fn, ok := l.excluded[name]; ok {
		return fn(args...)
	}
	return nil, fmt.Errorf("page %q has no operation %q: %w", l.page.Name(), name, ErrKeywordLookup)
}

// GetKeywordNames returns every exposed alias, sorted. This is the first
// half of the runner's dynamic-library API.
func (l *Library) GetKeywordNames() []string {
	pageName := underscore(l.page.Name())
	var names []string
	for name := range l.keywords {
		names = append(names, l.convention.Aliases(name, pageName)...)
	}
	sort.Strings(names)
	return names
}

// RunKeyword resolves alias to a registered keyword and invokes it with the
// given positional arguments; the second half of the runner's API.
//
// On failure a diagnostic screenshot is attempted through the browser; a
// screenshot failure (say, no session open yet) is logged and swallowed so
// it cannot mask the original error, which is returned unchanged. When the
// keyword returns a page object, the run context is pointed at the library
// matching that page, so later ambiguous keyword names resolve there.
func (l *Library) RunKeyword(alias string, args []string) (interface{}, error) {
	name, ok := l.convention.Method(alias, underscore(l.page.Name()))
	if !ok {
		return nil, fmt.Errorf("alias %q on page %q: %w", alias, l.page.Name(), ErrKeywordLookup)
	}
	fn, ok := l.keywords[name]
	if !ok {
		return nil, fmt.Errorf("alias %q (method %q) on page %q: %w", alias, name, l.page.Name(), ErrKeywordLookup)
	}

	ret, err := fn(args...)
	if err != nil {
		if l.page.browser == nil {
			glog.V(2).Infof("no browser session for screenshot after failed keyword %q", alias)
		} else if png, serr := l.page.browser.Screenshot(); serr != nil {
			glog.V(2).Infof("screenshot after failed keyword %q: %v", alias, serr)
		} else {
			l.lastScreenshot = png
		}
		return nil, err
	}

	if po, ok := ret.(PageObject); ok && l.ctx != nil {
		l.ctx.activateFor(po.AsPage())
	}
	return ret, nil
}
