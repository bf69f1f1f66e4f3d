package pageobjects

import "strings"

// Context tracks the page-object libraries loaded for one test run and
// which page is currently active. The runner consults the active page to
// disambiguate a keyword name offered by several loaded libraries.
//
// Keyword dispatch is strictly sequential, so Context does no locking. A
// concurrent harness must give each run its own Context.
type Context struct {
	libraries map[string]*Library
	order     []string
	current   string
}

// NewContext returns an empty Context for one test run.
func NewContext() *Context {
	return &Context{libraries: make(map[string]*Library)}
}

// AddLibrary registers a loaded library under the name the runner imported
// it as, e.g. "getrm.ResultsPage". Re-registering a name replaces the
// library but keeps its position.
func (c *Context) AddLibrary(name string, lib *Library) {
	if _, ok := c.libraries[name]; !ok {
		c.order = append(c.order, name)
	}
	c.libraries[name] = lib
}

// Library returns the library registered under name.
func (c *Context) Library(name string) (*Library, bool) {
	lib, ok := c.libraries[name]
	return lib, ok
}

// LibraryNames returns the loaded library names in registration order.
func (c *Context) LibraryNames() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// SetCurrentPage marks the named library as the active page. Unknown names
// are ignored, mirroring a keyword that returned a page the runner never
// loaded.
func (c *Context) SetCurrentPage(name string) {
	if _, ok := c.libraries[name]; ok {
		c.current = name
	}
}

// CurrentPage returns the name of the active page library, or "" when no
// keyword has handed control to a page yet.
func (c *Context) CurrentPage() string {
	return c.current
}

// CurrentLibrary returns the active page's library, or nil.
func (c *Context) CurrentLibrary() *Library {
	return c.libraries[c.current]
}

// activateFor points the context at the library whose name matches the
// given page. Library names are matched on their last dot segment against
// the page's type name, falling back to the display name with spaces
// removed.
func (c *Context) activateFor(p *Page) {
	want := p.typeName
	if want == "" {
		want = strings.ReplaceAll(p.name, " ", "")
	}
	for _, name := range c.order {
		seg := name
		if i := strings.LastIndex(name, "."); i >= 0 {
			seg = name[i+1:]
		}
		if seg == want {
			c.current = name
			return
		}
	}
}
