// Package getrm contains the page objects for NCBI's Genetic Testing
// Registry, the example consumer of the pageobjects library. It shows the
// full pattern: selector sources shared across pages, a URI template, and
// keywords that hand control to another page object.
package getrm

import (
	"fmt"
	"regexp"

	pageobjects "github.com/8dspaces/robotframework-pageobjects"
)

// searchBox is the search form shared by the GeTRM home and results pages.
var searchBox = pageobjects.SelectorSource{
	Name: "search box",
	Selectors: pageobjects.Selectors{
		"search input":  "id=search_input",
		"search button": "css=#search_form button[type=submit]",
	},
}

// GeTRM is the registry's home page.
type GeTRM struct {
	*pageobjects.Page
}

// Results is the search results page.
type Results struct {
	*pageobjects.Page
}

// NewGeTRM builds the home page object.
func NewGeTRM(browser pageobjects.Browser, opts pageobjects.Options) (*GeTRM, error) {
	page, err := pageobjects.NewPage(pageobjects.PageConfig{
		Name:     "GeTRM",
		TypeName: "GeTRM",
		URI:      "/gtr/",
		Sources:  []pageobjects.SelectorSource{searchBox},
		Selectors: pageobjects.Selectors{
			"result arrow": "css=a.result-arrow",
		},
	}, browser, opts)
	if err != nil {
		return nil, err
	}
	return &GeTRM{Page: page}, nil
}

// NewResults builds the results page object. Individual result pages are
// addressed by the searched region, e.g. /gtr/results/1q24.
func NewResults(browser pageobjects.Browser, opts pageobjects.Options) (*Results, error) {
	page, err := pageobjects.NewPage(pageobjects.PageConfig{
		Name:        "GeTRM Results",
		TypeName:    "GeTRMResults",
		URITemplate: "/gtr/results/{region}",
		Sources:     []pageobjects.SelectorSource{searchBox},
		Selectors: pageobjects.Selectors{
			"result headers": "css=.rprt h2",
		},
	}, browser, opts)
	if err != nil {
		return nil, err
	}
	return &Results{Page: page}, nil
}

// Open navigates to the registry home page.
func (g *GeTRM) Open() (*GeTRM, error) {
	if _, err := g.Page.Open(nil); err != nil {
		return nil, err
	}
	return g, nil
}

// Search types term into the search box and submits it.
func (g *GeTRM) Search(term string) (*GeTRM, error) {
	input, err := g.Find("search input")
	if err != nil {
		return nil, err
	}
	if err := input.Clear(); err != nil {
		return nil, err
	}
	if err := input.SendKeys(term); err != nil {
		return nil, err
	}
	button, err := g.Find("search button")
	if err != nil {
		return nil, err
	}
	if err := button.Click(); err != nil {
		return nil, err
	}
	return g, nil
}

// ResultArrowShouldExist asserts the result arrow rendered after a search.
func (g *GeTRM) ResultArrowShouldExist() (*GeTRM, error) {
	if _, err := g.Find("result arrow"); err != nil {
		return nil, fmt.Errorf("result arrow not present: %w", err)
	}
	return g, nil
}

// GoToResults follows the result arrow and hands control to the results
// page object.
func (g *GeTRM) GoToResults(results *Results) (*Results, error) {
	arrow, err := g.Find("result arrow")
	if err != nil {
		return nil, err
	}
	if err := arrow.Click(); err != nil {
		return nil, err
	}
	return results, nil
}

// HeadersShouldMatch asserts that every result header matches pattern.
func (r *Results) HeadersShouldMatch(pattern string) (*Results, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad header pattern %q: %w", pattern, err)
	}
	headers, err := r.FindAll("result headers")
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("no result headers on page")
	}
	for _, h := range headers {
		text, err := h.Text()
		if err != nil {
			return nil, err
		}
		if !re.MatchString(text) {
			return nil, fmt.Errorf("header %q does not match %q", text, pattern)
		}
	}
	return r, nil
}

// Load builds both GeTRM page objects, registers their keywords, and adds
// the libraries to ctx under their importable names.
func Load(ctx *pageobjects.Context, browser pageobjects.Browser, opts pageobjects.Options) (*GeTRM, *Results, error) {
	home, err := NewGeTRM(browser, opts)
	if err != nil {
		return nil, nil, err
	}
	results, err := NewResults(browser, opts)
	if err != nil {
		return nil, nil, err
	}

	homeLib := pageobjects.NewLibrary(home.Page, ctx)
	homeLib.MustRegister("open", func(args ...string) (interface{}, error) {
		return home.Open()
	})
	homeLib.MustRegister("search", func(args ...string) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("search takes exactly one term, got %d arguments", len(args))
		}
		return home.Search(args[0])
	})
	homeLib.MustRegister("result_arrow_should_exist", func(args ...string) (interface{}, error) {
		return home.ResultArrowShouldExist()
	})
	homeLib.MustRegister("go_to_results", func(args ...string) (interface{}, error) {
		return home.GoToResults(results)
	})

	resultsLib := pageobjects.NewLibrary(results.Page, ctx)
	resultsLib.MustRegister("headers_should_match", func(args ...string) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("headers_should_match takes exactly one pattern, got %d arguments", len(args))
		}
		return results.HeadersShouldMatch(args[0])
	})

	ctx.AddLibrary("getrm.GeTRM", homeLib)
	ctx.AddLibrary("getrm.GeTRMResults", resultsLib)
	return home, results, nil
}
