// Package pagetest provides a scripted Browser double and a small page
// server so page-object libraries can be exercised without a WebDriver
// session. It lives in a separate package to stay available to every test
// harness in this module.
package pagetest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tebeka/selenium"
)

// Element is a scripted selenium.WebElement. Unused interface methods are
// inherited from the embedded nil interface and panic when called, which is
// what a test wants from an unscripted interaction.
type Element struct {
	selenium.WebElement

	TextValue string
	Clicked   int
	Sent      []string
	Cleared   int
}

func (e *Element) Text() (string, error) { return e.TextValue, nil }

func (e *Element) Click() error {
	e.Clicked++
	return nil
}

func (e *Element) SendKeys(keys string) error {
	e.Sent = append(e.Sent, keys)
	return nil
}

func (e *Element) Clear() error {
	e.Cleared++
	return nil
}

func (e *Element) IsDisplayed() (bool, error) { return true, nil }

// Browser is a scripted pageobjects.Browser. Elements are keyed by
// "by=value"; lookups for unscripted keys fail like a real driver's
// no-such-element error.
type Browser struct {
	Elements map[string]*Element

	// ScreenshotErr, when set, makes Screenshot fail; the dispatch layer is
	// expected to swallow that failure.
	ScreenshotErr error

	GotURLs     []string
	Screenshots int
	QuitCalled  bool
	PageTitle   string
}

// New returns an empty scripted browser.
func New() *Browser {
	return &Browser{Elements: make(map[string]*Element)}
}

// Script registers an element under the given strategy and value.
func (b *Browser) Script(by, value string, elem *Element) {
	b.Elements[by+"="+value] = elem
}

func (b *Browser) Get(url string) error {
	b.GotURLs = append(b.GotURLs, url)
	return nil
}

func (b *Browser) Title() (string, error) { return b.PageTitle, nil }

func (b *Browser) CurrentURL() (string, error) {
	if len(b.GotURLs) == 0 {
		return "", fmt.Errorf("no navigation yet")
	}
	return b.GotURLs[len(b.GotURLs)-1], nil
}

func (b *Browser) FindElement(by, value string) (selenium.WebElement, error) {
	elem, ok := b.Elements[by+"="+value]
	if !ok {
		return nil, fmt.Errorf("no such element: %s=%s", by, value)
	}
	return elem, nil
}

func (b *Browser) FindElements(by, value string) ([]selenium.WebElement, error) {
	elem, err := b.FindElement(by, value)
	if err != nil {
		return nil, err
	}
	return []selenium.WebElement{elem}, nil
}

func (b *Browser) Screenshot() ([]byte, error) {
	if b.ScreenshotErr != nil {
		return nil, b.ScreenshotErr
	}
	b.Screenshots++
	return []byte("PNG"), nil
}

func (b *Browser) Quit() error {
	b.QuitCalled = true
	return nil
}

// ServePages starts an HTTP server mapping paths to HTML bodies and returns
// its URL for use as a base URL. The server shuts down with the test.
func ServePages(t *testing.T, pages map[string]string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server.URL
}
