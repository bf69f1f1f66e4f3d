package pageobjects

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tebeka/selenium"
)

func TestMergeSelectorsConflict(t *testing.T) {
	sources := []SelectorSource{
		{Name: "BaseFoo", Selectors: Selectors{"foo": "foo"}},
		{Name: "BaseBar", Selectors: Selectors{"foo": "bar"}},
	}
	_, err := NewPage(PageConfig{Name: "Foo Bar Page", Sources: sources}, nil, Options{})
	if !errors.Is(err, ErrDuplicateSelectorKey) {
		t.Fatalf("NewPage with conflicting sources returned %v, want ErrDuplicateSelectorKey", err)
	}
}

func TestMergeSelectorsOverride(t *testing.T) {
	sources := []SelectorSource{
		{Name: "BaseFoo", Selectors: Selectors{"foo": "foo"}},
		{Name: "BaseBar", Selectors: Selectors{"bar": "bar", "baz": "cat"}},
	}
	page, err := NewPage(PageConfig{
		Name:      "Foo Bar Page",
		Sources:   sources,
		Selectors: Selectors{"baz": "baz"},
	}, nil, Options{})
	if err != nil {
		t.Fatalf("NewPage returned error: %v", err)
	}

	want := Selectors{"foo": "foo", "bar": "bar", "baz": "baz"}
	if diff := cmp.Diff(want, page.Selectors()); diff != "" {
		t.Fatalf("merged selectors mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeSelectorsOwnOverridesConflict(t *testing.T) {
	// The page's own definition is the nearest override: a key both sources
	// disagree on is fine once the page settles it.
	sources := []SelectorSource{
		{Name: "BaseFoo", Selectors: Selectors{"foo": "foo"}},
		{Name: "BaseBar", Selectors: Selectors{"foo": "bar"}},
	}
	page, err := NewPage(PageConfig{
		Name:      "Foo Bar Page",
		Sources:   sources,
		Selectors: Selectors{"foo": "baz"},
	}, nil, Options{})
	if err != nil {
		t.Fatalf("NewPage returned error: %v", err)
	}
	if got := page.Selectors()["foo"]; got != "baz" {
		t.Fatalf("selector foo = %q, want page's own %q", got, "baz")
	}
}

func TestMergeSelectorsIdenticalValue(t *testing.T) {
	sources := []SelectorSource{
		{Name: "BaseFoo", Selectors: Selectors{"foo": "same"}},
		{Name: "BaseBar", Selectors: Selectors{"foo": "same"}},
		{Name: "Empty"},
	}
	page, err := NewPage(PageConfig{Name: "Foo Bar Page", Sources: sources}, nil, Options{})
	if err != nil {
		t.Fatalf("NewPage returned error: %v", err)
	}
	if got := page.Selectors()["foo"]; got != "same" {
		t.Fatalf("selector foo = %q, want %q", got, "same")
	}
}

func TestParseLocator(t *testing.T) {
	tests := []struct {
		locator string
		by      string
		value   string
	}{
		{"xpath=//h2", selenium.ByXPATH, "//h2"},
		{"//h2", selenium.ByXPATH, "//h2"},
		{"css=div.results", selenium.ByCSSSelector, "div.results"},
		{"id=search_input", selenium.ByID, "search_input"},
		{"name=term", selenium.ByName, "term"},
		{"search_input", selenium.ByID, "search_input"},
		{"weird=value", selenium.ByID, "weird=value"},
	}
	for _, tc := range tests {
		by, value := parseLocator(tc.locator)
		if by != tc.by || value != tc.value {
			t.Errorf("parseLocator(%q) = (%q, %q), want (%q, %q)", tc.locator, by, value, tc.by, tc.value)
		}
	}
}
