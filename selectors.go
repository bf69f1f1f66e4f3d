package pageobjects

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// Selectors maps a human-readable element name to a locator string. A
// locator is either a bare value (looked up by id) or prefixed with a
// strategy, e.g. "css=div.results" or "xpath=//h2".
type Selectors map[string]string

// SelectorSource is a named contribution of selectors to a page, typically a
// shared component (a header, a search box) reused by several pages. Sources
// are merged furthest-ancestor first; the page's own selectors are merged
// last and override everything.
type SelectorSource struct {
	Name      string
	Selectors Selectors
}

// mergeSelectors folds the given sources into a single mapping, applying the
// page's own selectors last. Two distinct sources that bind the same name to
// different locators are a configuration error unless the page overrides the
// name itself; binding the same name to an identical locator is harmless.
// Nil or empty sources contribute nothing.
func mergeSelectors(own Selectors, sources []SelectorSource) (Selectors, error) {
	merged := make(Selectors)
	origin := make(map[string]string)

	for _, src := range sources {
		for name, locator := range src.Selectors {
			prev, seen := merged[name]
			if seen && prev != locator {
				if _, overridden := own[name]; !overridden {
					return nil, fmt.Errorf("selector %q defined by both %q and %q: %w",
						name, origin[name], src.Name, ErrDuplicateSelectorKey)
				}
			}
			merged[name] = locator
			origin[name] = src.Name
		}
	}
	for name, locator := range own {
		merged[name] = locator
	}
	return merged, nil
}

// Locator strategies accepted in selector values, mapped to the WebDriver
// "by" constants.
var locatorStrategies = map[string]string{
	"id":           selenium.ByID,
	"name":         selenium.ByName,
	"xpath":        selenium.ByXPATH,
	"css":          selenium.ByCSSSelector,
	"tag":          selenium.ByTagName,
	"class":        selenium.ByClassName,
	"link":         selenium.ByLinkText,
	"partial link": selenium.ByPartialLinkText,
}

// parseLocator splits a locator string into a WebDriver strategy and value.
// "xpath=//h2" uses the explicit strategy, a leading "//" implies xpath, and
// anything else is looked up by id.
func parseLocator(locator string) (by, value string) {
	if strings.HasPrefix(locator, "//") {
		return selenium.ByXPATH, locator
	}
	if i := strings.Index(locator, "="); i > 0 {
		if by, ok := locatorStrategies[strings.TrimSpace(locator[:i])]; ok {
			return by, strings.TrimSpace(locator[i+1:])
		}
	}
	return selenium.ByID, locator
}
