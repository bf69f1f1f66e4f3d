package pageobjects

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/tebeka/selenium"
)

// KeywordFunc is the signature of a page-object operation exposed to the
// runner. Arguments arrive as positional strings, exactly as the runner
// passes them. The returned value must be non-nil; returning another page
// object hands control to that page.
type KeywordFunc func(args ...string) (interface{}, error)

// NamingConvention computes the public aliases a keyword is exposed under
// and inverts an alias back to the method name. pageName is the page's
// display name with whitespace collapsed to underscores.
type NamingConvention interface {
	Aliases(method, pageName string) []string
	// Method recovers the method name from an alias. ok is false when the
	// alias does not belong to this convention for the given page.
	Method(alias, pageName string) (method string, ok bool)
}

// suffixConvention exposes each keyword under its bare method name and under
// "<method>_<page>". This is the default convention.
type suffixConvention struct{}

func (suffixConvention) Aliases(method, pageName string) []string {
	if pageName == "" {
		return []string{method}
	}
	return []string{method, method + "_" + pageName}
}

func (suffixConvention) Method(alias, pageName string) (string, bool) {
	if pageName != "" {
		if m, found := strings.CutSuffix(alias, "_"+pageName); found && m != "" {
			return m, true
		}
	}
	if alias == "" {
		return "", false
	}
	return alias, true
}

// DefaultConvention is the alias convention used by libraries unless
// overridden: a keyword "search" on page "Pub Med" is exposed as both
// "search" and "search_Pub_Med".
var DefaultConvention NamingConvention = suffixConvention{}

var camelBoundary = regexp.MustCompile(`(\w)([A-Z])`)

// Titleize inserts spaces at case boundaries of a camel-cased type name, so
// "PubMedPage" becomes "Pub Med Page". Pages with no explicit name derive
// their display name this way.
func Titleize(name string) string {
	return camelBoundary.ReplaceAllString(name, "$1 $2")
}

var whitespace = regexp.MustCompile(`\s+`)

// underscore collapses whitespace runs in a display name to single
// underscores, producing the joining form used in aliases.
func underscore(name string) string {
	return whitespace.ReplaceAllString(name, "_")
}

// browserSurface holds the snake-cased method names of the browser
// automation library's public API: the WebDriver interface and, one level
// down, the WebElement interface it hands out. Operations shadowing these
// names are rejected at registration so page objects cannot mask the
// underlying library.
var browserSurface = browserMethodNames(
	reflect.TypeOf((*selenium.WebDriver)(nil)).Elem(),
	reflect.TypeOf((*selenium.WebElement)(nil)).Elem(),
)

func browserMethodNames(types ...reflect.Type) map[string]bool {
	names := make(map[string]bool)
	for _, t := range types {
		for i := 0; i < t.NumMethod(); i++ {
			names[snakeCase(t.Method(i).Name)] = true
		}
	}
	return names
}

// snakeCase converts a camel-cased method name to its snake-cased keyword
// form, keeping acronym runs together: CurrentURL becomes current_url,
// CSSProperty css_property, SessionID session_id.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// validateKeywordName enforces the registration rules: names must be
// non-empty, must not start with an underscore (implementation-private
// marker), and must not shadow the browser automation library's own surface.
func validateKeywordName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("keyword name must not be empty")
	case strings.HasPrefix(name, "_"):
		return fmt.Errorf("keyword name %q is implementation-private (leading underscore)", name)
	case browserSurface[strings.ToLower(name)]:
		return fmt.Errorf("keyword name %q shadows the browser automation library", name)
	}
	return nil
}

// mustReturn wraps a keyword so that a successful invocation producing no
// value fails with ErrKeywordReturnsNoValue. Applied to every keyword at
// registration time, so the guarantee holds for every caller, not just the
// runner.
func mustReturn(name string, fn KeywordFunc) KeywordFunc {
	return func(args ...string) (interface{}, error) {
		ret, err := fn(args...)
		if err != nil {
			return nil, err
		}
		if isNoValue(ret) {
			return nil, fmt.Errorf("keyword %q must return a page object or another meaningful value: %w",
				name, ErrKeywordReturnsNoValue)
		}
		return ret, nil
	}
}

func isNoValue(v interface{}) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
