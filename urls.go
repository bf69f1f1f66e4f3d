package pageobjects

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/yosida95/uritemplate/v3"
)

var urlScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// isAbsoluteURL reports whether s carries a URL scheme such as "http://" or
// "file://". Relative URIs and template strings never do.
func isAbsoluteURL(s string) bool {
	return urlScheme.MatchString(s)
}

// normalizeBaseURL returns base as an absolute URL. A base that is a local
// filesystem path is converted to a file-scheme URL so pages can be served
// straight from disk during tests.
func normalizeBaseURL(base string) string {
	if isAbsoluteURL(base) {
		return base
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		abs = base
	}
	return "file://" + filepath.ToSlash(abs)
}

// resolveURL computes the absolute URL for a page from the configured base
// URL, the page's relative URI or URI template, and the caller-supplied
// template variables. Validation order:
//
//  1. A missing base URL always fails with ErrNoBaseURL.
//  2. With a base URL but neither uri nor uriTemplate, ErrNoURIAttribute.
//  3. An absolute uriTemplate fails with ErrAbsoluteURITemplate; a relative
//     one is expanded with vars, which must exactly match its placeholders.
//  4. An absolute uri fails with ErrAbsoluteURIAttribute.
//  5. Otherwise the result is the base URL concatenated with the relative
//     URI or the expanded template.
func resolveURL(baseURL, uri, uriTemplate string, vars map[string]string) (string, error) {
	if baseURL == "" {
		return "", fmt.Errorf("set the base URL in the environment before resolving page URLs: %w", ErrNoBaseURL)
	}
	base := normalizeBaseURL(baseURL)

	switch {
	case uriTemplate != "":
		if isAbsoluteURL(uriTemplate) {
			return "", fmt.Errorf("URI template %q: %w", uriTemplate, ErrAbsoluteURITemplate)
		}
		path, err := expandTemplate(uriTemplate, vars)
		if err != nil {
			return "", err
		}
		return base + path, nil
	case uri != "":
		if isAbsoluteURL(uri) {
			return "", fmt.Errorf("URI %q: %w", uri, ErrAbsoluteURIAttribute)
		}
		return base + uri, nil
	}
	return "", fmt.Errorf("page has a base URL but no way to address itself: %w", ErrNoURIAttribute)
}

// expandTemplate substitutes vars into an RFC 6570 URI template. The set of
// supplied variables must equal the set of placeholders: a missing or an
// extra variable is an error, never silently dropped.
func expandTemplate(raw string, vars map[string]string) (string, error) {
	tmpl, err := uritemplate.New(raw)
	if err != nil {
		return "", fmt.Errorf("URI template %q: %v: %w", raw, err, ErrInvalidTemplateVariable)
	}

	names := tmpl.Varnames()
	declared := make(map[string]bool, len(names))
	for _, name := range names {
		declared[name] = true
		if _, ok := vars[name]; !ok {
			return "", fmt.Errorf("URI template %q declares %q but no such variable was supplied: %w",
				raw, name, ErrInvalidTemplateVariable)
		}
	}
	for _, name := range sortedNames(vars) {
		if !declared[name] {
			return "", fmt.Errorf("variable %q does not appear in URI template %q (placeholders: %v): %w",
				name, raw, names, ErrInvalidTemplateVariable)
		}
	}

	values := make(uritemplate.Values, len(vars))
	for name, value := range vars {
		values[name] = uritemplate.String(value)
	}
	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expand URI template %q: %v: %w", raw, err, ErrInvalidTemplateVariable)
	}
	return expanded, nil
}

// sortedNames is a diagnostic helper for error messages that enumerate
// variable names deterministically.
func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
