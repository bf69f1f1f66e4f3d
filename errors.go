package pageobjects

import "errors"

// Errors reported by page objects and the keyword dispatch layer. They are
// returned wrapped with call-site detail; test with errors.Is.
var (
	// ErrNoBaseURL is returned by ResolveURL when no base URL has been
	// configured, either in the environment or on the page itself.
	ErrNoBaseURL = errors.New("no base URL configured")

	// ErrNoURIAttribute is returned by ResolveURL when a base URL is
	// configured but the page declares neither a URI nor a URI template.
	ErrNoURIAttribute = errors.New("page declares no URI or URI template")

	// ErrAbsoluteURIAttribute is returned by ResolveURL when the page's URI
	// is an absolute URL. Page URIs must be relative so they can be appended
	// to the configured base URL.
	ErrAbsoluteURIAttribute = errors.New("page URI must be relative")

	// ErrAbsoluteURITemplate is the URI-template analogue of
	// ErrAbsoluteURIAttribute.
	ErrAbsoluteURITemplate = errors.New("page URI template must be relative")

	// ErrInvalidTemplateVariable is returned by ResolveURL when the supplied
	// template variables do not exactly match the placeholders declared in
	// the URI template.
	ErrInvalidTemplateVariable = errors.New("template variables do not match URI template placeholders")

	// ErrDuplicateSelectorKey is returned when two unrelated selector
	// sources define different locators for the same selector name and the
	// page does not override it.
	ErrDuplicateSelectorKey = errors.New("duplicate selector key")

	// ErrKeywordReturnsNoValue is returned when an invoked keyword produces
	// no value. Every keyword must return either a page object or another
	// meaningful value.
	ErrKeywordReturnsNoValue = errors.New("keyword returned no value")

	// ErrKeywordLookup is returned by RunKeyword when an alias does not
	// resolve to any registered keyword.
	ErrKeywordLookup = errors.New("no keyword found for alias")
)
