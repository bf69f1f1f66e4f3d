package getrm

import (
	"errors"
	"strings"
	"testing"

	pageobjects "github.com/8dspaces/robotframework-pageobjects"
	"github.com/8dspaces/robotframework-pageobjects/internal/pagetest"
)

func scriptedBrowser() *pagetest.Browser {
	browser := pagetest.New()
	browser.Script("id", "search_input", &pagetest.Element{})
	browser.Script("css selector", "#search_form button[type=submit]", &pagetest.Element{})
	browser.Script("css selector", "a.result-arrow", &pagetest.Element{})
	browser.Script("css selector", ".rprt h2", &pagetest.Element{
		TextValue: "Homo sapiens: GRCh37.p13 Chr 1 (NC_000001.10): 164.77M - 173.68M",
	})
	return browser
}

func TestSearchFlow(t *testing.T) {
	browser := scriptedBrowser()
	opts := pageobjects.Options{BaseURL: "http://www.ncbi.nlm.nih.gov"}
	ctx := pageobjects.NewContext()

	_, _, err := Load(ctx, browser, opts)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	homeLib, ok := ctx.Library("getrm.GeTRM")
	if !ok {
		t.Fatal("home library not registered")
	}

	for _, step := range []struct {
		alias string
		args  []string
	}{
		{"open", nil},
		{"search", []string{"1q24"}},
		{"result_arrow_should_exist", nil},
		{"go_to_results", nil},
	} {
		if _, err := homeLib.RunKeyword(step.alias, step.args); err != nil {
			t.Fatalf("RunKeyword(%q, %v) returned error: %v", step.alias, step.args, err)
		}
	}

	if got := ctx.CurrentPage(); got != "getrm.GeTRMResults" {
		t.Fatalf("after go_to_results, CurrentPage() = %q, want getrm.GeTRMResults", got)
	}

	resultsLib := ctx.CurrentLibrary()
	pattern := `Homo sapiens: GRCh37\.p\d+\s+Chr\s1\s\(NC_000001\.\d+\):\s164\.7\d+M\s-\s173\.6\d+M`
	if _, err := resultsLib.RunKeyword("headers_should_match", []string{pattern}); err != nil {
		t.Fatalf("headers_should_match returned error: %v", err)
	}

	if len(browser.GotURLs) != 1 || !strings.HasSuffix(browser.GotURLs[0], "/gtr/") {
		t.Errorf("navigations = %v, want a single visit to /gtr/", browser.GotURLs)
	}
	input := browser.Elements["id=search_input"]
	if len(input.Sent) != 1 || input.Sent[0] != "1q24" {
		t.Errorf("search input received %v, want [1q24]", input.Sent)
	}
}

func TestQualifiedAliases(t *testing.T) {
	browser := scriptedBrowser()
	ctx := pageobjects.NewContext()
	if _, _, err := Load(ctx, browser, pageobjects.Options{BaseURL: "http://www.ncbi.nlm.nih.gov"}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	homeLib, _ := ctx.Library("getrm.GeTRM")

	names := homeLib.GetKeywordNames()
	for _, want := range []string{"open", "open_GeTRM", "search_GeTRM", "go_to_results_GeTRM"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("GetKeywordNames() = %v, missing %q", names, want)
		}
	}
}

func TestResultsPageURL(t *testing.T) {
	browser := scriptedBrowser()
	results, err := NewResults(browser, pageobjects.Options{BaseURL: "http://www.ncbi.nlm.nih.gov"})
	if err != nil {
		t.Fatalf("NewResults returned error: %v", err)
	}

	url, err := results.ResolveURL(map[string]string{"region": "1q24"})
	if err != nil {
		t.Fatalf("ResolveURL returned error: %v", err)
	}
	if want := "http://www.ncbi.nlm.nih.gov/gtr/results/1q24"; url != want {
		t.Fatalf("ResolveURL = %q, want %q", url, want)
	}

	if _, err := results.ResolveURL(map[string]string{"bogus": "x"}); !errors.Is(err, pageobjects.ErrInvalidTemplateVariable) {
		t.Fatalf("ResolveURL with wrong variable returned %v, want ErrInvalidTemplateVariable", err)
	}
}

func TestFailedKeywordTakesScreenshot(t *testing.T) {
	browser := pagetest.New() // nothing scripted: every find fails
	ctx := pageobjects.NewContext()
	if _, _, err := Load(ctx, browser, pageobjects.Options{BaseURL: "http://www.ncbi.nlm.nih.gov"}); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	homeLib, _ := ctx.Library("getrm.GeTRM")

	if _, err := homeLib.RunKeyword("result_arrow_should_exist", nil); err == nil {
		t.Fatal("result_arrow_should_exist succeeded with nothing on the page")
	}
	if browser.Screenshots != 1 {
		t.Errorf("got %d screenshots after failure, want 1", browser.Screenshots)
	}
}

func TestServedPages(t *testing.T) {
	base := pagetest.ServePages(t, map[string]string{
		"/gtr/": "<html><body id=getrm-home></body></html>",
	})
	browser := scriptedBrowser()
	home, err := NewGeTRM(browser, pageobjects.Options{BaseURL: base})
	if err != nil {
		t.Fatalf("NewGeTRM returned error: %v", err)
	}

	url, err := home.ResolveURL(nil)
	if err != nil {
		t.Fatalf("ResolveURL returned error: %v", err)
	}
	if want := base + "/gtr/"; url != want {
		t.Fatalf("ResolveURL = %q, want %q", url, want)
	}
}
