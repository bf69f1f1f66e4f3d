package pageobjects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestContextLibraryOrder(t *testing.T) {
	ctx := NewContext()
	a, _ := newTestLibrary(t, ctx)
	b, _ := newTestLibrary(t, ctx)

	ctx.AddLibrary("search.SearchPage", a)
	ctx.AddLibrary("results.ResultsPage", b)
	ctx.AddLibrary("search.SearchPage", a) // replacement keeps position

	want := []string{"search.SearchPage", "results.ResultsPage"}
	if diff := cmp.Diff(want, ctx.LibraryNames()); diff != "" {
		t.Fatalf("LibraryNames mismatch (-want +got):\n%s", diff)
	}

	got, ok := ctx.Library("results.ResultsPage")
	if !ok || got != b {
		t.Fatalf("Library(results.ResultsPage) = (%v, %v), want the registered library", got, ok)
	}
}

func TestContextCurrentPage(t *testing.T) {
	ctx := NewContext()
	lib, _ := newTestLibrary(t, ctx)
	ctx.AddLibrary("search.SearchPage", lib)

	if got := ctx.CurrentPage(); got != "" {
		t.Fatalf("CurrentPage() on fresh context = %q, want empty", got)
	}

	ctx.SetCurrentPage("never.Loaded")
	if got := ctx.CurrentPage(); got != "" {
		t.Fatalf("CurrentPage() after unknown name = %q, want empty", got)
	}

	ctx.SetCurrentPage("search.SearchPage")
	if got := ctx.CurrentPage(); got != "search.SearchPage" {
		t.Fatalf("CurrentPage() = %q, want %q", got, "search.SearchPage")
	}
	if ctx.CurrentLibrary() != lib {
		t.Fatal("CurrentLibrary() is not the registered library")
	}
}
