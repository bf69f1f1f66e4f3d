/*
Package pageobjects implements the page object pattern on top of a
Selenium/WebDriver session, exposing page operations to a keyword-driven
test runner through the dynamic-library API (GetKeywordNames/RunKeyword).

A page object declares how it is addressed (a URI or URI template relative
to an environment-configured base URL) and the selectors it knows about,
then registers its operations on a Library:

	opts, _ := pageobjects.OptionsFromEnv() // PO_BASEURL etc.
	browser, _ := pageobjects.OpenBrowser(opts)
	defer browser.Quit()

	page, _ := pageobjects.NewPage(pageobjects.PageConfig{
		Name: "Pub Med",
		URITemplate: "/pubmed/{pid}",
		Selectors: pageobjects.Selectors{
			"search input": "id=search_input",
		},
	}, browser, opts)

	ctx := pageobjects.NewContext()
	lib := pageobjects.NewLibrary(page, ctx)
	lib.MustRegister("open_article", func(args ...string) (interface{}, error) {
		return page.Open(map[string]string{"pid": args[0]})
	})
	ctx.AddLibrary("PubMed", lib)

The runner then drives the library by alias:

	names := lib.GetKeywordNames()            // "open_article", "open_article_Pub_Med"
	ret, err := lib.RunKeyword("open_article_Pub_Med", []string{"123"})

Every registered keyword must return a value; returning another page object
marks that page as the run's active one, which the runner uses to pick a
library when several expose the same keyword name. A keyword failure
triggers a best-effort diagnostic screenshot before the error is returned
unchanged.
*/
package pageobjects
