package pageobjects

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// Browser is the slice of the WebDriver API that page objects delegate to.
// selenium.WebDriver satisfies it directly; tests substitute a fake.
type Browser interface {
	// Get navigates to the given URL.
	Get(url string) error
	// Title returns the current page title.
	Title() (string, error)
	// CurrentURL returns the browser's current URL.
	CurrentURL() (string, error)
	// FindElement locates a single element.
	FindElement(by, value string) (selenium.WebElement, error)
	// FindElements locates every matching element.
	FindElements(by, value string) ([]selenium.WebElement, error)
	// Screenshot captures the current page as a PNG.
	Screenshot() ([]byte, error)
	// Quit ends the browser session.
	Quit() error
}

// OpenBrowser starts a WebDriver session per the given options and returns
// it as a Browser. The session talks to the remote endpoint named by
// opts.SeleniumURL; callers own the session and must Quit it.
func OpenBrowser(opts Options) (Browser, error) {
	caps := selenium.Capabilities{"browserName": opts.Browser}
	wd, err := selenium.NewRemote(caps, opts.SeleniumURL)
	if err != nil {
		return nil, fmt.Errorf("open %s session at %s: %w", opts.Browser, opts.SeleniumURL, err)
	}
	if opts.SeleniumSpeed > 0 {
		// Implicit waits are the closest WebDriver analogue to the classic
		// "selenium speed" knob.
		if err := wd.SetImplicitWaitTimeout(opts.SeleniumSpeed); err != nil {
			wd.Quit()
			return nil, fmt.Errorf("set implicit wait: %w", err)
		}
	}
	return wd, nil
}
