package pageobjects

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Options carries the environment-provided configuration shared by every
// page object in a test run. Only BaseURL affects URL resolution; the
// remaining fields configure the browser session the runner opens.
type Options struct {
	// BaseURL is the root all relative page URIs are appended to. It may be
	// a URL or a local filesystem path, which is converted to a file://
	// URL at resolution time.
	BaseURL string `env:"PO_BASEURL"`

	// Browser names the browser the automation library should drive.
	Browser string `env:"PO_BROWSER" envDefault:"firefox"`

	// SeleniumSpeed inserts a delay between browser commands, useful when
	// watching a test run interactively.
	SeleniumSpeed time.Duration `env:"PO_SELENIUM_SPEED"`

	// SeleniumURL points at the WebDriver remote endpoint.
	SeleniumURL string `env:"PO_SELENIUM_URL" envDefault:"http://127.0.0.1:4444/wd/hub"`
}

// OptionsFromEnv reads Options from PO_* environment variables.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parse page object options from environment: %w", err)
	}
	return opts, nil
}
