// Command fetchdrivers downloads the WebDriver binaries used to run the
// example page-object suites against a real browser.
package main

import (
	"context"
	"flag"

	"github.com/golang/glog"

	"github.com/8dspaces/robotframework-pageobjects/internal/download"
)

func main() {
	dir := flag.String("dir", "drivers", "directory to place the driver binaries in")
	flag.Parse()

	if err := download.FetchAll(context.Background(), *dir); err != nil {
		glog.Exit(err)
	}
}
