// Package download fetches the WebDriver binaries needed to run page-object
// suites against a real browser: a pinned chromedriver and the latest
// geckodriver release.
package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"github.com/blang/semver"
	"github.com/golang/glog"
	"github.com/google/go-github/v27/github"
	"golang.org/x/sync/errgroup"
)

// Driver describes one WebDriver binary to fetch.
type Driver struct {
	URL  string
	Name string
	// Hash is the expected sha256 of the archive; empty skips verification.
	Hash string
	// Rename maps the unpacked name to the name the suite expects.
	Rename []string

	directory string
}

// Path returns where the archive is stored on disk.
func (d Driver) Path() string {
	if d.directory != "" {
		return filepath.Join(d.directory, d.Name)
	}
	return d.Name
}

// ChromeDriver is the pinned chromedriver build used by the suite.
var ChromeDriver = Driver{
	URL:  "https://chromedriver.storage.googleapis.com/76.0.3809.25/chromedriver_linux64.zip",
	Name: "chromedriver.zip",
	Hash: "0a264a8b2fa881edf33657ba88709ae3dbaec72d8b41beebf1c89d5e3bc3e594",
}

// minGeckodriver is the oldest geckodriver whose W3C dialect the suite
// supports.
var minGeckodriver = semver.MustParse("0.24.0")

// LatestGeckodriver asks GitHub for the newest geckodriver release and
// returns a Driver for its linux64 archive. Releases older than
// minGeckodriver are rejected.
func LatestGeckodriver(ctx context.Context) (Driver, error) {
	client := github.NewClient(nil)
	release, _, err := client.Repositories.GetLatestRelease(ctx, "mozilla", "geckodriver")
	if err != nil {
		return Driver{}, fmt.Errorf("query latest geckodriver release: %v", err)
	}

	version, err := semver.ParseTolerant(release.GetTagName())
	if err != nil {
		return Driver{}, fmt.Errorf("parse geckodriver version from tag %q: %v", release.GetTagName(), err)
	}
	if version.LT(minGeckodriver) {
		return Driver{}, fmt.Errorf("latest geckodriver %s is older than the minimum supported %s", version, minGeckodriver)
	}

	for _, asset := range release.Assets {
		if strings.HasSuffix(asset.GetName(), "linux64.tar.gz") {
			return Driver{
				URL:  asset.GetBrowserDownloadURL(),
				Name: "geckodriver.tar.gz",
			}, nil
		}
	}
	return Driver{}, fmt.Errorf("geckodriver release %s has no linux64 archive", release.GetTagName())
}

// Fetch downloads and unpacks one driver into directory, skipping the
// download when a verified copy is already present.
func Fetch(driver Driver, directory string) error {
	driver.directory = directory

	if driver.Hash != "" && sameHash(driver) {
		glog.Infof("Skipping %q, already downloaded.", driver.Name)
	} else {
		glog.Infof("Downloading %q from %q", driver.Name, driver.URL)
		if err := fetchArchive(driver); err != nil {
			return err
		}
	}

	if err := unpack(driver); err != nil {
		return err
	}

	if rename := driver.Rename; len(rename) == 2 {
		from := filepath.Join(driver.directory, rename[0])
		to := filepath.Join(driver.directory, rename[1])
		glog.Infof("Renaming %q to %q", from, to)
		os.RemoveAll(to) // Ignore error.
		if err := os.Rename(from, to); err != nil {
			glog.Warningf("Error renaming %q to %q: %v", from, to, err)
		}
	}
	return nil
}

// FetchAll downloads every driver the suite needs, in parallel.
func FetchAll(ctx context.Context, directory string) error {
	gecko, err := LatestGeckodriver(ctx)
	if err != nil {
		return err
	}

	var wg errgroup.Group
	for _, driver := range []Driver{ChromeDriver, gecko} {
		driver := driver
		wg.Go(func() error {
			if err := Fetch(driver, directory); err != nil {
				return fmt.Errorf("error fetching %s: %v", driver.Name, err)
			}
			return nil
		})
	}
	return wg.Wait()
}

func fetchArchive(driver Driver) (err error) {
	f, err := os.Create(driver.Path())
	if err != nil {
		return fmt.Errorf("error creating %q: %v", driver.Path(), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing %q: %v", driver.Path(), closeErr)
		}
	}()

	resp, err := http.Get(driver.URL)
	if err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", driver.Name, driver.URL, err)
	}
	defer resp.Body.Close()

	if driver.Hash == "" {
		if _, err := io.Copy(f, resp.Body); err != nil {
			return fmt.Errorf("%s: error downloading %q: %v", driver.Name, driver.URL, err)
		}
		return nil
	}

	h := sha256.New()
	if _, err := io.Copy(io.MultiWriter(f, h), resp.Body); err != nil {
		return fmt.Errorf("%s: error downloading %q: %v", driver.Name, driver.URL, err)
	}
	if sum := hex.EncodeToString(h.Sum(nil)); sum != driver.Hash {
		return fmt.Errorf("%s: got hash %q, want %q", driver.Name, sum, driver.Hash)
	}
	return nil
}

func sameHash(driver Driver) bool {
	if _, err := os.Stat(driver.Path()); err != nil {
		return false
	}
	var h hash.Hash = sha256.New()
	f, err := os.Open(driver.Path())
	if err != nil {
		return false
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return false
	}

	sum := hex.EncodeToString(h.Sum(nil))
	if sum != driver.Hash {
		glog.Warningf("File %q: got hash %q, expect hash %q", driver.Name, sum, driver.Hash)
		return false
	}
	return true
}

func unpack(driver Driver) error {
	dir := "."
	if driver.directory != "" {
		dir = driver.directory
	}

	var cmd []string
	switch path.Ext(driver.Name) {
	case ".zip":
		cmd = []string{"unzip", "-d", dir, "-o", driver.Path()}
	case ".gz":
		cmd = []string{"tar", "-xzf", driver.Path(), "-C", dir}
	default:
		return nil
	}

	glog.Infof("Unpacking %q", driver.Path())
	if err := exec.Command(cmd[0], cmd[1:]...).Run(); err != nil {
		return fmt.Errorf("error unpacking %q: %v", driver.Name, err)
	}
	return nil
}
