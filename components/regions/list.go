package regions

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/aws_regions.txt
var dataFS embed.FS

const defaultListPath = "data/aws_regions.txt"

// Region is a single entry in the AWS region catalog.
type Region struct {
	Code     string `json:"code"`
	Location string `json:"location"`
}

var (
	defaultOnce    sync.Once
	defaultRegions []Region
	defaultErr     error
)

// DefaultRegions returns the embedded region catalog in file order. The first
// entry is the default region.
func DefaultRegions() ([]Region, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		catalog, err := LoadRegions(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegions = catalog
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Region{}, defaultRegions...), nil
}

// DefaultRegion returns the first catalog entry.
func DefaultRegion() (Region, error) {
	catalog, err := DefaultRegions()
	if err != nil {
		return Region{}, err
	}
	if len(catalog) == 0 {
		return Region{}, fmt.Errorf("regions: empty catalog")
	}
	return catalog[0], nil
}

// Codes returns the region codes of catalog in the same order.
func Codes(catalog []Region) []string {
	out := make([]string, 0, len(catalog))
	for _, region := range catalog {
		out = append(out, region.Code)
	}
	return out
}

// LoadRegions parses "code|location" lines, skipping blanks, comments, and
// duplicate codes. Catalog order is preserved, it carries meaning.
func LoadRegions(r io.Reader) ([]Region, error) {
	if r == nil {
		return nil, fmt.Errorf("regions: missing reader")
	}

	scanner := bufio.NewScanner(r)
	catalog := make([]Region, 0, 32)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		code, location, found := strings.Cut(line, "|")
		code = strings.TrimSpace(code)
		if !found || code == "" {
			return nil, fmt.Errorf("regions: malformed catalog line %q", line)
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		catalog = append(catalog, Region{Code: code, Location: strings.TrimSpace(location)})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}
