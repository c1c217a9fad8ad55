package regions

import (
	"sort"
	"strings"
)

// Search filters the catalog by code or location. Code prefix matches rank
// first, then any substring match on code or location, alphabetical by code
// within each rank. An empty query returns the catalog in file order when
// EmptySearchAll is set.
func Search(catalog []Region, query string, limit int, opts Options) []Region {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchAll {
			if len(catalog) <= limit {
				return append([]Region{}, catalog...)
			}
			return append([]Region{}, catalog[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedRegion, 0, 16)
	for _, region := range catalog {
		code := strings.ToLower(region.Code)
		location := strings.ToLower(region.Location)
		if !strings.Contains(code, q) && !strings.Contains(location, q) {
			continue
		}
		matches = append(matches, matchedRegion{
			region:   region,
			isPrefix: strings.HasPrefix(code, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].region.Code < matches[j].region.Code
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Region, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.region)
	}
	return out
}

type matchedRegion struct {
	region   Region
	isPrefix bool
}
