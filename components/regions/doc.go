// Package regions provides the deterministic AWS region catalog, search
// helpers, and a small net/http handler that returns JSON options for the
// regions multi-select in the backend settings form.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. The backing data is loaded from the
// embedded catalog under data/aws_regions.txt; the first entry in the catalog
// is the default region offered by the form.
package regions
