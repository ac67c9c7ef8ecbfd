package migrate

import "strings"

// SuffixCatalog is the forest-wide set of suffixes the directory accepts as
// a principal name domain. Membership checks are case-insensitive.
type SuffixCatalog map[string]struct{}

// NewSuffixCatalog normalizes the raw suffix list into a catalog. Empty and
// whitespace-only entries are dropped.
func NewSuffixCatalog(suffixes []string) SuffixCatalog {
	c := make(SuffixCatalog, len(suffixes))
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			c[s] = struct{}{}
		}
	}
	return c
}

// Contains reports whether the suffix is configured for the forest.
func (c SuffixCatalog) Contains(suffix string) bool {
	_, ok := c[strings.ToLower(suffix)]
	return ok
}

// Len returns the number of configured suffixes.
func (c SuffixCatalog) Len() int {
	return len(c)
}
