package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suffixSetValue collects repeated --excluded-suffix values, splitting on
// commas and deduplicating case-insensitively (suffix matching downstream
// is case-insensitive anyway).
type suffixSetValue struct {
	values *[]string
	seen   map[string]bool
}

var _ pflag.Value = (*suffixSetValue)(nil)

func newSuffixSetValue(target *[]string) *suffixSetValue {
	return &suffixSetValue{values: target, seen: map[string]bool{}}
}

func (v *suffixSetValue) Set(raw string) error {
	for _, part := range strings.Split(raw, ",") {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if v.seen[key] {
			continue
		}
		v.seen[key] = true
		*v.values = append(*v.values, s)
	}
	return nil
}

func (v *suffixSetValue) String() string {
	return strings.Join(*v.values, ",")
}

func (v *suffixSetValue) Type() string {
	return "suffixSet"
}
