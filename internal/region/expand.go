package region

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Expand maps region names to the union of their state abbreviations.
//
// A name matching a macro-region contributes every abbreviation under it; a
// name matching a subregion contributes that subregion's abbreviations. A name
// that is both contributes both sets. Matching is case-insensitive. Unknown
// names contribute nothing and never cause an error.
//
// The result is deduplicated and sorted.
func Expand(names ...string) []string {
	set := make(map[string]struct{})
	for _, name := range names {
		collect(name, set)
	}
	return sorted(set)
}

// ExpandStrict behaves like Expand but returns an error naming the first
// input that matches neither a macro-region nor a subregion.
func ExpandStrict(names ...string) ([]string, error) {
	set := make(map[string]struct{})
	for _, name := range names {
		if !collect(name, set) {
			return nil, eris.Errorf("region: unknown region %q", name)
		}
	}
	return sorted(set), nil
}

// collect adds a single name's contributions to set and reports whether the
// name matched anything.
func collect(name string, set map[string]struct{}) bool {
	key := strings.ToLower(strings.TrimSpace(name))
	matched := false

	if abbrs, ok := macroIndex[key]; ok {
		matched = true
		for _, a := range abbrs {
			set[a] = struct{}{}
		}
	}
	if abbrs, ok := subIndex[key]; ok {
		matched = true
		for _, a := range abbrs {
			set[a] = struct{}{}
		}
	}
	return matched
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for a := range set {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}
