// Package region expands named US macro-regions and subregions into state
// postal abbreviations via a static lookup table.
package region

import (
	"sort"
	"strings"
)

// divisions is the canonical macro-region → subregion → state abbreviation
// table. Abbreviations repeat across overlapping subregions (e.g. "Upper
// Midwest" vs "West North Central"); Expand deduplicates.
var divisions = map[string]map[string][]string{
	"Northeast": {
		"New England":  {"CT", "ME", "MA", "NH", "RI", "VT"},
		"Mid-Atlantic": {"NJ", "NY", "PA"},
	},
	"Midwest": {
		"East North Central": {"IL", "IN", "MI", "OH", "WI"},
		"West North Central": {"IA", "KS", "MN", "MO", "NE", "ND", "SD"},
		"Upper Midwest":      {"MN", "WI", "IA", "ND", "SD"},
	},
	"South": {
		"South Atlantic":     {"DE", "FL", "GA", "MD", "NC", "SC", "VA", "DC", "WV"},
		"East South Central": {"AL", "KY", "MS", "TN"},
		"West South Central": {"AR", "LA", "OK", "TX"},
		"Deep South":         {"AL", "GA", "LA", "MS", "SC"},
	},
	"West": {
		"Mountain":          {"AZ", "CO", "ID", "MT", "NV", "NM", "UT", "WY"},
		"Pacific":           {"AK", "CA", "HI", "OR", "WA"},
		"Pacific Northwest": {"OR", "WA", "ID"},
		"Southwest":         {"AZ", "NM", "OK", "TX"},
	},
}

// Lookup indices built once at init. Keys are folded to lower case so matching
// is case-insensitive at both levels.
var (
	macroIndex map[string][]string
	subIndex   map[string][]string
	macroNames map[string]string // folded → canonical
)

func init() {
	macroIndex = make(map[string][]string, len(divisions))
	subIndex = make(map[string][]string)
	macroNames = make(map[string]string, len(divisions))

	for macro, subs := range divisions {
		key := strings.ToLower(macro)
		macroNames[key] = macro

		var all []string
		for sub, abbrs := range subs {
			all = append(all, abbrs...)
			subIndex[strings.ToLower(sub)] = abbrs
		}
		macroIndex[key] = all
	}
}

// Names returns the canonical macro-region names, sorted.
func Names() []string {
	names := make([]string, 0, len(divisions))
	for macro := range divisions {
		names = append(names, macro)
	}
	sort.Strings(names)
	return names
}

// Subregions returns the sorted subregion names under a macro-region.
// The lookup is case-insensitive; ok is false for unknown macro-regions.
func Subregions(macro string) ([]string, bool) {
	canonical, ok := macroNames[strings.ToLower(macro)]
	if !ok {
		return nil, false
	}
	subs := make([]string, 0, len(divisions[canonical]))
	for sub := range divisions[canonical] {
		subs = append(subs, sub)
	}
	sort.Strings(subs)
	return subs, true
}

// Abbreviations returns the sorted state abbreviations of a subregion.
// The lookup is case-insensitive; ok is false for unknown subregions.
func Abbreviations(subregion string) ([]string, bool) {
	abbrs, ok := subIndex[strings.ToLower(subregion)]
	if !ok {
		return nil, false
	}
	out := append([]string(nil), abbrs...)
	sort.Strings(out)
	return out, true
}
