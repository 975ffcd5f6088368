package aggregate

import (
	"sort"
	"strings"

	"github.com/gravitational/trace"
)

// validResources is the closed set of resource kinds the aggregator can
// fetch (spec.md §4.4 step 2).
var validResources = map[string]bool{
	"health":         true,
	"jobs":           true,
	"indexes":        true,
	"apps":           true,
	"users":          true,
	"cluster":        true,
	"kvstore":        true,
	"license":        true,
	"saved-searches": true,
	"overview":       true,
	"search-peers":   true,
	"fired-alerts":   true,
	"forwarders":     true,
}

// sortedValidResources lists the closed set in a stable order, used only
// for error messages so output is deterministic.
func sortedValidResources() []string {
	out := make([]string, 0, len(validResources))
	for r := range validResources {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}

// NormalizeResources trims whitespace, lower-cases, and deduplicates while
// preserving first occurrence (spec.md §4.4 step 1).
func NormalizeResources(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.ToLower(strings.TrimSpace(r))
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// NormalizeProfiles trims whitespace and deduplicates, preserving case and
// first occurrence (spec.md §4.4 step 1: profile names preserve case).
func NormalizeProfiles(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// ValidateResources rejects any resource name outside the closed set,
// naming every offender plus the valid list in one error (spec.md §4.4
// step 2).
func ValidateResources(resources []string) error {
	var unknown []string
	for _, r := range resources {
		if !validResources[r] {
			unknown = append(unknown, r)
		}
	}
	if len(unknown) > 0 {
		return trace.BadParameter("unknown resource(s) %s: valid options are %s",
			strings.Join(unknown, ", "), strings.Join(sortedValidResources(), ", "))
	}
	return nil
}

// ValidateProfiles rejects any profile name not present in catalog,
// naming every offender (spec.md §4.4 step 2).
func ValidateProfiles(profiles []string, catalog map[string]bool) error {
	var unknown []string
	for _, p := range profiles {
		if !catalog[p] {
			unknown = append(unknown, p)
		}
	}
	if len(unknown) > 0 {
		names := make([]string, 0, len(catalog))
		for name := range catalog {
			names = append(names, name)
		}
		sort.Strings(names)
		return trace.BadParameter("unknown profile(s) %s: known profiles are %s",
			strings.Join(unknown, ", "), strings.Join(names, ", "))
	}
	return nil
}
