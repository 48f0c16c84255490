// Package catalog implements the presentation pipeline for card collections:
// entity splitting, filtering, grouping and display formatting. Everything in
// this package is a pure function of its inputs so that recomputing a view
// after a filter change is deterministic.
package catalog

import "strings"

// Delimiter sets for multi-valued fields. "&" is a valid internal conjunction
// in group and filter keys ("Stars & Stripes") but counts as a separator when
// abbreviating display strings, so the two contexts use different sets.
const (
	GroupDelims   = "/|,"
	DisplayDelims = "/|,&"
)

// SplitEntities splits a raw multi-valued field on the given delimiter
// characters, trims each part and drops blanks and exact duplicates. Order of
// first appearance is preserved.
func SplitEntities(raw, delims string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})

	seen := make(map[string]bool, len(parts))
	entities := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		entities = append(entities, p)
	}

	return entities
}

// DedupBadge normalizes a badge value: split on "-", "/", "|" and ",", trim,
// drop duplicates and rejoin with "-". A single distinct part comes back
// unadorned, blank input comes back empty.
func DedupBadge(value string) string {
	parts := SplitEntities(value, "-/|,")
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts, "-")
}
