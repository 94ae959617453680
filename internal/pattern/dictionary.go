// Package pattern holds the keyword dictionary that maps document vocabulary
// to folder categories.
package pattern

import (
	"strings"
)

// Category groups the patterns that point to folders named after it.
type Category struct {
	Name     string
	Patterns []string
}

// Dictionary is an ordered list of categories. Order matters: it is the
// discovery order used to break confidence ties.
type Dictionary []Category

// Hit is a pattern found in a document.
type Hit struct {
	Category string
	Pattern  string
}

// Match returns every (category, pattern) pair whose lowercased pattern
// appears in lowerContent, in dictionary order. lowerContent must already be
// lowercased.
func (d Dictionary) Match(lowerContent string) []Hit {
	var hits []Hit
	if lowerContent == "" {
		return hits
	}

	for _, c := range d {
		for _, p := range c.Patterns {
			if strings.Contains(lowerContent, strings.ToLower(p)) {
				hits = append(hits, Hit{Category: c.Name, Pattern: p})
			}
		}
	}
	return hits
}

// Size returns the total number of patterns.
func (d Dictionary) Size() int {
	n := 0
	for _, c := range d {
		n += len(c.Patterns)
	}
	return n
}
