// Package domain contains core domain types for cache invalidation.
package domain

import "sort"

// URLSet is a deduplicating set of invalidation targets accumulated over one
// epoch. Each entry carries a purge flag; an entry flagged false is treated
// as absent by readers, which lets filters veto a URL without reshaping the
// map.
type URLSet map[string]bool

// NewURLSet creates a URLSet containing the given URLs, all flagged for purge.
func NewURLSet(urls ...string) URLSet {
	s := make(URLSet, len(urls))
	for _, u := range urls {
		s[u] = true
	}
	return s
}

// Add flags a URL for purge. Adding an already-present URL is a no-op.
func (s URLSet) Add(url string) {
	s[url] = true
}

// Remove clears the purge flag for a URL without deleting the key.
func (s URLSet) Remove(url string) {
	if _, ok := s[url]; ok {
		s[url] = false
	}
}

// Contains reports whether a URL is present and flagged for purge.
func (s URLSet) Contains(url string) bool {
	return s[url]
}

// Merge unions another set into this one. A true flag always wins so that a
// URL vetoed in one expansion can still be purged when another expansion
// flags it.
func (s URLSet) Merge(other URLSet) {
	for u, purge := range other {
		if purge {
			s[u] = true
		} else if _, ok := s[u]; !ok {
			s[u] = false
		}
	}
}

// Len returns the number of URLs flagged for purge.
func (s URLSet) Len() int {
	n := 0
	for _, purge := range s {
		if purge {
			n++
		}
	}
	return n
}

// URLs returns the flagged URLs in sorted order. Sorting keeps dispatch
// deterministic even though the transport is order-insensitive.
func (s URLSet) URLs() []string {
	urls := make([]string, 0, len(s))
	for u, purge := range s {
		if purge {
			urls = append(urls, u)
		}
	}
	sort.Strings(urls)
	return urls
}
