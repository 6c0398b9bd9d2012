package domain

import "slices"

// ShouldPurge reports whether a status transition warrants any invalidation.
// It is true iff either side of the transition is a public status: an item
// moving into a public state must invalidate the pages that will now list
// it, and one moving out must invalidate the pages that no longer should.
// Callers with no recorded pre-state pass an empty previous status, which is
// never public.
func ShouldPurge(previous, next string, public []string) bool {
	return slices.Contains(public, previous) || slices.Contains(public, next)
}

// Eligible reports whether a content item participates in invalidation at
// all. Excluded types and transient derivative copies short-circuit before
// any classification or expansion.
func Eligible(item *ContentItem, excludedTypes []string) bool {
	if item == nil || item.Revision {
		return false
	}
	return !slices.Contains(excludedTypes, item.Type)
}
