package domain

// ExpandFilter is an extension point applied to the candidate URL set of a
// single expanded content item before it is merged into the epoch. Filters
// are pure list transforms applied in registration order.
type ExpandFilter func(urls URLSet, item *ContentItem) URLSet

// FlushFilter is an extension point applied once to the final URL set at
// flush time, before per-URL dispatch.
type FlushFilter func(urls URLSet) URLSet
