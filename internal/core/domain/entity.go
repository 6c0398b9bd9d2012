package domain

import "time"

// EntityKind identifies which kind of entity triggered an invalidation.
type EntityKind string

const (
	// KindItem is a content item (post, page, custom type).
	KindItem EntityKind = "item"
	// KindTerm is a taxonomy term.
	KindTerm EntityKind = "term"
	// KindAuthor is a content author.
	KindAuthor EntityKind = "author"
	// KindComment is a comment on a content item.
	KindComment EntityKind = "comment"
)

// ContentItem is an immutable snapshot of a content item taken at expansion
// time. The engine never writes back to the content store.
type ContentItem struct {
	ID        int64
	Type      string
	Status    string
	Slug      string
	CreatedAt time.Time
	AuthorID  int64
	// Revision marks transient derivative copies (revisions, autosaves) that
	// never appear on cached pages and must not trigger purges.
	Revision bool
}

// TermRef identifies a taxonomy term. Slug may be empty when the reference
// was built from an ID alone; the link resolver treats that as a resolution
// miss for the term's archive URL.
type TermRef struct {
	ID       int64
	Taxonomy string
	Slug     string
}

// Comment is a snapshot of a comment and its parent content item reference.
type Comment struct {
	ID     int64
	ItemID int64
	Status string
}

// DateGranularity selects which date archive a timestamp resolves to.
type DateGranularity int

const (
	// GranularityYear resolves to the year archive.
	GranularityYear DateGranularity = iota
	// GranularityMonth resolves to the year-month archive.
	GranularityMonth
	// GranularityDay resolves to the year-month-day archive.
	GranularityDay
)
