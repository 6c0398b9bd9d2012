package store

import "github.com/uptrace/bun"

// Bun models mirroring the host CMS content tables. The engine only ever
// reads these; writes belong to the CMS.

// ItemModel represents the items table.
type ItemModel struct {
	bun.BaseModel `bun:"table:items"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Type      string `bun:"type,notnull"`
	Status    string `bun:"status,notnull"`
	Slug      string `bun:"slug,notnull"`
	CreatedAt int64  `bun:"created_at,notnull"` // Unix timestamp
	AuthorID  int64  `bun:"author_id,notnull"`
}

// TermModel represents the terms table.
type TermModel struct {
	bun.BaseModel `bun:"table:terms"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,notnull"`
	Slug string `bun:"slug,notnull"`
}

// TermTaxonomyModel represents the term_taxonomy table, binding a term to a
// taxonomy under its own taxonomy-term ID. Association notifications carry
// taxonomy-term IDs, not term IDs.
type TermTaxonomyModel struct {
	bun.BaseModel `bun:"table:term_taxonomy"`

	TaxonomyTermID int64  `bun:"taxonomy_term_id,pk,autoincrement"`
	TermID         int64  `bun:"term_id,notnull"`
	Taxonomy       string `bun:"taxonomy,notnull"`
}

// RelationshipModel represents the term_relationships table associating
// items with taxonomy terms.
type RelationshipModel struct {
	bun.BaseModel `bun:"table:term_relationships"`

	ItemID         int64 `bun:"item_id,pk"`
	TaxonomyTermID int64 `bun:"taxonomy_term_id,pk"`
}

// AuthorModel represents the authors table.
type AuthorModel struct {
	bun.BaseModel `bun:"table:authors"`

	ID          int64  `bun:"id,pk,autoincrement"`
	Slug        string `bun:"slug,notnull"`
	DisplayName string `bun:"display_name,notnull"`
}

// CommentModel represents the comments table.
type CommentModel struct {
	bun.BaseModel `bun:"table:comments"`

	ID     int64  `bun:"id,pk,autoincrement"`
	ItemID int64  `bun:"item_id,notnull"`
	Status string `bun:"status,notnull"`
}
