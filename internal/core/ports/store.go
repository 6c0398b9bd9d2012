package ports

import (
	"context"

	"go.trai.ch/sweep/internal/core/domain"
)

// ContentStore is the read-only query interface to the host CMS content
// store. The engine tolerates eventual staleness within an epoch, so
// implementations need no snapshot isolation across calls.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ContentStore interface {
	// ContentItem fetches a content item by ID.
	// Returns domain.ErrItemNotFound when no such item exists.
	ContentItem(ctx context.Context, id int64) (*domain.ContentItem, error)

	// TermByID fetches a taxonomy term by its term ID.
	TermByID(ctx context.Context, id int64) (*domain.TermRef, error)

	// TermByTaxonomyID fetches a term by its taxonomy-term ID, the identifier
	// term-association notifications carry.
	TermByTaxonomyID(ctx context.Context, taxonomyTermID int64) (*domain.TermRef, error)

	// Comment fetches a comment by ID.
	Comment(ctx context.Context, id int64) (*domain.Comment, error)

	// AuthorSlug returns the URL slug for an author.
	AuthorSlug(ctx context.Context, authorID int64) (string, error)

	// TaxonomiesForType lists the taxonomies applicable to a content type.
	TaxonomiesForType(ctx context.Context, itemType string) ([]string, error)

	// TermsForItem lists the terms associated with an item in one taxonomy.
	TermsForItem(ctx context.Context, itemID int64, taxonomy string) ([]domain.TermRef, error)

	// ItemIDsByTerm lists every content item ID associated with a term.
	// The result is unbounded; see the package note on scalability.
	ItemIDsByTerm(ctx context.Context, termID int64) ([]int64, error)

	// ItemIDsByAuthor lists every content item ID owned by an author.
	// The result is unbounded; see the package note on scalability.
	ItemIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error)
}
