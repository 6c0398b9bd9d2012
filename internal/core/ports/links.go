package ports

import (
	"context"
	"time"

	"go.trai.ch/sweep/internal/core/domain"
)

// LinkResolver computes the public addresses of entities. A resolution
// failure drops that one URL from an expansion, never the whole operation.
//
//go:generate mockgen -source=links.go -destination=mocks/mock_links.go -package=mocks
type LinkResolver interface {
	// ItemLink returns the canonical address of a content item.
	ItemLink(ctx context.Context, item *domain.ContentItem) (string, error)

	// FrontPageLink returns the site front page address.
	FrontPageLink() string

	// PostsPageLink returns the designated posts listing address, or empty
	// when none is configured or it coincides with the front page.
	PostsPageLink() string

	// AuthorLink returns an author's archive address.
	AuthorLink(ctx context.Context, authorID int64) (string, error)

	// TermLink returns a term's archive address.
	TermLink(ctx context.Context, term domain.TermRef) (string, error)

	// DateLink returns the date archive address for a timestamp at the given
	// granularity.
	DateLink(t time.Time, granularity domain.DateGranularity) string
}
