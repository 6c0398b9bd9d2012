package purge

import (
	"context"
	"slices"

	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
)

// Expander computes the full URL set a changed entity affects, using
// read-only queries against the content store. Every resolution miss drops
// that one URL, never the whole expansion.
//
// Term and author expansions walk the store's full association lists without
// pagination. On sites where a single term or author spans very many items
// this makes an expansion expensive; it is a scalability caveat, not a
// correctness one.
type Expander struct {
	settings domain.Settings
	store    ports.ContentStore
	links    ports.LinkResolver
	logger   ports.Logger
	filters  []domain.ExpandFilter
}

// NewExpander creates an Expander.
func NewExpander(
	settings domain.Settings,
	store ports.ContentStore,
	links ports.LinkResolver,
	logger ports.Logger,
) *Expander {
	return &Expander{
		settings: settings,
		store:    store,
		links:    links,
		logger:   logger,
	}
}

// AddFilter appends an expand filter. Filters run in registration order on
// every per-item candidate set before it is returned.
func (x *Expander) AddFilter(f domain.ExpandFilter) {
	x.filters = append(x.filters, f)
}

// ExpandItem returns every cached URL a content item influences: its own
// address, the front page, the posts listing page when the item's type is
// bound to one, the author archive, the three date archives derived from the
// creation timestamp, and the archive of every associated term across every
// taxonomy applicable to the item's type.
func (x *Expander) ExpandItem(ctx context.Context, item *domain.ContentItem) domain.URLSet {
	urls := domain.NewURLSet()

	if link, err := x.links.ItemLink(ctx, item); err != nil {
		x.logger.Debug("item link unresolved", "item", item.ID, "error", err)
	} else {
		urls.Add(link)
	}

	front := x.links.FrontPageLink()
	urls.Add(front)

	if posts := x.links.PostsPageLink(); posts != "" && posts != front &&
		item.Type == x.settings.PostsPageType {
		urls.Add(posts)
	}

	if link, err := x.links.AuthorLink(ctx, item.AuthorID); err != nil {
		x.logger.Debug("author link unresolved", "author", item.AuthorID, "error", err)
	} else {
		urls.Add(link)
	}

	urls.Add(x.links.DateLink(item.CreatedAt, domain.GranularityYear))
	urls.Add(x.links.DateLink(item.CreatedAt, domain.GranularityMonth))
	urls.Add(x.links.DateLink(item.CreatedAt, domain.GranularityDay))

	x.expandItemTerms(ctx, item, urls)

	for _, f := range x.filters {
		urls = f(urls, item)
	}
	return urls
}

func (x *Expander) expandItemTerms(ctx context.Context, item *domain.ContentItem, urls domain.URLSet) {
	taxonomies, err := x.store.TaxonomiesForType(ctx, item.Type)
	if err != nil {
		x.logger.Debug("taxonomy lookup failed", "type", item.Type, "error", err)
		return
	}

	for _, taxonomy := range taxonomies {
		terms, err := x.store.TermsForItem(ctx, item.ID, taxonomy)
		if err != nil {
			x.logger.Debug("term lookup failed", "item", item.ID, "taxonomy", taxonomy, "error", err)
			continue
		}
		for _, term := range terms {
			link, err := x.links.TermLink(ctx, term)
			if err != nil {
				x.logger.Debug("term link unresolved", "term", term.ID, "error", err)
				continue
			}
			urls.Add(link)
		}
	}
}

// ExpandTerm returns the term's own archive address unioned with the full
// expansion of every content item currently associated with the term.
func (x *Expander) ExpandTerm(ctx context.Context, term domain.TermRef) domain.URLSet {
	urls := domain.NewURLSet()

	if link, err := x.links.TermLink(ctx, term); err != nil {
		x.logger.Debug("term link unresolved", "term", term.ID, "error", err)
	} else {
		urls.Add(link)
	}

	ids, err := x.store.ItemIDsByTerm(ctx, term.ID)
	if err != nil {
		x.logger.Debug("term item listing failed", "term", term.ID, "error", err)
		return urls
	}
	x.expandEach(ctx, ids, urls)
	return urls
}

// ExpandAuthor returns the author's archive address unioned with the full
// expansion of every content item the author owns.
func (x *Expander) ExpandAuthor(ctx context.Context, authorID int64) domain.URLSet {
	urls := domain.NewURLSet()

	if link, err := x.links.AuthorLink(ctx, authorID); err != nil {
		x.logger.Debug("author link unresolved", "author", authorID, "error", err)
	} else {
		urls.Add(link)
	}

	ids, err := x.store.ItemIDsByAuthor(ctx, authorID)
	if err != nil {
		x.logger.Debug("author item listing failed", "author", authorID, "error", err)
		return urls
	}
	x.expandEach(ctx, ids, urls)
	return urls
}

// ExpandComment returns the expansion of the comment's parent content item,
// but only when that item is currently in a public status.
func (x *Expander) ExpandComment(ctx context.Context, comment *domain.Comment) domain.URLSet {
	item, err := x.store.ContentItem(ctx, comment.ItemID)
	if err != nil {
		x.logger.Debug("comment parent unresolved", "comment", comment.ID, "item", comment.ItemID, "error", err)
		return domain.NewURLSet()
	}
	if !slices.Contains(x.settings.PublicStatuses, item.Status) {
		return domain.NewURLSet()
	}
	return x.ExpandItem(ctx, item)
}

// expandEach expands every listed item that is eligible and publicly cached,
// merging the results into urls.
func (x *Expander) expandEach(ctx context.Context, ids []int64, urls domain.URLSet) {
	for _, id := range ids {
		item, err := x.store.ContentItem(ctx, id)
		if err != nil {
			x.logger.Debug("item unresolved", "item", id, "error", err)
			continue
		}
		if !domain.Eligible(item, x.settings.ExcludedTypes) {
			continue
		}
		if !slices.Contains(x.settings.PublicStatuses, item.Status) {
			continue
		}
		urls.Merge(x.ExpandItem(ctx, item))
	}
}
