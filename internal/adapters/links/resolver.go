// Package links resolves entities to their public addresses from the site
// settings and slug lookups against the content store.
package links

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.LinkResolver. All addresses are rooted at the
// configured base URL and use trailing-slash paths.
type Resolver struct {
	settings domain.Settings
	store    ports.ContentStore
	base     *url.URL
}

// NewResolver creates a Resolver, validating the site base URL once.
func NewResolver(settings domain.Settings, store ports.ContentStore) (*Resolver, error) {
	base, err := url.Parse(strings.TrimRight(settings.BaseURL, "/"))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBadBaseURL.Error())
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, zerr.With(domain.ErrBadBaseURL, "base_url", settings.BaseURL)
	}
	return &Resolver{settings: settings, store: store, base: base}, nil
}

// ItemLink returns the canonical address of a content item.
func (r *Resolver) ItemLink(_ context.Context, item *domain.ContentItem) (string, error) {
	if item.Slug == "" {
		return "", zerr.With(domain.ErrLinkUnresolvable, "item", item.ID)
	}
	return r.path(item.Slug), nil
}

// FrontPageLink returns the site front page address.
func (r *Resolver) FrontPageLink() string {
	return r.base.String() + "/"
}

// PostsPageLink returns the designated posts listing address, or empty when
// none is configured or it coincides with the front page.
func (r *Resolver) PostsPageLink() string {
	p := strings.Trim(r.settings.PostsPagePath, "/")
	if p == "" {
		return ""
	}
	return r.path(p)
}

// AuthorLink returns an author's archive address, looking the slug up in the
// content store.
func (r *Resolver) AuthorLink(ctx context.Context, authorID int64) (string, error) {
	slug, err := r.store.AuthorSlug(ctx, authorID)
	if err != nil {
		return "", err
	}
	if slug == "" {
		return "", zerr.With(domain.ErrLinkUnresolvable, "author", authorID)
	}
	return r.path(r.settings.AuthorBasePath, slug), nil
}

// TermLink returns a term's archive address. Taxonomy path overrides from
// the settings apply (e.g. post_tag -> tag).
func (r *Resolver) TermLink(_ context.Context, term domain.TermRef) (string, error) {
	if term.Slug == "" || term.Taxonomy == "" {
		return "", zerr.With(domain.ErrLinkUnresolvable, "term", term.ID)
	}
	segment := term.Taxonomy
	if override, ok := r.settings.TaxonomyPaths[term.Taxonomy]; ok {
		segment = override
	}
	return r.path(segment, term.Slug), nil
}

// DateLink returns the date archive address for a timestamp at the given
// granularity.
func (r *Resolver) DateLink(t time.Time, granularity domain.DateGranularity) string {
	switch granularity {
	case domain.GranularityYear:
		return r.path(fmt.Sprintf("%04d", t.Year()))
	case domain.GranularityMonth:
		return r.path(fmt.Sprintf("%04d/%02d", t.Year(), t.Month()))
	default:
		return r.path(fmt.Sprintf("%04d/%02d/%02d", t.Year(), t.Month(), t.Day()))
	}
}

// path joins segments onto the base URL with a trailing slash.
func (r *Resolver) path(segments ...string) string {
	var b strings.Builder
	b.WriteString(r.base.String())
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(strings.Trim(s, "/"))
	}
	b.WriteString("/")
	return b.String()
}
