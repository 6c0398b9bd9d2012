package domain

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Settings is the engine configuration. It is supplied once before an epoch
// begins and treated as immutable for the epoch's duration.
type Settings struct {
	// BaseURL is the public address of the site, e.g. "https://example.com".
	BaseURL string

	// PostsPagePath is the path of the designated posts listing page, e.g.
	// "/blog/". Empty when the front page itself is the listing.
	PostsPagePath string
	// PostsPageType is the content type bound to the posts listing page.
	PostsPageType string

	// Endpoint optionally addresses a cache server distinct from the site
	// host. When empty, purge requests go to the site host directly.
	Endpoint string
	// Method is the HTTP method used for purge requests.
	Method string
	// TagPrefix is the surrogate-key prefix for tag purges. When empty a
	// stable prefix is derived from the site host.
	TagPrefix string
	// Enabled gates all purging. When false the engine never registers.
	Enabled bool

	// PublicStatuses are the item statuses considered publicly cached.
	PublicStatuses []string
	// ExcludedTypes are content types that never trigger invalidation.
	ExcludedTypes []string
	// PublicCommentStatuses are the comment statuses visible on cached pages.
	PublicCommentStatuses []string
	// ProfileFields are the author fields whose change invalidates the
	// author's scope.
	ProfileFields []string
	// FullFlushEvents are site event names that latch a full purge.
	FullFlushEvents []string

	// TaxonomyPaths overrides the URL path segment per taxonomy, e.g.
	// post_tag -> tag.
	TaxonomyPaths map[string]string
	// AuthorBasePath is the path segment for author archives.
	AuthorBasePath string

	// StoreDSN is the content store data source name.
	StoreDSN string

	// Debug enables debug diagnostics. When false debug output is fully
	// suppressed.
	Debug bool
}

// DefaultSettings returns settings with the stock defaults applied. The
// config loader overlays sweep.yaml on top of these.
func DefaultSettings() Settings {
	return Settings{
		Method:                "PURGE",
		Enabled:               true,
		PublicStatuses:        []string{"publish"},
		ExcludedTypes:         []string{"nav_menu_item", "revision", "attachment"},
		PublicCommentStatuses: []string{"approved"},
		ProfileFields:         []string{"display_name", "nicename"},
		FullFlushEvents:       []string{"theme_switched", "permalinks_changed"},
		TaxonomyPaths:         map[string]string{"post_tag": "tag"},
		AuthorBasePath:        "author",
	}
}

// Host returns the hostname of the site base URL.
func (s *Settings) Host() (string, error) {
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", zerr.Wrap(err, ErrBadBaseURL.Error())
	}
	if u.Scheme == "" || u.Host == "" {
		return "", zerr.With(ErrBadBaseURL, "base_url", s.BaseURL)
	}
	return u.Host, nil
}

// CacheTag returns the surrogate-key prefix for tag purges: the configured
// prefix, or a stable hash of the site host when none is set.
func (s *Settings) CacheTag() string {
	if s.TagPrefix != "" {
		return s.TagPrefix
	}
	host, err := s.Host()
	if err != nil {
		return ""
	}
	return "sweep-" + strconv.FormatUint(xxhash.Sum64String(host), 16)
}

// IsFullFlushEvent reports whether a site event name latches a full purge.
func (s *Settings) IsFullFlushEvent(name string) bool {
	for _, ev := range s.FullFlushEvents {
		if strings.EqualFold(ev, name) {
			return true
		}
	}
	return false
}
