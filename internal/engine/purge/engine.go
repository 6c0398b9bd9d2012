package purge

import (
	"context"

	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
)

// Engine receives mutation notifications from the host CMS, accumulates the
// affected URLs over one epoch, and flushes them once when the host signals
// the end of the unit of work.
//
// Nothing inside notification handling is allowed to abort the epoch: lookup
// failures drop their own contribution with a debug note and the epoch keeps
// accumulating.
type Engine struct {
	settings domain.Settings
	store    ports.ContentStore
	logger   ports.Logger
	epoch    *Epoch
	expander *Expander
	flusher  *Flusher
}

// New creates an Engine, consulting the transport's Enabled gate once. When
// the transport reports itself disabled New returns
// domain.ErrPurgingDisabled and the host must not wire any notifications;
// the engine stays inert for the process lifetime.
func New(
	settings domain.Settings,
	store ports.ContentStore,
	links ports.LinkResolver,
	transport ports.CachePurger,
	logger ports.Logger,
) (*Engine, error) {
	if !transport.Enabled() {
		return nil, domain.ErrPurgingDisabled
	}

	return &Engine{
		settings: settings,
		store:    store,
		logger:   logger,
		epoch:    NewEpoch(),
		expander: NewExpander(settings, store, links, logger),
		flusher:  NewFlusher(settings, transport, logger),
	}, nil
}

// OnExpand registers an extension point applied to every per-item candidate
// URL set before it is merged into the epoch.
func (e *Engine) OnExpand(f domain.ExpandFilter) {
	e.expander.AddFilter(f)
}

// OnFlush registers an extension point applied once to the final URL set at
// flush time, before per-URL dispatch.
func (e *Engine) OnFlush(f domain.FlushFilter) {
	e.flusher.AddFilter(f)
}

// Epoch returns the engine's accumulator. Hosts that process units of work
// concurrently must construct one Engine per worker rather than sharing one.
func (e *Engine) Epoch() *Epoch {
	return e.epoch
}

// ItemWillChange captures an item's status before a mutation is applied. The
// matching ItemChanged call consumes the snapshot; snapshots not claimed by
// epoch end are discarded on reset.
func (e *Engine) ItemWillChange(ctx context.Context, itemID int64) {
	item, err := e.store.ContentItem(ctx, itemID)
	if err != nil {
		e.logger.Debug("pre-change item unresolved", "item", itemID, "error", err)
		return
	}
	e.epoch.RecordPreStatus(itemID, item.Status)
}

// ItemChanged handles a content-item save. Ineligible items short-circuit
// with no state change; a transition with neither side public warrants no
// purge. Without a recorded pre-status the previous status counts as not
// public.
func (e *Engine) ItemChanged(ctx context.Context, itemID int64) {
	item, err := e.store.ContentItem(ctx, itemID)
	if err != nil {
		e.logger.Debug("changed item unresolved", "item", itemID, "error", err)
		return
	}
	e.itemMutation(ctx, item)
}

// ItemDeleted handles an imminent content-item deletion. The host notifies
// before the row disappears, so the item is still resolvable here and its
// current status stands in for the post-mutation side of the transition.
func (e *Engine) ItemDeleted(ctx context.Context, itemID int64) {
	item, err := e.store.ContentItem(ctx, itemID)
	if err != nil {
		e.logger.Debug("deleted item unresolved", "item", itemID, "error", err)
		return
	}
	e.itemMutation(ctx, item)
}

func (e *Engine) itemMutation(ctx context.Context, item *domain.ContentItem) {
	if !domain.Eligible(item, e.settings.ExcludedTypes) {
		e.logger.Debug("item not eligible", "item", item.ID, "type", item.Type)
		return
	}

	previous, _ := e.epoch.PreStatus(item.ID)
	if !domain.ShouldPurge(previous, item.Status, e.settings.PublicStatuses) {
		e.logger.Debug("transition never cached",
			"item", item.ID, "previous", previous, "next", item.Status)
		return
	}

	urls := e.expander.ExpandItem(ctx, item)
	e.epoch.Merge(urls)
	e.logger.Debug("item expanded",
		"epoch", e.epoch.ID(), "item", item.ID, "urls", urls.Len())
}

// TermsChanged handles a term-association change, carrying the added and
// removed taxonomy-term IDs. Terms that fail to resolve drop out without
// affecting their siblings.
func (e *Engine) TermsChanged(ctx context.Context, taxonomyTermIDs []int64) {
	for _, ttID := range taxonomyTermIDs {
		term, err := e.store.TermByTaxonomyID(ctx, ttID)
		if err != nil {
			e.logger.Debug("term unresolved", "taxonomy_term", ttID, "error", err)
			continue
		}
		urls := e.expander.ExpandTerm(ctx, *term)
		e.epoch.Merge(urls)
		e.logger.Debug("term expanded",
			"epoch", e.epoch.ID(), "term", term.ID, "urls", urls.Len())
	}
}

// AuthorChanged handles a profile update, comparing old and new field values
// against the configured watch list. Only a change to a watched field
// invalidates the author's scope.
func (e *Engine) AuthorChanged(ctx context.Context, authorID int64, oldFields, newFields map[string]string) {
	if !profileFieldChanged(e.settings.ProfileFields, oldFields, newFields) {
		e.logger.Debug("no watched profile field changed", "author", authorID)
		return
	}
	urls := e.expander.ExpandAuthor(ctx, authorID)
	e.epoch.Merge(urls)
	e.logger.Debug("author expanded",
		"epoch", e.epoch.ID(), "author", authorID, "urls", urls.Len())
}

// CommentChanged handles a comment-status transition. Transitions with
// neither side publicly visible warrant no purge; otherwise the comment's
// parent item is expanded if it is currently public.
func (e *Engine) CommentChanged(ctx context.Context, commentID int64, oldStatus, newStatus string) {
	if !domain.ShouldPurge(oldStatus, newStatus, e.settings.PublicCommentStatuses) {
		e.logger.Debug("comment transition never cached",
			"comment", commentID, "previous", oldStatus, "next", newStatus)
		return
	}
	comment, err := e.store.Comment(ctx, commentID)
	if err != nil {
		e.logger.Debug("comment unresolved", "comment", commentID, "error", err)
		return
	}
	urls := e.expander.ExpandComment(ctx, comment)
	e.epoch.Merge(urls)
	e.logger.Debug("comment expanded",
		"epoch", e.epoch.ID(), "comment", commentID, "urls", urls.Len())
}

// SiteEvent handles a named site-wide event. Events on the configured
// full-flush list latch a full purge for the epoch; everything else is
// ignored.
func (e *Engine) SiteEvent(name string) {
	if !e.settings.IsFullFlushEvent(name) {
		e.logger.Debug("site event ignored", "event", name)
		return
	}
	e.epoch.LatchFullPurge()
	e.logger.Debug("full purge latched", "epoch", e.epoch.ID(), "event", name)
}

// Flush drains the epoch exactly once. The host calls it at the end of the
// unit of work; notifications arriving afterward belong to the next epoch.
func (e *Engine) Flush(ctx context.Context) {
	e.flusher.Flush(ctx, e.epoch)
}

// profileFieldChanged reports whether any watched field differs between the
// old and new profile values.
func profileFieldChanged(watched []string, oldFields, newFields map[string]string) bool {
	for _, field := range watched {
		if oldFields[field] != newFields[field] {
			return true
		}
	}
	return false
}
