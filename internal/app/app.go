// Package app implements the application layer for sweep.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.trai.ch/sweep/internal/adapters/feed"
	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
	"go.trai.ch/sweep/internal/engine/purge"
)

// App represents the main application logic.
type App struct {
	settings  domain.Settings
	store     ports.ContentStore
	links     ports.LinkResolver
	transport ports.CachePurger
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	settings domain.Settings,
	store ports.ContentStore,
	links ports.LinkResolver,
	transport ports.CachePurger,
	logger ports.Logger,
) *App {
	return &App{
		settings:  settings,
		store:     store,
		links:     links,
		transport: transport,
		logger:    logger,
	}
}

// Replay streams one event journal through a fresh engine epoch and flushes
// it once at the end. Each replay is one unit of work with its own
// accumulator. When purging is disabled the replay is a no-op, not an error.
func (a *App) Replay(ctx context.Context, journalPath string) error {
	journal, err := feed.Load(journalPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load event journal")
	}

	engine, err := purge.New(a.settings, a.store, a.links, a.transport, a.logger)
	if errors.Is(err, domain.ErrPurgingDisabled) {
		a.logger.Info("cache purging is disabled; nothing to do")
		return nil
	}
	if err != nil {
		return err
	}

	for _, ev := range journal.Events {
		a.dispatch(ctx, engine, ev)
	}
	engine.Flush(ctx)

	a.logger.Info(fmt.Sprintf("replayed %d events", len(journal.Events)))
	return nil
}

// dispatch maps one journal event onto the engine notification it represents.
func (a *App) dispatch(ctx context.Context, engine *purge.Engine, ev feed.Event) {
	switch ev.Kind {
	case feed.KindItemSaving:
		engine.ItemWillChange(ctx, ev.ItemID)
	case feed.KindItemSaved:
		engine.ItemChanged(ctx, ev.ItemID)
	case feed.KindItemDeleting:
		engine.ItemDeleted(ctx, ev.ItemID)
	case feed.KindTermsChanged:
		engine.TermsChanged(ctx, ev.TaxonomyTermIDs)
	case feed.KindAuthorUpdated:
		engine.AuthorChanged(ctx, ev.AuthorID, ev.OldFields, ev.NewFields)
	case feed.KindCommentStatus:
		engine.CommentChanged(ctx, ev.CommentID, ev.OldStatus, ev.NewStatus)
	case feed.KindSite:
		engine.SiteEvent(ev.Name)
	}
}

// Purge drives the transport directly for operator-initiated invalidation:
// either the given URLs with bounded parallelism, or the whole site.
func (a *App) Purge(ctx context.Context, urls []string, all bool, parallelism int) error {
	if !a.transport.Enabled() {
		return domain.ErrPurgingDisabled
	}

	if all {
		return a.purgeAll(ctx)
	}

	if len(urls) == 0 {
		return domain.ErrNoURLsSpecified
	}
	if parallelism < 1 {
		parallelism = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for _, u := range urls {
		g.Go(func() error {
			if err := a.transport.PurgeURL(ctx, u); err != nil {
				return zerr.With(err, "url", u)
			}
			a.logger.Info("purged " + u)
			return nil
		})
	}
	return g.Wait()
}

func (a *App) purgeAll(ctx context.Context) error {
	host, err := a.settings.Host()
	if err != nil {
		return err
	}

	var errs error
	if err := a.transport.PurgeHost(ctx, host); err != nil {
		errs = errors.Join(errs, zerr.With(err, "host", host))
	} else {
		a.logger.Info("purged host " + host)
	}

	if tag := a.settings.CacheTag(); tag != "" {
		if err := a.transport.PurgeTag(ctx, tag); err != nil {
			errs = errors.Join(errs, zerr.With(err, "tag", tag))
		} else {
			a.logger.Info("purged tag " + tag)
		}
	}
	return errs
}
