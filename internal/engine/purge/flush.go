package purge

import (
	"context"
	"net/url"

	"go.trai.ch/sweep/internal/core/domain"
	"go.trai.ch/sweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Flusher drains an epoch exactly once at the end of a unit of work. A
// latched full purge wins outright: the per-URL set is a strict subset of
// what the full flush covers, so individual purges are suppressed. Every
// transport failure is caught and logged in isolation; the epoch is reset
// unconditionally afterward.
type Flusher struct {
	settings  domain.Settings
	transport ports.CachePurger
	logger    ports.Logger
	filters   []domain.FlushFilter
}

// NewFlusher creates a Flusher.
func NewFlusher(settings domain.Settings, transport ports.CachePurger, logger ports.Logger) *Flusher {
	return &Flusher{
		settings:  settings,
		transport: transport,
		logger:    logger,
	}
}

// AddFilter appends a flush filter. Filters run in registration order on the
// final URL set before per-URL dispatch.
func (f *Flusher) AddFilter(flt domain.FlushFilter) {
	f.filters = append(f.filters, flt)
}

// Flush dispatches the epoch's accumulated state to the transport and resets
// the epoch. Purging is best-effort and idempotent at the transport layer:
// no retry, no rollback, no partial-success signaling beyond logging.
func (f *Flusher) Flush(ctx context.Context, epoch *Epoch) {
	defer epoch.Reset()

	urls, full := epoch.Drain()
	if full {
		f.flushAll(ctx, epoch)
		return
	}

	for _, flt := range f.filters {
		urls = flt(urls)
	}

	for _, u := range urls.URLs() {
		if !wellFormed(u) {
			// Expected and benign; malformed entries are dropped quietly.
			f.logger.Debug("dropping malformed URL", "epoch", epoch.ID(), "url", u)
			continue
		}
		if err := f.transport.PurgeURL(ctx, u); err != nil {
			f.logger.Error(zerr.With(zerr.Wrap(err, "failed to purge URL"), "url", u))
			continue
		}
		f.logger.Debug("purged URL", "epoch", epoch.ID(), "url", u)
	}
}

// flushAll purges the whole site by host and, when a cache tag is
// configured, by surrogate key. The two calls are independent; one failing
// does not prevent the other.
func (f *Flusher) flushAll(ctx context.Context, epoch *Epoch) {
	host, err := f.settings.Host()
	if err != nil {
		f.logger.Error(zerr.Wrap(err, "cannot resolve host for full purge"))
	} else if err := f.transport.PurgeHost(ctx, host); err != nil {
		f.logger.Error(zerr.With(zerr.Wrap(err, "failed to purge host"), "host", host))
	} else {
		f.logger.Debug("purged host", "epoch", epoch.ID(), "host", host)
		// Idempotent re-latch after a successful full purge; the epoch is
		// about to reset anyway.
		epoch.LatchFullPurge()
	}

	if tag := f.settings.CacheTag(); tag != "" {
		if err := f.transport.PurgeTag(ctx, tag); err != nil {
			f.logger.Error(zerr.With(zerr.Wrap(err, "failed to purge tag"), "tag", tag))
		} else {
			f.logger.Debug("purged tag", "epoch", epoch.ID(), "tag", tag)
		}
	}
}

// wellFormed reports whether a string is a dispatchable absolute http(s)
// URL. Validation is deferred to the flush boundary; accumulation stays
// cheap and permissive.
func wellFormed(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
