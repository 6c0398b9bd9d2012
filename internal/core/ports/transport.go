// Package ports defines the core interfaces for the application.
package ports

import "context"

// CachePurger is the narrow boundary to the external cache-invalidation
// client. Calls are independent and order-insensitive; each failure is
// reported per call and never aborts sibling purges.
//
//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type CachePurger interface {
	// PurgeURL invalidates a single cached URL.
	PurgeURL(ctx context.Context, url string) error

	// PurgeHost invalidates every cached object for a hostname.
	PurgeHost(ctx context.Context, host string) error

	// PurgeTag invalidates every cached object carrying the given
	// surrogate-key tag.
	PurgeTag(ctx context.Context, tag string) error

	// Enabled reports whether the transport is operational. It is queried
	// once before the engine does any work; when false the engine stays
	// fully inert.
	Enabled() bool
}
