package domain

import "go.trai.ch/zerr"

var (
	// ErrPurgingDisabled is returned by the engine constructor when the
	// transport reports itself disabled. The host treats this as a startup
	// gate and never wires the engine.
	ErrPurgingDisabled = zerr.New("cache purging is disabled")

	// ErrItemNotFound is returned when a content item cannot be resolved.
	ErrItemNotFound = zerr.New("content item not found")

	// ErrTermNotFound is returned when a taxonomy term cannot be resolved.
	ErrTermNotFound = zerr.New("taxonomy term not found")

	// ErrCommentNotFound is returned when a comment cannot be resolved.
	ErrCommentNotFound = zerr.New("comment not found")

	// ErrAuthorNotFound is returned when an author cannot be resolved.
	ErrAuthorNotFound = zerr.New("author not found")

	// ErrLinkUnresolvable is returned when an entity has no address, e.g. a
	// term reference without a slug.
	ErrLinkUnresolvable = zerr.New("no address for entity")

	// ErrBadBaseURL is returned when the configured site base URL does not
	// parse to a scheme and host.
	ErrBadBaseURL = zerr.New("invalid site base URL")

	// ErrConfigNotFound is returned when no sweep.yaml exists in the working
	// directory or any parent.
	ErrConfigNotFound = zerr.New("could not find sweep.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreOpenFailed is returned when the content store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open content store")

	// ErrStoreQueryFailed is returned when a content store query fails.
	ErrStoreQueryFailed = zerr.New("content store query failed")

	// ErrFeedReadFailed is returned when an event journal cannot be read.
	ErrFeedReadFailed = zerr.New("failed to read event journal")

	// ErrFeedParseFailed is returned when an event journal cannot be parsed.
	ErrFeedParseFailed = zerr.New("failed to parse event journal")

	// ErrUnknownEventKind is returned when an event journal entry names a
	// kind the engine has no handler for.
	ErrUnknownEventKind = zerr.New("unknown event kind")

	// ErrNoURLsSpecified is returned when the purge command is invoked with
	// neither URLs nor --all.
	ErrNoURLsSpecified = zerr.New("no URLs specified")

	// ErrPurgeRequestFailed is returned when the cache server answers a purge
	// request with a non-success status.
	ErrPurgeRequestFailed = zerr.New("purge request failed")
)
