package ports

// Logger defines the two diagnostic channels the engine emits on. Debug
// output is gated by configuration and otherwise fully suppressed; there is
// no buffering or deferred flushing of log lines.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an operator-facing message. Only the CLI layer uses this;
	// the engine itself emits error and debug only.
	Info(msg string)

	// Error logs a failure. Transport failures land here and are never
	// surfaced to the notification source.
	Error(err error)

	// Debug logs a diagnostic message with key-value pairs.
	Debug(msg string, kv ...any)
}
