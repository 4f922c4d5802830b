// Package logging constructs the slog loggers used across releasedeck and
// provides the shared attribute helpers the rest of the tree logs with.
//
// Two handler formats are supported: "console" (text, the default) and
// "json". NewNop returns a logger that discards everything; components accept
// a nil logger and fall back to it so library callers are never forced to
// wire logging.
package logging
