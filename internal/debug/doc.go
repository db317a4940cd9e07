// Package debug provides optional file-based debug logging.
//
// When the TERN_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// A terminal UI cannot log to its own stdout without corrupting the frame,
// so all diagnostics go through this side channel.
package debug
