// Package logging provides structured logging for flexscan built on zap.
//
// Logging is silent by default so CLI output stays clean for piping
// and scripting. Verbosity is controlled through the FLEXSCAN_LOG_LEVEL
// environment variable:
//
//	FLEXSCAN_LOG_LEVEL=debug flexscan scan
//
// Valid levels are "debug", "info", "warn" and "error". When the
// variable is unset, a no-op logger is installed and nothing is
// emitted.
//
// The package exposes a process-wide logger through GetLogger plus
// level helpers (Info, Debug, ...) and a few discovery-specific
// helpers such as LogDatagram, which attaches hex and ASCII dumps of
// raw announcement bytes at debug level.
package logging
