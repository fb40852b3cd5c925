package ports

// Logger defines the interface for logging.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)

	// SetDebug toggles debug-level output. Resolution and read failures are
	// only visible when debug is enabled.
	SetDebug(enabled bool)
}
