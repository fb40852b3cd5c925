package domain

import "go.trai.ch/zerr"

var (
	// ErrModuleNotFound is returned when no candidate path exists for a
	// specifier. Absence is a normal resolution outcome, not a fault.
	ErrModuleNotFound = zerr.New("module not found")

	// ErrResolveFailed is returned for any other resolution-time fault, such
	// as a malformed package manifest or an invalid path-mapping config. The
	// underlying cause is attached.
	ErrResolveFailed = zerr.New("module resolution failed")

	// ErrLintIssuesFound is returned by a run that reported diagnostics. It
	// signals the non-zero exit code without being an operational failure.
	ErrLintIssuesFound = zerr.New("lint issues found")
)
