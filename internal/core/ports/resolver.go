package ports

import "github.com/devindavies/barrelint/internal/core/domain"

// ModuleResolver maps a (base directory, specifier) pair to an absolute file
// path using Node-style resolution semantics.
type ModuleResolver interface {
	// Resolve returns the absolute path of the module named by spec, as seen
	// from baseDir. It returns domain.ErrModuleNotFound when no candidate
	// path exists and domain.ErrResolveFailed for any other resolution-time
	// fault. Implementations must be safe for concurrent use.
	Resolve(baseDir string, spec domain.Specifier, opts domain.ResolveOptions) (string, error)
}
