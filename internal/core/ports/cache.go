package ports

import "github.com/devindavies/barrelint/internal/core/domain"

// ResultCache memoizes analysis results for bare specifiers within one run.
// Implementations must be safe for concurrent use and must keep entries
// write-once per key: under a race, duplicate computations for the same key
// converge to the same stored result.
type ResultCache interface {
	// Get returns the cached entry for spec, if present.
	Get(spec domain.Specifier) (domain.CacheEntry, bool)

	// Put stores the entry for spec. A second Put for the same spec is a
	// no-op.
	Put(spec domain.Specifier, entry domain.CacheEntry)
}
