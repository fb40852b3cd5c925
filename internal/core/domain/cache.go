package domain

// GraphSizeNotComputed is the sentinel graph size stored for modules that
// were classified as non-barrels, so their graph was never traversed.
const GraphSizeNotComputed = -1

// CacheEntry is the memoized analysis result for one bare specifier.
// Entries are write-once: once stored for a specifier they are never mutated
// for the remainder of the run.
type CacheEntry struct {
	// IsBarrelFile records the classification outcome.
	IsBarrelFile bool

	// ModuleGraphSize is the transitive module graph size, excluding the
	// entry module itself, or GraphSizeNotComputed when the module is not a
	// barrel file.
	ModuleGraphSize int
}
