package ports

import "github.com/devindavies/barrelint/internal/core/domain"

// SourceScanner extracts import edges and export counts from a module's
// source text via a syntax-level scan. No semantic resolution happens here.
type SourceScanner interface {
	// ScanImports returns the statically declared imports of the module in
	// source order, including re-exports that name a source module. The path
	// is used only to select the grammar.
	ScanImports(path string, source []byte) ([]domain.Import, error)

	// CountExports returns the number of distinct top-level exported
	// bindings: named exports, re-export-all, re-exports with rename,
	// exported declarations and default exports.
	CountExports(path string, source []byte) (int, error)
}
