package analyzer

import (
	"os"
	"path/filepath"

	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
)

// GraphCounter computes the size of the import graph reachable from an entry
// module.
type GraphCounter struct {
	resolver ports.ModuleResolver
	scanner  ports.SourceScanner
	logger   ports.Logger
}

// NewGraphCounter creates a new GraphCounter.
func NewGraphCounter(resolver ports.ModuleResolver, scanner ports.SourceScanner, logger ports.Logger) *GraphCounter {
	return &GraphCounter{
		resolver: resolver,
		scanner:  scanner,
		logger:   logger,
	}
}

// Count traverses the import graph breadth-first from entryPath and returns
// the number of distinct modules reachable from, but not including, the
// entry. Each module resolves its imports relative to its own directory.
// Already-visited targets are never re-traversed, which makes the traversal
// terminate on circular graphs of any shape. A broken branch (unreadable
// source, unresolvable sub-import) contributes nothing further and the
// traversal continues with the remaining frontier.
func (c *GraphCounter) Count(entryPath string, opts domain.ResolveOptions) int {
	visited := map[string]struct{}{entryPath: {}}
	frontier := []string{entryPath}

	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		source, err := os.ReadFile(current) //nolint:gosec // paths come from resolution
		if err != nil {
			c.logger.Debug("skipping unreadable module", "path", current, "error", err)
			continue
		}

		imports, err := c.scanner.ScanImports(current, source)
		if err != nil {
			c.logger.Debug("skipping unparseable module", "path", current, "error", err)
			continue
		}

		baseDir := filepath.Dir(current)
		for _, imp := range imports {
			if imp.TypeOnly || imp.Specifier.IsBuiltin() {
				continue
			}
			resolved, err := c.resolver.Resolve(baseDir, imp.Specifier, opts)
			if err != nil {
				continue
			}
			if _, seen := visited[resolved]; seen {
				continue
			}
			visited[resolved] = struct{}{}
			frontier = append(frontier, resolved)
		}
	}

	return len(visited) - 1
}
