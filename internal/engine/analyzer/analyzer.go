// Package analyzer implements the per-import decision policy: it drives
// resolution, barrel classification and graph sizing, and reports a
// diagnostic when an import pulls in an oversized module graph.
package analyzer

import (
	"errors"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/zerr"

	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
)

// Analyzer checks the imports of individual files against the configured
// graph size ceiling. Safe for concurrent use across files; the result cache
// is the only shared mutable state.
type Analyzer struct {
	resolver ports.ModuleResolver
	scanner  ports.SourceScanner
	cache    ports.ResultCache
	logger   ports.Logger
	counter  *GraphCounter

	cfg      domain.Config
	allowSet map[domain.Specifier]struct{}
	ignored  *ignore.GitIgnore
}

// New creates an Analyzer for one run.
func New(
	resolver ports.ModuleResolver,
	scanner ports.SourceScanner,
	resultCache ports.ResultCache,
	logger ports.Logger,
	cfg domain.Config,
) *Analyzer {
	allowSet := make(map[domain.Specifier]struct{}, len(cfg.AllowList))
	for _, spec := range cfg.AllowList {
		allowSet[domain.Specifier(spec)] = struct{}{}
	}

	var ignored *ignore.GitIgnore
	if len(cfg.Ignore) > 0 {
		ignored = ignore.CompileIgnoreLines(cfg.Ignore...)
	}

	return &Analyzer{
		resolver: resolver,
		scanner:  scanner,
		cache:    resultCache,
		logger:   logger,
		counter:  NewGraphCounter(resolver, scanner, logger),
		cfg:      cfg,
		allowSet: allowSet,
		ignored:  ignored,
	}
}

// AnalyzeFile scans the file's import declarations in source order and
// returns the diagnostics for oversized barrel imports.
func (a *Analyzer) AnalyzeFile(path string) ([]domain.Diagnostic, error) {
	source, err := os.ReadFile(path) //nolint:gosec // path comes from file discovery
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}

	imports, err := a.scanner.ScanImports(path, source)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan file"), "path", path)
	}

	var diags []domain.Diagnostic
	for _, imp := range imports {
		if d, ok := a.checkImport(path, imp); ok {
			diags = append(diags, d)
		}
	}
	return diags, nil
}

// checkImport applies the decision policy for a single import. The precedence
// is fixed: allow-list, type-only, builtin, resolution, ignore patterns,
// cache, classification.
func (a *Analyzer) checkImport(file string, imp domain.Import) (domain.Diagnostic, bool) {
	if _, allowed := a.allowSet[imp.Specifier]; allowed {
		return domain.Diagnostic{}, false
	}
	if imp.TypeOnly {
		return domain.Diagnostic{}, false
	}
	if imp.Specifier.IsBuiltin() {
		return domain.Diagnostic{}, false
	}

	resolved, err := a.resolver.Resolve(filepath.Dir(file), imp.Specifier, a.cfg.Resolve)
	if err != nil {
		if errors.Is(err, domain.ErrModuleNotFound) {
			a.logger.Debug("module not found", "specifier", imp.Specifier, "from", file)
		} else {
			a.logger.Debug("module resolution failed", "specifier", imp.Specifier, "from", file, "error", err)
		}
		return domain.Diagnostic{}, false
	}

	if a.ignored != nil && a.ignored.MatchesPath(resolved) {
		return domain.Diagnostic{}, false
	}

	entry, ok := a.classify(imp.Specifier, resolved)
	if !ok {
		return domain.Diagnostic{}, false
	}

	if !entry.IsBarrelFile || entry.ModuleGraphSize <= a.cfg.MaxModuleGraphSize {
		return domain.Diagnostic{}, false
	}

	return domain.Diagnostic{
		File:       file,
		Line:       imp.Line,
		Column:     imp.Column,
		Specifier:  imp.Specifier,
		GraphSize:  entry.ModuleGraphSize,
		MaxAllowed: a.cfg.MaxModuleGraphSize,
	}, true
}

// classify returns the cached result for bare specifiers when available,
// otherwise reads and classifies the resolved module and, for barrels,
// computes the graph size. Results for bare specifiers are cached; local
// files are re-examined on every lookup because their content may change
// within a watch-style run.
func (a *Analyzer) classify(spec domain.Specifier, resolved string) (domain.CacheEntry, bool) {
	bare := spec.IsBare()
	if bare {
		if entry, ok := a.cache.Get(spec); ok {
			return entry, true
		}
	}

	source, err := os.ReadFile(resolved) //nolint:gosec // path comes from resolution
	if err != nil {
		// An unreadable resolved module is recoverable, same as a
		// resolution failure.
		a.logger.Debug("unreadable module source", "path", resolved, "error", err)
		return domain.CacheEntry{}, false
	}

	exportCount, err := a.scanner.CountExports(resolved, source)
	if err != nil {
		a.logger.Debug("failed to count exports", "path", resolved, "error", err)
		return domain.CacheEntry{}, false
	}

	entry := domain.CacheEntry{
		IsBarrelFile:    exportCount >= a.cfg.BarrelThreshold,
		ModuleGraphSize: domain.GraphSizeNotComputed,
	}
	if entry.IsBarrelFile {
		entry.ModuleGraphSize = a.counter.Count(resolved, a.cfg.Resolve)
	}

	if bare {
		a.cache.Put(spec, entry)
	}
	return entry, true
}
