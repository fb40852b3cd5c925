// Package app implements the application layer for barrelint.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/devindavies/barrelint/internal/adapters/cache"
	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
	"github.com/devindavies/barrelint/internal/engine/analyzer"
)

// CacheFactory builds the run-scoped result cache. Each Run gets a fresh
// cache; nothing survives across runs.
type CacheFactory func() ports.ResultCache

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.ModuleResolver
	scanner      ports.SourceScanner
	logger       ports.Logger
	newCache     CacheFactory

	stdout io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.ModuleResolver,
	scanner ports.SourceScanner,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		scanner:      scanner,
		logger:       logger,
		newCache:     func() ports.ResultCache { return cache.NewMemory() },
		stdout:       os.Stdout,
	}
}

// SetOutput redirects diagnostic output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.stdout = w
}

// SetCacheFactory overrides the result cache constructor. Used for testing.
func (a *App) SetCacheFactory(f CacheFactory) {
	a.newCache = f
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the configuration file location.
	ConfigPath string

	// Debug forces debug logging regardless of the config file.
	Debug bool

	// MaxGraphSize overrides the configured ceiling when positive.
	MaxGraphSize int

	// Format selects the diagnostic output format: "text" or "json".
	Format string
}

// Run analyzes the given target paths and reports oversized barrel imports.
// It returns domain.ErrLintIssuesFound when diagnostics were reported.
func (a *App) Run(ctx context.Context, targets []string, opts RunOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Debug {
		cfg.Debug = true
	}
	if opts.MaxGraphSize > 0 {
		cfg.MaxModuleGraphSize = opts.MaxGraphSize
	}
	a.logger.SetDebug(cfg.Debug)

	if len(targets) == 0 {
		targets = []string{"."}
	}

	files, err := DiscoverFiles(targets, cfg.Ignore)
	if err != nil {
		return zerr.Wrap(err, "failed to discover source files")
	}
	a.logger.Debug("discovered source files", "count", len(files))

	run := analyzer.New(a.resolver, a.scanner, a.newCache(), a.logger, cfg)

	var (
		mu    sync.Mutex
		diags []domain.Diagnostic
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ds, err := run.AnalyzeFile(file)
			if err != nil {
				// A file we cannot read or parse is skipped, not fatal.
				a.logger.Debug("skipping file", "path", file, "error", err)
				return nil
			}
			if len(ds) > 0 {
				mu.Lock()
				diags = append(diags, ds...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "analysis aborted")
	}

	sortDiagnostics(diags)
	if err := a.report(diags, opts.Format, len(files)); err != nil {
		return err
	}

	if len(diags) > 0 {
		return zerr.With(zerr.Wrap(domain.ErrLintIssuesFound, "analysis reported problems"), "count", len(diags))
	}
	return nil
}

func sortDiagnostics(diags []domain.Diagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		if diags[i].File != diags[j].File {
			return diags[i].File < diags[j].File
		}
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Column < diags[j].Column
	})
}

func (a *App) report(diags []domain.Diagnostic, format string, fileCount int) error {
	if format == "json" {
		return a.reportJSON(diags)
	}

	for _, d := range diags {
		fmt.Fprintf(a.stdout, "%s:%d:%d: %s\n", d.File, d.Line, d.Column, d.Message())
	}
	if len(diags) > 0 {
		fmt.Fprintf(a.stdout, "\n%d problem(s) found in %d file(s)\n", len(diags), fileCount)
	}
	return nil
}
