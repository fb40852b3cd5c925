// Package resolver implements Node-style module resolution against the
// filesystem: alias tables, tsconfig path mappings, node_modules package
// lookup with conditional exports and main fields, and relative resolution
// with extension and index probing.
package resolver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleResolver = (*Resolver)(nil)

// Resolver resolves module specifiers to absolute file paths. Resolution is
// deterministic within a run (no filesystem mutation is assumed), so results
// are memoized per (baseDir, specifier) pair. Safe for concurrent use.
type Resolver struct {
	mu   sync.RWMutex
	memo map[uint64]memoEntry

	tsMu       sync.Mutex
	tsMappings map[string][]pathMapping
}

type memoEntry struct {
	path string
	err  error
}

// New creates a new Resolver.
func New() *Resolver {
	return &Resolver{
		memo:       make(map[uint64]memoEntry),
		tsMappings: make(map[string][]pathMapping),
	}
}

// Resolve maps the specifier to an absolute file path as seen from baseDir.
// It returns domain.ErrModuleNotFound when no candidate path exists and
// domain.ErrResolveFailed for any other resolution-time fault.
func (r *Resolver) Resolve(baseDir string, spec domain.Specifier, opts domain.ResolveOptions) (string, error) {
	// Options come from a single immutable Config per run, so the memo key
	// only needs to cover the pair that actually varies.
	key := memoKey(baseDir, spec)

	r.mu.RLock()
	entry, ok := r.memo[key]
	r.mu.RUnlock()
	if ok {
		return entry.path, entry.err
	}

	path, err := r.resolve(baseDir, spec, opts)

	r.mu.Lock()
	if prev, ok := r.memo[key]; ok {
		// A concurrent resolution won the race. Both computed the same
		// result, keep the stored one.
		path, err = prev.path, prev.err
	} else {
		r.memo[key] = memoEntry{path: path, err: err}
	}
	r.mu.Unlock()

	return path, err
}

func memoKey(baseDir string, spec domain.Specifier) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(baseDir)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(spec))
	return h.Sum64()
}

func (r *Resolver) resolve(baseDir string, spec domain.Specifier, opts domain.ResolveOptions) (string, error) {
	s := string(spec)

	if target, ok := applyAlias(s, opts.Alias); ok {
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}
		return resolveFile(target, opts.Extensions)
	}

	if opts.TSConfig != nil {
		path, ok, err := r.resolveMapped(s, opts)
		if err != nil {
			return "", err
		}
		if ok {
			return path, nil
		}
	}

	if spec.IsBare() {
		return resolvePackage(baseDir, s, opts)
	}

	return resolveFile(filepath.Join(baseDir, s), opts.Extensions)
}

// applyAlias finds the longest alias matching the specifier and returns the
// substituted path. An alias matches the whole specifier or a prefix ending at
// a path separator, so "@app" never captures "@apple/foo".
func applyAlias(spec string, alias map[string]string) (string, bool) {
	best := ""
	for prefix := range alias {
		if len(prefix) <= len(best) {
			continue
		}
		if spec == prefix || strings.HasPrefix(spec, prefix+"/") {
			best = prefix
		}
	}
	if best == "" {
		return "", false
	}
	return alias[best] + spec[len(best):], true
}

// resolveFile resolves a concrete path candidate: the path itself, then the
// configured extensions in listed order, then an index file if the path is a
// directory.
func resolveFile(path string, extensions []string) (string, error) {
	isDir, exists, err := statPath(path)
	if err != nil {
		return "", err
	}
	if exists && !isDir {
		return path, nil
	}

	for _, ext := range extensions {
		candidate := path + ext
		if isDir, exists, err := statPath(candidate); err != nil {
			return "", err
		} else if exists && !isDir {
			return candidate, nil
		}
	}

	if exists && isDir {
		if p, ok, err := probeIndex(path, extensions); err != nil {
			return "", err
		} else if ok {
			return p, nil
		}
	}

	return "", zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "no candidate file"), "path", path)
}

// probeIndex looks for an index file inside dir using the extension list.
func probeIndex(dir string, extensions []string) (string, bool, error) {
	for _, ext := range extensions {
		candidate := filepath.Join(dir, "index"+ext)
		isDir, exists, err := statPath(candidate)
		if err != nil {
			return "", false, err
		}
		if exists && !isDir {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

// statPath reports whether path exists and is a directory. A missing file is
// a normal outcome; any other stat failure is a resolution fault.
func statPath(path string) (isDir, exists bool, err error) {
	fi, statErr := os.Lstat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			return false, false, nil
		}
		return false, false, resolveFault(statErr, "path", path)
	}
	return fi.IsDir(), true, nil
}

// resolveFault tags err as the generic (non-NotFound) resolution failure
// variant. Wrapping the sentinel keeps it in the chain for errors.Is; the
// underlying cause becomes the outer message.
func resolveFault(err error, key, value string) error {
	return zerr.With(zerr.Wrap(domain.ErrResolveFailed, err.Error()), key, value)
}

// resolvePackage resolves a bare specifier by walking ancestor directories of
// baseDir for a node_modules entry.
func resolvePackage(baseDir, spec string, opts domain.ResolveOptions) (string, error) {
	name, subpath := splitPackageSpecifier(spec)

	dir := baseDir
	for {
		pkgDir := filepath.Join(dir, "node_modules", name)
		isDir, exists, err := statPath(pkgDir)
		if err != nil {
			return "", err
		}
		if exists && isDir {
			return resolveInPackage(pkgDir, subpath, opts)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "package not installed in any ancestor node_modules"), "specifier", spec)
}

// splitPackageSpecifier splits a bare specifier into the package name and an
// optional subpath, honoring @scope/name packages.
func splitPackageSpecifier(spec string) (name, subpath string) {
	parts := strings.SplitN(spec, "/", 3)
	if strings.HasPrefix(spec, "@") {
		if len(parts) < 2 {
			return spec, ""
		}
		name = parts[0] + "/" + parts[1]
		if len(parts) == 3 {
			subpath = parts[2]
		}
		return name, subpath
	}
	name = parts[0]
	return name, strings.TrimPrefix(strings.TrimPrefix(spec, name), "/")
}

// resolveInPackage picks the entry point of an installed package: a subpath
// if the specifier carried one, otherwise the manifest's conditional exports,
// then the first configured main field present, then index probing.
func resolveInPackage(pkgDir, subpath string, opts domain.ResolveOptions) (string, error) {
	if subpath != "" {
		return resolveFile(filepath.Join(pkgDir, subpath), opts.Extensions)
	}

	manifest, err := readManifest(filepath.Join(pkgDir, "package.json"))
	if err != nil {
		return "", err
	}

	if manifest != nil {
		if exportsField, ok := manifest["exports"]; ok {
			if entry := matchExports(exportsField, opts.ExportConditions); entry != "" {
				return resolveFile(filepath.Join(pkgDir, entry), opts.Extensions)
			}
		}
		for _, field := range opts.MainFields {
			if main, ok := manifest[field].(string); ok && main != "" {
				return resolveFile(filepath.Join(pkgDir, main), opts.Extensions)
			}
		}
	}

	if p, ok, err := probeIndex(pkgDir, opts.Extensions); err != nil {
		return "", err
	} else if ok {
		return p, nil
	}

	return "", zerr.With(zerr.Wrap(domain.ErrModuleNotFound, "package has no resolvable entry point"), "package_dir", pkgDir)
}

// readManifest reads and parses a package.json. A missing manifest is normal;
// a malformed one is a resolution fault.
func readManifest(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the analyzed project
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, resolveFault(err, "manifest", path)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, resolveFault(err, "manifest", path)
	}
	return manifest, nil
}

// matchExports walks a package "exports" value and returns the entry point
// selected by the first matching condition, or "" when nothing matches.
// Handles the three shapes the field takes in the wild: a plain string, a
// subpath map keyed by ".", and a condition map.
func matchExports(exports any, conditions []string) string {
	switch v := exports.(type) {
	case string:
		return v
	case map[string]any:
		if rootEntry, ok := v["."]; ok {
			return matchExports(rootEntry, conditions)
		}
		for _, cond := range conditions {
			if entry, ok := v[cond]; ok {
				if path := matchExports(entry, conditions); path != "" {
					return path
				}
			}
		}
		if entry, ok := v["default"]; ok {
			return matchExports(entry, conditions)
		}
	}
	return ""
}
