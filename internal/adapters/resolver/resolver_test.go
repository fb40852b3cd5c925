package resolver_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devindavies/barrelint/internal/adapters/resolver"
	"github.com/devindavies/barrelint/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestResolve_RelativeExactFile(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "util.js"), "export const a = 1;\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "./util.js", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "util.js"), path)
}

func TestResolve_ExtensionProbing(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "util.ts"), "export const a = 1;\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "./util", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "util.ts"), path)
}

func TestResolve_ExtensionOrder(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "util.js"), "module.exports = {};\n")
	writeFile(t, filepath.Join(tmp, "util.ts"), "export {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "./util", domain.DefaultResolveOptions())
	require.NoError(t, err)
	// .js is listed before .ts in the default extension order.
	assert.Equal(t, filepath.Join(tmp, "util.js"), path)
}

func TestResolve_DirectoryIndex(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "lib", "index.ts"), "export {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "./lib", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "lib", "index.ts"), path)
}

func TestResolve_NotFound(t *testing.T) {
	tmp := t.TempDir()

	r := resolver.New()
	_, err := r.Resolve(tmp, "./missing", domain.DefaultResolveOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleNotFound))
	assert.False(t, errors.Is(err, domain.ErrResolveFailed))
}

func TestResolve_BareNotInstalled(t *testing.T) {
	tmp := t.TempDir()

	r := resolver.New()
	_, err := r.Resolve(tmp, "not-installed", domain.DefaultResolveOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleNotFound))
}

func TestResolve_PackageWithoutEntryPoint(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "empty")
	writeFile(t, filepath.Join(pkg, "package.json"), `{"name": "empty"}`)

	r := resolver.New()
	_, err := r.Resolve(tmp, "empty", domain.DefaultResolveOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleNotFound))
	assert.False(t, errors.Is(err, domain.ErrResolveFailed))
}

func TestResolve_BarePackage_MainField(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "foo")
	writeFile(t, filepath.Join(pkg, "package.json"), `{"name": "foo", "main": "lib/entry.js"}`)
	writeFile(t, filepath.Join(pkg, "lib", "entry.js"), "module.exports = {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "foo", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkg, "lib", "entry.js"), path)
}

func TestResolve_BarePackage_MainFieldOrder(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "foo")
	writeFile(t, filepath.Join(pkg, "package.json"),
		`{"name": "foo", "main": "cjs.js", "module": "esm.js"}`)
	writeFile(t, filepath.Join(pkg, "cjs.js"), "module.exports = {};\n")
	writeFile(t, filepath.Join(pkg, "esm.js"), "export {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "foo", domain.DefaultResolveOptions())
	require.NoError(t, err)
	// "module" precedes "main" in the default main-field order.
	assert.Equal(t, filepath.Join(pkg, "esm.js"), path)
}

func TestResolve_BarePackage_ExportsString(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "foo")
	writeFile(t, filepath.Join(pkg, "package.json"),
		`{"name": "foo", "main": "ignored.js", "exports": "./dist/index.js"}`)
	writeFile(t, filepath.Join(pkg, "dist", "index.js"), "export {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "foo", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkg, "dist", "index.js"), path)
}

func TestResolve_BarePackage_ExportConditions(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "foo")
	writeFile(t, filepath.Join(pkg, "package.json"),
		`{"exports": {".": {"node": "./node.js", "import": "./esm.js", "default": "./cjs.js"}}}`)
	writeFile(t, filepath.Join(pkg, "node.js"), "export {};\n")
	writeFile(t, filepath.Join(pkg, "esm.js"), "export {};\n")
	writeFile(t, filepath.Join(pkg, "cjs.js"), "module.exports = {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "foo", domain.DefaultResolveOptions())
	require.NoError(t, err)
	// "node" is the first configured export condition.
	assert.Equal(t, filepath.Join(pkg, "node.js"), path)
}

func TestResolve_BarePackage_AncestorWalk(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "foo")
	writeFile(t, filepath.Join(pkg, "package.json"), `{"main": "index.js"}`)
	writeFile(t, filepath.Join(pkg, "index.js"), "export {};\n")
	nested := filepath.Join(tmp, "src", "features", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	r := resolver.New()
	path, err := r.Resolve(nested, "foo", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkg, "index.js"), path)
}

func TestResolve_ScopedPackageSubpath(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "@scope", "pkg")
	writeFile(t, filepath.Join(pkg, "sub.js"), "export {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "@scope/pkg/sub", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkg, "sub.js"), path)
}

func TestResolve_BarePackage_IndexFallback(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "bare")
	writeFile(t, filepath.Join(pkg, "index.js"), "export {};\n")

	r := resolver.New()
	path, err := r.Resolve(tmp, "bare", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(pkg, "index.js"), path)
}

func TestResolve_MalformedManifest(t *testing.T) {
	tmp := t.TempDir()
	pkg := filepath.Join(tmp, "node_modules", "foo")
	writeFile(t, filepath.Join(pkg, "package.json"), `{"main": `)

	r := resolver.New()
	_, err := r.Resolve(tmp, "foo", domain.DefaultResolveOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolveFailed))
	assert.False(t, errors.Is(err, domain.ErrModuleNotFound))
}

func TestResolve_Alias(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "src", "app", "button.tsx"), "export {};\n")

	opts := domain.DefaultResolveOptions()
	opts.Alias = map[string]string{
		"@app": filepath.Join(tmp, "src", "app"),
	}

	r := resolver.New()
	path, err := r.Resolve(tmp, "@app/button", opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "src", "app", "button.tsx"), path)
}

func TestResolve_AliasLongestPrefixWins(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "widgets", "button.ts"), "export {};\n")
	writeFile(t, filepath.Join(tmp, "app", "ui", "button.ts"), "export {};\n")

	opts := domain.DefaultResolveOptions()
	opts.Alias = map[string]string{
		"@app":    filepath.Join(tmp, "app"),
		"@app/ui": filepath.Join(tmp, "widgets"),
	}

	r := resolver.New()
	path, err := r.Resolve(tmp, "@app/ui/button", opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "widgets", "button.ts"), path)
}

func TestResolve_AliasRequiresPathBoundary(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "node_modules", "@apple", "foo", "index.js"), "export {};\n")

	opts := domain.DefaultResolveOptions()
	opts.Alias = map[string]string{
		"@app": filepath.Join(tmp, "src", "app"),
	}

	// "@apple/foo" shares the alias as a raw prefix but not up to a path
	// separator; it must resolve as the installed package, not the alias.
	r := resolver.New()
	path, err := r.Resolve(tmp, "@apple/foo", opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "node_modules", "@apple", "foo", "index.js"), path)
}

func TestResolve_AliasExactMatch(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "src", "app", "index.ts"), "export {};\n")

	opts := domain.DefaultResolveOptions()
	opts.Alias = map[string]string{
		"@app": filepath.Join(tmp, "src", "app"),
	}

	r := resolver.New()
	path, err := r.Resolve(tmp, "@app", opts)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "src", "app", "index.ts"), path)
}

func TestResolve_Memoized(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "util.js")
	writeFile(t, target, "export {};\n")

	r := resolver.New()
	first, err := r.Resolve(tmp, "./util", domain.DefaultResolveOptions())
	require.NoError(t, err)

	// The file disappearing mid-run must not change the outcome: resolution
	// is deterministic within a run and served from the memo.
	require.NoError(t, os.Remove(target))

	second, err := r.Resolve(tmp, "./util", domain.DefaultResolveOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
