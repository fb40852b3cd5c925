package app

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/zerr"
)

// supportedExtensions lists the source file types submitted for analysis.
// JSON and native addons resolve as graph leaves but are never entry files.
var supportedExtensions = map[string]struct{}{
	".js": {}, ".jsx": {}, ".ts": {}, ".tsx": {}, ".mjs": {}, ".cjs": {},
}

var skipDirs = map[string]struct{}{
	"node_modules": {},
	".git":         {},
	"dist":         {},
	"build":        {},
	"coverage":     {},
}

// DiscoverFiles walks the target paths and returns the source files to
// analyze, sorted. Explicit file targets are taken as-is when supported;
// directories are walked recursively, pruning dependency and output
// directories plus anything matching the configured ignore patterns.
func DiscoverFiles(targets []string, ignorePatterns []string) ([]string, error) {
	var ignored *ignore.GitIgnore
	if len(ignorePatterns) > 0 {
		ignored = ignore.CompileIgnoreLines(ignorePatterns...)
	}

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, target := range targets {
		abs, err := filepath.Abs(target)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid target path"), "path", target)
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if path == abs {
					return zerr.With(zerr.Wrap(walkErr, "cannot read target"), "path", target)
				}
				return nil // unreadable subtrees are skipped
			}
			if d.IsDir() {
				if _, skip := skipDirs[d.Name()]; skip && path != abs {
					return filepath.SkipDir
				}
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if _, ok := supportedExtensions[ext]; !ok {
				return nil
			}
			if ignored != nil && ignored.MatchesPath(path) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
