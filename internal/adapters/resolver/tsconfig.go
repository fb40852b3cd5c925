package resolver

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/devindavies/barrelint/internal/core/domain"
)

// pathMapping is one compiled "paths" pattern from a tsconfig file. Patterns
// contain at most one "*" wildcard.
type pathMapping struct {
	prefix   string
	suffix   string
	wildcard bool
	targets  []string
}

// match reports whether spec matches the pattern and returns the text
// captured by the wildcard.
func (m pathMapping) match(spec string) (string, bool) {
	if !m.wildcard {
		if spec == m.prefix {
			return "", true
		}
		return "", false
	}
	if len(spec) < len(m.prefix)+len(m.suffix) {
		return "", false
	}
	if !strings.HasPrefix(spec, m.prefix) || !strings.HasSuffix(spec, m.suffix) {
		return "", false
	}
	return spec[len(m.prefix) : len(spec)-len(m.suffix)], true
}

// resolveMapped applies tsconfig path mappings. Mappings take precedence over
// plain relative resolution for matching prefixes, but a pattern whose
// targets all fail to resolve falls through to the remaining strategies.
func (r *Resolver) resolveMapped(spec string, opts domain.ResolveOptions) (string, bool, error) {
	mappings, err := r.loadMappings(opts.TSConfig)
	if err != nil {
		return "", false, err
	}

	for _, m := range mappings {
		captured, ok := m.match(spec)
		if !ok {
			continue
		}
		for _, target := range m.targets {
			candidate := strings.Replace(target, "*", captured, 1)
			path, err := resolveFile(candidate, opts.Extensions)
			if err == nil {
				return path, true, nil
			}
			if !errors.Is(err, domain.ErrModuleNotFound) {
				return "", false, err
			}
		}
	}

	return "", false, nil
}

// loadMappings parses and caches the path mappings of a tsconfig reference,
// including its referenced project files.
func (r *Resolver) loadMappings(ref *domain.TSConfigRef) ([]pathMapping, error) {
	r.tsMu.Lock()
	defer r.tsMu.Unlock()

	if cached, ok := r.tsMappings[ref.ConfigFile]; ok {
		return cached, nil
	}

	files := append([]string{ref.ConfigFile}, ref.References...)
	var mappings []pathMapping
	for _, file := range files {
		parsed, err := parseConfigMappings(file)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, parsed...)
	}

	r.tsMappings[ref.ConfigFile] = mappings
	return mappings, nil
}

type tsconfigFile struct {
	CompilerOptions struct {
		BaseURL string              `json:"baseUrl"`
		Paths   map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// parseConfigMappings reads one tsconfig file and compiles its paths. Any
// failure here is an invalid path-mapping configuration, never a NotFound.
func parseConfigMappings(path string) ([]pathMapping, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, resolveFault(err, "tsconfig", path)
	}

	var cfg tsconfigFile
	if err := json.Unmarshal(stripJSONComments(data), &cfg); err != nil {
		return nil, resolveFault(err, "tsconfig", path)
	}

	base := filepath.Join(filepath.Dir(path), cfg.CompilerOptions.BaseURL)

	// Longest prefix first, matching the compiler's specificity order.
	patterns := make([]string, 0, len(cfg.CompilerOptions.Paths))
	for pattern := range cfg.CompilerOptions.Paths {
		patterns = append(patterns, pattern)
	}
	sort.Slice(patterns, func(i, j int) bool {
		pi, _, _ := strings.Cut(patterns[i], "*")
		pj, _, _ := strings.Cut(patterns[j], "*")
		if len(pi) != len(pj) {
			return len(pi) > len(pj)
		}
		return patterns[i] < patterns[j]
	})

	mappings := make([]pathMapping, 0, len(patterns))
	for _, pattern := range patterns {
		prefix, suffix, wildcard := strings.Cut(pattern, "*")
		targets := make([]string, 0, len(cfg.CompilerOptions.Paths[pattern]))
		for _, target := range cfg.CompilerOptions.Paths[pattern] {
			targets = append(targets, filepath.Join(base, target))
		}
		mappings = append(mappings, pathMapping{
			prefix:   prefix,
			suffix:   suffix,
			wildcard: wildcard,
			targets:  targets,
		})
	}

	return mappings, nil
}

// stripJSONComments blanks out // and /* */ comments so tsconfig files, which
// are JSONC in practice, survive encoding/json.
func stripJSONComments(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	inString := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if inString {
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
			continue
		}
		switch {
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(out) && out[i+1] == '/':
			for i < len(out) && out[i] != '\n' {
				out[i] = ' '
				i++
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			for i < len(out) {
				if out[i] == '*' && i+1 < len(out) && out[i+1] == '/' {
					out[i] = ' '
					out[i+1] = ' '
					i++
					break
				}
				if out[i] != '\n' {
					out[i] = ' '
				}
				i++
			}
		}
	}

	return out
}
