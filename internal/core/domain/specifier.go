// Package domain contains the core domain models for barrel file analysis.
package domain

import "strings"

// Specifier is a module reference exactly as written in an import statement.
type Specifier string

// String returns the specifier text.
func (s Specifier) String() string {
	return string(s)
}

// IsBare reports whether the specifier names a package (e.g. "lodash" or
// "@scope/pkg") rather than a filesystem path. Bare specifiers are the only
// ones eligible for result caching, since package contents do not change
// within a single run.
func (s Specifier) IsBare() bool {
	if len(s) == 0 {
		return false
	}
	c := s[0]
	if c == '@' {
		return true
	}
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsRelative reports whether the specifier is a relative or absolute
// filesystem path.
func (s Specifier) IsRelative() bool {
	return strings.HasPrefix(string(s), ".") || strings.HasPrefix(string(s), "/")
}

// IsBuiltin reports whether the specifier names a Node.js builtin module,
// with or without the "node:" prefix. Builtins are never resolved or
// analyzed.
func (s Specifier) IsBuiltin() bool {
	name := string(s)
	if rest, ok := strings.CutPrefix(name, "node:"); ok {
		// Everything under the node: scheme is builtin by definition,
		// including modules like node:test that have no bare form.
		_ = rest
		return true
	}
	// Subpath imports such as "fs/promises" refer to the builtin too.
	if i := strings.IndexByte(name, '/'); i >= 0 {
		name = name[:i]
	}
	_, ok := nodeBuiltins[name]
	return ok
}

var nodeBuiltins = map[string]struct{}{
	"assert": {}, "async_hooks": {}, "buffer": {}, "child_process": {},
	"cluster": {}, "console": {}, "constants": {}, "crypto": {}, "dgram": {},
	"diagnostics_channel": {}, "dns": {}, "domain": {}, "events": {}, "fs": {},
	"http": {}, "http2": {}, "https": {}, "inspector": {}, "module": {},
	"net": {}, "os": {}, "path": {}, "perf_hooks": {}, "process": {},
	"punycode": {}, "querystring": {}, "readline": {}, "repl": {},
	"stream": {}, "string_decoder": {}, "sys": {}, "timers": {}, "tls": {},
	"trace_events": {}, "tty": {}, "url": {}, "util": {}, "v8": {}, "vm": {},
	"wasi": {}, "worker_threads": {}, "zlib": {},
}
