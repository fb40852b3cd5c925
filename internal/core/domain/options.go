package domain

// TSConfigRef points the resolver at a TypeScript configuration whose path
// mappings should participate in resolution, plus any referenced project
// configuration files.
type TSConfigRef struct {
	ConfigFile string
	References []string
}

// ResolveOptions is the immutable configuration bundle consumed by the module
// resolver. The slices are ordered: the first matching entry wins.
type ResolveOptions struct {
	// ExportConditions selects among conditional entry points declared in a
	// package manifest's "exports" field.
	ExportConditions []string

	// MainFields lists the package manifest fields probed for a package's
	// entry point, in priority order.
	MainFields []string

	// Extensions lists the file extensions probed when a specifier does not
	// name an existing file directly.
	Extensions []string

	// TSConfig, when set, enables tsconfig path-mapping resolution.
	TSConfig *TSConfigRef

	// Alias maps specifier prefixes to replacement paths.
	Alias map[string]string
}

// DefaultResolveOptions returns the resolution defaults used when the
// configuration file does not override them.
func DefaultResolveOptions() ResolveOptions {
	return ResolveOptions{
		ExportConditions: []string{"node", "import"},
		MainFields:       []string{"module", "browser", "main"},
		Extensions:       []string{".js", ".ts", ".tsx", ".jsx", ".json", ".node"},
	}
}
