package domain

const (
	// DefaultMaxModuleGraphSize is the default ceiling on the transitive
	// module graph a single import may pull in.
	DefaultMaxModuleGraphSize = 20

	// DefaultBarrelThreshold is the default number of exported bindings at
	// which a module is considered a barrel file.
	DefaultBarrelThreshold = 3
)

// Config holds the validated analysis configuration for one run.
type Config struct {
	// AllowList contains specifiers exempted from analysis entirely.
	AllowList []string

	// Ignore contains glob patterns matched against resolved absolute paths.
	Ignore []string

	// MaxModuleGraphSize is the largest allowed transitive module graph size
	// for a barrel import before a diagnostic is reported.
	MaxModuleGraphSize int

	// BarrelThreshold is the minimum number of exported bindings for a module
	// to be classified as a barrel file.
	BarrelThreshold int

	// Debug enables logging of resolution and read failures that are
	// otherwise skipped silently.
	Debug bool

	// Resolve configures module resolution.
	Resolve ResolveOptions
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		MaxModuleGraphSize: DefaultMaxModuleGraphSize,
		BarrelThreshold:    DefaultBarrelThreshold,
		Resolve:            DefaultResolveOptions(),
	}
}
