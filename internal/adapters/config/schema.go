package config

// File represents the structure of the .barrelint.yaml configuration file.
// Pointer fields distinguish "absent" from an explicit zero so defaults can
// be applied per field.
type File struct {
	AllowList          []string          `yaml:"allowList"`
	Ignore             []string          `yaml:"ignore"`
	MaxModuleGraphSize *int              `yaml:"maxModuleGraphSizeAllowed"`
	BarrelThreshold    *int              `yaml:"amountOfExportsToConsiderModuleAsBarrel"`
	Debug              *bool             `yaml:"debug"`
	ExportConditions   []string          `yaml:"exportConditions"`
	MainFields         []string          `yaml:"mainFields"`
	Extensions         []string          `yaml:"extensions"`
	TSConfig           *TSConfigDTO      `yaml:"tsconfig"`
	Alias              map[string]string `yaml:"alias"`
}

// TSConfigDTO references a TypeScript configuration for path mappings.
type TSConfigDTO struct {
	ConfigFile string   `yaml:"configFile"`
	References []string `yaml:"references"`
}
