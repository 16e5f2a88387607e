package model

// ModuleTag classifies a component; it selects the wrapper's theme variant.
type ModuleTag string

// Target pairs a file with the module tag it should be wrapped for.
type Target struct {
	Path   Path      `mapstructure:"path" yaml:"path"`
	Module ModuleTag `mapstructure:"module" yaml:"module"`
}
