// Package config defines core configuration types for latexmark. These types
// are pure data structures with no external dependencies on Viper or other
// config loaders.
package config

// OutputFormat specifies the output format for tokenize results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// EnvironmentKind classifies how a config-extended LaTeX environment should
// be tokenized, mirroring texmark.EnvExtensionKind without importing
// pkg/texmark from this package.
type EnvironmentKind string

const (
	EnvironmentVerbatim EnvironmentKind = "verbatim"
	EnvironmentTikz     EnvironmentKind = "tikz"
)

// EnvironmentConfig declares one additional \begin{name}...\end{name}
// environment the tokenizer should recognize beyond its built-in table, e.g.
// a project's custom "minted" or "pycode" environment.
type EnvironmentConfig struct {
	Name string          `mapstructure:"name" yaml:"name"`
	Kind EnvironmentKind `mapstructure:"kind" yaml:"kind"`
}

// Config is the root configuration structure for latexmark.
type Config struct {
	// Extensions are the file extensions (lowercase, with leading dot)
	// considered LaTeX source when walking directories.
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// Environments widens the tokenizer's environment table with
	// project-specific verbatim/tikz-like environments.
	Environments []EnvironmentConfig `mapstructure:"environments" yaml:"environments"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel workers. 0 means auto.
	Jobs int `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: []string{".tex"},
		Ignore:     nil,
		Format:     FormatText,
		Jobs:       0,
	}
}
