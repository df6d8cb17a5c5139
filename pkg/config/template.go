package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every documented field with its default value.
	// If false, generates a minimal template with commented-out examples.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate(opts)
	}
	return generateMinimalTemplate(opts)
}

func generateMinimalTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# latexmark configuration
# See: https://github.com/yaklabco/latexmark

# File extensions considered LaTeX source.
# extensions:
#   - .tex

# Glob patterns to skip during discovery.
# ignore:
#   - "build/**"
#   - "_minted-*/**"

# Project-specific environments the tokenizer should recognize beyond its
# built-in table (verbatim bodies are scanned raw, tikz bodies get
# TikZ-flavored token styling).
# environments:
#   - name: pycode
#     kind: verbatim
`)

	if opts.Format == "json" {
		return templateToJSON()
	}
	return buf.Bytes(), nil
}

func generateFullTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`# latexmark configuration - Full Template
# See: https://github.com/yaklabco/latexmark

# File extensions considered LaTeX source.
extensions:
  - .tex

# Glob patterns to skip during discovery.
ignore:
  - "build/**"
  - "_minted-*/**"
  - ".git/**"

# Project-specific environments the tokenizer should recognize beyond its
# built-in table.
environments: []
`)

	if opts.Format == "json" {
		return templateToJSON()
	}
	return buf.Bytes(), nil
}

func templateToJSON() ([]byte, error) {
	cfg := map[string]any{
		"extensions":   []string{".tex"},
		"ignore":       []string{"build/**", "_minted-*/**", ".git/**"},
		"environments": []any{},
	}

	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# latexmark configuration
# See: https://github.com/yaklabco/latexmark`
}
