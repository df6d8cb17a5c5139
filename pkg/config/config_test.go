package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/latexmark/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, []string{".tex"}, cfg.Extensions)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, 0, cfg.Jobs)
	assert.Nil(t, cfg.Ignore)
}

func TestGenerateTemplate_Minimal(t *testing.T) {
	t.Parallel()

	data, err := config.GenerateTemplate(config.TemplateOptions{Format: "yaml"})
	assert.NoError(t, err)
	assert.Contains(t, string(data), "latexmark configuration")
}

func TestGenerateTemplate_FullJSON(t *testing.T) {
	t.Parallel()

	data, err := config.GenerateTemplate(config.TemplateOptions{Full: true, Format: "json"})
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"extensions"`)
}
