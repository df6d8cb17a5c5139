package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/latexmark/internal/cli"
	"github.com/yaklabco/latexmark/pkg/report"
)

// testTexWithSection is a small LaTeX fixture with a section and a label,
// enough to exercise a real tokenize run end to end.
const testTexWithSection = "\\section{Introduction}\n\\label{sec:intro}\n\nSome text.\n"

// TestIntegration_TokenizeTextFormat runs the tokenize command against a
// real file and checks the styled text output.
func TestIntegration_TokenizeTextFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	texFile := filepath.Join(tmpDir, "main.tex")
	require.NoError(t, os.WriteFile(texFile, []byte(testTexWithSection), 0644))

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"tokenize", "--color", "never", texFile})

	require.NoError(t, cmd.Execute())

	output := stdout.String() + stderr.String()
	assert.Contains(t, output, "section")
	assert.Contains(t, output, "label")
	assert.Contains(t, output, texFile)
}

// TestIntegration_TokenizeJSONFormat checks that --format json produces a
// decodable report.JSONOutput with the expected mark kinds.
func TestIntegration_TokenizeJSONFormat(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	texFile := filepath.Join(tmpDir, "main.tex")
	require.NoError(t, os.WriteFile(texFile, []byte(testTexWithSection), 0644))

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"tokenize", "--format", "json", texFile})

	require.NoError(t, cmd.Execute())

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))

	require.Len(t, out.Files, 1)
	assert.Equal(t, 2, out.Summary.TotalMarks)

	kinds := make([]string, 0, len(out.Files[0].Marks))
	for _, mark := range out.Files[0].Marks {
		kinds = append(kinds, mark.Kind)
	}
	assert.Contains(t, kinds, "section")
	assert.Contains(t, kinds, "label")
}

// TestIntegration_TokenizeMissingPathErrors verifies a nonexistent path
// surfaces as a run error rather than being silently skipped.
func TestIntegration_TokenizeMissingPathErrors(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"tokenize", filepath.Join(t.TempDir(), "does-not-exist.tex")})

	assert.Error(t, cmd.Execute())
}

// TestIntegration_ConfigExtensions verifies a project config's extensions
// list widens which files get discovered under a bare directory argument.
func TestIntegration_ConfigExtensions(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "chapter.latex"), []byte(testTexWithSection), 0644))

	configContent := "extensions:\n  - .latex\n"
	configFile := filepath.Join(tmpDir, ".texmarkrc.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"tokenize", "--config", configFile, "--format", "json", tmpDir})

	require.NoError(t, cmd.Execute())

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Files, 1)
}

// TestIntegration_ConfigEnvironmentExtension verifies a config-declared
// environment widens the tokenizer's environment table for the run.
func TestIntegration_ConfigEnvironmentExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	texFile := filepath.Join(tmpDir, "main.tex")
	content := "\\begin{pycode}\n\\section{fake}\n\\end{pycode}\n"
	require.NoError(t, os.WriteFile(texFile, []byte(content), 0644))

	configContent := "environments:\n  - name: pycode\n    kind: verbatim\n"
	configFile := filepath.Join(tmpDir, ".texmarkrc.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"tokenize", "--config", configFile, "--format", "json", texFile})

	require.NoError(t, cmd.Execute())

	var out report.JSONOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Files, 1)

	// pycode's body is treated as verbatim, so the \section inside it must
	// not be tokenized as a mark.
	for _, mark := range out.Files[0].Marks {
		assert.NotEqual(t, "section", mark.Kind)
	}
}

// TestIntegration_KindsCommand exercises the kinds command end to end.
func TestIntegration_KindsCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"kinds", "--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "section")
	assert.Contains(t, stdout.String(), "label")
}

// TestIntegration_InitCreatesConfig exercises the init command end to end.
func TestIntegration_InitCreatesConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, ".texmarkrc.yaml")

	info := cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"init", "--output", outputPath})

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "latexmark configuration")
}
