package batch_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/latexmark/pkg/batch"
)

func TestTokenizeFile_ReadsAndTokenizes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.tex")
	source := "\\section{Intro}\nSee \\label{sec:intro} for details.\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	result, err := batch.TokenizeFile(path, nil)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 3, result.LineCount)
	assert.NotEmpty(t, result.Marks)

	var kinds []string
	for _, m := range result.Marks {
		kinds = append(kinds, m.Kind.String())
	}
	assert.Contains(t, kinds, "section")
	assert.Contains(t, kinds, "label")
}

func TestTokenizeFile_DetectsListingLanguage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "listing.tex")
	source := "\\begin{lstlisting}\npackage main\n\nfunc main() {}\n\\end{lstlisting}\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	result, err := batch.TokenizeFile(path, nil)
	require.NoError(t, err)

	require.Len(t, result.Marks, 1)
	assert.Equal(t, "listing", result.Marks[0].Kind.String())
	assert.Equal(t, "go", result.Marks[0].CheckedProperties.Language)
}

func TestTokenizeFile_MissingFileReturnsError(t *testing.T) {
	t.Parallel()

	_, err := batch.TokenizeFile(filepath.Join(t.TempDir(), "missing.tex"), nil)
	assert.Error(t, err)
}

func TestTokenizeFile_TracksMaxStackDepth(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested.tex")
	source := "\\textbf{\\textit{deep}}\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	result, err := batch.TokenizeFile(path, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.MaxStackDepth, 2)
}
