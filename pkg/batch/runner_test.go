package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/latexmark/pkg/batch"
)

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := batch.New(nil)

	result, err := r.Run(context.Background(), batch.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.tex")
	require.NoError(t, os.WriteFile(path, []byte(`\section{Intro}`), 0644))

	r := batch.New(nil)
	result, err := r.Run(context.Background(), batch.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	require.Len(t, result.Files, 1)
	assert.Equal(t, path, result.Files[0].Path)
	assert.NotNil(t, result.Files[0].Result)
	assert.False(t, result.HasErrors())
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	names := []string{"a.tex", "b.tex", "c.tex", "d.tex", "e.tex"}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`\section{`+name+`}`), 0644))
	}

	r := batch.New(nil)
	result, err := r.Run(context.Background(), batch.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, len(names), result.Stats.FilesDiscovered)
	assert.Equal(t, len(names), result.Stats.FilesProcessed)
	assert.Equal(t, len(names), result.Stats.MarksTotal)
}

func TestRunner_Run_AccumulatesMarksAndStackDepth(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flat.tex"), []byte(`\section{One}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.tex"), []byte(`\textbf{\textit{deep}}`), 0644))

	r := batch.New(nil)
	result, err := r.Run(context.Background(), batch.Options{Paths: []string{"."}, WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Stats.MarksTotal)
	assert.GreaterOrEqual(t, result.Stats.MaxStackDepth, 2)
}

func TestRunner_Run_RespectsJobsCap(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := range 4 {
		name := filepath.Join(dir, string(rune('a'+i))+".tex")
		require.NoError(t, os.WriteFile(name, []byte(`\section{x}`), 0644))
	}

	r := batch.New(nil)
	result, err := r.Run(context.Background(), batch.Options{Paths: []string{"."}, WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Stats.FilesProcessed)
}
