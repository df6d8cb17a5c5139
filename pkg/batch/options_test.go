package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/latexmark/pkg/batch"
)

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()

	exts := batch.DefaultExtensions()
	assert.Equal(t, []string{".tex"}, exts)
}
