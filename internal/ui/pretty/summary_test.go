package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/latexmark/internal/ui/pretty"
	"github.com/yaklabco/latexmark/pkg/batch"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesDiscovered: 10,
		FilesProcessed:  10,
		MarksTotal:      15,
		MaxStackDepth:   3,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files processed:")
	assert.Contains(t, result, "10")
	assert.Contains(t, result, "Total marks:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Max stack depth:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Completed")
}

func TestFormatSummary_NoMarks(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesDiscovered: 5,
		FilesProcessed:  5,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Completed")
	assert.NotContains(t, result, "Files errored:")
}

func TestFormatSummary_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesDiscovered: 10,
		FilesProcessed:  8,
		FilesErrored:    2,
		MarksTotal:      5,
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files errored:")
	assert.Contains(t, result, "Completed with errors")
}

func TestFormatSummaryOneLine_NoMarks(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesProcessed: 5,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No marks found")
	assert.Contains(t, result, "5 files checked")
}

func TestFormatSummaryOneLine_WithMarks(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesProcessed: 10,
		MarksTotal:     12,
		MaxStackDepth:  4,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "12 marks")
	assert.Contains(t, result, "max depth 4")
	assert.Contains(t, result, "across 10 files")
}

func TestFormatSummaryOneLine_SingleMark(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesProcessed: 1,
		MarksTotal:     1,
		MaxStackDepth:  1,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 mark")
	assert.Contains(t, result, "across 1 file")
}

func TestFormatSummaryOneLine_WithErrors(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := batch.Stats{
		FilesProcessed: 5,
		FilesErrored:   1,
		MarksTotal:     3,
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 file errored")
}
