package report_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/latexmark/pkg/batch"
	"github.com/yaklabco/latexmark/pkg/report"
	"github.com/yaklabco/latexmark/pkg/texmark"
)

func sampleResult() *batch.Result {
	marks := []texmark.Mark{
		{Kind: texmark.MarkSection, From: texmark.Position{Line: 1, Column: 1}, To: texmark.Position{Line: 1, Column: 20}, OpenParentID: -1},
		{Kind: texmark.MarkLabel, From: texmark.Position{Line: 2, Column: 5}, To: texmark.Position{Line: 2, Column: 25}, OpenParentID: -1},
	}
	result := &batch.Result{
		Files: []batch.FileOutcome{
			{Path: "doc.tex", Result: &batch.FileResult{Marks: marks, MaxStackDepth: 1, LineCount: 3}},
		},
	}
	result.Stats.FilesDiscovered = 1
	result.Stats.FilesProcessed = 1
	result.Stats.MarksTotal = len(marks)
	result.Stats.MaxStackDepth = 1
	return result
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := report.New(report.Options{Format: "bogus"})
	assert.Error(t, err)
}

func TestNew_DefaultsToText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := report.New(report.Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &report.TextReporter{}, rep)
}

func TestJSONReporter_ReturnsMarkCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := report.New(report.Options{Writer: &buf, Format: report.FormatJSON, Compact: true})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output report.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, 2, output.Summary.TotalMarks)
	assert.Equal(t, 1, output.Summary.MaxStackDepth)
	require.Len(t, output.Files, 1)
	assert.Equal(t, "doc.tex", output.Files[0].Path)
	assert.Equal(t, "section", output.Files[0].Marks[0].Kind)
}

func TestJSONReporter_RecordsFileErrors(t *testing.T) {
	t.Parallel()

	result := &batch.Result{
		Files: []batch.FileOutcome{
			{Path: "broken.tex", Error: errors.New("permission denied")},
		},
	}
	result.Stats.FilesErrored = 1

	var buf bytes.Buffer
	rep := report.NewJSONReporter(report.Options{Writer: &buf, Compact: true})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var output report.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, "permission denied", output.Files[0].Error)
}

func TestTextReporter_ReportsMarksGroupedByFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := report.NewTextReporter(report.Options{Writer: &buf, Color: "never", GroupByFile: true, ShowSummary: true})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, buf.String(), "doc.tex")
	assert.Contains(t, buf.String(), "section")
	assert.Contains(t, buf.String(), "label")
}

func TestTextReporter_NoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := report.NewTextReporter(report.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), &batch.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No files to check.")
}

func TestTableReporter_ReportsMarks(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := report.NewTableReporter(report.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, buf.String(), "FILE")
	assert.Contains(t, buf.String(), "doc.tex")
}

func TestTableReporter_NoMarks(t *testing.T) {
	t.Parallel()

	result := &batch.Result{
		Files: []batch.FileOutcome{
			{Path: "empty.tex", Result: &batch.FileResult{}},
		},
	}
	result.Stats.FilesProcessed = 1

	var buf bytes.Buffer
	rep := report.NewTableReporter(report.Options{Writer: &buf, Color: "never", ShowSummary: true})

	count, err := rep.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Contains(t, buf.String(), "No marks found.")
}

func TestSummaryReporter_UsesAnalysis(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := report.NewSummary(report.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Contains(t, buf.String(), "Kinds Summary")
	assert.Contains(t, buf.String(), "Files Summary")
	assert.Contains(t, buf.String(), "Total:")
}
