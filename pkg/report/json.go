package report

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/latexmark/pkg/batch"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path          string     `json:"path"`
	Marks         []JSONMark `json:"marks"`
	MaxStackDepth int        `json:"maxStackDepth"`
	LineCount     int        `json:"lineCount,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// JSONMark represents a single closed structural mark.
type JSONMark struct {
	Kind         string `json:"kind"`
	StartLine    int    `json:"startLine"`
	StartColumn  int    `json:"startColumn"`
	ContentLine  int    `json:"contentStartLine"`
	EndLine      int    `json:"endLine"`
	EndColumn    int    `json:"endColumn"`
	Depth        int    `json:"depth"`
	Number       int    `json:"number,omitempty"`
	OpenParentID int    `json:"openParentId"`
	Language     string `json:"language,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked  int            `json:"filesChecked"`
	FilesErrored  int            `json:"filesErrored"`
	TotalMarks    int            `json:"totalMarks"`
	MaxStackDepth int            `json:"maxStackDepth"`
	ByKind        map[string]int `json:"byKind"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *batch.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalMarks, nil
}

func (r *JSONReporter) buildOutput(result *batch.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			ByKind: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:  file.Path,
			Marks: make([]JSONMark, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
			output.Files = append(output.Files, fileResult)
			continue
		}

		if file.Result != nil {
			fileResult.MaxStackDepth = file.Result.MaxStackDepth
			fileResult.LineCount = file.Result.LineCount

			for _, mark := range file.Result.Marks {
				jsonMark := JSONMark{
					Kind:         mark.Kind.String(),
					StartLine:    mark.From.Line,
					StartColumn:  mark.From.Column,
					ContentLine:  mark.ContentFrom.Line,
					EndLine:      mark.To.Line,
					EndColumn:    mark.To.Column,
					Depth:        mark.CheckedProperties.OpenMarksCount,
					Number:       mark.CheckedProperties.Number,
					OpenParentID: mark.OpenParentID,
					Language:     mark.CheckedProperties.Language,
				}
				fileResult.Marks = append(fileResult.Marks, jsonMark)
				output.Summary.TotalMarks++
				output.Summary.ByKind[jsonMark.Kind]++
			}

			if mark := file.Result.MaxStackDepth; mark > output.Summary.MaxStackDepth {
				output.Summary.MaxStackDepth = mark
			}
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
