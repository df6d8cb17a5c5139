// Package report formats batch tokenize results for output: as styled
// terminal text, a table, or JSON.
package report

import (
	"context"
	"fmt"

	"github.com/yaklabco/latexmark/pkg/analysis"
	"github.com/yaklabco/latexmark/pkg/batch"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes tokenize results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of marks reported and any write errors.
	Report(ctx context.Context, result *batch.Result) (int, error)
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *batch.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.MarksTotal, nil
}

// newRendererFacade creates a facade wrapping a Renderer.
func newRendererFacade(renderer Renderer, opts Options) *reporterFacade {
	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeByFile: true,
			IncludeByKind: true,
			SortBy:        analysis.SortByCount,
			SortDesc:      true,
			WorkingDir:    opts.WorkingDir,
		},
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatTable:
		return NewTableReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// NewSummary creates a Renderer-backed Reporter producing aggregated
// by-kind/by-file summary tables instead of a per-mark listing.
func NewSummary(opts Options) Reporter {
	return newRendererFacade(NewSummaryRenderer(opts), opts)
}
