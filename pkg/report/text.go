package report

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/latexmark/internal/ui/pretty"
	"github.com/yaklabco/latexmark/pkg/batch"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *batch.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	if r.opts.GroupByFile {
		total = r.reportGrouped(ctx, result)
	} else {
		total = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportGrouped writes marks grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *batch.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || len(file.Result.Marks) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path, len(file.Result.Marks)))

		for i := range file.Result.Marks {
			fmt.Fprint(r.bw, r.styles.FormatMark(file.Path, &file.Result.Marks[i], r.opts.ShowContext, ""))
			total++
		}

		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes marks without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *batch.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil {
			continue
		}

		for i := range file.Result.Marks {
			fmt.Fprint(r.bw, r.styles.FormatMark(file.Path, &file.Result.Marks[i], r.opts.ShowContext, ""))
			total++
		}
	}

	return total
}
