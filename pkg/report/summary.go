package report

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/latexmark/internal/ui/pretty"
	"github.com/yaklabco/latexmark/pkg/analysis"
)

// Table layout constants for summary output.
const (
	tableWidth        = 90
	kindColWidth      = 30
	fileColWidth      = 60
	numColWidth       = 7
	maxKindNameLength = 28
	maxFilePathLength = 58
)

// padRight pads a string to the given width with spaces on the right.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats results as aggregated by-kind and by-file tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Totals.HasMarks() {
		fmt.Fprintln(r.out, r.styles.Success.Render("No marks found"))
		return nil
	}

	r.renderKindTable(report.ByKind)
	fmt.Fprintln(r.out)
	r.renderFileTable(report.ByFile)

	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) renderKindTable(kinds []analysis.KindAnalysis) {
	if len(kinds) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Kinds Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s\n",
		r.styles.TableHeader.Render(padRight("Kind", kindColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, kind := range kinds {
		name := kind.Kind
		if len(name) > maxKindNameLength {
			name = name[:maxKindNameLength] + "…"
		}

		fmt.Fprintf(r.out, "%s %s\n",
			padRight(name, kindColWidth),
			padLeft(strconv.Itoa(kind.Count), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files Summary"))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padLeft("Marks", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Depth", numColWidth)),
	)
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			padRight(path, fileColWidth),
			padLeft(strconv.Itoa(file.Marks), numColWidth),
			padLeft(strconv.Itoa(file.MaxStackDepth), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	markWord := "marks"
	if totals.MarksTotal == 1 {
		markWord = "mark"
	}

	line := fmt.Sprintf("%d %s across %d files (max depth %d)",
		totals.MarksTotal, markWord, totals.Files, totals.MaxStackDepth)

	if totals.FilesErrored > 0 {
		line += r.styles.Error.Render(fmt.Sprintf(", %d files errored", totals.FilesErrored))
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+line)
}
