package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/latexmark/pkg/batch"
)

const (
	summaryDividerWidth = 40
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "42 marks, max depth 3, across 5 files".
func (s *Styles) FormatSummaryOneLine(stats batch.Stats) string {
	if stats.MarksTotal == 0 {
		msg := s.Success.Render("No marks found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		return msg + "\n"
	}

	markWord := "marks"
	if stats.MarksTotal == 1 {
		markWord = "mark"
	}

	parts := []string{fmt.Sprintf("%d %s", stats.MarksTotal, markWord)}
	parts = append(parts, fmt.Sprintf("max depth %d", stats.MaxStackDepth))

	fileWord := "files"
	if stats.FilesProcessed == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("across %d %s", stats.FilesProcessed, fileWord))

	if stats.FilesErrored > 0 {
		errWord := "files"
		if stats.FilesErrored == 1 {
			errWord = "file"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s errored", stats.FilesErrored, errWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats batch.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total marks:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.MarksTotal)) + "\n")
	builder.WriteString("  Max stack depth:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.MaxStackDepth)) + "\n")

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Completed with errors"))
	default:
		builder.WriteString(s.Success.Render("Completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
