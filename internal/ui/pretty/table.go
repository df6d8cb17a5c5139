package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/latexmark/pkg/batch"
	"github.com/yaklabco/latexmark/pkg/texmark"
)

// Table formatting constants.
const (
	tablePadding       = 2
	tableColumnCount   = 3 // FILE, LOC, KIND
	perFileColumnCount = 2 // LOC, KIND (no FILE column)
	minFileWidth       = 20
	minLocWidth        = 10
	minKindWidth       = 12
	heavySeparator     = "="
	lightSeparator     = "-"
	defaultTermWidth   = 100
)

// TableRow represents a single row in the mark table.
type TableRow struct {
	File     string
	Location string
	Kind     string
	Depth    int
}

// TableFormatter formats marks as a styled table.
type TableFormatter struct {
	styles       *Styles
	colorEnabled bool
	termWidth    int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, colorEnabled bool, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:       styles,
		colorEnabled: colorEnabled,
		termWidth:    termWidth,
	}
}

// FormatTable formats batch results as a styled table.
func (t *TableFormatter) FormatTable(result *batch.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	fileGroups := t.collectRows(result)
	if len(fileGroups) == 0 {
		return ""
	}

	colWidths := t.calculateColumnWidths(fileGroups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	isFirstGroup := true
	for _, group := range fileGroups {
		if !isFirstGroup {
			builder.WriteString(t.formatSeparator(colWidths, lightSeparator))
			builder.WriteString("\n")
		}
		isFirstGroup = false

		for _, row := range group {
			builder.WriteString(t.formatRow(row, colWidths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileTable formats a single file's marks as a standalone table.
func (t *TableFormatter) FormatFileTable(file batch.FileOutcome) string {
	if file.Result == nil || len(file.Result.Marks) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(file.Result.Marks))
	for _, mark := range file.Result.Marks {
		rows = append(rows, markToRow(file.Path, &mark))
	}

	colWidths := t.calculateColumnWidthsForRows(rows)

	var builder strings.Builder

	builder.WriteString(t.formatPerFileHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatPerFileSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatPerFileRow(row, colWidths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatPerFileSeparator(colWidths, heavySeparator))
	builder.WriteString("\n")
	builder.WriteString(t.formatFileSummary(rows))
	builder.WriteString("\n")

	return builder.String()
}

type perFileColumnWidths struct {
	loc  int
	kind int
}

func (t *TableFormatter) calculateColumnWidthsForRows(rows []TableRow) perFileColumnWidths {
	widths := perFileColumnWidths{loc: minLocWidth, kind: minKindWidth}

	for _, row := range rows {
		if len(row.Location) > widths.loc {
			widths.loc = len(row.Location)
		}
		if len(row.Kind) > widths.kind {
			widths.kind = len(row.Kind)
		}
	}

	return widths
}

func (t *TableFormatter) formatPerFileHeader(widths perFileColumnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s ",
		widths.loc, "LOC",
		widths.kind, "KIND",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatPerFileSeparator(widths perFileColumnWidths, char string) string {
	totalWidth := widths.loc + widths.kind + (tablePadding * perFileColumnCount)
	return t.styles.TableSeparator.Render(strings.Repeat(char, totalWidth))
}

func (t *TableFormatter) formatPerFileRow(row TableRow, widths perFileColumnWidths) string {
	loc := truncateString(row.Location, widths.loc)
	kind := truncateString(row.Kind, widths.kind)

	content := fmt.Sprintf(" %-*s  %-*s",
		widths.loc, loc,
		widths.kind, kind,
	)

	return t.styles.TableRow.Render(content)
}

func (t *TableFormatter) formatFileSummary(rows []TableRow) string {
	maxDepth := 0
	for _, row := range rows {
		if row.Depth > maxDepth {
			maxDepth = row.Depth
		}
	}
	return fmt.Sprintf(" %d marks, max depth %d", len(rows), maxDepth)
}

func (t *TableFormatter) collectRows(result *batch.Result) [][]TableRow {
	var groups [][]TableRow

	for _, file := range result.Files {
		if file.Result == nil || len(file.Result.Marks) == 0 {
			continue
		}

		rows := make([]TableRow, 0, len(file.Result.Marks))
		for _, mark := range file.Result.Marks {
			rows = append(rows, markToRow(file.Path, &mark))
		}

		if len(rows) > 0 {
			groups = append(groups, rows)
		}
	}

	return groups
}

type columnWidths struct {
	file int
	loc  int
	kind int
}

func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{file: minFileWidth, loc: minLocWidth, kind: minKindWidth}

	for _, group := range groups {
		for _, row := range group {
			if len(row.File) > widths.file {
				widths.file = len(row.File)
			}
			if len(row.Location) > widths.loc {
				widths.loc = len(row.Location)
			}
			if len(row.Kind) > widths.kind {
				widths.kind = len(row.Kind)
			}
		}
	}

	totalWidth := t.calculateTotalWidth(widths)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s ",
		widths.file, "FILE",
		widths.loc, "LOC",
		widths.kind, "KIND",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.file + widths.loc + widths.kind + (tablePadding * tableColumnCount)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, t.calculateTotalWidth(widths)))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	file := truncateFilePath(row.File, widths.file)
	loc := truncateString(row.Location, widths.loc)
	kind := truncateString(row.Kind, widths.kind)

	content := fmt.Sprintf(" %-*s  %-*s  %-*s",
		widths.file, file,
		widths.loc, loc,
		widths.kind, kind,
	)

	return t.styles.TableRow.Render(content)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats batch.Stats, duration string) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%d files checked", stats.FilesProcessed))
	parts = append(parts, fmt.Sprintf("%d marks", stats.MarksTotal))
	parts = append(parts, fmt.Sprintf("max depth %d", stats.MaxStackDepth))

	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// markToRow converts a closed mark to a table row.
func markToRow(path string, mark *texmark.Mark) TableRow {
	return TableRow{
		File:     path,
		Location: fmt.Sprintf("%d:%d", mark.From.Line, mark.From.Column),
		Kind:     mark.Kind.String(),
		Depth:    mark.CheckedProperties.OpenMarksCount,
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}
