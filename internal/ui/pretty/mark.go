package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/latexmark/pkg/texmark"
)

// FormatMark formats a single closed mark for terminal output.
func (s *Styles) FormatMark(path string, mark *texmark.Mark, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		mark.From.Line,
		mark.From.Column,
	)

	kind := s.Kind.Render(mark.Kind.String())

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		kind,
		s.Dim.Render(fmt.Sprintf("depth=%d", mark.CheckedProperties.OpenMarksCount)),
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, mark.From.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column >= 0 {
		padding := indent + strings.Repeat(" ", column)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, markCount int) string {
	header := s.FilePath.Render(path)
	if markCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d marks)", markCount))
	}
	return header
}
