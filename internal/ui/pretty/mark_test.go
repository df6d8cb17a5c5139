package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/latexmark/internal/ui/pretty"
	"github.com/yaklabco/latexmark/pkg/texmark"
)

func sampleMark() *texmark.Mark {
	return &texmark.Mark{
		Kind:         texmark.MarkSection,
		From:         texmark.Position{Line: 3, Column: 1},
		ContentFrom:  texmark.Position{Line: 3, Column: 10},
		ContentTo:    texmark.Position{Line: 3, Column: 22},
		To:           texmark.Position{Line: 3, Column: 23},
		OpenParentID: -1,
		CheckedProperties: texmark.CheckedProperties{
			Kind:           texmark.MarkSection,
			OpenMarksCount: 2,
			FromLine:       3,
			ToLine:         3,
		},
	}
}

func TestFormatMark_IncludesLocationAndKind(t *testing.T) {
	styles := pretty.NewStyles(false)
	out := styles.FormatMark("main.tex", sampleMark(), false, "")

	assert.Contains(t, out, "main.tex:3:1")
	assert.Contains(t, out, "section")
	assert.Contains(t, out, "depth=2")
}

func TestFormatMark_ShowContextAppendsSourceLine(t *testing.T) {
	styles := pretty.NewStyles(false)
	out := styles.FormatMark("main.tex", sampleMark(), true, "\\section{Intro}")

	assert.Contains(t, out, "\\section{Intro}")
	assert.Contains(t, out, "^")
}

func TestFormatMark_NoContextWhenDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	out := styles.FormatMark("main.tex", sampleMark(), false, "\\section{Intro}")

	assert.NotContains(t, out, "\\section{Intro}")
}

func TestFormatSourceContext_CaretAtColumn(t *testing.T) {
	styles := pretty.NewStyles(false)
	out := styles.FormatSourceContext("\\label{sec:intro}", 9)

	assert.Contains(t, out, "\\label{sec:intro}")
	assert.Contains(t, out, "^")
}

func TestFormatFileHeader_IncludesMarkCount(t *testing.T) {
	styles := pretty.NewStyles(false)
	out := styles.FormatFileHeader("chapters/intro.tex", 5)

	assert.Contains(t, out, "chapters/intro.tex")
	assert.Contains(t, out, "5 marks")
}

func TestFormatFileHeader_OmitsCountWhenZero(t *testing.T) {
	styles := pretty.NewStyles(false)
	out := styles.FormatFileHeader("chapters/intro.tex", 0)

	assert.NotContains(t, out, "marks")
}
