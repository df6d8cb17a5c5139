package batch

import (
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/latexmark/pkg/langdetect"
	"github.com/yaklabco/latexmark/pkg/texmark"
)

// FileResult is the outcome of tokenizing a single file's lines through
// pkg/texmark exactly the way a host editor would: EnterLine before
// anything else on a line, BlankLine for a genuinely empty line, otherwise
// Token repeatedly until the line is exhausted.
type FileResult struct {
	// Marks is the file's final closed-mark list, in closing order.
	Marks []texmark.Mark

	// MaxStackDepth is the highest pushdown-stack depth observed while
	// tokenizing this file.
	MaxStackDepth int

	// LineCount is the number of lines the file was split into.
	LineCount int
}

// TokenizeFile reads path and drives it through pkg/texmark line by line,
// applying any host-configured environment-table extensions.
func TokenizeFile(path string, envExtensions []texmark.EnvExtension) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tokenizeSource(string(data), envExtensions), nil
}

// tokenizeSource is the pure, I/O-free half of TokenizeFile, split out so
// it can be exercised directly by tests without touching the filesystem.
func tokenizeSource(source string, envExtensions []texmark.EnvExtension) *FileResult {
	lines := strings.Split(source, "\n")
	state := texmark.NewState(envExtensions)
	maxDepth := state.Depth()

	for i, line := range lines {
		state = state.EnterLine(i)
		if line == "" {
			state = state.BlankLine()
			continue
		}
		stream := texmark.NewStream(line)
		for !stream.AtEndOfLine() {
			_, state = texmark.Token(stream, state)
			if d := state.Depth(); d > maxDepth {
				maxDepth = d
			}
		}
	}

	return &FileResult{
		Marks:         detectListingLanguages(state.Marks(), lines),
		MaxStackDepth: maxDepth,
		LineCount:     len(lines),
	}
}

// detectListingLanguages fills in CheckedProperties.Language for every
// MarkListing mark (a verbatim/lstlisting/minted body), by re-reading its
// captured span out of the file's raw lines and running it through
// pkg/langdetect. The tokenizer itself never does this: it only tracks
// positions, never retained text, so the host is the one place this can
// happen.
func detectListingLanguages(marks []texmark.Mark, lines []string) []texmark.Mark {
	for i, m := range marks {
		if m.Kind != texmark.MarkListing {
			continue
		}
		body := listingBody(lines, m)
		m.CheckedProperties.Language = langdetect.DetectListingLanguage([]byte(body))
		marks[i] = m
	}
	return marks
}

// listingBody joins the raw source lines strictly between a listing mark's
// opening and closing lines into a single string for language detection.
// ContentFrom.Line still holds the `\begin{...}` line itself and To.Line the
// `\end{...}` line, so the body proper is the lines in between; a body that
// never spans a full interior line (e.g. an empty environment) detects as
// "text", which is the correct answer for no content.
func listingBody(lines []string, m texmark.Mark) string {
	from, to := m.ContentFrom.Line+1, m.To.Line-1
	if from > to || from < 0 || to >= len(lines) {
		return ""
	}
	return strings.Join(lines[from:to+1], "\n")
}
