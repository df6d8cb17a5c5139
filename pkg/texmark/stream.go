package texmark

import "regexp"

// eof is the sentinel rune returned by Peek at end of line.
const eof rune = -1

// Stream is a cursor over a single line of LaTeX source. It has no notion of
// any other line; cross-line behavior belongs entirely to State.
type Stream struct {
	line  string
	pos   int
	start int // cursor position when the current token attempt began
}

// NewStream creates a cursor over one line of content (without its
// terminating newline).
func NewStream(line string) *Stream {
	return &Stream{line: line}
}

// Peek returns the next rune without consuming it, or eof at end of line.
func (s *Stream) Peek() rune {
	if s.pos >= len(s.line) {
		return eof
	}
	return rune(s.line[s.pos])
}

// Next consumes and returns one character, or eof if already at end of line.
func (s *Stream) Next() rune {
	if s.pos >= len(s.line) {
		return eof
	}
	r := rune(s.line[s.pos])
	s.pos++
	return r
}

// AtStartOfLine reports whether nothing has been consumed from this line yet.
func (s *Stream) AtStartOfLine() bool {
	return s.pos == 0
}

// AtEndOfLine reports whether the cursor has reached the end of the line.
func (s *Stream) AtEndOfLine() bool {
	return s.pos >= len(s.line)
}

// MarkStart records the cursor position as the start of the token about to
// be attempted. Current() reports text consumed since the most recent call.
func (s *Stream) MarkStart() {
	s.start = s.pos
}

// Current returns the text consumed since the last MarkStart call.
func (s *Stream) Current() string {
	return s.line[s.start:s.pos]
}

// Pos returns the current 0-based column.
func (s *Stream) Pos() int {
	return s.pos
}

// Rest returns the remainder of the line from the cursor onward, without
// consuming anything. Sub-tokenizers use it for manual scans.
func (s *Stream) Rest() string {
	return s.line[s.pos:]
}

// MatchLiteral checks whether lit occurs at the cursor. If consume is true
// and it matches, the cursor advances past it.
func (s *Stream) MatchLiteral(lit string, consume bool) bool {
	if lit == "" {
		return false
	}
	if len(s.line)-s.pos < len(lit) {
		return false
	}
	if s.line[s.pos:s.pos+len(lit)] != lit {
		return false
	}
	if consume {
		s.pos += len(lit)
	}
	return true
}

// MatchRegexp anchors re at the cursor. On success it returns the matched
// text and, if consume is true, advances the cursor past it.
func (s *Stream) MatchRegexp(re *regexp.Regexp, consume bool) (string, bool) {
	loc := re.FindStringIndex(s.line[s.pos:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	text := s.line[s.pos : s.pos+loc[1]]
	if consume {
		s.pos += loc[1]
	}
	return text, true
}

// LookaheadRegexp reports whether re matches at the cursor without consuming.
func (s *Stream) LookaheadRegexp(re *regexp.Regexp) bool {
	loc := re.FindStringIndex(s.line[s.pos:])
	return loc != nil && loc[0] == 0
}

// SkipToEnd advances the cursor to the end of the line and returns the
// number of characters skipped.
func (s *Stream) SkipToEnd() int {
	n := len(s.line) - s.pos
	s.pos = len(s.line)
	return n
}

// SkipTo advances to (but not past) the next occurrence of ch. It fails
// without advancing if ch does not occur in the remainder of the line.
func (s *Stream) SkipTo(ch byte) bool {
	idx := -1
	for i := s.pos; i < len(s.line); i++ {
		if s.line[i] == ch {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.pos = idx
	return true
}

// isSpace classifies LaTeX whitespace for blank-run detection. ASCII space
// and tab only; the non-breaking space named in spec.md's Unicode design
// note is not handled at this byte-cursor level (see DESIGN.md).
func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// SkipSpaces consumes a run of whitespace and returns how many characters it
// consumed.
func (s *Stream) SkipSpaces() int {
	start := s.pos
	for s.pos < len(s.line) && isSpace(s.line[s.pos]) {
		s.pos++
	}
	return s.pos - start
}
