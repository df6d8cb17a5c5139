package texmark

// tokTikzContent is the ctTikz content function: TikZ picture bodies are
// PGF/TikZ mini-language, not document prose or math, but share math's
// lexical shape closely enough (backslash keywords, bare numbers, a flat
// run of everything else) that it is built the same way rather than
// introducing a third near-duplicate scanner.
func tokTikzContent(stream *Stream, state State) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}

	if stream.Peek() == '%' {
		stream.MarkStart()
		stream.SkipToEnd()
		return StyleComment, state, true
	}

	if stream.Peek() == '\\' {
		stream.MarkStart()
		stream.Next()
		if _, ok := stream.MatchRegexp(reCommandName, true); !ok && !stream.AtEndOfLine() {
			stream.Next()
		}
		return StyleKeyword, state, true
	}

	if _, ok := stream.MatchRegexp(reNumber, false); ok {
		stream.MarkStart()
		stream.MatchRegexp(reNumber, true)
		return StyleNumber, state, true
	}

	stream.MarkStart()
	for !stream.AtEndOfLine() {
		c := stream.Peek()
		if c == '\\' || c == '%' || (c >= '0' && c <= '9') {
			return NoStyle, state, true
		}
		stream.Next()
	}
	return NoStyle, state, true
}
