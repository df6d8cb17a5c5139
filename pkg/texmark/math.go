package texmark

// tokMath is the ctMath content function: the body of inline math, display
// math, and math environments (equation, align, ...). Math bodies never
// produce marks of their own (MarkInlineMath/MarkDisplayMath/
// MarkOuterDisplayMath cover the delimiters; equation-family environments
// are deliberately left unmarked) and never recurse into tokText, so a
// `\section` typed inside a formula is not mistaken for document structure.
func tokMath(stream *Stream, state State) (Style, State, bool) {
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

	if text, ok := stream.MatchRegexp(reNumber, false); ok {
		stream.MarkStart()
		stream.MatchRegexp(reNumber, true)
		_ = text
		return StyleNumber, state, true
	}

	switch stream.Peek() {
	case '^', '_', '&', '~':
		stream.MarkStart()
		stream.Next()
		return StyleTag, state, true
	}

	stream.MarkStart()
	stream.Next()
	return NoStyle, state, true
}
