package texmark

// tokVerbRecognize is reached right after tokBackslash matches the command
// name `verb` or `verb*`: it reads the delimiter character that must
// immediately follow (LaTeX's `\verb` takes whatever non-letter character
// comes next as its own delimiter) and pushes a frameVerb to scan the body.
func tokVerbRecognize(stream *Stream, state State) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return StyleTag, state, true
	}
	delim := byte(stream.Peek())
	stream.Next()
	vf := &verbFrame{delim: delim}
	return StyleTag, state.push(frame{kind: frameVerb, verb: vf}), true
}

// tokVerb drives a frameVerb: it scans for the delimiter byte recorded when
// the frame was pushed. Per spec.md's design note this may run past the end
// of the line if the delimiter is never found, spanning into following
// lines rather than failing outright.
func tokVerb(stream *Stream, state State, vf *verbFrame) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}
	stream.MarkStart()
	for !stream.AtEndOfLine() {
		c := stream.Next()
		if byte(c) == vf.delim {
			return StyleString, state.popFrame(), true
		}
	}
	return StyleString, state, true
}
