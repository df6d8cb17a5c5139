package texmark

import "strings"

// tokArgGroup drives a frameArgGroup: on each call it first checks for the
// frame's closing literal, and if absent delegates to the frame's content
// function. This is the one combinator behind required `{...}` arguments,
// optional `[...]` arguments (when used standalone), and every math-zone
// delimiter pair.
func tokArgGroup(stream *Stream, state State, af *argFrame) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}

	if af.abandonLiteral != "" && stream.MatchLiteral(af.abandonLiteral, false) {
		next := state
		if af.marked {
			next = next.abandonMark()
		}
		next = next.popFrame()
		return NoStyle, next, false
	}

	if stream.MatchLiteral(af.closeLiteral, false) {
		contentTo := currentPos(stream, state)
		stream.MarkStart()
		stream.MatchLiteral(af.closeLiteral, true)
		to := currentPos(stream, state)

		next := state
		if af.marked {
			next = next.closeMark(contentTo, to)
		}
		next = next.popFrame()
		return af.closeStyle, next, true
	}

	if af.content == ctVerbatim || af.content == ctComment {
		return tokRawArgBody(stream, state, af)
	}

	return callContent(af.content, stream, state, nil)
}

// tokRawArgBody handles ctVerbatim/ctComment argument bodies (e.g. \label,
// \ref, and the other plain-scan commands). Like tokVerbatimBody/
// tokCommentBody it never interprets backslashes or percent signs, but
// unlike them it must also watch for this frame's own closeLiteral
// appearing later on the same line, since a raw scan never stops at a
// backslash the way tokText/tokMath do.
func tokRawArgBody(stream *Stream, state State, af *argFrame) (Style, State, bool) {
	style := StyleString
	if af.content == ctComment {
		style = StyleComment
	}

	idx := strings.Index(stream.Rest(), af.closeLiteral)
	stream.MarkStart()
	if idx < 0 {
		stream.SkipToEnd()
		return style, state, true
	}
	if idx == 0 {
		// The caller's own closeLiteral check above already handles this
		// position; reaching here with idx==0 means nothing precedes it on
		// this call, so emit nothing and let the next call close the frame.
		return NoStyle, state, true
	}
	for i := 0; i < idx; i++ {
		stream.Next()
	}
	return style, state, true
}
