package texmark

// tokVerbatimBody is the ctVerbatim content function: a flat, unstyled-to-
// StyleString scan that never interprets backslashes, dollars, or percent
// signs as anything other than literal characters. Used for verbatim-like
// environment bodies and for the plain-scan command arguments (\label,
// \ref, \cite and family, \input, \include) whose bodies are keys and
// paths, never prose.
func tokVerbatimBody(stream *Stream, state State) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}
	stream.MarkStart()
	stream.SkipToEnd()
	return StyleString, state, true
}

// tokCommentBody is the ctComment content function: entire lines consumed
// as commentary, for environments like `comment` (from the comment
// package) whose body is excluded from the document regardless of its
// contents.
func tokCommentBody(stream *Stream, state State) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}
	stream.MarkStart()
	stream.SkipToEnd()
	return StyleComment, state, true
}
