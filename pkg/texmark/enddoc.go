package texmark

// tokEndDocTrailer drives a frameEndDocTrailer, the permanent tail state
// entered once the outermost `document` environment closes. Everything
// after `\end{document}` is outside what LaTeX itself compiles, so it is
// consumed as a comment and never produces marks; the frame is never popped.
func tokEndDocTrailer(stream *Stream, state State) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}
	stream.MarkStart()
	stream.SkipToEnd()
	return StyleComment, state, true
}
