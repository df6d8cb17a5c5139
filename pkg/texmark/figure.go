package texmark

// tokFigureContent is the ctFigure content function. A figure body is
// ordinary prose interspersed with \includegraphics, \caption, and \label,
// all of which tokText already recognizes directly, so figure bodies are
// tokenized exactly like any other text region. The distinct contentKind
// exists so a figure's own boundary is still driven by the generic
// environment frame rather than collapsing figure into an untyped "text
// environment" case.
func tokFigureContent(stream *Stream, state State) (Style, State, bool) {
	return tokText(stream, state)
}
