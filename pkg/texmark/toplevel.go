package texmark

// tokTopLevel is the frameTopLevel dispatcher: the bottom of the stack,
// always present, never popped. It delegates straight into text scanning,
// which is where \section, \begin, \title, etc. are actually recognized.
func tokTopLevel(stream *Stream, state State) (Style, State, bool) {
	return tokText(stream, state)
}
