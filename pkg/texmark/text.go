package texmark

import "regexp"

// reEnvBraceGroup matches the `{name}` group immediately following \begin or
// \end, capturing the environment name.
var reEnvBraceGroup = regexp.MustCompile(`^\{([A-Za-z][A-Za-z0-9*]*)\}`)

// reOptionalGroup matches a leading `[...]` optional argument, non-greedy,
// not crossing a `]` (optional arguments never span lines per spec.md).
var reOptionalGroup = regexp.MustCompile(`^\[[^\]]*\]`)

func currentPos(stream *Stream, state State) Position {
	return Position{Line: state.line, Column: stream.Pos()}
}

// tokText is the ctText content function: ordinary prose, recognizing line
// comments, math delimiters, and backslash commands, and otherwise emitting
// unstyled runs. It is also the body of frameTopLevel.
func tokText(stream *Stream, state State) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}

	switch stream.Peek() {
	case '%':
		stream.MarkStart()
		stream.SkipToEnd()
		return StyleComment, state, true
	case '\\':
		return tokBackslash(stream, state)
	case '$':
		return tokDollarText(stream, state)
	}

	stream.MarkStart()
	for !stream.AtEndOfLine() {
		switch stream.Peek() {
		case '\\', '$', '%':
			return NoStyle, state, true
		case '}':
			// Stop before a closing brace so an enclosing argument frame gets
			// to close on it; a leading brace no frame claimed is consumed.
			if stream.Pos() > stream.start {
				return NoStyle, state, true
			}
		}
		stream.Next()
	}
	return NoStyle, state, true
}

// tokDollarText handles `$` and `$$` seen while scanning ordinary text: the
// start of inline or (TeX-style) display math.
func tokDollarText(stream *Stream, state State) (Style, State, bool) {
	from := currentPos(stream, state)
	if stream.MatchLiteral("$$", false) {
		stream.MarkStart()
		stream.MatchLiteral("$$", true)
		st, _ := state.openMarkAt(MarkDisplayMath, from, currentPos(stream, state))
		af := &argFrame{closeLiteral: "$$", closeStyle: StyleKeyword, content: ctMath, marked: true}
		return StyleKeyword, st.push(frame{kind: frameArgGroup, arg: af}), true
	}
	stream.MarkStart()
	stream.MatchLiteral("$", true)
	st, _ := state.openMarkAt(MarkInlineMath, from, currentPos(stream, state))
	// `$$` encountered inside `$…$` abandons the inline reading rather than
	// closing it, so `foo $x bar $$x$$` becomes one display-math span
	// instead of an unclosed inline-math mark.
	af := &argFrame{closeLiteral: "$", closeStyle: StyleKeyword, content: ctMath, marked: true, abandonLiteral: "$$"}
	return StyleKeyword, st.push(frame{kind: frameArgGroup, arg: af}), true
}

// tokBackslash recognizes the command starting at the cursor (already known
// to be '\') and dispatches to the appropriate construct.
func tokBackslash(stream *Stream, state State) (Style, State, bool) {
	from := currentPos(stream, state)

	if stream.MatchLiteral(`\[`, false) {
		stream.MarkStart()
		stream.MatchLiteral(`\[`, true)
		st, _ := state.openMarkAt(MarkOuterDisplayMath, from, currentPos(stream, state))
		af := &argFrame{closeLiteral: `\]`, closeStyle: StyleKeyword, content: ctMath, marked: true}
		return StyleKeyword, st.push(frame{kind: frameArgGroup, arg: af}), true
	}
	if stream.MatchLiteral(`\(`, false) {
		stream.MarkStart()
		stream.MatchLiteral(`\(`, true)
		st, _ := state.openMarkAt(MarkInlineMath, from, currentPos(stream, state))
		af := &argFrame{closeLiteral: `\)`, closeStyle: StyleKeyword, content: ctMath, marked: true}
		return StyleKeyword, st.push(frame{kind: frameArgGroup, arg: af}), true
	}
	if stream.MatchLiteral(`\\`, false) {
		stream.MarkStart()
		stream.MatchLiteral(`\\`, true)
		return StyleKeyword, state, true
	}

	stream.MarkStart()
	stream.Next() // the backslash itself
	name, ok := stream.MatchRegexp(reCommandName, true)
	if !ok {
		// A lone backslash escaping punctuation, e.g. `\%`, `\{`, `\ `.
		if !stream.AtEndOfLine() {
			stream.Next()
		}
		return StyleTag, state, true
	}

	switch name {
	case "begin":
		return tokBeginKeyword(stream, state, from)
	case "end":
		// Stray \end with no enclosing, or mismatched, environment: treat as
		// an ordinary command token rather than failing the whole line.
		return StyleTag, state, true
	case "title":
		return tokCompoundKeyword(stream, state, from, MarkTitle, true)
	case "author":
		return tokCompoundKeyword(stream, state, from, MarkTitle, false)
	case "maketitle":
		if !stream.AtEndOfLine() {
			// \maketitle is only recognized when it ends the line; mid-line
			// it is a bare command with no mark.
			return StyleTag, state, true
		}
		st, id := state.openMarkAt(MarkMaketitle, from, currentPos(stream, state))
		st = st.closeMark(currentPos(stream, state), currentPos(stream, state))
		_ = id
		return StyleTag, st, true
	case "includegraphics":
		return tokIncludeGraphics(stream, state, from)
	case "item":
		// \item outside a list content frame: harmless bare command.
		return StyleTag, state, true
	case "verb", "verb*":
		return tokVerbRecognize(stream, state)
	}

	if kind, ok := sectioningCommands[name]; ok {
		return tokArgCommand(stream, state, from, kind, ctText)
	}
	if kind, ok := textRecursingCommands[name]; ok {
		return tokArgCommand(stream, state, from, kind, ctText)
	}
	if kind, ok := plainScanCommands[name]; ok {
		return tokArgCommand(stream, state, from, kind, ctVerbatim)
	}

	return StyleTag, state, true
}

// tokArgCommand handles the common "\name{required}" shape: it pushes an
// argFrame over the brace group, marked with kind, whose body scans using
// contentMode (ctText to recurse, ctVerbatim for a flat plain-text scan).
func tokArgCommand(stream *Stream, state State, from Position, kind MarkKind, contentMode contentKind) (Style, State, bool) {
	if !stream.MatchLiteral("{", false) {
		// No argument followed: a bare reference to the command name, no mark.
		return StyleTag, state, true
	}
	stream.MarkStart()
	stream.MatchLiteral("{", true)
	st, _ := state.openMarkAt(kind, from, currentPos(stream, state))
	af := &argFrame{closeLiteral: "}", closeStyle: StyleBracket, content: contentMode, marked: true}
	return StyleTag, st.push(frame{kind: frameArgGroup, arg: af}), true
}

// tokIncludeGraphics resolves which of the two includegraphics mark kinds
// applies by checking for a leading [options] argument before the required
// path argument. When present, the mark spans from \includegraphics through
// the required group's close, so opening it is deferred until the required
// `{` is actually reached.
func tokIncludeGraphics(stream *Stream, state State, from Position) (Style, State, bool) {
	if _, ok := stream.MatchRegexp(reOptionalGroup, false); ok {
		stream.MarkStart()
		stream.MatchRegexp(reOptionalGroup, true)
		sf := &seqFrame{
			steps: []seqStep{{literal: "{", style: StyleBracket}},
			then:  openArgAfterOptional(from, MarkIncludeGraphicsOptional, ctVerbatim),
		}
		return StyleBracket, state.push(frame{kind: frameSequence, seq: sf}), true
	}
	return tokArgCommand(stream, state, from, MarkIncludeGraphics, ctVerbatim)
}

// openArgAfterOptional returns a sequence-frame callback that opens a mark
// rooted at from (typically the command name, before its optional argument)
// once the required `{` has been consumed, and pushes the argFrame that
// scans its body.
func openArgAfterOptional(from Position, kind MarkKind, content contentKind) func(State, string, Position) State {
	return func(state State, _ string, after Position) State {
		st, _ := state.openMarkAt(kind, from, after)
		af := &argFrame{closeLiteral: "}", closeStyle: StyleBracket, content: content, marked: true}
		return st.push(frame{kind: frameArgGroup, arg: af})
	}
}

// tokBeginKeyword handles the `\begin` keyword once recognized: it looks
// ahead (without consuming) for the `{name}` brace group that must follow,
// and if found, pushes a sequence frame to consume it token-by-token before
// entering the named environment.
func tokBeginKeyword(stream *Stream, state State, from Position) (Style, State, bool) {
	m := reEnvBraceGroup.FindStringSubmatch(stream.Rest())
	if m == nil {
		// Malformed \begin with no following {name}: resilient fallback.
		return StyleTag, state, true
	}
	name := m[1]
	sf := &seqFrame{
		steps: []seqStep{
			{literal: "{", style: StyleBracket},
			{literal: name, style: StyleTag},
			{literal: "}", style: StyleBracket},
		},
		name: name,
		then: beginEnvThen(from),
	}
	return StyleTag, state.push(frame{kind: frameSequence, seq: sf}), true
}

// beginEnvThen returns the callback run once `{name}` has been fully
// consumed after \begin: it opens the environment's mark (if any) rooted at
// from, and pushes the environment body frame.
func beginEnvThen(from Position) func(State, string, Position) State {
	return func(state State, name string, contentFrom Position) State {
		desc, _ := state.lookupEnv(name)
		st := state
		markID := -1
		if desc.hasMark {
			st, markID = st.openMarkAt(desc.markKind, from, contentFrom)
		}
		ef := &envFrame{desc: desc, markID: markID, beginLine: st.line}
		return st.push(frame{kind: frameEnv, env: ef})
	}
}
