package texmark

// tokCompoundKeyword is reached right after recognizing `\title` or
// `\author`: it pushes a compoundFrame to drive the optional `[...]`
// argument (used for a short title) followed by the required `{...}`
// argument, both scanned as plain content. `\title` produces a MarkTitle
// mark spanning the whole construct with its content range limited to the
// required argument; `\author` has no corresponding entry in the closed
// mark-kind set, so hasMark is false and it is scanned purely for its
// side effect of advancing past the construct.
func tokCompoundKeyword(stream *Stream, state State, from Position, kind MarkKind, hasMark bool) (Style, State, bool) {
	cf := &compoundFrame{kind: kind, hasMark: hasMark, from: from, phase: 0}
	return StyleTag, state.push(frame{kind: frameCompound, compound: cf}), true
}

// tokCompound drives a frameCompound through its four phases. compoundFrame
// is reached through a pointer but, like seqFrame, is never mutated in
// place: every phase transition allocates a fresh compoundFrame value.
func tokCompound(stream *Stream, state State, cf *compoundFrame) (Style, State, bool) {
	if stream.AtEndOfLine() {
		return NoStyle, state, true
	}

	switch cf.phase {
	case 0:
		if stream.MatchLiteral("[", false) {
			stream.MarkStart()
			stream.MatchLiteral("[", true)
			return StyleBracket, state.replaceTop(frame{kind: frameCompound, compound: withPhase(cf, 1)}), true
		}
		if stream.MatchLiteral("{", false) {
			return enterRequired(stream, state, cf)
		}
		// Neither [ nor { follows: malformed, abandon without consuming.
		return NoStyle, state.popFrame(), false

	case 1:
		if stream.MatchLiteral("]", false) {
			stream.MarkStart()
			stream.MatchLiteral("]", true)
			return StyleBracket, state.replaceTop(frame{kind: frameCompound, compound: withPhase(cf, 2)}), true
		}
		return scanPlainRun(stream, state, ']')

	case 2:
		if stream.MatchLiteral("{", false) {
			return enterRequired(stream, state, cf)
		}
		// Whitespace or stray text between ] and {: skip a char and retry.
		stream.MarkStart()
		stream.Next()
		return NoStyle, state, true

	case 3:
		if stream.MatchLiteral("}", false) {
			contentTo := currentPos(stream, state)
			stream.MarkStart()
			stream.MatchLiteral("}", true)
			to := currentPos(stream, state)

			next := state
			if cf.hasMark {
				next = next.closeMark(contentTo, to)
			}
			next = next.popFrame()
			return StyleBracket, next, true
		}
		return scanPlainRun(stream, state, '}')
	}

	return NoStyle, state.popFrame(), false
}

func withPhase(cf *compoundFrame, phase int) *compoundFrame {
	n := *cf
	n.phase = phase
	return &n
}

// enterRequired consumes the required argument's opening `{`, opens the
// mark (if any) rooted at the compound's original \title/\author position
// with its content starting just past this brace, and advances to phase 3.
func enterRequired(stream *Stream, state State, cf *compoundFrame) (Style, State, bool) {
	stream.MarkStart()
	stream.MatchLiteral("{", true)
	contentFrom := currentPos(stream, state)

	next := state
	if cf.hasMark {
		next, _ = next.openMarkAt(cf.kind, cf.from, contentFrom)
	}
	n := *cf
	n.phase = 3
	return StyleBracket, next.replaceTop(frame{kind: frameCompound, compound: &n}), true
}

// scanPlainRun consumes a run of characters up to (not including) the next
// occurrence of stop or the end of the line.
func scanPlainRun(stream *Stream, state State, stop byte) (Style, State, bool) {
	stream.MarkStart()
	for !stream.AtEndOfLine() && byte(stream.Peek()) != stop {
		stream.Next()
	}
	if stream.Pos() == stream.start {
		stream.Next()
	}
	return NoStyle, state, true
}
