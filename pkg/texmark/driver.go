package texmark

import "fmt"

// EnterLine returns state updated to reflect that lineNo is now being
// tokenized. The host calls this once per line, before the first Token
// call (or before BlankLine, for a zero-length line), so that positions
// recorded by openMarkAt and closeMark carry the correct line number.
func (s State) EnterLine(lineNo int) State {
	return s.withLine(lineNo)
}

// Token advances stream by exactly one token, returning the style to apply
// to the span consumed and the resulting state. It must only be called
// while stream has not yet reached the end of the current line; the host
// is expected to loop calling Token until AtEndOfLine() before moving to
// the next line.
//
// State is never mutated through a shared pointer: every call returns a new
// State value, and the one passed in remains valid and independently
// usable (e.g. the host may keep the state from before a given line around
// for undo, while continuing to tokenize past it).
func Token(stream *Stream, state State) (Style, State) {
	style, next, consumed := dispatch(state.top(), stream, state)
	if consumed {
		return style, next
	}

	// The top frame declined this position without consuming anything
	// (an abandon): pop it and retry at the same cursor position against
	// whatever frame is now on top. This terminates because frameTopLevel
	// always consumes at least one character on a non-empty stream.
	for {
		if len(next.stack) == 0 {
			panic("texmark: frame stack exhausted without consuming input")
		}
		style, next, consumed = dispatch(next.top(), stream, next)
		if consumed {
			return style, next
		}
	}
}

// dispatch routes to the sub-tokenizer for the frame on top of state's stack.
func dispatch(f frame, stream *Stream, state State) (Style, State, bool) {
	switch f.kind {
	case frameTopLevel:
		return tokTopLevel(stream, state)
	case frameEnv:
		return tokEnv(stream, state, f.env)
	case frameArgGroup:
		return tokArgGroup(stream, state, f.arg)
	case frameSequence:
		return tokSequence(stream, state, f.seq)
	case frameVerb:
		return tokVerb(stream, state, f.verb)
	case frameEndDocTrailer:
		return tokEndDocTrailer(stream, state)
	case frameCompound:
		return tokCompound(stream, state, f.compound)
	default:
		panic(fmt.Sprintf("texmark: unknown frame kind %d", f.kind))
	}
}

// callContent dispatches to the content function named by ck. ef is the
// enclosing environment frame and is only required (non-nil) for ctItem.
func callContent(ck contentKind, stream *Stream, state State, ef *envFrame) (Style, State, bool) {
	switch ck {
	case ctText:
		return tokText(stream, state)
	case ctMath:
		return tokMath(stream, state)
	case ctVerbatim:
		return tokVerbatimBody(stream, state)
	case ctComment:
		return tokCommentBody(stream, state)
	case ctTikz:
		return tokTikzContent(stream, state)
	case ctItem:
		return tokItemContent(stream, state, ef)
	case ctFigure:
		return tokFigureContent(stream, state)
	default:
		panic(fmt.Sprintf("texmark: unknown content kind %d", ck))
	}
}

// BlankLine is called by the host instead of Token for a genuinely
// zero-length line. It abandons every open frame and mark that does not
// tolerate blank lines (math zones, bracketed arguments, compounds,
// sequences in progress, and any environment whose descriptor says so),
// popping back to the innermost frame that does, or to frameTopLevel.
func (s State) BlankLine() State {
	cur := s
	for {
		f := cur.top()
		switch f.kind {
		case frameTopLevel, frameEndDocTrailer:
			return cur
		case frameEnv:
			if f.env.desc.allowBlankLines {
				return cur
			}
			cur = abandonFrame(cur, f)
		case frameVerb:
			// \verb may itself span blank lines per spec.md's resilience
			// note (no delimiter found yet); nothing to abandon.
			return cur
		default:
			// frameArgGroup, frameSequence, frameCompound: none tolerate a
			// blank line appearing mid-construct.
			cur = abandonFrame(cur, f)
		}
	}
}

// abandonFrame discards the top frame, undoing any mark it had opened, and
// returns the state with it popped.
func abandonFrame(state State, f frame) State {
	switch f.kind {
	case frameArgGroup:
		if f.arg.marked {
			state = state.abandonMark()
		}
	case frameCompound:
		if f.compound.hasMark && f.compound.phase == 3 {
			state = state.abandonMark()
		}
	case frameEnv:
		if f.env.desc.hasMark {
			state = state.abandonMark()
		}
	}
	return state.popFrame()
}
