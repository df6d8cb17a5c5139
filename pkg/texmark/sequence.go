package texmark

// tokSequence drives a frameSequence: it matches the current step's literal,
// emits that step's style, and either advances to the next step or (on the
// last step) pops itself and runs its then callback.
//
// seqFrame is reached through a pointer, but it is never mutated in place:
// every transition allocates a fresh seqFrame value so that an older State
// holding the previous step index remains valid after this one advances.
func tokSequence(stream *Stream, state State, sf *seqFrame) (Style, State, bool) {
	if sf.idx >= len(sf.steps) {
		// Defensive: a sequence frame is never pushed already complete.
		return NoStyle, state.popFrame(), true
	}

	step := sf.steps[sf.idx]
	if !stream.MatchLiteral(step.literal, false) {
		// The literal we looked ahead for before pushing this frame is no
		// longer there (should not happen in practice); abandon cleanly.
		return NoStyle, state.popFrame(), false
	}
	stream.MarkStart()
	stream.MatchLiteral(step.literal, true)

	if sf.idx == len(sf.steps)-1 {
		after := currentPos(stream, state)
		next := state.popFrame()
		next = sf.then(next, sf.name, after)
		return step.style, next, true
	}

	advanced := &seqFrame{steps: sf.steps, idx: sf.idx + 1, then: sf.then, name: sf.name}
	return step.style, state.replaceTop(frame{kind: frameSequence, seq: advanced}), true
}
