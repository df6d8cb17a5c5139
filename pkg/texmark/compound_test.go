package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokCompoundKeywordPushesCompoundFrame(t *testing.T) {
	style, state, consumed := tokCompoundKeyword(NewStream(`{x}`), StartState(), Position{}, MarkTitle, true)
	assert.Equal(t, StyleTag, style)
	assert.True(t, consumed)
	require.Equal(t, frameCompound, state.top().kind)
	assert.Equal(t, MarkTitle, state.top().compound.kind)
	assert.True(t, state.top().compound.hasMark)
}

func TestTokCompoundWithOptionalArgumentMarksOnlyRequired(t *testing.T) {
	from := Position{Line: 0, Column: 0}
	cf := &compoundFrame{kind: MarkTitle, hasMark: true, from: from, phase: 0}
	state := StartState().push(frame{kind: frameCompound, compound: cf})
	stream := NewStream(`[Short]{Long Title}`)

	for !stream.AtEndOfLine() {
		_, state, _ = dispatch(state.top(), stream, state)
	}

	require.Len(t, state.Marks(), 1)
	m := state.Marks()[0]
	assert.Equal(t, MarkTitle, m.Kind)
	assert.Equal(t, from, m.From)
	assert.Equal(t, frameTopLevel, state.top().kind)
}

func TestTokCompoundWithoutMarkProducesNoMark(t *testing.T) {
	cf := &compoundFrame{kind: MarkTitle, hasMark: false, from: Position{}, phase: 0}
	state := StartState().push(frame{kind: frameCompound, compound: cf})
	stream := NewStream(`{Ada Lovelace}`)

	for !stream.AtEndOfLine() {
		_, state, _ = dispatch(state.top(), stream, state)
	}

	assert.Empty(t, state.Marks())
	assert.Equal(t, frameTopLevel, state.top().kind)
}

func TestTokCompoundAbandonsWhenNeitherBracketFollows(t *testing.T) {
	cf := &compoundFrame{kind: MarkTitle, hasMark: true, from: Position{}, phase: 0}
	state := StartState().push(frame{kind: frameCompound, compound: cf})
	stream := NewStream(`not a bracket`)

	_, state, consumed := tokCompound(stream, state, cf)
	assert.False(t, consumed)
	assert.Equal(t, frameTopLevel, state.top().kind)
}
