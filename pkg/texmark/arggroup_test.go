package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokArgGroupClosesAndRecordsMark(t *testing.T) {
	s := StartState()
	s, _ = s.openMarkAt(MarkTextbf, Position{Line: 0, Column: 0}, Position{Line: 0, Column: 8})
	af := &argFrame{closeLiteral: "}", closeStyle: StyleBracket, content: ctText, marked: true}
	state := s.push(frame{kind: frameArgGroup, arg: af})
	stream := NewStream("bold}")

	for !stream.AtEndOfLine() {
		_, state, _ = dispatch(state.top(), stream, state)
	}

	require.Len(t, state.Marks(), 1)
	assert.Equal(t, MarkTextbf, state.Marks()[0].Kind)
	assert.Equal(t, frameTopLevel, state.top().kind)
}

func TestTokArgGroupUnmarkedDoesNotProduceMark(t *testing.T) {
	af := &argFrame{closeLiteral: "}", closeStyle: StyleBracket, content: ctVerbatim, marked: false}
	state := StartState().push(frame{kind: frameArgGroup, arg: af})
	stream := NewStream("path/to/file}")

	for !stream.AtEndOfLine() {
		_, state, _ = dispatch(state.top(), stream, state)
	}

	assert.Empty(t, state.Marks())
	assert.Equal(t, frameTopLevel, state.top().kind)
}

func TestTokArgGroupRawBodyStopsBeforeCloseLiteralMidLine(t *testing.T) {
	af := &argFrame{closeLiteral: "}", closeStyle: StyleBracket, content: ctVerbatim, marked: false}
	state := StartState().push(frame{kind: frameArgGroup, arg: af})
	stream := NewStream(`fig:intro} trailing`)

	style, state, consumed := tokArgGroup(stream, state, af)
	assert.Equal(t, StyleString, style)
	assert.True(t, consumed)
	assert.Equal(t, "fig:intro", stream.Current())
	require.Equal(t, frameArgGroup, state.top().kind, "the closing brace hasn't been consumed yet")

	style, state, consumed = tokArgGroup(stream, state, af)
	assert.Equal(t, StyleBracket, style)
	assert.True(t, consumed)
	assert.Equal(t, frameTopLevel, state.top().kind)
	assert.False(t, stream.AtEndOfLine(), "trailing text after the closing brace is left for the caller")
}
