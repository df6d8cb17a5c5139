package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokVerbRecognizeCapturesDelimiter(t *testing.T) {
	stream := NewStream(`|x|`)
	style, state, consumed := tokVerbRecognize(stream, StartState())
	assert.Equal(t, StyleTag, style)
	assert.True(t, consumed)
	require.Equal(t, frameVerb, state.top().kind)
	assert.Equal(t, byte('|'), state.top().verb.delim)
}

func TestTokVerbClosesOnMatchingDelimiter(t *testing.T) {
	vf := &verbFrame{delim: '|'}
	state := StartState().push(frame{kind: frameVerb, verb: vf})
	stream := NewStream(`code|`)

	style, state, consumed := tokVerb(stream, state, vf)
	assert.Equal(t, StyleString, style)
	assert.True(t, consumed)
	assert.True(t, stream.AtEndOfLine())
	assert.Equal(t, frameTopLevel, state.top().kind, "frameVerb must be popped once its delimiter is found")
}

func TestTokVerbSpansToEndOfLineWithoutClosingDelimiter(t *testing.T) {
	vf := &verbFrame{delim: '|'}
	state := StartState().push(frame{kind: frameVerb, verb: vf})
	stream := NewStream(`no delimiter here`)

	style, state, consumed := tokVerb(stream, state, vf)
	assert.Equal(t, StyleString, style)
	assert.True(t, consumed)
	assert.True(t, stream.AtEndOfLine())
	require.Equal(t, frameVerb, state.top().kind, "an unclosed \\verb must remain open across the line boundary")
}
