package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokEndDocTrailerConsumesLineAsCommentAndStaysOpen(t *testing.T) {
	state := StartState().push(frame{kind: frameEndDocTrailer})
	stream := NewStream(`\section{Ignored} $x$ % still ignored`)

	style, state, consumed := tokEndDocTrailer(stream, state)
	assert.Equal(t, StyleComment, style)
	assert.True(t, consumed)
	assert.True(t, stream.AtEndOfLine())
	assert.Empty(t, state.Marks())
	require.Equal(t, frameEndDocTrailer, state.top().kind, "the trailer frame is never popped")
}

func TestBlankLineTreatsEndDocTrailerAsTolerant(t *testing.T) {
	state := StartState().push(frame{kind: frameEndDocTrailer})
	state = state.BlankLine()
	assert.Equal(t, frameEndDocTrailer, state.top().kind)
}
