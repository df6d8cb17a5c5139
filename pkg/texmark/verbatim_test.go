package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokVerbatimBodyConsumesWholeLineLiterally(t *testing.T) {
	stream := NewStream(`\section{fake} $math$ % not a comment`)
	style, _, consumed := tokVerbatimBody(stream, StartState())
	assert.Equal(t, StyleString, style)
	assert.True(t, consumed)
	assert.True(t, stream.AtEndOfLine())
	assert.Equal(t, `\section{fake} $math$ % not a comment`, stream.Current())
}

func TestTokCommentBodyConsumesWholeLineAsComment(t *testing.T) {
	stream := NewStream(`this is excluded \whatever $x$`)
	style, _, consumed := tokCommentBody(stream, StartState())
	assert.Equal(t, StyleComment, style)
	assert.True(t, consumed)
	assert.True(t, stream.AtEndOfLine())
}

func TestTokVerbatimBodyOnEmptyLineConsumesNothing(t *testing.T) {
	stream := NewStream("")
	style, _, consumed := tokVerbatimBody(stream, StartState())
	assert.Equal(t, NoStyle, style)
	assert.True(t, consumed)
}
