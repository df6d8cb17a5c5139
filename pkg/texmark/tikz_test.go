package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokTikzContentRecognizesKeywordAndNumber(t *testing.T) {
	stream := NewStream(`\draw (0,0) -- (1,1);`)
	style, _, consumed := tokTikzContent(stream, StartState())
	assert.Equal(t, StyleKeyword, style)
	assert.True(t, consumed)
	assert.Equal(t, `\draw`, stream.Current())
}

func TestTokTikzContentRecognizesComment(t *testing.T) {
	stream := NewStream("% a tikz comment")
	style, _, consumed := tokTikzContent(stream, StartState())
	assert.Equal(t, StyleComment, style)
	assert.True(t, consumed)
}

func TestTokTikzContentPlainRunStopsBeforeNumber(t *testing.T) {
	stream := NewStream("node at 2")
	style, _, consumed := tokTikzContent(stream, StartState())
	assert.Equal(t, NoStyle, style)
	assert.True(t, consumed)
	assert.Equal(t, "node at ", stream.Current())
}
