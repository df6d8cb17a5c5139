package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokEnvClosesOnOwnEndLiteral(t *testing.T) {
	s := StartState()
	desc, ok := s.lookupEnv("abstract")
	require.True(t, ok)

	st, _ := s.openMarkAt(desc.markKind, Position{Line: 0, Column: 0}, Position{Line: 0, Column: 10})
	ef := &envFrame{desc: desc, beginLine: 0}
	state := st.push(frame{kind: frameEnv, env: ef})
	stream := NewStream(`\end{abstract}`)

	style, state, consumed := tokEnv(stream, state, ef)
	assert.Equal(t, StyleTag, style)
	assert.True(t, consumed)
	require.Len(t, state.Marks(), 1)
	assert.Equal(t, MarkAbstract, state.Marks()[0].Kind)
	assert.Equal(t, frameTopLevel, state.top().kind)
}

func TestTokEnvClosingDocumentPushesTrailer(t *testing.T) {
	s := StartState()
	desc, ok := s.lookupEnv("document")
	require.True(t, ok)

	ef := &envFrame{desc: desc, beginLine: 0}
	state := s.push(frame{kind: frameEnv, env: ef})
	stream := NewStream(`\end{document}`)

	_, state, consumed := tokEnv(stream, state, ef)
	assert.True(t, consumed)
	require.Equal(t, frameEndDocTrailer, state.top().kind)
}

func TestTokRawEnvBodyTruncatesBeforeEmbeddedEnd(t *testing.T) {
	s := StartState()
	desc, ok := s.lookupEnv("verbatim")
	require.True(t, ok)

	ef := &envFrame{desc: desc, beginLine: 0}
	state := s.push(frame{kind: frameEnv, env: ef})
	stream := NewStream(`raw \end{verbatim} trailing`)

	style, state, consumed := tokEnv(stream, state, ef)
	assert.Equal(t, StyleString, style)
	assert.True(t, consumed)
	assert.Equal(t, "raw ", stream.Current())
	require.Equal(t, frameEnv, state.top().kind, "environment must still be open; \\end hasn't been consumed yet")

	style, state, consumed = tokEnv(stream, state, ef)
	assert.Equal(t, StyleTag, style)
	assert.True(t, consumed)
	assert.Equal(t, frameTopLevel, state.top().kind)
	assert.False(t, stream.AtEndOfLine(), "trailing text after \\end{verbatim} is left for the enclosing tokenizer")
}
