package texmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartStateHasSingleTopLevelFrame(t *testing.T) {
	s := StartState()
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, frameTopLevel, s.top().kind)
	assert.Equal(t, -1, s.Line())
}

// TestStatePushNeverAliasesEarlierSnapshot guards the copy-on-write
// discipline: a State captured before a later push must keep reporting its
// own (shorter) stack forever, even though push and the earlier snapshot
// once shared the same backing array.
func TestStatePushNeverAliasesEarlierSnapshot(t *testing.T) {
	base := StartState()
	withTrailer := base.push(frame{kind: frameEndDocTrailer})
	snapshot := withTrailer

	withMore := withTrailer.push(frame{kind: frameVerb, verb: &verbFrame{delim: '|'}})

	assert.Equal(t, 2, snapshot.Depth())
	assert.Equal(t, frameEndDocTrailer, snapshot.top().kind)
	assert.Equal(t, 3, withMore.Depth())
	assert.Equal(t, frameVerb, withMore.top().kind)
}

// TestStateMarkGrowthNeverAliasesEarlierSnapshot exercises the same
// aliasing hazard on the openMarks/marks sequences: closing a mark shrinks
// by re-slicing (safe), but opening a new one afterward must never reuse
// spare capacity in a way that mutates a State value captured earlier.
func TestStateMarkGrowthNeverAliasesEarlierSnapshot(t *testing.T) {
	base := StartState().withLine(0)
	withOpen, _ := base.openMarkAt(MarkSection, Position{Line: 0, Column: 0}, Position{Line: 0, Column: 9})
	snapshot := withOpen

	closed := withOpen.closeMark(Position{Line: 0, Column: 20}, Position{Line: 0, Column: 21})
	reopened, _ := closed.openNumberedMarkAt(MarkTextbf, Position{Line: 0, Column: 30}, Position{Line: 0, Column: 39}, 0)

	om, ok := snapshot.topOpenMark()
	require.True(t, ok)
	assert.Equal(t, MarkSection, om.kind)
	assert.Equal(t, 0, om.from.Column)

	om2, ok := reopened.topOpenMark()
	require.True(t, ok)
	assert.Equal(t, MarkTextbf, om2.kind)

	require.Len(t, closed.Marks(), 1)
	assert.Equal(t, MarkSection, closed.Marks()[0].Kind)
}

func TestCloseMarkRecordsOpenParentChain(t *testing.T) {
	s := StartState().withLine(0)
	s, outerID := s.openMarkAt(MarkSection, Position{Line: 0, Column: 0}, Position{Line: 0, Column: 9})
	s, _ = s.openMarkAt(MarkTextbf, Position{Line: 0, Column: 10}, Position{Line: 0, Column: 18})
	s = s.closeMark(Position{Line: 0, Column: 25}, Position{Line: 0, Column: 26}) // closes textbf
	s = s.closeMark(Position{Line: 0, Column: 30}, Position{Line: 0, Column: 30}) // closes section

	require.Len(t, s.Marks(), 2)
	textbf := s.Marks()[0]
	section := s.Marks()[1]

	assert.Equal(t, MarkTextbf, textbf.Kind)
	assert.Equal(t, outerID, textbf.OpenParentID)
	assert.Equal(t, MarkSection, section.Kind)
	assert.Equal(t, -1, section.OpenParentID)
}

func TestAbandonMarkDropsWithoutClosing(t *testing.T) {
	s := StartState().withLine(0)
	s, _ = s.openMarkAt(MarkInlineMath, Position{Line: 0, Column: 0}, Position{Line: 0, Column: 1})
	s = s.abandonMark()

	assert.Equal(t, 0, s.openDepth())
	assert.Empty(t, s.Marks())
}
