package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshot captures everything Apply/Revert is responsible for restoring,
// for comparison with go-cmp across a trial apply+revert.
type snapshot struct {
	Board    [128]Piece
	Turn     Color
	EP       Square
	Clock    int
	MoveNum  int
	Castles  CastleRights
	Pieces   []Square
}

func snapshotOf(p *Position) snapshot {
	l := p.current()
	pieces := append([]Square(nil), p.PieceSquares()...)
	return snapshot{
		Board:   l.board,
		Turn:    l.turn,
		EP:      l.ep,
		Clock:   l.clock,
		MoveNum: l.moveNum,
		Castles: l.castles,
		Pieces:  pieces,
	}
}

func TestApplyRevertRestoresPositionExactly(t *testing.T) {
	pos := StartingPosition()
	for _, m := range pos.LegalMoves(White) {
		before := snapshotOf(pos)
		mm := m
		pos.Apply(&mm)
		pos.Revert(mm)
		after := snapshotOf(pos)

		diff := cmp.Diff(before, after, cmpopts.SortSlices(func(a, b Square) bool { return a < b }))
		assert.Empty(t, diff, "apply+revert of %v changed the position", m)
	}
}

func TestSaveRestoreDoesNotLeakIntoSeenCounts(t *testing.T) {
	pos := StartingPosition()

	// Trial-apply and revert the same move under Save/Restore, repeatedly:
	// if the repetition count leaked across the save boundary, this would
	// eventually report a draw by repetition even though only a single
	// real position has ever been reached.
	for i := 0; i < 5; i++ {
		pos.Save()
		m, err := pos.ParseUCI("g1f3")
		require.NoError(t, err)
		pos.Apply(&m)
		pos.Revert(m)
		pos.Restore()
	}

	assert.NotEqual(t, DrawRepetition, pos.UpdateStatus())
}

func TestSetConstructsArbitraryPosition(t *testing.T) {
	pos := NewPosition()
	pos.Set(Sq(4, 0), NewPiece(White, King))
	pos.Set(Sq(4, 7), NewPiece(Black, King))
	pos.SetTurn(White)

	assert.Equal(t, NewPiece(White, King), pos.Board(Sq(4, 0)))
	assert.Equal(t, Sq(4, 0), pos.King(White))
	assert.Equal(t, Sq(4, 7), pos.King(Black))
	assert.ElementsMatch(t, []Square{Sq(4, 0), Sq(4, 7)}, pos.PieceSquares())
}

func TestIsAttackedTracksIncrementalUpdates(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.IsAttacked(Sq(0, 7), White)) // rook a1 attacks a8 up the open file

	pos.Set(Sq(0, 3), NewPiece(Black, Pawn)) // block the file at a4
	assert.False(t, pos.IsAttacked(Sq(0, 7), White))
}
