package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerftStartingPosition(t *testing.T) {
	want := []uint64{1, 20, 400, 8902, 197281}
	pos := StartingPosition()
	for depth, n := range want {
		assert.Equal(t, n, pos.Perft(depth), "perft(%d)", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	assert.Equal(t, uint64(48), pos.Perft(1))
	assert.Equal(t, uint64(2039), pos.Perft(2))
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	pos := StartingPosition()
	div := pos.PerftDivide(3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	assert.Equal(t, pos.Perft(3), sum)
	assert.Len(t, div, 20)
}

func applyUCI(t *testing.T, pos *Position, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m, err := pos.ParseUCI(s)
		require.NoError(t, err, "parsing %s", s)
		pos.Apply(&m)
	}
}

func TestFoolsMateCheckmate(t *testing.T) {
	pos := StartingPosition()
	applyUCI(t, pos, "f2f3", "e7e5", "g2g4", "d8h4")
	assert.Equal(t, Checkmate, pos.UpdateStatus())
	assert.Empty(t, pos.LegalMoves(White))
}

func TestClassicalCastlingAvailableAndApplies(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	moves := pos.LegalMoves(White)
	var kingside, queenside *Move
	for i, m := range moves {
		if !m.IsCastle() {
			continue
		}
		if m.To == Sq(6, 0) {
			kingside = &moves[i]
		} else if m.To == Sq(2, 0) {
			queenside = &moves[i]
		}
	}
	require.NotNil(t, kingside)
	require.NotNil(t, queenside)

	pos.Apply(kingside)
	assert.Equal(t, NewPiece(White, King).WithMoved(), pos.Board(Sq(6, 0)))
	assert.Equal(t, NewPiece(White, Rook).WithMoved(), pos.Board(Sq(5, 0)))
	assert.Equal(t, Empty, pos.Board(Sq(4, 0)))
	assert.Equal(t, Empty, pos.Board(Sq(7, 0)))
}

func TestChess960CastlingRookDestinationIsKingOrigin(t *testing.T) {
	// White king d1, rooks a1 and h1: a non-classical (Shredder) back rank
	// where the queenside castle puts the rook on d1, the king's own origin.
	pos, err := ParseFEN("3k4/8/8/8/8/8/8/R2K3R w AH - 0 1")
	require.NoError(t, err)

	moves := pos.LegalMoves(White)
	var kingside, queenside *Move
	for i, m := range moves {
		if !m.IsCastle() {
			continue
		}
		if m.To == Sq(6, 0) {
			kingside = &moves[i]
		} else if m.To == Sq(2, 0) {
			queenside = &moves[i]
		}
	}
	require.NotNil(t, kingside, "kingside castle should be legal")
	require.NotNil(t, queenside, "queenside castle should be legal")

	assert.Equal(t, Sq(7, 0), kingside.CastleRookFrom)
	assert.Equal(t, Sq(5, 0), kingside.CastleRookTo)
	assert.Equal(t, Sq(0, 0), queenside.CastleRookFrom)
	assert.Equal(t, Sq(3, 0), queenside.CastleRookTo)

	pos.Apply(queenside)
	assert.Equal(t, NewPiece(White, King).WithMoved(), pos.Board(Sq(2, 0)))
	assert.Equal(t, NewPiece(White, Rook).WithMoved(), pos.Board(Sq(3, 0)))
	assert.Equal(t, Empty, pos.Board(Sq(0, 0)))
}

func TestCastlingThroughCheckIsIllegal(t *testing.T) {
	// Black rook on f8 attacks f1, the square the white king must cross to
	// castle kingside; queenside remains legal.
	pos, err := ParseFEN("5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	for _, m := range pos.LegalMoves(White) {
		if m.IsCastle() {
			assert.NotEqual(t, Sq(6, 0), m.To, "castling through an attacked square must be filtered")
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	var ep *Move
	for _, m := range pos.LegalMoves(White) {
		if m.IsEnPassant() {
			mm := m
			ep = &mm
		}
	}
	require.NotNil(t, ep)
	assert.Equal(t, Sq(3, 4), ep.CaptureCoord) // the captured pawn sits on d5, not d6

	pos.Apply(ep)
	assert.Equal(t, Empty, pos.Board(Sq(3, 4)))
	assert.Equal(t, NewPiece(White, Pawn).WithMoved(), pos.Board(Sq(3, 5)))
}

func TestPromotionGeneratesFourVariants(t *testing.T) {
	pos, err := ParseFEN("8/P3k3/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var promos []PieceType
	for _, m := range pos.LegalMoves(White) {
		if m.IsPromotion() {
			promos = append(promos, m.Promote)
		}
	}
	assert.Equal(t, []PieceType{Queen, Rook, Knight, Bishop}, promos)
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// Black rook e8 pins the white knight on e5 to the white king on e1
	// along the e-file.
	pos, err := ParseFEN("4r3/8/8/4N3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	for _, m := range pos.LegalMoves(White) {
		if m.From == Sq(4, 4) {
			t.Fatalf("pinned knight must have no legal moves, got %v", m)
		}
	}
}
