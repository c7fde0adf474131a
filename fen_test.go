package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r4rk1/2pp1ppp/8/8/5P2/8/PPPPP1PP/RNBQKBNR b KQ c3 0 12",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 0 1",
		"nrkbqrnb/pppppppp/8/8/8/8/PPPPPPPP/NRKBQRNB w FBfb - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		require.NoError(t, err, fen)
		assert.Equal(t, fen, pos.FEN(), "round trip of %s", fen)
	}
}

func TestParseFENFourFieldsDefaultsClocks(t *testing.T) {
	pos, err := ParseFEN("8/8/8/8/8/8/8/4K2k w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, pos.HalfmoveClock())
	assert.Equal(t, 1, pos.FullmoveNumber())
}

func TestParseFENRejectsMalformed(t *testing.T) {
	for _, fen := range []string{
		"",
		"not a fen at all",
		"8/8/8/8/8/8/8 w - - 0 1",          // too few ranks
		"9/8/8/8/8/8/8/8 w - - 0 1",         // rank overflows
		"8/8/8/8/8/8/8/8 x - - 0 1",         // bad side to move
		"8/8/8/8/8/8/8/8 w - z9 0 1",        // bad en passant square
	} {
		_, err := ParseFEN(fen)
		assert.Error(t, err, fen)
		assert.ErrorIs(t, err, ErrBadInput, fen)
	}
}

func TestStartingPositionMatchesStartFEN(t *testing.T) {
	pos := StartingPosition()
	assert.Equal(t, StartFEN, pos.FEN())
	assert.Equal(t, White, pos.Turn())
	assert.Equal(t, Sq(4, 0), pos.King(White))
	assert.Equal(t, Sq(4, 7), pos.King(Black))
}

func TestHashExcludesClocks(t *testing.T) {
	a, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	b, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 42")
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())
}
