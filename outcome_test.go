package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStalemateClassification(t *testing.T) {
	pos, err := ParseFEN("k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, DrawStalemate, pos.UpdateStatus())
}

func TestFiftyMoveRuleOutranksInsufficientMaterial(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 1")
	require.NoError(t, err)
	assert.Equal(t, DrawFiftyMoves, pos.UpdateStatus())
}

func TestBareKingsInsufficientMaterial(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 10 1")
	require.NoError(t, err)
	assert.Equal(t, DrawNoMaterial, pos.UpdateStatus())
}

func TestSameColorBishopsInsufficientMaterial(t *testing.T) {
	pos, err := ParseFEN("3KB1b1/8/8/4k3/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.hasInsufficientMaterial())
}

func TestOppositeColorBishopsAreSufficient(t *testing.T) {
	pos, err := ParseFEN("3KB2b/8/8/4k3/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, pos.hasInsufficientMaterial())
}

func TestSingleMinorIsInsufficient(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/3KB3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.hasInsufficientMaterial())
}

func TestThreefoldRepetitionClassification(t *testing.T) {
	pos := StartingPosition()
	for i := 0; i < 3; i++ {
		applyUCI(t, pos, "g1f3", "g8f6", "f3g1", "f6g8")
	}
	assert.Equal(t, DrawRepetition, pos.UpdateStatus())
}

func TestActivePositionIsNotOver(t *testing.T) {
	pos := StartingPosition()
	assert.Equal(t, Active, pos.UpdateStatus())
	assert.False(t, pos.Status().IsOver())
}
