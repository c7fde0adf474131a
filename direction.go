package chess

// dirs is the 8 principal ray directions as 0x88 deltas, orthogonal first
// (rook directions, indices 0-3) then diagonal (bishop directions, 4-7).
// Both the move generator and the incremental attack map walk these same
// eight directions.
var dirs = [8]int{+16, +1, -16, -1, +17, -15, -17, +15}

// knightDeltas are the eight knight-jump offsets.
var knightDeltas = [8]int{+31, +33, +14, +18, -18, -14, -33, -31}

// pawnCaptureDeltas are the file deltas of a pawn's two diagonal captures.
var pawnCaptureDeltas = [2]int{-1, +1}

func isOrthogonal(d int) bool {
	return d == dirs[0] || d == dirs[1] || d == dirs[2] || d == dirs[3]
}

func isDiagonal(d int) bool {
	return d == dirs[4] || d == dirs[5] || d == dirs[6] || d == dirs[7]
}

// slidesInDirection reports whether a piece of type t can slide along
// direction d (one of dirs).
func slidesInDirection(t PieceType, d int) bool {
	switch t {
	case Rook:
		return isOrthogonal(d)
	case Bishop:
		return isDiagonal(d)
	case Queen:
		return true
	default:
		return false
	}
}

// pawnForwardDelta returns the one-step forward offset for color.
func pawnForwardDelta(c Color) int {
	if c == White {
		return +16
	}
	return -16
}
