package chess

// wing identifies kingside or queenside castling.
type wing int

const (
	kingSide wing = iota
	queenSide
)

// castleSlot returns the index into CastleRights for the given color and
// wing, matching the teacher's color|wing indexing convention.
func castleSlot(c Color, w wing) int {
	i := c.colorBit() * 2
	if w == queenSide {
		i++
	}
	return i
}

// CastleRights tracks, per color and wing, which rook file (if any) remains
// eligible to castle. This is the Chess960-capable equivalent of spec.md
// §3.3's packed nibble register: instead of four 4-bit fields with an
// eligibility bit, it holds the rook's origin Square directly, using
// NoSquare to mean "no longer eligible". Any file 0-7 is a valid rook
// origin, so Chess960 back-rank arrangements are supported without special
// casing.
type CastleRights [4]Square

// newCastleRights returns a CastleRights with no side eligible to castle.
func newCastleRights() CastleRights {
	return CastleRights{NoSquare, NoSquare, NoSquare, NoSquare}
}

// Rook returns the tracked rook square for color/wing, or NoSquare if that
// side is no longer eligible to castle on that wing.
func (cr CastleRights) Rook(c Color, w wing) Square {
	return cr[castleSlot(c, w)]
}

// set records that color may castle with a rook starting on file.
func (cr *CastleRights) set(c Color, w wing, rook Square) {
	cr[castleSlot(c, w)] = rook
}

// kingMoved clears both of color's castling rights, called whenever color's
// king leaves its square (including by castling itself).
func (cr *CastleRights) kingMoved(c Color) {
	cr[castleSlot(c, kingSide)] = NoSquare
	cr[castleSlot(c, queenSide)] = NoSquare
}

// rookMoved clears the slot (if any) whose tracked rook square is sq, for
// whichever color/wing that square belongs to. It is safe
// to call for any square, including empty ones and king moves.
func (cr *CastleRights) rookMoved(sq Square) {
	for i, rook := range cr {
		if rook == sq {
			cr[i] = NoSquare
		}
	}
}

// any reports whether at least one wing is still eligible, used by the FEN
// codec to decide whether to emit "-".
func (cr CastleRights) any() bool {
	for _, sq := range cr {
		if sq != NoSquare {
			return true
		}
	}
	return false
}
