package chess

// attackTable is a per-(square, color) attacker-count table, indexed
// 2*square + colorBit. Each cell counts how many pieces of that color
// currently attack that square "through" the current occupancy, following
// the convention that a slider's ray includes (and is terminated by) the
// first blocking piece regardless of its color.
//
// The table is maintained incrementally by addPiece/removePiece rather than
// recomputed from scratch, so IsAttacked is an O(1) lookup. The subtlety,
// per the data model, is that adding or removing a piece at sq can change
// what every slider whose ray passes through sq attacks: a newly placed
// piece shortens such rays, a removed one lengthens them. Both functions
// therefore do two things: update the moved piece's own contribution, and
// walk outward from sq in all 8 directions to find and rescan any slider on
// the far side whose ray passes through sq.
type attackTable [256]int8

func attackIndex(sq Square, c Color) int {
	return int(sq)*2 + c.colorBit()
}

// isAttacked reports whether sq is attacked by a piece of color c.
func (t *attackTable) isAttacked(sq Square, c Color) bool {
	return t[attackIndex(sq, c)] > 0
}

// addPiece places piece at sq on the board and brings the attack table up
// to date: piece's own attacks are added, and any slider whose ray used to
// pass through sq has its ray beyond sq removed (since piece now blocks it).
func (l *layer) addPiece(sq Square, p Piece) {
	l.board[sq] = p
	l.pieceList = append(l.pieceList, sq)
	l.adjustOwnAttacks(sq, p, +1)
	l.rescanThroughSquare(sq, -1)
}

// removePiece clears sq (which must be occupied) and brings the attack
// table up to date symmetrically with addPiece.
func (l *layer) removePiece(sq Square) {
	p := l.board[sq]
	l.adjustOwnAttacks(sq, p, -1)
	l.rescanThroughSquare(sq, +1)
	l.board[sq] = Empty
	l.removeFromPieceList(sq)
}

func (l *layer) removeFromPieceList(sq Square) {
	for i, s := range l.pieceList {
		if s == sq {
			last := len(l.pieceList) - 1
			l.pieceList[i] = l.pieceList[last]
			l.pieceList = l.pieceList[:last]
			return
		}
	}
}

// adjustOwnAttacks adds (delta=+1) or removes (delta=-1) the squares that
// the piece at sq attacks, given the board's current occupancy.
func (l *layer) adjustOwnAttacks(sq Square, p Piece, delta int8) {
	c := p.Color()
	switch p.Type() {
	case Pawn:
		fwd := pawnForwardDelta(c)
		for _, df := range pawnCaptureDeltas {
			if to, ok := sq.step(fwd + df); ok {
				l.attacks[attackIndex(to, c)] += delta
			}
		}
	case Knight:
		for _, d := range knightDeltas {
			if to, ok := sq.step(d); ok {
				l.attacks[attackIndex(to, c)] += delta
			}
		}
	case King:
		for _, d := range dirs {
			if to, ok := sq.step(d); ok {
				l.attacks[attackIndex(to, c)] += delta
			}
		}
	case Bishop, Rook, Queen:
		for _, d := range dirs {
			if !slidesInDirection(p.Type(), d) {
				continue
			}
			cur := sq
			for {
				to, ok := cur.step(d)
				if !ok {
					break
				}
				l.attacks[attackIndex(to, c)] += delta
				cur = to
				if l.board[cur] != Empty {
					break
				}
			}
		}
	}
}

// rescanThroughSquare walks outward from sq in all 8 directions. For each
// direction it finds the nearest occupied square b (if any); if b holds a
// slider whose movement covers that direction, b's ray passes through sq,
// so the squares beyond sq (continuing away from b) gain or lose b's
// contribution, governed by sign: sign=-1 when sq has just become occupied
// (the ray is cut short at sq), sign=+1 when sq has just become empty (the
// ray now extends through and past sq).
func (l *layer) rescanThroughSquare(sq Square, sign int8) {
	for _, d := range dirs {
		cur := sq
		var blocker Piece
		found := false
		for {
			to, ok := cur.step(d)
			if !ok {
				break
			}
			cur = to
			if l.board[cur] != Empty {
				blocker = l.board[cur]
				found = true
				break
			}
		}
		if !found || !slidesInDirection(blocker.Type(), d) {
			continue
		}
		c := blocker.Color()
		beyond := sq
		for {
			to, ok := beyond.step(-d)
			if !ok {
				break
			}
			beyond = to
			l.attacks[attackIndex(beyond, c)] += sign
			if l.board[beyond] != Empty {
				break
			}
		}
	}
}
