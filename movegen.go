package chess

// LegalMoves returns all legal moves for color in the current position,
// honoring checks, pins, castling (including Chess960), en passant and
// promotion. The returned slice is a defensive copy; callers may mutate it
// freely. Results are memoized per color and invalidated by any Apply,
// Revert or Set.
func (p *Position) LegalMoves(c Color) []Move {
	l := p.current()
	if cached := l.moveCache[c.colorBit()]; cached != nil {
		out := make([]Move, len(cached))
		copy(out, cached)
		return out
	}

	pseudo := p.pseudoLegalMoves(c)
	legal := pseudo[:0]
	for _, m := range pseudo {
		mm := m
		if p.isLegal(&mm, c) {
			legal = append(legal, mm)
		}
	}

	cached := make([]Move, len(legal))
	copy(cached, legal)
	l.moveCache[c.colorBit()] = cached

	out := make([]Move, len(cached))
	copy(out, cached)
	return out
}

// isLegal trial-applies m on a saved layer and reports whether mover's king
// is safe afterward. This single check handles pins and discovered checks:
// because Apply removes the moving piece (and any captured piece) before
// placing it at its destination, any ray this move exposes through the
// vacated square is already reflected in the attack table by the time
// kingInDanger runs. The trial Apply's repetition count is discarded, so
// p.repCount still holds the count from the last move applied by the caller.
func (p *Position) isLegal(m *Move, mover Color) bool {
	repCount := p.repCount
	p.Save()
	p.Apply(m)
	danger := p.kingInDanger(mover)
	p.Restore()
	p.repCount = repCount
	return !danger
}

// pseudoLegalMoves generates every move for color that is legal ignoring
// whether it leaves the mover's own king in check (except for castling,
// whose path-safety and origin-in-check rules are cheaper to check during
// generation than to discover via a full trial apply).
func (p *Position) pseudoLegalMoves(c Color) []Move {
	l := p.current()
	squares := make([]Square, len(l.pieceList))
	copy(squares, l.pieceList)

	var out []Move
	for _, sq := range squares {
		pc := l.board[sq]
		if pc == Empty || pc.Color() != c {
			continue
		}
		switch pc.Type() {
		case Pawn:
			p.genPawn(l, sq, pc, &out)
		case Knight:
			p.genKnight(l, sq, pc, &out)
		case Bishop, Rook, Queen:
			p.genSlider(l, sq, pc, &out)
		case King:
			p.genKing(l, sq, pc, &out)
			p.genCastling(l, c, &out)
		}
	}
	return out
}

func (p *Position) genKnight(l *layer, sq Square, what Piece, out *[]Move) {
	c := what.Color()
	for _, d := range knightDeltas {
		to, ok := sq.step(d)
		if !ok {
			continue
		}
		target := l.board[to]
		if target != Empty && target.Color() == c {
			continue
		}
		*out = append(*out, Move{What: what, From: sq, To: to, Capture: target, CaptureCoord: to, MarkEP: NoSquare})
	}
}

func (p *Position) genKing(l *layer, sq Square, what Piece, out *[]Move) {
	c := what.Color()
	for _, d := range dirs {
		to, ok := sq.step(d)
		if !ok {
			continue
		}
		target := l.board[to]
		if target != Empty && target.Color() == c {
			continue
		}
		*out = append(*out, Move{What: what, From: sq, To: to, Capture: target, CaptureCoord: to, MarkEP: NoSquare})
	}
}

func (p *Position) genSlider(l *layer, sq Square, what Piece, out *[]Move) {
	c := what.Color()
	for _, d := range dirs {
		if !slidesInDirection(what.Type(), d) {
			continue
		}
		cur := sq
		for {
			to, ok := cur.step(d)
			if !ok {
				break
			}
			target := l.board[to]
			if target != Empty && target.Color() == c {
				break
			}
			*out = append(*out, Move{What: what, From: sq, To: to, Capture: target, CaptureCoord: to, MarkEP: NoSquare})
			if target != Empty {
				break
			}
			cur = to
		}
	}
}

func (p *Position) genPawn(l *layer, sq Square, what Piece, out *[]Move) {
	c := what.Color()
	fwd := pawnForwardDelta(c)

	if one, ok := sq.step(fwd); ok && l.board[one] == Empty {
		p.addPawnMove(what, sq, one, Empty, one, out)
		if sq.relativeRank(c) == 1 {
			if two, ok := sq.step(2 * fwd); ok && l.board[two] == Empty {
				*out = append(*out, Move{What: what, From: sq, To: two, CaptureCoord: two, MarkEP: one})
			}
		}
	}

	for _, df := range pawnCaptureDeltas {
		to, ok := sq.step(fwd + df)
		if !ok {
			continue
		}
		if target := l.board[to]; target != Empty {
			if target.Color() != c {
				p.addPawnMove(what, sq, to, target, to, out)
			}
			continue
		}
		if to == l.ep {
			capSq := Sq(to.File(), sq.Rank())
			*out = append(*out, Move{
				What: what, From: sq, To: to,
				Capture: l.board[capSq], CaptureCoord: capSq, MarkEP: NoSquare,
			})
		}
	}
}

// addPawnMove emits a single pawn move, expanding it into four promotion
// variants (queen, rook, knight, bishop, in that order) when it lands on
// the far rank.
func (p *Position) addPawnMove(what Piece, from, to Square, capture Piece, captureCoord Square, out *[]Move) {
	c := what.Color()
	if to.relativeRank(c) == 7 {
		for _, pt := range [4]PieceType{Queen, Rook, Knight, Bishop} {
			*out = append(*out, Move{
				What: what, From: from, To: to,
				Capture: capture, CaptureCoord: captureCoord,
				Promote: pt, MarkEP: NoSquare,
			})
		}
		return
	}
	*out = append(*out, Move{What: what, From: from, To: to, Capture: capture, CaptureCoord: captureCoord, MarkEP: NoSquare})
}

// genCastling appends any castling moves available to color. Path-clear
// (rule 1) and path-safety (rule 2) are checked here; the final in-check
// trial (rule 3) is left to the generic pseudo-legal filter in LegalMoves,
// since it applies uniformly to every move anyway.
func (p *Position) genCastling(l *layer, c Color, out *[]Move) {
	kingSq := p.King(c)
	if kingSq == NoSquare || l.board[kingSq].Moved() {
		return
	}
	rank := kingSq.Rank()
	for _, w := range [2]wing{kingSide, queenSide} {
		rookSq := l.castles.Rook(c, w)
		if rookSq == NoSquare {
			continue
		}
		kingDestFile, rookDestFile := 6, 5
		if w == queenSide {
			kingDestFile, rookDestFile = 2, 3
		}
		kingTo := Sq(kingDestFile, rank)
		rookTo := Sq(rookDestFile, rank)

		if !p.castlePathClear(l, kingSq, kingTo, rookSq, rookTo) {
			continue
		}
		if !p.castlePathSafe(c, kingSq, kingTo, rookSq) {
			continue
		}
		*out = append(*out, Move{
			What:           l.board[kingSq],
			From:           kingSq,
			To:             kingTo,
			CaptureCoord:   kingTo,
			CastleRook:     l.board[rookSq],
			CastleRookFrom: rookSq,
			CastleRookTo:   rookTo,
			MarkEP:         NoSquare,
		})
	}
}

func fileRange(squares ...Square) (min, max int) {
	min, max = squares[0].File(), squares[0].File()
	for _, sq := range squares[1:] {
		if f := sq.File(); f < min {
			min = f
		} else if f > max {
			max = f
		}
	}
	return
}

// castlePathClear implements rule 1: every square in the inclusive range
// spanning king-from/to and rook-from/to must be empty, except the king's
// and rook's own origin squares.
func (p *Position) castlePathClear(l *layer, kf, kt, rf, rt Square) bool {
	rank := kf.Rank()
	minF, maxF := fileRange(kf, kt, rf, rt)
	for f := minF; f <= maxF; f++ {
		sq := Sq(f, rank)
		if sq == kf || sq == rf {
			continue
		}
		if l.board[sq] != Empty {
			return false
		}
	}
	return true
}

// castlePathSafe implements rule 2: temporarily remove the king and rook,
// place a phantom king of color c on every square the king traverses
// (inclusive of origin and destination), and check that none of them is
// attacked. The attack map tolerates multiple same-color kings.
func (p *Position) castlePathSafe(c Color, kf, kt, rf Square) bool {
	rank := kf.Rank()
	minF, maxF := fileRange(kf, kt)

	p.Save()
	l := p.current()
	l.removePiece(kf)
	l.removePiece(rf)
	for f := minF; f <= maxF; f++ {
		l.addPiece(Sq(f, rank), NewPiece(c, King))
	}
	safe := !p.kingInDanger(c)
	p.Restore()
	return safe
}
