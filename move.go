package chess

// priorState is the subset of layer metadata that a move needs to restore
// on revert: everything apply() can change besides the board and attack
// table, which are undone by replaying the move's own from/to/capture/
// castle fields in reverse.
type priorState struct {
	clock   int
	moveNum int
	ep      Square
	status  Status
	castles CastleRights
}

// Move records a fully-resolved move, ready to apply or revert without
// consulting the move generator again. The move generator is the only
// producer of Move values that can be Applied; it is responsible for
// filling every field correctly, including disambiguating en passant's
// capture square from its destination square.
type Move struct {
	What Piece // the piece as it stood before moving (moved-bit as-is)

	From, To Square

	Capture      Piece  // captured piece, or Empty
	CaptureCoord Square // equals To, except en passant: the captured pawn's square

	CastleRook     Piece  // the rook, if this is a castling move, else Empty
	CastleRookFrom Square
	CastleRookTo   Square

	Promote PieceType // promotion piece type, or NoPieceType

	MarkEP Square // new en-passant target after this move, or NoSquare

	prior priorState // metadata snapshot taken before the move, for revert
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool { return m.CastleRook != Empty }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Capture != Empty && m.Capture.Type() == Pawn && m.CaptureCoord != m.To
}

// IsCapture reports whether m captures a piece.
func (m Move) IsCapture() bool { return m.Capture != Empty }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promote != NoPieceType }

// Equal compares the fields that identify a move uniquely (from, to,
// promotion); castling and en-passant are implied by from/to/the board.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promote == o.Promote
}

// capturePriorState snapshots the fields apply() is about to change.
func (p *Position) capturePriorState() priorState {
	l := p.current()
	return priorState{
		clock:   l.clock,
		moveNum: l.moveNum,
		ep:      l.ep,
		status:  l.status,
		castles: l.castles,
	}
}

// Apply mutates the position to reflect m, which must have been produced by
// this position's own move generator (Apply never validates legality). It
// fills in m.prior as a side effect so that m can later be passed to
// Revert.
func (p *Position) Apply(m *Move) {
	m.prior = p.capturePriorState()
	l := p.current()

	mover := m.What.Color()

	if m.Capture != Empty {
		l.removePiece(m.CaptureCoord)
	}
	l.removePiece(m.From)
	if m.CastleRook != Empty {
		l.removePiece(m.CastleRookFrom)
	}

	placed := m.What.WithMoved()
	if m.Promote != NoPieceType {
		placed = NewPiece(mover, m.Promote).WithMoved()
	}
	l.addPiece(m.To, placed)
	if m.CastleRook != Empty {
		l.addPiece(m.CastleRookTo, m.CastleRook.WithMoved())
	}

	l.ep = m.MarkEP
	if m.What.Type() == Pawn || m.Capture != Empty {
		l.clock = 0
	} else {
		l.clock++
	}

	if m.What.Type() == King {
		l.castles.kingMoved(mover)
	}
	l.castles.rookMoved(m.From)
	if m.Capture != Empty {
		l.castles.rookMoved(m.CaptureCoord)
	}

	if mover == Black {
		l.moveNum++
	}
	l.turn = mover.Enemy()

	l.invalidateMoveCache()
	p.repCount = p.putHash(p.Hash())
}

// Revert undoes m, which must have been the most recently applied move on
// this position (Apply must have been called on m since it fills in
// m.prior). Reverting restores the board, attack table, and all metadata to
// their exact pre-move values.
func (p *Position) Revert(m Move) {
	p.removeHash(p.Hash())
	l := p.current()

	mover := m.What.Color()

	l.removePiece(m.To)
	if m.CastleRook != Empty {
		l.removePiece(m.CastleRookTo)
	}

	l.addPiece(m.From, m.What)
	if m.Capture != Empty {
		l.addPiece(m.CaptureCoord, m.Capture)
	}
	if m.CastleRook != Empty {
		l.addPiece(m.CastleRookFrom, m.CastleRook)
	}

	l.clock = m.prior.clock
	l.moveNum = m.prior.moveNum
	l.ep = m.prior.ep
	l.status = m.prior.status
	l.castles = m.prior.castles
	l.turn = mover

	l.invalidateMoveCache()
}
