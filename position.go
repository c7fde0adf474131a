package chess

// Position is a mutable chess position: a board, an incremental attack map,
// game metadata, and a layered undo history. It is not safe for concurrent
// use; independent Positions are fully independent.
type Position struct {
	layers []*layer
	cur    int

	// repCount is the occurrence count returned by the putHash call made
	// by the most recent Apply, consulted by the outcome classifier so
	// that it does not call putHash a second time for the same move.
	repCount int
}

// initialLayerDepth is the arena stack's starting depth, per the "pre-size a
// stack and treat it as a ring of mutable slots" design note. Depths beyond
// this grow the slice normally.
const initialLayerDepth = 256

// NewPosition returns an empty position (no pieces, White to move, no
// castling rights, move number 1). Direct mutation via Set is only valid
// before any move is queried or applied, per the construction contract in
// spec.md §9.
func NewPosition() *Position {
	p := &Position{layers: make([]*layer, 1, initialLayerDepth)}
	p.layers[0] = newLayer()
	p.layers[0].reset()
	return p
}

// StartingPosition returns the standard chess starting position.
func StartingPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic("chess: StartFEN failed to parse: " + err.Error())
	}
	return p
}

func (p *Position) current() *layer { return p.layers[p.cur] }

// Save pushes a new layer cloned from the current one and makes it current.
// It never allocates once the arena has grown past the deepest point it has
// previously reached. Pair every Save with a matching Restore.
func (p *Position) Save() {
	p.cur++
	if p.cur == len(p.layers) {
		p.layers = append(p.layers, newLayer())
	}
	p.layers[p.cur].cloneFrom(p.layers[p.cur-1])
}

// Restore pops the current layer, discarding any mutations made since the
// matching Save. It is a no-op safety bound if called without a prior Save.
func (p *Position) Restore() {
	if p.cur > 0 {
		p.cur--
	}
}

// Board returns the piece occupying sq, or Empty.
func (p *Position) Board(sq Square) Piece { return p.current().board[sq] }

// Turn returns the color to move.
func (p *Position) Turn() Color { return p.current().turn }

// Status returns the current game status.
func (p *Position) Status() Status { return p.current().status }

// EnPassant returns the current en-passant target square, or NoSquare.
func (p *Position) EnPassant() Square { return p.current().ep }

// HalfmoveClock returns the fifty-move-rule counter.
func (p *Position) HalfmoveClock() int { return p.current().clock }

// FullmoveNumber returns the current full-move number.
func (p *Position) FullmoveNumber() int { return p.current().moveNum }

// CastleRights returns a copy of the current castling-rights table.
func (p *Position) CastleRights() CastleRights { return p.current().castles }

// PieceSquares returns a defensive copy of the occupied squares.
func (p *Position) PieceSquares() []Square {
	l := p.current()
	out := make([]Square, len(l.pieceList))
	copy(out, l.pieceList)
	return out
}

// IsAttacked reports whether sq is attacked by a piece of color c in the
// current position. O(1): a lookup into the incremental attack table.
func (p *Position) IsAttacked(sq Square, c Color) bool {
	return p.current().attacks.isAttacked(sq, c)
}

// King returns the square of color's king, or NoSquare if there is none
// (only possible during construction, before the position is complete).
func (p *Position) King(c Color) Square {
	l := p.current()
	for _, sq := range l.pieceList {
		if pc := l.board[sq]; pc.Type() == King && pc.Color() == c {
			return sq
		}
	}
	return NoSquare
}

// kingInDanger reports whether color's king is currently attacked. Multiple
// same-color kings may be temporarily present during castling-through-check
// evaluation (see movegen.go); in that case the king is in danger if any of
// them is attacked.
func (p *Position) kingInDanger(c Color) bool {
	l := p.current()
	enemy := c.Enemy()
	for _, sq := range l.pieceList {
		pc := l.board[sq]
		if pc.Type() != King || pc.Color() != c {
			continue
		}
		if p.IsAttacked(sq, enemy) {
			return true
		}
	}
	return false
}

// Set places piece on sq, or clears it when piece is Empty, and invalidates
// the current layer's move cache. It is the only way to edit the board
// outside of Apply/Revert. The other Set* methods below do not invalidate
// the move cache.
func (p *Position) Set(sq Square, piece Piece) {
	l := p.current()
	if l.board[sq] != Empty {
		l.removePiece(sq)
	}
	if piece != Empty {
		l.addPiece(sq, piece)
	}
	l.invalidateMoveCache()
}

// SetTurn sets the side to move. Construction-only, see Set.
func (p *Position) SetTurn(c Color) { p.current().turn = c }

// SetEnPassant sets the en-passant target square. Construction-only.
func (p *Position) SetEnPassant(sq Square) { p.current().ep = sq }

// SetHalfmoveClock sets the fifty-move-rule counter. Construction-only.
func (p *Position) SetHalfmoveClock(n int) { p.current().clock = n }

// SetFullmoveNumber sets the full-move counter. Construction-only.
func (p *Position) SetFullmoveNumber(n int) { p.current().moveNum = n }

// SetCastleRights replaces the castling-rights table. Construction-only.
func (p *Position) SetCastleRights(cr CastleRights) { p.current().castles = cr }

// putHash records one more occurrence of hash in the current layer and
// returns the total number of occurrences across the layer stack. Per
// spec.md §3.6, seen is not duplicated on Save: instead this walks the
// stack downward to find the most recent layer already holding hash, adds
// one, and stores the running total in the current layer.
func (p *Position) putHash(hash string) int {
	count := 0
	for i := p.cur; i >= 0; i-- {
		if n, ok := p.layers[i].seen[hash]; ok {
			count = n
			break
		}
	}
	count++
	p.current().seen[hash] = count
	return count
}

// removeHash undoes the effect of the most recent putHash(hash) at or below
// the current layer, mirroring putHash's downward walk: the nearest layer
// (current or ancestor) still holding an entry for hash has it decremented.
func (p *Position) removeHash(hash string) {
	for i := p.cur; i >= 0; i-- {
		if n, ok := p.layers[i].seen[hash]; ok {
			if n <= 1 {
				delete(p.layers[i].seen, hash)
			} else {
				p.layers[i].seen[hash] = n - 1
			}
			return
		}
	}
}
