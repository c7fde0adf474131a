package chess

// Status is the game-status enum of spec.md §3.8. The integer ordering is
// load-bearing: "game over" is status != Active, and "is a draw" is
// status >= Draw.
type Status int

const (
	Active Status = iota
	Checkmate
	Resigned
	Draw
	DrawStalemate
	DrawRepetition
	DrawFiftyMoves
	DrawNoMaterial
)

// IsOver reports whether the game has ended.
func (s Status) IsOver() bool { return s != Active }

// IsDraw reports whether the status is one of the drawn outcomes.
func (s Status) IsDraw() bool { return s >= Draw }

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Checkmate:
		return "checkmate"
	case Resigned:
		return "resigned"
	case Draw:
		return "draw"
	case DrawStalemate:
		return "draw by stalemate"
	case DrawRepetition:
		return "draw by repetition"
	case DrawFiftyMoves:
		return "draw by the fifty-move rule"
	case DrawNoMaterial:
		return "draw by insufficient material"
	default:
		return "unknown status"
	}
}

// layer is one snapshot of mutable position state: the board, the
// incremental attack table, game metadata, and the per-color legal-move
// memoization. Position keeps a growable, reused stack of these so that
// save/restore (used by the move generator's in-check filter, by castling
// legality checks, and by perft) never allocates beyond initial growth.
type layer struct {
	board     [128]Piece
	attacks   attackTable
	pieceList []Square

	clock   int
	moveNum int
	ep      Square
	status  Status
	turn    Color
	castles CastleRights

	// seen maps a position hash to the running occurrence count that
	// putHash stored for it in this layer. The nearest layer (this one or
	// an ancestor) holding a hash has its current total count; see
	// Position.putHash.
	seen map[string]int

	// moveCache[c.colorBit()] memoizes LegalMoves(c); nil means "not
	// computed for the current position".
	moveCache [2][]Move
}

func newLayer() *layer {
	return &layer{seen: make(map[string]int)}
}

// reset clears l back to an empty board with default metadata, reusing its
// backing arrays. Used for a fresh Position; Save recycles arena slots with
// cloneFrom instead.
func (l *layer) reset() {
	l.board = [128]Piece{}
	l.attacks = attackTable{}
	l.pieceList = l.pieceList[:0]
	l.clock = 0
	l.moveNum = 1
	l.ep = NoSquare
	l.status = Active
	l.turn = White
	l.castles = newCastleRights()
	if l.seen == nil {
		l.seen = make(map[string]int)
	} else {
		for k := range l.seen {
			delete(l.seen, k)
		}
	}
	l.moveCache[0] = nil
	l.moveCache[1] = nil
}

// cloneFrom copies src's board/attacks/metadata/piece list into l, but
// resets l's own seen map to empty, per spec.md §3.6: repetition counts are
// not duplicated across layers, they are accounted for lazily by walking
// the layer stack.
func (l *layer) cloneFrom(src *layer) {
	l.board = src.board
	l.attacks = src.attacks
	if cap(l.pieceList) < len(src.pieceList) {
		l.pieceList = make([]Square, len(src.pieceList))
	} else {
		l.pieceList = l.pieceList[:len(src.pieceList)]
	}
	copy(l.pieceList, src.pieceList)
	l.clock = src.clock
	l.moveNum = src.moveNum
	l.ep = src.ep
	l.status = src.status
	l.turn = src.turn
	l.castles = src.castles
	if l.seen == nil {
		l.seen = make(map[string]int)
	} else {
		for k := range l.seen {
			delete(l.seen, k)
		}
	}
	l.moveCache[0] = src.moveCache[0]
	l.moveCache[1] = src.moveCache[1]
}

func (l *layer) invalidateMoveCache() {
	l.moveCache[0] = nil
	l.moveCache[1] = nil
}
