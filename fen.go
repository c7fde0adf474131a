package chess

import (
	"strconv"
	"strings"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func turnLetter(c Color) string {
	if c == Black {
		return "b"
	}
	return "w"
}

// FEN renders the position as Forsyth-Edwards Notation. Castling rights are
// rendered as KQkq when the position is a classical back-rank arrangement
// (for each color that still has a castling right, its king on e1/e8 and
// its rooks on a/h), and as Shredder-FEN file letters otherwise, per
// spec.md §6.1.
func (p *Position) FEN() string {
	l := p.current()
	var b strings.Builder
	b.WriteString(fenPlacement(l))
	b.WriteByte(' ')
	b.WriteString(turnLetter(l.turn))
	b.WriteByte(' ')
	b.WriteString(fenCastling(l))
	b.WriteByte(' ')
	b.WriteString(l.ep.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(l.clock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(l.moveNum))
	return b.String()
}

func fenPlacement(l *layer) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := l.board[Sq(file, rank)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pc.letter())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}
	return b.String()
}

func (l *layer) kingSquare(c Color) Square {
	for _, sq := range l.pieceList {
		if pc := l.board[sq]; pc.Type() == King && pc.Color() == c {
			return sq
		}
	}
	return NoSquare
}

// isClassicalCastling reports whether every recorded castling right is
// consistent with the classical (non-Chess960) back-rank layout, so that
// fenCastling can fall back to the familiar KQkq letters instead of
// Shredder-FEN file letters. A color with no castling rights left is not
// checked, so its king may stand anywhere.
func isClassicalCastling(l *layer) bool {
	hasRight := func(c Color) bool {
		return l.castles.Rook(c, kingSide) != NoSquare || l.castles.Rook(c, queenSide) != NoSquare
	}
	if wk := l.kingSquare(White); hasRight(White) && wk != NoSquare && wk != Sq(4, 0) {
		return false
	}
	if bk := l.kingSquare(Black); hasRight(Black) && bk != NoSquare && bk != Sq(4, 7) {
		return false
	}
	for _, c := range [2]Color{White, Black} {
		if rook := l.castles.Rook(c, kingSide); rook != NoSquare && rook.File() != 7 {
			return false
		}
		if rook := l.castles.Rook(c, queenSide); rook != NoSquare && rook.File() != 0 {
			return false
		}
	}
	return true
}

func fenCastling(l *layer) string {
	if !l.castles.any() {
		return "-"
	}
	classical := isClassicalCastling(l)
	var b strings.Builder
	for _, c := range [2]Color{White, Black} {
		for _, w := range [2]wing{kingSide, queenSide} {
			rook := l.castles.Rook(c, w)
			if rook == NoSquare {
				continue
			}
			var ch byte
			if classical {
				ch = 'K'
				if w == queenSide {
					ch = 'Q'
				}
			} else {
				ch = 'A' + byte(rook.File())
			}
			if c == Black {
				ch += 'a' - 'A'
			}
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// ParseFEN parses Forsyth-Edwards Notation (accepting both KQkq and
// Shredder-FEN castling fields) into a fresh Position. It accepts the
// standard six space-separated fields, or just the first four (piece
// placement, side to move, castling rights, en-passant target), defaulting
// the halfmove clock to 0 and the fullmove number to 1.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return nil, newError(KindBadInput, "FEN must have 4 or 6 fields: "+fen)
	}

	p := NewPosition()
	l := p.current()

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		l.turn = White
	case "b":
		l.turn = Black
	default:
		return nil, newError(KindBadInput, "invalid side to move: "+fields[1])
	}

	cr, err := parseCastling(l, fields[2])
	if err != nil {
		return nil, err
	}
	l.castles = cr

	ep, err := ParseSquare(fields[3])
	if err != nil {
		return nil, err
	}
	l.ep = ep

	if len(fields) == 6 {
		clock, err := strconv.Atoi(fields[4])
		if err != nil || clock < 0 {
			return nil, newError(KindBadInput, "invalid halfmove clock: "+fields[4])
		}
		l.clock = clock

		moveNum, err := strconv.Atoi(fields[5])
		if err != nil || moveNum < 1 {
			return nil, newError(KindBadInput, "invalid fullmove number: "+fields[5])
		}
		l.moveNum = moveNum
	}

	return p, nil
}

func parsePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return newError(KindBadInput, "piece placement must have 8 ranks: "+field)
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			pc, ok := pieceFromLetter(ch)
			if !ok || file >= 8 {
				return newError(KindBadInput, "invalid piece placement: "+field)
			}
			p.Set(Sq(file, rank), pc)
			file++
		}
		if file != 8 {
			return newError(KindBadInput, "rank does not sum to 8 files: "+rankStr)
		}
	}
	return nil
}

func parseCastling(l *layer, field string) (CastleRights, error) {
	cr := newCastleRights()
	if field == "-" {
		return cr, nil
	}
	for _, ch := range []byte(field) {
		color := White
		uc := ch
		if ch >= 'a' && ch <= 'z' {
			color = Black
			uc = ch - ('a' - 'A')
		}
		homeRank := 0
		if color == Black {
			homeRank = 7
		}
		switch {
		case uc == 'K':
			cr.set(color, kingSide, Sq(7, homeRank))
		case uc == 'Q':
			cr.set(color, queenSide, Sq(0, homeRank))
		case uc >= 'A' && uc <= 'H':
			file := int(uc - 'A')
			kingSq := l.kingSquare(color)
			w := kingSide
			if kingSq != NoSquare && file < kingSq.File() {
				w = queenSide
			}
			cr.set(color, w, Sq(file, homeRank))
		default:
			return cr, newError(KindBadInput, "invalid castling field: "+field)
		}
	}
	return cr, nil
}
