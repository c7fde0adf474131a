package chess

import (
	"regexp"
	"strings"
)

var sanPattern = regexp.MustCompile(`^([NBRQK]?)([a-h]?)([1-8]?)x?([a-h][1-8])(?:=([NBRQ]))?$`)

var figurineLetter = map[PieceType][2]rune{
	Knight: {'♘', '♞'},
	Bishop: {'♗', '♝'},
	Rook:   {'♖', '♜'},
	Queen:  {'♕', '♛'},
	King:   {'♔', '♚'},
}

// SAN renders m in Standard Algebraic Notation, as it would be written
// immediately before applying m to p: disambiguation is computed against
// p's other legal moves, and the trailing + or # is computed by trial-
// applying m and checking the resulting position.
func (p *Position) SAN(m Move) string {
	return p.renderSAN(m, false)
}

// SANFigurine renders m like SAN, but with the moving piece's letter (for
// non-pawn moves) replaced by its Unicode chess figurine glyph.
func (p *Position) SANFigurine(m Move) string {
	return p.renderSAN(m, true)
}

func (p *Position) renderSAN(m Move, figurine bool) string {
	if m.IsCastle() {
		s := "O-O"
		if m.To.File() == 2 {
			s = "O-O-O"
		}
		return s + p.checkSuffix(m)
	}

	var b strings.Builder
	pt := m.What.Type()
	if pt != Pawn {
		b.WriteString(pieceGlyph(pt, m.What.Color(), figurine))
		b.WriteString(p.disambiguation(m))
	} else if m.IsCapture() {
		b.WriteByte('a' + byte(m.From.File()))
	}
	if m.IsCapture() {
		b.WriteByte('x')
	}
	b.WriteString(m.To.String())
	if m.IsPromotion() {
		b.WriteByte('=')
		b.WriteString(pieceGlyph(m.Promote, m.What.Color(), figurine))
	}
	b.WriteString(p.checkSuffix(m))
	return b.String()
}

func pieceGlyph(pt PieceType, c Color, figurine bool) string {
	if figurine {
		pair := figurineLetter[pt]
		if c == White {
			return string(pair[0])
		}
		return string(pair[1])
	}
	return string(pieceTypeLetter[pt])
}

// disambiguation returns the minimal from-square hint needed to distinguish
// m from p's other legal moves of the same piece type to the same
// destination: nothing if m is unambiguous, the source file if that alone
// disambiguates, the source rank failing that, or the full source square if
// both collide with another candidate.
func (p *Position) disambiguation(m Move) string {
	var sameFile, sameRank, any bool
	for _, o := range p.LegalMoves(m.What.Color()) {
		if o.From == m.From || o.To != m.To || o.What.Type() != m.What.Type() {
			continue
		}
		any = true
		if o.From.File() == m.From.File() {
			sameFile = true
		}
		if o.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return string('a' + byte(m.From.File()))
	case !sameRank:
		return string('1' + byte(m.From.Rank()))
	default:
		return m.From.String()
	}
}

// checkSuffix trial-applies m and reports "+" if it checks the opponent,
// "#" if it checkmates them, or "" otherwise.
func (p *Position) checkSuffix(m Move) string {
	mm := m
	p.Save()
	p.Apply(&mm)
	opponent := mm.What.Color().Enemy()
	suffix := ""
	if p.kingInDanger(opponent) {
		if len(p.LegalMoves(opponent)) == 0 {
			suffix = "#"
		} else {
			suffix = "+"
		}
	}
	p.Restore()
	return suffix
}

// ParseSAN parses a Standard Algebraic Notation move (optionally annotated
// with trailing +, #, ! or ?) against p's legal moves for the side to move.
// It accepts both "O-O"/"O-O-O" and the arithmetically equivalent
// "0-0"/"0-0-0" castling spellings.
func (p *Position) ParseSAN(san string) (Move, error) {
	s := strings.TrimRight(san, "+#!?")
	switch s {
	case "O-O", "0-0":
		return firstCastle(p.LegalMoves(p.Turn()), false)
	case "O-O-O", "0-0-0":
		return firstCastle(p.LegalMoves(p.Turn()), true)
	}

	match := sanPattern.FindStringSubmatch(s)
	if match == nil {
		return Move{}, newError(KindBadInput, "malformed SAN: "+san)
	}
	pieceLetter, fileHint, rankHint, destStr, promoLetter := match[1], match[2], match[3], match[4], match[5]

	pt := Pawn
	if pieceLetter != "" {
		pt = letterToPieceType[pieceLetter[0]]
	}
	dest, err := ParseSquare(destStr)
	if err != nil {
		return Move{}, err
	}

	var candidates []Move
	for _, m := range p.LegalMoves(p.Turn()) {
		if m.What.Type() != pt || m.To != dest {
			continue
		}
		if fileHint != "" && m.From.File() != int(fileHint[0]-'a') {
			continue
		}
		if rankHint != "" && m.From.Rank() != int(rankHint[0]-'1') {
			continue
		}
		candidates = append(candidates, m)
	}

	if promoLetter != "" {
		promote := letterToPieceType[promoLetter[0]]
		for _, m := range candidates {
			if m.Promote == promote {
				return m, nil
			}
		}
		return Move{}, newError(KindBadMove, "no legal move matches "+san)
	}
	return resolveAmbiguity(candidates, san)
}

// ParseUCI parses a long-algebraic move string such as "e2e4" or "e7e8q"
// against p's legal moves for the side to move. Castling is expressed as
// the king's own from/to squares (e1g1, not a rook capture), matching what
// the move generator produces.
func (p *Position) ParseUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, newError(KindBadInput, "malformed UCI move: "+s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	var promote PieceType
	if len(s) == 5 {
		letter := s[4]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		pt, ok := letterToPieceType[letter]
		if !ok {
			return Move{}, newError(KindBadInput, "invalid promotion letter in "+s)
		}
		promote = pt
	}

	var candidates []Move
	for _, m := range p.LegalMoves(p.Turn()) {
		if m.From == from && m.To == to {
			candidates = append(candidates, m)
		}
	}

	if promote != NoPieceType {
		for _, m := range candidates {
			if m.Promote == promote {
				return m, nil
			}
		}
		return Move{}, newError(KindBadMove, "no legal move matches "+s)
	}
	return resolveAmbiguity(candidates, s)
}

func firstCastle(moves []Move, queenside bool) (Move, error) {
	wantFile := 6
	if queenside {
		wantFile = 2
	}
	for _, m := range moves {
		if m.IsCastle() && m.To.File() == wantFile {
			return m, nil
		}
	}
	return Move{}, newError(KindBadMove, "no legal castle available")
}

// resolveAmbiguity picks the single candidate move, or classifies why it
// can't: no match, a genuine ambiguity, or an unspecified promotion piece
// (every candidate shares the same from/to and differs only in Promote).
func resolveAmbiguity(candidates []Move, original string) (Move, error) {
	switch len(candidates) {
	case 0:
		return Move{}, newError(KindBadMove, "no legal move matches "+original)
	case 1:
		return candidates[0], nil
	}

	from := candidates[0].From
	sameFrom := true
	for _, m := range candidates[1:] {
		if m.From != from {
			sameFrom = false
			break
		}
	}
	if sameFrom && candidates[0].IsPromotion() {
		return Move{}, ErrNeedsPromotion
	}
	return Move{}, newError(KindBadMove, "ambiguous move: "+original)
}
