package chess

// Hash returns a string key that identifies the current position for
// repetition purposes: the first four FEN fields (piece placement, side to
// move, castling rights, en-passant target) joined by single spaces. The
// halfmove clock and fullmove number are deliberately excluded, since two
// positions reached by different move counts but otherwise identical are
// the same position for repetition purposes.
func (p *Position) Hash() string {
	l := p.current()
	return fenPlacement(l) + " " + turnLetter(l.turn) + " " + fenCastling(l) + " " + l.ep.String()
}
