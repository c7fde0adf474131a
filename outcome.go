package chess

// UpdateStatus recomputes and stores the game status for the side to move,
// following the priority order checkmate > stalemate > fifty-move rule >
// threefold repetition > insufficient material > active. It should be
// called once after every Apply; Apply itself does not call it, since
// status depends on LegalMoves, which is comparatively expensive and not
// every caller needs it after every move (e.g. perft does not).
func (p *Position) UpdateStatus() Status {
	l := p.current()
	turn := l.turn
	hasMoves := len(p.LegalMoves(turn)) > 0
	inCheck := p.kingInDanger(turn)

	var status Status
	switch {
	case !hasMoves && inCheck:
		status = Checkmate
	case !hasMoves:
		status = DrawStalemate
	case l.clock >= 100:
		status = DrawFiftyMoves
	case p.repCount >= 3:
		status = DrawRepetition
	case p.hasInsufficientMaterial():
		status = DrawNoMaterial
	default:
		status = Active
	}

	l.status = status
	return status
}

// hasInsufficientMaterial reports whether neither side has enough material
// to deliver checkmate by any sequence of legal moves: king-only vs
// king-only, king+minor vs king-only, or king+bishop vs king+bishop with
// both bishops on the same square color.
func (p *Position) hasInsufficientMaterial() bool {
	l := p.current()

	var minorCount [2]int
	var bishopOnLight [2]bool
	var bishopOnDark [2]bool
	for _, sq := range l.pieceList {
		pc := l.board[sq]
		ci := pc.Color().colorBit()
		switch pc.Type() {
		case Pawn, Rook, Queen:
			return false
		case Knight:
			minorCount[ci]++
		case Bishop:
			minorCount[ci]++
			if (sq.File()+sq.Rank())%2 == 0 {
				bishopOnDark[ci] = true
			} else {
				bishopOnLight[ci] = true
			}
		}
	}

	total := minorCount[0] + minorCount[1]
	switch {
	case total == 0:
		return true
	case total == 1:
		return true
	case total == 2 && minorCount[0] == 1 && minorCount[1] == 1:
		// King+bishop vs king+bishop is insufficient only when both
		// bishops travel the same square color; king+knight vs
		// king+knight and king+knight vs king+bishop remain sufficient
		// in principle (helpmate exists), so only the same-color bishop
		// pair is excluded here.
		return (bishopOnLight[0] && bishopOnLight[1]) || (bishopOnDark[0] && bishopOnDark[1])
	default:
		return false
	}
}
