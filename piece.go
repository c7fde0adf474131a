package chess

// Color is encoded in bit 0x08 of a Piece so that the enemy color is the
// involution 8-c.
type Color uint8

const (
	White Color = 0x00
	Black Color = 0x08
)

// Enemy returns the opposing color.
func (c Color) Enemy() Color { return 8 - c }

// colorBit maps White/Black to the 0/1 index used by Position's attack
// table and move cache.
func (c Color) colorBit() int { return int(c >> 3) }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PieceType occupies the low 3 bits of a Piece. The numbering is part of the
// wire-compatible encoding described by the data model: Pawn=1 through
// King=6, in this specific (non-alphabetic) order.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Bishop      PieceType = 2
	Knight      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

var pieceTypeLetter = map[PieceType]byte{
	Bishop: 'B', Knight: 'N', Rook: 'R', Queen: 'Q', King: 'K',
}

var letterToPieceType = map[byte]PieceType{
	'B': Bishop, 'N': Knight, 'R': Rook, 'Q': Queen, 'K': King,
}

// Piece is a single board byte: bits 0-2 are the PieceType, bit 0x08 is the
// Color, bit 0x10 records whether the piece has ever moved from its square
// (castling requires an unmoved king). The zero Piece is empty.
type Piece uint8

const movedBit Piece = 0x10

// Empty is the zero value of Piece, denoting an unoccupied square.
const Empty Piece = 0

// NewPiece builds a fresh (unmoved) piece of the given color and type.
func NewPiece(c Color, t PieceType) Piece {
	return Piece(c) | Piece(t)
}

// Type returns the piece's type, or NoPieceType for Empty.
func (p Piece) Type() PieceType { return PieceType(p & 0x07) }

// Color returns the piece's color. Meaningless for Empty.
func (p Piece) Color() Color { return Color(p & 0x08) }

// Moved reports whether the piece has ever left its origin square.
func (p Piece) Moved() bool { return p&movedBit != 0 }

// WithMoved returns p with the moved bit set.
func (p Piece) WithMoved() Piece { return p | movedBit }

// letter returns the piece's FEN letter (uppercase for white), used by both
// the FEN and SAN codecs.
func (p Piece) letter() byte {
	var c byte
	switch p.Type() {
	case Pawn:
		c = 'P'
	case Bishop:
		c = 'B'
	case Knight:
		c = 'N'
	case Rook:
		c = 'R'
	case Queen:
		c = 'Q'
	case King:
		c = 'K'
	}
	if p.Color() == Black {
		c += 'a' - 'A'
	}
	return c
}

func pieceFromLetter(c byte) (Piece, bool) {
	color := White
	uc := c
	if c >= 'a' && c <= 'z' {
		color = Black
		uc = c - ('a' - 'A')
	}
	var t PieceType
	switch uc {
	case 'P':
		t = Pawn
	case 'B':
		t = Bishop
	case 'N':
		t = Knight
	case 'R':
		t = Rook
	case 'Q':
		t = Queen
	case 'K':
		t = King
	default:
		return Empty, false
	}
	return NewPiece(color, t), true
}
