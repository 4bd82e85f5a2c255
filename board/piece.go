package board

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceRook
	PieceKnight
	PieceBishop
	PieceQueen
	PieceKing
)

// Pieces lists the piece kinds in scan order.
var Pieces = [6]Piece{PiecePawn, PieceRook, PieceKnight, PieceBishop, PieceQueen, PieceKing}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceRook:
		return "Rook"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) Symbol(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceRook:
		sym = 'R'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceRook:
			return "♖"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceRook:
			return "♜"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
