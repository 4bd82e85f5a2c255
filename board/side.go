package board

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

// Sides lists the playable sides in scan order.
var Sides = [2]Side{SideWhite, SideBlack}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// Forward returns the row delta of a pawn advance. White moves towards row 0.
func (s Side) Forward() int {
	switch s {
	case SideWhite:
		return -1
	case SideBlack:
		return 1
	default:
		return 0
	}
}
