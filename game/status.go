package game

import (
	"strings"

	"github.com/daystram/ykchess/board"
)

// Status is the outcome of the last check evaluation. Mate refers to the side to move.
type Status struct {
	WhiteCheck bool
	BlackCheck bool
	Mate       bool
}

func (st Status) Check(s board.Side) bool {
	switch s {
	case board.SideWhite:
		return st.WhiteCheck
	case board.SideBlack:
		return st.BlackCheck
	default:
		return false
	}
}

func (st *Status) setCheck(s board.Side, check bool) {
	switch s {
	case board.SideWhite:
		st.WhiteCheck = check
	case board.SideBlack:
		st.BlackCheck = check
	}
}

func (st Status) String() string {
	var flags []string
	if st.WhiteCheck {
		flags = append(flags, "WhiteCheck")
	}
	if st.BlackCheck {
		flags = append(flags, "BlackCheck")
	}
	if st.Mate {
		flags = append(flags, "Mate")
	}
	if len(flags) == 0 {
		return "Running"
	}
	return strings.Join(flags, ",")
}
