package game

import "github.com/daystram/ykchess/board"

type snapshot struct {
	pos    board.Position
	turn   board.Side
	status Status
}

// History is a stack of whole-game snapshots taken before each applied move.
// A positive limit bounds it by discarding the oldest snapshot.
type History struct {
	snapshots []snapshot
	limit     int
}

func (h *History) push(snap snapshot) {
	h.snapshots = append(h.snapshots, snap)
	if h.limit > 0 && len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[len(h.snapshots)-h.limit:]
	}
}

func (h *History) pop() (snapshot, bool) {
	if len(h.snapshots) == 0 {
		return snapshot{}, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return last, true
}

func (h *History) Len() int {
	return len(h.snapshots)
}

func (h *History) clone() History {
	return History{
		snapshots: append([]snapshot(nil), h.snapshots...),
		limit:     h.limit,
	}
}
