package bench

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/ykchess/board"
	"github.com/daystram/ykchess/game"
	"github.com/daystram/ykchess/position"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.chessprogramming.org/Perft_Results.
	// Castling, en passant and promotion cannot occur this shallow.
	tests := []struct {
		depth int
		want  Counters
	}{
		{depth: 0, want: Counters{Nodes: 1}},
		{depth: 1, want: Counters{Nodes: 20}},
		{depth: 2, want: Counters{Nodes: 400}},
		{depth: 3, want: Counters{Nodes: 8_902, Cap: 34, Chk: 12}},
	}

	for _, tt := range tests {
		for _, parallel := range []bool{false, true} {
			tt, parallel := tt, parallel
			t.Run(fmt.Sprintf("perft(%d) parallel=%v", tt.depth, parallel), func(t *testing.T) {
				t.Parallel()
				g := game.NewGame(game.WithLogger(nil))
				got := Perft(g, tt.depth, parallel, false, nil)
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("unexpected counters (-want +got):\n%s", diff)
				}
				if g.HistoryLen() != 0 {
					t.Errorf("perft mutated the game: history length got=%d want=0", g.HistoryLen())
				}
			})
		}
	}
}

func TestPerftCountsMates(t *testing.T) {
	t.Parallel()
	// one move from fool's mate: Qh4 is the only mating reply
	var logs []string
	g := game.NewGame(game.WithLogger(func(a ...any) {
		logs = append(logs, fmt.Sprint(a...))
	}))
	for _, mv := range []string{"f2f3", "e7e5", "g2g4"} {
		from, err := position.NewSquareFromNotation(mv[:2])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		to, err := position.NewSquareFromNotation(mv[2:])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := g.Play(board.CellOf(from), board.CellOf(to)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := Perft(g, 1, false, false, nil)
	if got.Mat != 1 {
		t.Errorf("unexpected mates: got=%d want=1", got.Mat)
	}
	if got.Chk != 1 {
		t.Errorf("unexpected checks: got=%d want=1", got.Chk)
	}
	if len(logs) != 0 {
		t.Errorf("perft wrote to the game logger: got=%q want=[]", logs)
	}
	if g.Status().Mate || g.HistoryLen() != 3 {
		t.Errorf("perft changed the game: mate=%v history=%d", g.Status().Mate, g.HistoryLen())
	}
}

func TestPerftReport(t *testing.T) {
	t.Parallel()
	out := make(chan string, 32)
	Perft(game.NewGame(game.WithLogger(nil)), 1, false, true, out)
	close(out)

	var lines []string
	for line := range out {
		lines = append(lines, line)
	}
	if got := len(lines); got != 21 {
		t.Fatalf("unexpected report lines: got=%d want=21", got)
	}
	if got := lines[len(lines)-1]; !strings.HasPrefix(got, "d=1 nodes=20 ") {
		t.Errorf("unexpected summary: got=%q", got)
	}
}
