package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/ykchess/board"
	"github.com/daystram/ykchess/game"
)

// step plays random legal moves and prints every position along the way.
func step(plies int, seed int64) error {
	log.Println("============ step")
	var (
		timesLegalMoves []time.Duration
		timesPlay       []time.Duration
	)
	g := game.NewGame(game.WithHistoryLimit(*historyLimit))
	r := rand.New(rand.NewSource(seed))
	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		mvs := g.LegalMoves()
		timesLegalMoves = append(timesLegalMoves, time.Since(t1))
		if len(mvs) == 0 {
			break
		}
		mv := mvs[r.Intn(len(mvs))]
		mover := g.Turn()

		t1 = time.Now()
		if err := g.Play(mv.From, mv.To); err != nil {
			return fmt.Errorf("legal move %s rejected: %w", mv, err)
		}
		timesPlay = append(timesPlay, time.Since(t1))

		pos := g.Position()
		if !pos.Valid() {
			return fmt.Errorf("overlapping pieces after %s:\n%s", mv, pos.Dump())
		}
		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mover, mv)
		fmt.Println(pos.Draw(mv.From|mv.To, checkedKings(g)))
		fmt.Println(g.Status())
		if g.Status().Mate {
			break
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println("turn:", g.Turn(), "status:", g.Status())
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("play:", avg(timesPlay))
	return nil
}

func checkedKings(g *game.Game) board.Bitmap {
	pos := g.Position()
	var alert board.Bitmap
	for _, s := range board.Sides {
		if g.IsInCheck(s) {
			alert |= pos.Bitmap(s, board.PieceKing)
		}
	}
	return alert
}
