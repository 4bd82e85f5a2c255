package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/ykchess/board"
	"github.com/daystram/ykchess/game"
)

// Counters tallies the leaves of a perft run.
type Counters struct {
	Nodes uint64
	Cap   uint64
	Chk   uint64
	Mat   uint64
}

// Perft walks the legal move tree of g to depth and reports the leaf counts on
// out, one line per root move when verbose. g itself is left untouched.
func Perft(g *game.Game, depth int, parallel, verbose bool, out chan<- string) Counters {
	var c Counters
	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(g, depth, true, verbose, out, &c)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d chk=%d mat=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/elapsed.Seconds()), c.Cap, c.Chk, c.Mat, elapsed.Seconds())
	}
	return c
}

type perftFunc func(g *game.Game, d int, root, verbose bool, out chan<- string, c *Counters) uint64

func runPerft(g *game.Game, d int, root, verbose bool, out chan<- string, c *Counters) uint64 {
	if d == 0 {
		c.Nodes++
		return 1
	}

	var sum uint64
	for _, mv := range g.LegalMoves() {
		var child uint64
		gg, capture := play(g, mv)
		if d != 1 {
			child = runPerft(gg, d-1, false, verbose, out, c)
		} else {
			child = 1
			c.Nodes++
			if capture {
				c.Cap++
			}
			if gg.IsInCheck(gg.Turn()) {
				c.Chk++
			}
			if gg.Status().Mate {
				c.Mat++
			}
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(g *game.Game, d int, root, verbose bool, out chan<- string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range g.LegalMoves() {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			gg, capture := play(g, mv)
			if d != 1 {
				child = runPerftParallel(gg, d-1, false, verbose, out, c)
			} else {
				child = 1
				atomic.AddUint64(&c.Nodes, 1)
				if capture {
					atomic.AddUint64(&c.Cap, 1)
				}
				if gg.IsInCheck(gg.Turn()) {
					atomic.AddUint64(&c.Chk, 1)
				}
				if gg.Status().Mate {
					atomic.AddUint64(&c.Mat, 1)
				}
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

// play applies a legal move on a fork of g and reports whether it captured.
func play(g *game.Game, mv game.Move) (*game.Game, bool) {
	pos := g.Position()
	target, _ := pos.PieceAt(mv.To)
	gg := g.Fork()
	if err := gg.Play(mv.From, mv.To); err != nil {
		panic(fmt.Errorf("legal move %s rejected: %w", mv, err))
	}
	return gg, target != board.PieceUnknown
}
