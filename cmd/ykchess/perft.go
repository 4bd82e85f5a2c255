package main

import (
	"log"

	"github.com/daystram/ykchess/bench"
	"github.com/daystram/ykchess/game"
)

func perft(depth int, parallel bool) error {
	log.Printf("============ perft(%d): parallel=%v\n", depth, parallel)
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()
	bench.Perft(game.NewGame(), depth, parallel, true, out)
	close(out)
	<-done
	return nil
}
