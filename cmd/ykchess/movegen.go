package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/ykchess/board"
	"github.com/daystram/ykchess/game"
	"github.com/daystram/ykchess/position"
)

// movegen plays the given moves (e.g. "e2e4 e7e5") from the starting layout,
// then lists the options of the side to move.
func movegen(moves []string) error {
	log.Println("============ movegen")
	g := game.NewGame()
	for _, n := range moves {
		if len(n) != 4 {
			return fmt.Errorf("%w: %s", position.ErrInvalidNotation, n)
		}
		src, err := position.NewSquareFromNotation(n[:2])
		if err != nil {
			return err
		}
		dst, err := position.NewSquareFromNotation(n[2:])
		if err != nil {
			return err
		}
		if err := g.Play(board.CellOf(src), board.CellOf(dst)); err != nil {
			return err
		}
	}

	pos := g.Position()
	fmt.Println("to move:", g.Turn())
	fmt.Println(pos.Dump())
	fmt.Println(pos.Draw(0, checkedKings(g)))
	fmt.Println(g.Status())

	mvs := g.LegalMoves()
	for i, mv := range mvs {
		pc, s := pos.PieceAt(mv.From)
		target, _ := pos.PieceAt(mv.To)
		fmt.Printf("option %*d: [%s] %s %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, s, pc, mv.From.Square(), mv.To.Square(), target != board.PieceUnknown)
	}
	return nil
}
