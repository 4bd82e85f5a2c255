package game

import (
	"fmt"
	"log"

	"github.com/daystram/ykchess/board"
)

func DefaultLogger(a ...any) {
	log.Println(a...)
}

type gameConfig struct {
	pos          board.Position
	turn         board.Side
	historyLimit int
	logger       func(...any)
}

type Option func(*gameConfig)

func WithLogger(logger func(...any)) Option {
	return func(cfg *gameConfig) {
		cfg.logger = logger
	}
}

// WithHistoryLimit keeps at most n snapshots. Zero or less means unbounded.
func WithHistoryLimit(n int) Option {
	return func(cfg *gameConfig) {
		cfg.historyLimit = n
	}
}

// WithPosition starts the game from pos with turn to move instead of the standard layout.
func WithPosition(pos board.Position, turn board.Side) Option {
	return func(cfg *gameConfig) {
		cfg.pos = pos
		cfg.turn = turn
	}
}

// Game owns a position, the side to move, the check flags and the undo history.
// It is not safe for concurrent use; Clone it instead.
type Game struct {
	pos     board.Position
	turn    board.Side
	status  Status
	history History
	logger  func(...any)
}

func NewGame(opts ...Option) *Game {
	cfg := &gameConfig{
		pos:    board.NewPosition(),
		turn:   board.SideWhite,
		logger: DefaultLogger,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = func(...any) {}
	}

	g := &Game{
		pos:     cfg.pos,
		turn:    cfg.turn,
		history: History{limit: cfg.historyLimit},
		logger:  cfg.logger,
	}
	g.RecomputeCheckStatus()
	g.status.Mate = g.IsCheckmate(g.turn)
	return g
}

func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) Status() Status {
	return g.status
}

// Position returns a copy of the current position.
func (g *Game) Position() board.Position {
	return g.pos
}

func (g *Game) HistoryLen() int {
	return g.history.Len()
}

func (g *Game) Clone() *Game {
	return &Game{
		pos:     g.pos,
		turn:    g.turn,
		status:  g.status,
		history: g.history.clone(),
		logger:  g.logger,
	}
}

// Fork returns a silent copy of g for exploring move trees: it starts with an
// empty history and never logs.
func (g *Game) Fork() *Game {
	return &Game{
		pos:     g.pos,
		turn:    g.turn,
		status:  g.status,
		history: History{limit: g.history.limit},
		logger:  func(...any) {},
	}
}

// Destinations returns the cells the piece on src may move to, without
// filtering moves that leave its own king attacked.
func (g *Game) Destinations(src board.Bitmap) (board.Bitmap, error) {
	if err := validateCell(src); err != nil {
		return 0, err
	}
	pc, s := g.pos.PieceAt(src)
	if pc == board.PieceUnknown {
		return 0, fmt.Errorf("%w: %s", ErrEmptySource, src.Square())
	}
	if s != g.turn {
		return 0, fmt.Errorf("%w: %s %s on %s", ErrWrongSideToMove, s, pc, src.Square())
	}
	return g.pos.Generate(src, true), nil
}

// Apply moves the piece on src to dst after checking that the move is
// reachable for the side to move. The previous state is pushed to the history.
// Check flags and the turn are left untouched.
func (g *Game) Apply(src, dst board.Bitmap) error {
	dsts, err := g.Destinations(src)
	if err != nil {
		return err
	}
	if err := validateCell(dst); err != nil {
		return err
	}
	if !dsts.Has(dst) {
		return fmt.Errorf("%w: %s to %s", ErrIllegalDestination, src.Square(), dst.Square())
	}

	g.history.push(snapshot{pos: g.pos, turn: g.turn, status: g.status})
	g.pos.Move(src, dst)
	return nil
}

// Undo restores the state saved by the last Apply, including the side to move.
func (g *Game) Undo() error {
	snap, ok := g.history.pop()
	if !ok {
		return ErrEmptyHistory
	}
	g.pos = snap.pos
	g.turn = snap.turn
	g.status = snap.status
	return nil
}

// Play applies a move for the side to move and hands the turn over. A move
// that leaves the mover in check is undone and rejected with ErrKingExposed.
func (g *Game) Play(src, dst board.Bitmap) error {
	if g.status.Mate {
		return fmt.Errorf("%w: %s is checkmated", ErrGameOver, g.turn)
	}
	if err := g.Apply(src, dst); err != nil {
		return err
	}

	mover := g.turn
	g.RecomputeCheckStatus()
	if g.IsInCheck(mover) {
		if err := g.Undo(); err != nil {
			panic(err)
		}
		return fmt.Errorf("%w: %s to %s", ErrKingExposed, src.Square(), dst.Square())
	}

	g.turn = mover.Opposite()
	g.RecomputeCheckStatus()
	g.status.Mate = g.IsCheckmate(g.turn)
	if g.status.Mate {
		g.logger("Game over for", g.turn.String())
	}
	return nil
}

// RecomputeCheckStatus refreshes both check flags from the current position.
func (g *Game) RecomputeCheckStatus() {
	for _, s := range board.Sides {
		g.status.setCheck(s, g.pos.IsKingAttacked(s))
	}
}

// IsInCheck reads the flag set by the last RecomputeCheckStatus.
func (g *Game) IsInCheck(s board.Side) bool {
	return g.status.Check(s)
}

// IsCheckmate tries every reply of s on a scratch position and reports whether
// none of them gets its king out of check.
func (g *Game) IsCheckmate(s board.Side) bool {
	if !g.IsInCheck(s) {
		return false
	}
	escaped := false
	g.forEachMove(s, func(Move) bool {
		escaped = true
		return false
	})
	return !escaped
}

// LegalMoves lists the moves of the side to move that do not leave its king attacked.
func (g *Game) LegalMoves() []Move {
	var mvs []Move
	g.forEachMove(g.turn, func(mv Move) bool {
		mvs = append(mvs, mv)
		return true
	})
	return mvs
}

// forEachMove calls fn with every move of s that keeps its king safe, until fn returns false.
func (g *Game) forEachMove(s board.Side, fn func(Move) bool) {
	more := true
	g.pos.SideOccupied(s).Iter(func(src board.Bitmap) {
		if !more {
			return
		}
		g.pos.Generate(src, true).Iter(func(dst board.Bitmap) {
			if !more {
				return
			}
			trial := g.pos
			trial.Move(src, dst)
			if trial.IsKingAttacked(s) {
				return
			}
			more = fn(Move{From: src, To: dst})
		})
	})
}

func validateCell(cell board.Bitmap) error {
	if n := cell.BitCount(); n != 1 {
		return fmt.Errorf("%w: %d cells in %#016x", ErrInvalidSquare, n, uint64(cell))
	}
	return nil
}
