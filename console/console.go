package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/daystram/ykchess/bench"
	"github.com/daystram/ykchess/board"
	"github.com/daystram/ykchess/game"
	"github.com/daystram/ykchess/position"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing arguments")
)

type options struct {
	historyLimit  int
	parallelPerft bool
}

type Option func(*options)

func WithHistoryLimit(n int) Option {
	return func(o *options) {
		o.historyLimit = n
	}
}

func WithParallelPerft(parallel bool) Option {
	return func(o *options) {
		o.parallelPerft = parallel
	}
}

// Interface drives a game from line-oriented text commands.
type Interface struct {
	in      io.Reader
	out     io.Writer
	game    *game.Game
	options options
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) *Interface {
	i := &Interface{
		in:  in,
		out: out,
		options: options{
			parallelPerft: true,
		},
	}
	for _, f := range opts {
		f(&i.options)
	}
	return i
}

// Run reads commands until quit, end of input or ctx is done. Invalid
// commands are reported on the output and do not stop the loop.
func (i *Interface) Run(ctx context.Context) error {
	i.reset()

	done := make(chan struct{})
	defer close(done)
	lines, errc := i.readLines(done)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			return <-errc
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		var err error
		switch cmd := strings.ToLower(args[0]); cmd {
		case "new":
			i.reset()
		case "d":
			i.commandDraw(0)
		case "status":
			i.commandStatus()
		case "undo":
			err = i.commandUndo()
		case "perft":
			err = i.commandPerft(args[1:])
		case "quit":
			return nil
		default:
			err = i.commandMove(args)
		}
		if err != nil {
			i.println("error:", err)
		}
	}
}

// readLines scans the input on its own goroutine so that Run can stop while a
// read is still blocked. The scanner error is sent once lines is closed.
func (i *Interface) readLines(done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(i.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// commandMove handles "<src>" as a selection and "<src> <dst>" as a move.
func (i *Interface) commandMove(args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, strings.Join(args, " "))
	}
	src, err := parseCell(args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		dsts, err := i.game.Destinations(src)
		if err != nil {
			return err
		}
		i.commandDraw(dsts)
		var names []string
		for _, sq := range dsts.Squares() {
			names = append(names, sq.Notation())
		}
		sort.Strings(names)
		i.println("destinations:", strings.Join(names, " "))
		return nil
	}

	dst, err := parseCell(args[1])
	if err != nil {
		return err
	}
	mover := i.game.Turn()
	if err := i.game.Play(src, dst); err != nil {
		return err
	}
	i.println(fmt.Sprintf("%s played %s%s", mover, args[0], args[1]))
	i.commandStatus()
	return nil
}

func (i *Interface) commandUndo() error {
	if err := i.game.Undo(); err != nil {
		return err
	}
	i.commandStatus()
	return nil
}

func (i *Interface) commandStatus() {
	i.println(fmt.Sprintf("turn=%s status=%s", i.game.Turn(), i.game.Status()))
}

func (i *Interface) commandDraw(highlight board.Bitmap) {
	pos := i.game.Position()
	var alert board.Bitmap
	for _, s := range board.Sides {
		if i.game.IsInCheck(s) {
			alert |= pos.Bitmap(s, board.PieceKing)
		}
	}
	i.println(pos.Draw(highlight, alert))
}

func (i *Interface) commandPerft(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: perft <depth>", ErrMissingArgs)
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth %q", args[0])
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()
	bench.Perft(i.game, depth, i.options.parallelPerft, true, out)
	close(out)
	<-done
	return nil
}

func (i *Interface) reset() {
	i.game = game.NewGame(
		game.WithLogger(i.println),
		game.WithHistoryLimit(i.options.historyLimit),
	)
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}

func parseCell(notation string) (board.Bitmap, error) {
	sq, err := position.NewSquareFromNotation(strings.ToLower(notation))
	if err != nil {
		return 0, err
	}
	return board.CellOf(sq), nil
}
