package board

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daystram/ykchess/position"
)

type placement struct {
	side  Side
	piece Piece
	sq    string
}

func cellOf(t *testing.T, notation string) Bitmap {
	t.Helper()
	sq, err := position.NewSquareFromNotation(notation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return CellOf(sq)
}

func newTestPosition(t *testing.T, placements ...placement) Position {
	t.Helper()
	var p Position
	for _, pl := range placements {
		p.Set(pl.side, pl.piece, cellOf(t, pl.sq))
	}
	return p
}

func notations(bm Bitmap) []string {
	var ns []string
	for _, sq := range bm.Squares() {
		ns = append(ns, sq.Notation())
	}
	sort.Strings(ns)
	return ns
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	start := NewPosition()
	tests := []struct {
		name    string
		pos     Position
		from    string
		attacks bool
		want    []string
	}{
		{
			name: "initial knight b1",
			pos:  start, from: "b1", attacks: true,
			want: []string{"a3", "c3"},
		},
		{
			name: "initial knight g8",
			pos:  start, from: "g8", attacks: true,
			want: []string{"f6", "h6"},
		},
		{
			name: "initial pawn e2 double step",
			pos:  start, from: "e2", attacks: true,
			want: []string{"e3", "e4"},
		},
		{
			name: "initial pawn d7 double step",
			pos:  start, from: "d7", attacks: true,
			want: []string{"d5", "d6"},
		},
		{
			name: "initial rook boxed in",
			pos:  start, from: "a1", attacks: true,
			want: nil,
		},
		{
			name: "initial queen boxed in",
			pos:  start, from: "d8", attacks: true,
			want: nil,
		},
		{
			name: "empty square",
			pos:  start, from: "e4", attacks: true,
			want: nil,
		},
		{
			name: "rook blocked by own pawn",
			pos: newTestPosition(t,
				placement{SideWhite, PieceRook, "a1"},
				placement{SideWhite, PiecePawn, "a2"},
			),
			from: "a1", attacks: true,
			want: []string{"b1", "c1", "d1", "e1", "f1", "g1", "h1"},
		},
		{
			name: "rook capture with attacks",
			pos: newTestPosition(t,
				placement{SideWhite, PieceRook, "d4"},
				placement{SideBlack, PieceKnight, "d6"},
				placement{SideWhite, PiecePawn, "f4"},
			),
			from: "d4", attacks: true,
			want: []string{"a4", "b4", "c4", "d1", "d2", "d3", "d5", "d6", "e4"},
		},
		{
			name: "rook capture withheld without attacks",
			pos: newTestPosition(t,
				placement{SideWhite, PieceRook, "d4"},
				placement{SideBlack, PieceKnight, "d6"},
				placement{SideWhite, PiecePawn, "f4"},
			),
			from: "d4", attacks: false,
			want: []string{"a4", "b4", "c4", "d1", "d2", "d3", "d5", "e4"},
		},
		{
			name: "bishop on open board",
			pos: newTestPosition(t,
				placement{SideBlack, PieceBishop, "c1"},
			),
			from: "c1", attacks: true,
			want: []string{"a3", "b2", "d2", "e3", "f4", "g5", "h6"},
		},
		{
			name: "bishop stopped by enemy",
			pos: newTestPosition(t,
				placement{SideBlack, PieceBishop, "c1"},
				placement{SideWhite, PiecePawn, "e3"},
				placement{SideBlack, PiecePawn, "b2"},
			),
			from: "c1", attacks: true,
			want: []string{"d2", "e3"},
		},
		{
			name: "queen combines rook and bishop",
			pos: newTestPosition(t,
				placement{SideWhite, PieceQueen, "a1"},
				placement{SideWhite, PiecePawn, "a2"},
				placement{SideWhite, PiecePawn, "b1"},
			),
			from: "a1", attacks: true,
			want: []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"},
		},
		{
			name: "knight in corner",
			pos: newTestPosition(t,
				placement{SideWhite, PieceKnight, "h8"},
				placement{SideWhite, PiecePawn, "f7"},
				placement{SideBlack, PiecePawn, "g6"},
			),
			from: "h8", attacks: true,
			want: []string{"g6"},
		},
		{
			name: "knight capture withheld without attacks",
			pos: newTestPosition(t,
				placement{SideWhite, PieceKnight, "h8"},
				placement{SideBlack, PiecePawn, "g6"},
			),
			from: "h8", attacks: false,
			want: []string{"f7"},
		},
		{
			name: "king on edge",
			pos: newTestPosition(t,
				placement{SideWhite, PieceKing, "e1"},
				placement{SideWhite, PiecePawn, "e2"},
				placement{SideBlack, PieceRook, "d2"},
			),
			from: "e1", attacks: true,
			want: []string{"d1", "d2", "f1", "f2"},
		},
		{
			name: "pawn single step off starting rank",
			pos: newTestPosition(t,
				placement{SideWhite, PiecePawn, "c3"},
			),
			from: "c3", attacks: true,
			want: []string{"c4"},
		},
		{
			name: "pawn double step blocked on second square",
			pos: newTestPosition(t,
				placement{SideBlack, PiecePawn, "g7"},
				placement{SideWhite, PieceKnight, "g5"},
			),
			from: "g7", attacks: true,
			want: []string{"g6"},
		},
		{
			name: "pawn double step blocked on first square",
			pos: newTestPosition(t,
				placement{SideWhite, PiecePawn, "e2"},
				placement{SideBlack, PieceKnight, "e3"},
			),
			from: "e2", attacks: true,
			want: nil,
		},
		{
			name: "pawn captures with attacks",
			pos: newTestPosition(t,
				placement{SideWhite, PiecePawn, "e4"},
				placement{SideBlack, PiecePawn, "d5"},
				placement{SideWhite, PiecePawn, "f5"},
			),
			from: "e4", attacks: true,
			want: []string{"d5", "e5"},
		},
		{
			name: "pawn captures withheld without attacks",
			pos: newTestPosition(t,
				placement{SideWhite, PiecePawn, "e4"},
				placement{SideBlack, PiecePawn, "d5"},
			),
			from: "e4", attacks: false,
			want: []string{"e5"},
		},
		{
			name: "pawn on last rank has nowhere to go",
			pos: newTestPosition(t,
				placement{SideWhite, PiecePawn, "a8"},
			),
			from: "a8", attacks: true,
			want: nil,
		},
		{
			name: "black pawn captures towards higher rows",
			pos: newTestPosition(t,
				placement{SideBlack, PiecePawn, "h5"},
				placement{SideWhite, PieceQueen, "g4"},
			),
			from: "h5", attacks: true,
			want: []string{"g4", "h4"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := tt.pos
			got := notations(pos.Generate(cellOf(t, tt.from), tt.attacks))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected destinations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateMalformedCell(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("panic expected: got=nil")
		}
	}()
	pos := NewPosition()
	pos.Generate(maskStart[SideWhite][PieceRook], true)
}

func TestGenerateDoesNotMutate(t *testing.T) {
	t.Parallel()
	pos := NewPosition()
	before := pos
	pos.Occupied().Iter(func(cell Bitmap) {
		_ = pos.Generate(cell, true)
		_ = pos.Generate(cell, false)
	})
	if diff := cmp.Diff(before, pos, cmp.AllowUnexported(Position{})); diff != "" {
		t.Errorf("position mutated (-before +after):\n%s", diff)
	}
}
