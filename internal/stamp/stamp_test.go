package stamp

import (
	"slices"
	"testing"

	"lastgol/internal/core"

	"github.com/pkg/errors"
)

func blinkerAt(x, y int) *Buffer {
	b := New(core.DefaultSize, x, y)
	for col := 0; col < 3; col++ {
		b.Cells().Set(col, 0, core.Alive)
	}
	return b
}

func TestMoveBy(t *testing.T) {
	b := blinkerAt(0, 0)
	if err := b.MoveBy(1, 0); err != nil {
		t.Fatalf("move right: %v", err)
	}
	if err := b.MoveBy(0, 2); err != nil {
		t.Fatalf("move down: %v", err)
	}
	if err := b.MoveBy(-1, -1); err != nil {
		t.Fatalf("move back: %v", err)
	}
	if x, y := b.Pos(); x != 0 || y != 1 {
		t.Fatalf("pos = (%d,%d), want (0,1)", x, y)
	}
}

func TestMoveByUnderflow(t *testing.T) {
	b := blinkerAt(0, 3)
	err := b.MoveBy(-1, 0)
	if !errors.Is(err, ErrOffsetUnderflow) {
		t.Fatalf("expected ErrOffsetUnderflow, got %v", err)
	}
	if x, y := b.Pos(); x != 0 || y != 3 {
		t.Fatalf("failed move changed pos to (%d,%d)", x, y)
	}
	if b.CanMove(0, -4) {
		t.Fatal("CanMove should refuse a move above row 0")
	}
}

func TestNewClampsNegativeOffsets(t *testing.T) {
	b := New(core.DefaultSize, -3, -1)
	if x, y := b.Pos(); x != 0 || y != 0 {
		t.Fatalf("pos = (%d,%d), want (0,0)", x, y)
	}
}

func TestMoveKeepsCellsIntact(t *testing.T) {
	b := blinkerAt(0, 0)
	before := b.Cells().Clone()
	for i := 0; i < 250; i++ {
		_ = b.MoveBy(1, 1)
	}
	if !b.Cells().Equal(before) {
		t.Fatal("moving the buffer changed its cells")
	}
}

func TestCommitPlacesCellsAtOffset(t *testing.T) {
	g := core.NewGrid(core.DefaultSize)
	n := Commit(g, blinkerAt(50, 50))
	if n != 3 {
		t.Fatalf("committed %d cells, want 3", n)
	}
	want := []core.Point{{X: 50, Y: 50}, {X: 51, Y: 50}, {X: 52, Y: 50}}
	if got := g.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("live = %v, want %v", got, want)
	}
}

func TestCommitIsAdditive(t *testing.T) {
	g := core.NewGrid(core.DefaultSize)
	existing := []core.Point{{X: 5, Y: 5}, {X: 51, Y: 50}, {X: 199, Y: 149}}
	for _, p := range existing {
		g.Set(p.X, p.Y, core.Alive)
	}
	Commit(g, blinkerAt(50, 50))
	for _, p := range existing {
		if !g.Alive(p.X, p.Y) {
			t.Fatalf("commit cleared (%d,%d)", p.X, p.Y)
		}
	}
	if n := g.Population(); n != 5 {
		t.Fatalf("population = %d, want 5", n)
	}
}

func TestCommitClipsOutOfBounds(t *testing.T) {
	g := core.NewGrid(core.DefaultSize)
	b := blinkerAt(198, 149)
	n := Commit(g, b)
	if n != 2 {
		t.Fatalf("committed %d cells, want 2", n)
	}
	want := []core.Point{{X: 198, Y: 149}, {X: 199, Y: 149}}
	if got := g.LiveCells(); !slices.Equal(got, want) {
		t.Fatalf("live = %v, want %v", got, want)
	}

	far := blinkerAt(500, 500)
	if n := Commit(g, far); n != 0 {
		t.Fatalf("far stamp committed %d cells", n)
	}
}

func TestTargets(t *testing.T) {
	b := blinkerAt(7, 9)
	want := []core.Point{{X: 7, Y: 9}, {X: 8, Y: 9}, {X: 9, Y: 9}}
	if got := b.Targets(); !slices.Equal(got, want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
}
