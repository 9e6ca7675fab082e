package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrid_WriteRowStylesCells(t *testing.T) {
	s := newFakeSurface()
	g := NewGrid(s, 5)

	if err := g.WriteRow(0, "CRANE", [WordLen]bool{true}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	text, styles := s.row(0)
	if text != "CRANE" {
		t.Fatalf("row text = %q", text)
	}
	want := [WordLen]Cell{CellCorrect, CellWrong, CellWrong, CellWrong, CellWrong}
	if diff := cmp.Diff(want, styles); diff != "" {
		t.Fatalf("styles mismatch (-want +got):\n%s", diff)
	}
	if !g.Written(0) || g.Filled() != 1 {
		t.Fatal("row 0 not recorded")
	}
}

func TestGrid_RowIsWrittenOnce(t *testing.T) {
	s := newFakeSurface()
	g := NewGrid(s, 5)
	_ = g.WriteRow(1, "CRANE", [WordLen]bool{})
	writes := s.writes

	err := g.WriteRow(1, "CHEEZ", [WordLen]bool{true, true, true, true, true})
	if !errors.Is(err, ErrRowWritten) {
		t.Fatalf("err = %v, want ErrRowWritten", err)
	}
	if s.writes != writes {
		t.Fatal("rewrite touched the surface")
	}
	if text, _ := s.row(1); text != "CRANE" {
		t.Fatalf("row 1 = %q, want CRANE", text)
	}
}

func TestGrid_RowBounds(t *testing.T) {
	s := newFakeSurface()
	g := NewGrid(s, 4)
	for _, row := range []int{-1, 4, 10} {
		if err := g.WriteRow(row, "CRANE", [WordLen]bool{}); !errors.Is(err, ErrRowOutOfRange) {
			t.Errorf("row %d: err = %v, want ErrRowOutOfRange", row, err)
		}
	}
	if s.writes != 0 {
		t.Fatal("out-of-range writes touched the surface")
	}
}

func TestGrid_RowFor(t *testing.T) {
	g := NewGrid(newFakeSurface(), 5)
	var got []int
	for left := 4; left >= 0; left-- {
		got = append(got, g.RowFor(left))
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got); diff != "" {
		t.Fatalf("RowFor mismatch (-want +got):\n%s", diff)
	}
	if g.RowFor(5) >= 0 {
		t.Fatal("attemptsLeft == capacity must map to a negative row")
	}
}
