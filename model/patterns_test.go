package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestPatternUnknown(t *testing.T) {
	if _, err := Pattern("spaceship"); errors.Cause(err) != ErrUnknownPattern {
		t.Errorf("err = %v, want ErrUnknownPattern", err)
	}
}

func TestPatternReturnsCopy(t *testing.T) {
	a, _ := Pattern(PatternBlock)
	a[0] = Coord{9, 9}
	b, _ := Pattern(PatternBlock)
	if b[0] == (Coord{9, 9}) {
		t.Error("Pattern exposed the shared table")
	}
}

func TestPlace(t *testing.T) {
	blinker, _ := Pattern(PatternBlinker)

	got, err := Place(blinker, Coord{2, 3}, 10, 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []Coord{{2, 3}, {3, 3}, {4, 3}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Place()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err = Place(blinker, Coord{8, 0}, 10, 10); errors.Cause(err) != ErrOutOfBounds {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestDiagonal(t *testing.T) {
	cells := Diagonal(50, 50)
	if len(cells) != 12 {
		t.Fatalf("len = %d, want 12", len(cells))
	}
	for i, c := range cells {
		if c.X != c.Y || c.X != 19+i {
			t.Errorf("cells[%d] = %v, want (%d, %d)", i, c, 19+i, 19+i)
		}
	}
	if got := Diagonal(2, 2); len(got) != 1 {
		t.Errorf("Diagonal(2, 2) has %d cells, want 1", len(got))
	}
}

func TestRandomCellsDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := RandomCells(20, 20, 0, rng); len(got) != 0 {
		t.Errorf("density 0 produced %d cells", len(got))
	}
	if got := RandomCells(20, 20, 1, rng); len(got) != 400 {
		t.Errorf("density 1 produced %d cells, want 400", len(got))
	}
}

func TestSeedPattern(t *testing.T) {
	tests := []struct {
		name    string
		columns int
		rows    int
		want    int
		wantErr error
	}{
		{PatternBlock, 10, 10, 4, nil},
		{PatternBlinker, 10, 10, 3, nil},
		{PatternGlider, 10, 10, 5, nil},
		{PatternDiagonal, 50, 50, 12, nil},
		{PatternGlider, 2, 2, 0, ErrOutOfBounds},
		{"nope", 10, 10, 0, ErrUnknownPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSeeded(t, tt.columns, tt.rows)
			err := SeedPattern(b, tt.name, 0.5, rand.New(rand.NewSource(3)))
			if errors.Cause(err) != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if b.Population() != tt.want {
				t.Errorf("population = %d, want %d", b.Population(), tt.want)
			}
		})
	}
}
