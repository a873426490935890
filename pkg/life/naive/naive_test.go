package naive

import (
	"slices"
	"testing"

	"github.com/Leden/go-life/pkg/life"
)

func TestNewWorldAllDead(t *testing.T) {
	w := New(8, 6)
	if w.Population() != 0 {
		t.Fatalf("fresh world population = %d, expected 0", w.Population())
	}
	if cells := w.AliveCells(); len(cells) != 0 {
		t.Fatalf("fresh world has live cells: %v", cells)
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if w.IsAlive(life.Cell{X: x, Y: y}) {
				t.Fatalf("fresh world cell (%d,%d) is alive", x, y)
			}
		}
	}
}

func TestToggleRoundTrip(t *testing.T) {
	w := New(5, 5)
	p := life.Cell{X: 2, Y: 3}

	w.Toggle(p)
	if !w.IsAlive(p) {
		t.Fatal("toggled cell is not alive")
	}
	w.Toggle(p)
	if w.IsAlive(p) {
		t.Fatal("double-toggled cell is still alive")
	}
	if w.Population() != 0 {
		t.Fatalf("population after round trip = %d, expected 0", w.Population())
	}
}

func TestToggleWrapsOutOfRangeCoordinates(t *testing.T) {
	w := New(5, 5)

	w.Toggle(life.Cell{X: -1, Y: -1})
	if !w.IsAlive(life.Cell{X: 4, Y: 4}) {
		t.Fatal("toggling (-1,-1) must light (4,4) on a 5x5 torus")
	}
	w.Toggle(life.Cell{X: 9, Y: 4})
	if w.IsAlive(life.Cell{X: 4, Y: 4}) {
		t.Fatal("toggling (9,4) must clear (4,4) again")
	}
	if w.Population() != 0 {
		t.Fatalf("wrapped round trip left %d live cells", w.Population())
	}
}

func TestCornerNeighborsAcrossTheSeam(t *testing.T) {
	w := New(5, 5)
	w.Toggle(life.Cell{X: 4, Y: 4})

	if got := w.NeighborCount(life.Cell{X: 0, Y: 0}); got != 1 {
		t.Fatalf("corner (0,0) counts %d live neighbors, expected 1 from (4,4)", got)
	}

	w.Toggle(life.Cell{X: 0, Y: 0})
	if got := w.NeighborCount(life.Cell{X: 4, Y: 4}); got != 1 {
		t.Fatalf("corner (4,4) counts %d live neighbors, expected 1 from (0,0)", got)
	}
}

func TestStepOnAllDeadStaysAllDead(t *testing.T) {
	w := New(6, 6)
	w.Step()
	if w.Population() != 0 {
		t.Fatalf("all-dead grid evolved %d live cells", w.Population())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	w := New(6, 6)
	w.Toggle(life.Cell{X: 3, Y: 3})
	w.Step()
	if w.Population() != 0 {
		t.Fatalf("isolated cell survived, population = %d", w.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	w := New(6, 6)
	block := []life.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 2}}
	for _, c := range block {
		w.Toggle(c)
	}

	for gen := 1; gen <= 3; gen++ {
		w.Step()
		got := w.AliveCells()
		want := []life.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
		if !slices.Equal(got, want) {
			t.Fatalf("block changed at generation %d: %v", gen, got)
		}
	}
}

func TestBlinkerOscillatesWithPeriodTwo(t *testing.T) {
	w := New(5, 5)
	horizontal := []life.Cell{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	for _, c := range horizontal {
		w.Toggle(c)
	}

	w.Step()
	vertical := []life.Cell{{X: 2, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}}
	if got := w.AliveCells(); !slices.Equal(got, vertical) {
		t.Fatalf("after one step expected vertical blinker %v, got %v", vertical, got)
	}

	w.Step()
	if got := w.AliveCells(); !slices.Equal(got, horizontal) {
		t.Fatalf("after two steps expected original blinker %v, got %v", horizontal, got)
	}
}

func TestNeighborCountIsPureQuery(t *testing.T) {
	w := New(5, 5)
	w.Toggle(life.Cell{X: 1, Y: 1})
	w.Toggle(life.Cell{X: 2, Y: 1})

	before := w.AliveCells()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			w.NeighborCount(life.Cell{X: x, Y: y})
		}
	}
	if got := w.AliveCells(); !slices.Equal(got, before) {
		t.Fatalf("NeighborCount mutated the world: %v -> %v", before, got)
	}
}
