// Package naive implements the rescanning Game of Life engine: it stores
// only the set of live cells and recounts neighbors from scratch for every
// cell that could change each generation.
package naive

import (
	"sort"

	"github.com/Leden/go-life/pkg/life"
)

// World holds the live-cell set for a fixed-size toroidal grid.
type World struct {
	size  life.Size
	alive map[life.Cell]struct{}
}

// New returns an all-dead world with the provided dimensions.
func New(w, h int) *World {
	return &World{
		size:  life.Size{W: w, H: h},
		alive: make(map[life.Cell]struct{}),
	}
}

// Name returns the engine identifier.
func (w *World) Name() string { return "naive" }

// Size returns the grid dimensions.
func (w *World) Size() life.Size { return w.size }

// IsAlive reports whether the cell at pos is alive.
func (w *World) IsAlive(pos life.Cell) bool {
	_, ok := w.alive[w.size.Wrap(pos)]
	return ok
}

// Toggle flips the liveness of the cell at pos.
func (w *World) Toggle(pos life.Cell) {
	pos = w.size.Wrap(pos)
	if _, ok := w.alive[pos]; ok {
		delete(w.alive, pos)
		return
	}
	w.alive[pos] = struct{}{}
}

// NeighborCount counts the live cells among the eight toroidal neighbors of
// pos, weighing cells reachable through more than one offset once per
// appearance (only possible when a dimension is 2 or smaller).
func (w *World) NeighborCount(pos life.Cell) int {
	count := 0
	for _, n := range w.size.Neighbors(w.size.Wrap(pos)) {
		if _, ok := w.alive[n]; ok {
			count++
		}
	}
	return count
}

// Population returns the number of live cells.
func (w *World) Population() int { return len(w.alive) }

// AliveCells returns the live cells in row-major order.
func (w *World) AliveCells() []life.Cell {
	cells := make([]life.Cell, 0, len(w.alive))
	for c := range w.alive {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Step advances the world by one generation. Only live cells and their
// neighbors are examined; every other cell is dead, has no live neighbors,
// and stays dead.
func (w *World) Step() {
	evolvable := make(map[life.Cell]struct{}, len(w.alive)*4)
	for c := range w.alive {
		evolvable[c] = struct{}{}
		for _, n := range w.size.Neighbors(c) {
			evolvable[n] = struct{}{}
		}
	}

	next := make(map[life.Cell]struct{}, len(w.alive))
	for c := range evolvable {
		_, alive := w.alive[c]
		if life.NextState(alive, w.NeighborCount(c)) {
			next[c] = struct{}{}
		}
	}
	w.alive = next
}

func init() {
	life.Register("naive", func(w, h int) life.World {
		return New(w, h)
	})
}
