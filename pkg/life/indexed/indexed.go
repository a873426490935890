// Package indexed implements the incrementally indexed Game of Life engine.
// Alongside the live-cell set it maintains a map from every cell with at
// least one live neighbor to its exact live-neighbor count, patched on every
// toggle, so a generation step scans the active frontier instead of the grid.
package indexed

import (
	"sort"

	"github.com/Leden/go-life/pkg/life"
)

// World holds the live-cell set and the live-neighbor index for a fixed-size
// toroidal grid. The index never stores zero: entries are pruned the moment a
// decrement reaches zero, so absence and a zero count are the same fact.
type World struct {
	size  life.Size
	alive map[life.Cell]struct{}
	index map[life.Cell]int
}

// New returns an all-dead world with the provided dimensions.
func New(w, h int) *World {
	return &World{
		size:  life.Size{W: w, H: h},
		alive: make(map[life.Cell]struct{}),
		index: make(map[life.Cell]int),
	}
}

// Name returns the engine identifier.
func (w *World) Name() string { return "indexed" }

// Size returns the grid dimensions.
func (w *World) Size() life.Size { return w.size }

// IsAlive reports whether the cell at pos is alive.
func (w *World) IsAlive(pos life.Cell) bool {
	_, ok := w.alive[w.size.Wrap(pos)]
	return ok
}

// Toggle flips the liveness of the cell at pos, patching the index entries
// of its eight neighbors. The toggled cell's own entry counts its neighbors'
// liveness, which a flip of pos does not change, so it is left untouched.
func (w *World) Toggle(pos life.Cell) {
	pos = w.size.Wrap(pos)
	if _, ok := w.alive[pos]; ok {
		w.setDead(pos)
		return
	}
	w.setAlive(pos)
}

// NeighborCount returns the recorded live-neighbor count of pos; cells
// outside the index have none.
func (w *World) NeighborCount(pos life.Cell) int {
	return w.index[w.size.Wrap(pos)]
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

// setAlive inserts pos into the live set and credits each neighbor's count.
// A neighbor reachable through more than one wrapped offset is credited once
// per appearance, matching how counting engines see it.
func (w *World) setAlive(pos life.Cell) {
	w.alive[pos] = struct{}{}
	for _, n := range w.size.Neighbors(pos) {
		w.index[n]++
	}
}

// setDead removes pos from the live set and debits each neighbor's count,
// pruning entries that reach zero. Every neighbor of a live cell carries at
// least that cell's credit, so a debit never meets a missing entry.
func (w *World) setDead(pos life.Cell) {
	delete(w.alive, pos)
	for _, n := range w.size.Neighbors(pos) {
		if w.index[n] <= 1 {
			delete(w.index, n)
			continue
		}
		w.index[n]--
	}
}

// Step advances the world by one generation. The work list is materialized
// before any flip is applied: setAlive/setDead rewrite the index, and the
// next generation must be a function of this generation's counts, never of
// partially applied updates. Live cells with no live neighbors sit outside
// the index (pruning keeps them out) and are examined separately; the rule
// kills them, and skipping them would desynchronize this engine from the
// rescanning one.
func (w *World) Step() {
	var births, deaths []life.Cell
	for c, n := range w.index {
		_, alive := w.alive[c]
		switch {
		case !alive && life.NextState(false, n):
			births = append(births, c)
		case alive && !life.NextState(true, n):
			deaths = append(deaths, c)
		}
	}
	for c := range w.alive {
		if _, tracked := w.index[c]; !tracked {
			deaths = append(deaths, c)
		}
	}

	for _, c := range deaths {
		w.setDead(c)
	}
	for _, c := range births {
		w.setAlive(c)
	}
}

func init() {
	life.Register("indexed", func(w, h int) life.World {
		return New(w, h)
	})
}
