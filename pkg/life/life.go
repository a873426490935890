// Package life defines the shared vocabulary of the Game of Life engines:
// toroidal coordinates, the evolution rule, the World contract both engine
// implementations satisfy, and the registry the binaries pick engines from.
package life

// Cell identifies a grid position by column (X) and row (Y).
type Cell struct {
	X int
	Y int
}

// Size describes the dimensions of a world grid.
type Size struct {
	W int
	H int
}

// Mod returns the floored modulo of a by n, always in [0, n) for n > 0.
// Unlike Go's % operator, negative operands fold back onto the grid:
// Mod(-1, w) == w-1.
func Mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Wrap normalizes an arbitrary cell onto the torus, so that the top edge
// neighbors the bottom edge and the left edge neighbors the right.
func (s Size) Wrap(c Cell) Cell {
	return Cell{X: Mod(c.X, s.W), Y: Mod(c.Y, s.H)}
}

// Neighbors returns the eight toroidal neighbors of c in a fixed row-major
// order. The result always has exactly eight entries; when W or H is at most
// 2 the wrapping makes some of them coincide, and neighbor counts then weigh
// the coinciding cells once per appearance.
func (s Size) Neighbors(c Cell) [8]Cell {
	var out [8]Cell
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = s.Wrap(Cell{X: c.X + dx, Y: c.Y + dy})
			i++
		}
	}
	return out
}

// NextState applies Conway's rule to a cell with the given liveness and live
// neighbor count n: birth on 3, survival on 2 or 3, death otherwise.
func NextState(alive bool, n int) bool {
	return n == 3 || (alive && n == 2)
}

// World is the contract shared by the engine implementations. Construction
// yields an all-dead grid of fixed size; the only mutations are single-cell
// toggles and whole-generation steps. Dimensions must be positive; behavior
// for non-positive dimensions is unspecified.
type World interface {
	// Name identifies the engine implementation.
	Name() string
	// Size reports the grid dimensions.
	Size() Size
	// IsAlive reports whether the cell at pos (wrapped) is alive.
	IsAlive(pos Cell) bool
	// Toggle flips the liveness of the cell at pos (wrapped).
	Toggle(pos Cell)
	// Step advances the world by exactly one generation.
	Step()
	// NeighborCount returns the number of live cells among the eight
	// toroidal neighbors of pos (wrapped). Query only, no side effects.
	NeighborCount(pos Cell) int
	// Population returns the number of live cells.
	Population() int
	// AliveCells returns the live cells in row-major order.
	AliveCells() []Cell
}

// Factory constructs an empty World with the given dimensions.
type Factory func(w, h int) World

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}
