package life

import "math/rand/v2"

// Scatter toggles each cell of an all-dead world alive with the given
// probability, visiting cells in row-major order so a seeded source produces
// the same board every time.
func Scatter(w World, r *rand.Rand, density float64) {
	size := w.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if r.Float64() < density {
				w.Toggle(Cell{X: x, Y: y})
			}
		}
	}
}
