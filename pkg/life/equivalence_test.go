package life_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/Leden/go-life/pkg/life"
	"github.com/Leden/go-life/pkg/life/indexed"
	"github.com/Leden/go-life/pkg/life/naive"
	"github.com/Leden/go-life/pkg/rng"
)

func TestRegistryListsBothEngines(t *testing.T) {
	engines := life.Engines()
	for _, name := range []string{"naive", "indexed"} {
		factory, ok := engines[name]
		if !ok {
			t.Fatalf("engine %q is not registered", name)
		}
		w := factory(4, 4)
		if w.Name() != name {
			t.Fatalf("factory %q built a world named %q", name, w.Name())
		}
		if w.Size() != (life.Size{W: 4, H: 4}) {
			t.Fatalf("factory %q built a %v world, expected 4x4", name, w.Size())
		}
	}
}

// compareWorlds fails the test as soon as the two engines disagree on the
// live set or on any cell's neighbor count.
func compareWorlds(t *testing.T, gen int, a, b life.World) {
	t.Helper()
	if !slices.Equal(a.AliveCells(), b.AliveCells()) {
		t.Fatalf("generation %d: engines diverged\n%s: %v\n%s: %v",
			gen, a.Name(), a.AliveCells(), b.Name(), b.AliveCells())
	}
	size := a.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := life.Cell{X: x, Y: y}
			if a.NeighborCount(c) != b.NeighborCount(c) {
				t.Fatalf("generation %d: neighbor counts differ at %v: %s=%d %s=%d",
					gen, c, a.Name(), a.NeighborCount(c), b.Name(), b.NeighborCount(c))
			}
		}
	}
}

func TestEnginesProduceIdenticalGenerations(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			a := naive.New(24, 18)
			b := indexed.New(24, 18)
			life.Scatter(a, rng.New(seed).Source(), 0.3)
			life.Scatter(b, rng.New(seed).Source(), 0.3)
			compareWorlds(t, 0, a, b)

			for gen := 1; gen <= 40; gen++ {
				a.Step()
				b.Step()
				compareWorlds(t, gen, a, b)
			}
		})
	}
}

func TestEnginesAgreeUnderInterleavedToggles(t *testing.T) {
	a := naive.New(16, 16)
	b := indexed.New(16, 16)
	life.Scatter(a, rng.New(7).Source(), 0.25)
	life.Scatter(b, rng.New(7).Source(), 0.25)

	churn := rng.New(8)
	for gen := 1; gen <= 60; gen++ {
		// Edits land between generations, exactly as UI toggles would.
		for i := 0; i < 3; i++ {
			c := life.Cell{X: churn.IntN(16), Y: churn.IntN(16)}
			a.Toggle(c)
			b.Toggle(c)
		}
		a.Step()
		b.Step()
		compareWorlds(t, gen, a, b)
	}
}

func TestScatterIsDeterministicPerSeed(t *testing.T) {
	a := naive.New(10, 10)
	b := naive.New(10, 10)
	life.Scatter(a, rng.New(99).Source(), 0.5)
	life.Scatter(b, rng.New(99).Source(), 0.5)

	if !slices.Equal(a.AliveCells(), b.AliveCells()) {
		t.Fatal("same seed produced different scatters")
	}

	c := naive.New(10, 10)
	life.Scatter(c, rng.New(100).Source(), 0.5)
	if slices.Equal(a.AliveCells(), c.AliveCells()) {
		t.Fatal("different seeds produced identical scatters")
	}
}
