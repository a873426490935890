// Command soak runs the naive and indexed engines side by side over many
// seeded boards and fails loudly on the first divergence. It is the
// long-running counterpart to the equivalence tests, meant for shaking out
// bookkeeping drift under sustained churn.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/Leden/go-life/pkg/life"
	"github.com/Leden/go-life/pkg/life/indexed"
	"github.com/Leden/go-life/pkg/life/naive"
	"github.com/Leden/go-life/pkg/rng"

	"golang.org/x/sync/errgroup"
)

type soakConfig struct {
	width   int
	height  int
	gens    int
	churn   int
	verify  int
	density float64
}

type seedResult struct {
	seed    int64
	pop     int
	elapsed time.Duration
}

func main() {
	width := flag.Int("width", 64, "board width in cells")
	height := flag.Int("height", 64, "board height in cells")
	gens := flag.Int("gens", 256, "generations to run per seed")
	seeds := flag.Int("seeds", 8, "number of seeded boards to soak")
	churn := flag.Int("churn", 4, "random toggles applied to both engines each generation")
	density := flag.Float64("density", 0.25, "initial scatter density in [0,1]")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verify := flag.Int("verify", 32, "full neighbor-count audit every N generations (0 disables)")
	flag.Parse()

	cfg := soakConfig{
		width:   *width,
		height:  *height,
		gens:    *gens,
		churn:   *churn,
		verify:  *verify,
		density: *density,
	}

	fmt.Printf("Soaking %d seeds on %dx%d for %d generations (%d workers, churn %d)\n",
		*seeds, cfg.width, cfg.height, cfg.gens, *workers, cfg.churn)

	results := make([]seedResult, *seeds)
	var eg errgroup.Group
	eg.SetLimit(*workers)

	start := time.Now()
	for i := 0; i < *seeds; i++ {
		eg.Go(func() error {
			res, err := runSeed(int64(i+1), cfg)
			results[i] = res
			return err
		})
	}
	err := eg.Wait()

	for _, res := range results {
		if res.elapsed == 0 {
			continue
		}
		fmt.Printf("seed %3d: pop=%4d elapsed=%s\n",
			res.seed, res.pop, res.elapsed.Round(time.Millisecond))
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("\nAll %d seeds agree after %d generations each (elapsed %s)\n",
		*seeds, cfg.gens, time.Since(start).Round(time.Millisecond))
}

// runSeed drives both engines through identical scatter, churn, and steps,
// comparing their visible state after every generation.
func runSeed(seed int64, cfg soakConfig) (seedResult, error) {
	a := naive.New(cfg.width, cfg.height)
	b := indexed.New(cfg.width, cfg.height)

	// Two fresh sources from the same seed produce identical scatters.
	life.Scatter(a, rng.New(seed).Source(), cfg.density)
	life.Scatter(b, rng.New(seed).Source(), cfg.density)

	churn := rng.New(seed + 1)
	start := time.Now()

	for gen := 1; gen <= cfg.gens; gen++ {
		for i := 0; i < cfg.churn; i++ {
			pos := life.Cell{X: churn.IntN(cfg.width), Y: churn.IntN(cfg.height)}
			a.Toggle(pos)
			b.Toggle(pos)
		}

		a.Step()
		b.Step()

		if a.Population() != b.Population() {
			return seedResult{}, fmt.Errorf("seed %d: population diverged at generation %d: naive=%d indexed=%d",
				seed, gen, a.Population(), b.Population())
		}
		if !slices.Equal(a.AliveCells(), b.AliveCells()) {
			return seedResult{}, fmt.Errorf("seed %d: boards diverged at generation %d", seed, gen)
		}
		if cfg.verify > 0 && gen%cfg.verify == 0 {
			if err := auditCounts(a, b); err != nil {
				return seedResult{}, fmt.Errorf("seed %d: generation %d: %v", seed, gen, err)
			}
		}
	}

	return seedResult{seed: seed, pop: a.Population(), elapsed: time.Since(start)}, nil
}

// auditCounts compares liveness and neighbor counts cell by cell across the
// whole grid. Expensive, so it only runs every cfg.verify generations.
func auditCounts(a, b life.World) error {
	size := a.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			pos := life.Cell{X: x, Y: y}
			if a.IsAlive(pos) != b.IsAlive(pos) {
				return fmt.Errorf("liveness mismatch at (%d,%d): naive=%v indexed=%v",
					x, y, a.IsAlive(pos), b.IsAlive(pos))
			}
			if na, nb := a.NeighborCount(pos), b.NeighborCount(pos); na != nb {
				return fmt.Errorf("neighbor count mismatch at (%d,%d): naive=%d indexed=%d",
					x, y, na, nb)
			}
		}
	}
	return nil
}
