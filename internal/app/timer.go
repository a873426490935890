package app

import "time"

// Pacer advances the simulation at a steady generations-per-second rate,
// decoupled from the display frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given generation rate.
func NewPacer(gps int) *Pacer {
	if gps <= 0 {
		gps = 12
	}
	p := &Pacer{}
	p.SetRate(gps)
	p.accumulator = p.step
	return p
}

// SetRate changes the generation rate. It is safe to call from the main loop.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		gps = 12
	}
	p.step = time.Second / time.Duration(gps)
}

// ShouldStep reports whether the simulation should advance by one generation.
func (p *Pacer) ShouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// Reset discards accumulated time and re-primes the pacer so the next
// ShouldStep fires exactly once. Called every paused frame so that time
// spent paused never turns into a burst of catch-up generations.
func (p *Pacer) Reset() {
	p.accumulator = p.step
	p.last = time.Time{}
}
