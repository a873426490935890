package life

// Game couples a world with the pause gate that decides whether tick
// commands are delivered to it.
type Game struct {
	world      World
	paused     bool
	generation int
}

// NewGame wraps the provided world. Games start paused so the board can be
// edited before the first generation runs.
func NewGame(world World) *Game {
	return &Game{world: world, paused: true}
}

// World returns the wrapped world.
func (g *Game) World() World { return g.world }

// Paused reports whether tick commands are currently ignored.
func (g *Game) Paused() bool { return g.paused }

// Generation returns the number of generations run so far.
func (g *Game) Generation() int { return g.generation }

// TogglePause flips the pause gate.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Toggle flips a single cell. Edits are accepted whether or not the game is
// paused.
func (g *Game) Toggle(pos Cell) {
	g.world.Toggle(pos)
}

// Tick advances one generation unless the game is paused. It reports whether
// a generation ran. Ticks arriving while paused are dropped, never queued.
func (g *Game) Tick() bool {
	if g.paused {
		return false
	}
	g.Step()
	return true
}

// Step advances exactly one generation regardless of the pause gate.
func (g *Game) Step() {
	g.world.Step()
	g.generation++
}
