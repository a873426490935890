package ui

// Status carries the facts the overlay prints in its strip.
type Status struct {
	Engine     string
	Generation int
	Population int
	Rate       int
	Paused     bool
}
