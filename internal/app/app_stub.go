//go:build !ebiten

package app

import (
	"fmt"

	"github.com/Leden/go-life/pkg/life"
)

// App is a placeholder that satisfies the API expected by the GUI build.
type App struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(life.Factory, *Config) *App {
	panic("app.New requires building with the 'ebiten' tag")
}

// Update always reports that the GUI build tag is missing.
func (a *App) Update() error {
	return fmt.Errorf("app.App.Update requires building with the 'ebiten' tag")
}

// Draw is a no-op placeholder to satisfy the interface shape.
func (a *App) Draw(any) {}

// Layout returns zeros in the headless build.
func (a *App) Layout(int, int) (int, int) { return 0, 0 }
