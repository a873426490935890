//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"github.com/Leden/go-life/internal/app"
	"github.com/Leden/go-life/pkg/life"
	_ "github.com/Leden/go-life/pkg/life/indexed"
	_ "github.com/Leden/go-life/pkg/life/naive"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadFile(app.ConfigFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.Fatalf("load %s: %v", app.ConfigFile, err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := life.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q", cfg.Engine)
	}

	game := app.New(factory, cfg)

	ebiten.SetWindowTitle("go-life — " + cfg.Engine)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
