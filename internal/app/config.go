package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// ConfigFile is the optional JSON settings file looked up in the working
// directory. Values it provides override the built-in defaults and are in
// turn overridden by command-line flags.
const ConfigFile = "life.json"

// Config holds the runtime parameters shared by the binaries.
type Config struct {
	Engine  string  `json:"engine"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   int     `json:"scale"`
	TPS     int     `json:"tps"`
	GPS     int     `json:"gps"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:  "indexed",
		Width:   64,
		Height:  64,
		Scale:   8,
		TPS:     60,
		GPS:     12,
		Seed:    42,
		Density: 0.25,
	}
}

// LoadFile overlays settings from a JSON file onto the current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet, using the current
// values as flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "engine to run (naive or indexed)")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial scatter")
	fs.Float64Var(&c.Density, "density", c.Density, "scatter density in [0,1]")
}
