package app

import (
	"flag"
	"os"
	"strconv"

	"toruslife/pkg/sims/life"
)

// APIURLEnv names the environment variable consulted when -api is not given.
const APIURLEnv = "LIFE_API_URL"

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	Scale    int
	TPS      int
	Seed     int64
	Density  float64
	Workers  int
	Pattern  string
	MaxSteps int
	APIURL   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Rows:    d.Rows,
		Cols:    d.Cols,
		Scale:   10,
		TPS:     60,
		Seed:    d.Seed,
		Density: d.Density,
		Workers: d.Workers,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (headless: 0 = unpaced)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial board")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a seeded cell starts alive")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row strips computed in parallel per generation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext pattern file to center on the board instead of random seeding")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "stop after this many steps even if not converged (0 = no limit)")
	fs.StringVar(&c.APIURL, "api", c.APIURL, "statistics API base URL (default $"+APIURLEnv+")")
}

// ApplyEnv fills values that were not set on the command line from the
// environment. Call it after fs.Parse.
func (c *Config) ApplyEnv(fs *flag.FlagSet, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["api"] {
		if v, ok := lookup(APIURLEnv); ok {
			c.APIURL = v
		}
	}
}

// SimConfig converts the flags into the simulation's config map.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"rows":    strconv.Itoa(c.Rows),
		"cols":    strconv.Itoa(c.Cols),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"workers": strconv.Itoa(c.Workers),
	}
}
