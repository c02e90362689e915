package app

import (
	"flag"
	"os"

	"github.com/go-errors/errors"

	"github.com/raypp2/LED-Ear-Wings/pkg/xymap"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Mask   string
	Wiring string
	Scale  int
	TPS    int
	Labels bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Wiring: xymap.Progressive.String(), Scale: 48, TPS: 8, Labels: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mask, "mask", c.Mask, "layout drawing to load instead of the ear wing")
	fs.StringVar(&c.Wiring, "wiring", c.Wiring, "strip wiring for -mask: progressive or serpentine")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per LED")
	fs.IntVar(&c.TPS, "tps", c.TPS, "chase cursor steps per second")
	fs.BoolVar(&c.Labels, "labels", c.Labels, "draw LED indices")
}

// Layout loads the configured layout.
func (c *Config) Layout() (*xymap.Layout, xymap.Wiring, error) {
	return LoadLayout(c.Mask, c.Wiring)
}

// LoadLayout reads the drawing at path and numbers it with the named wiring.
// An empty path selects the ear wing reference table.
func LoadLayout(path, wiring string) (*xymap.Layout, xymap.Wiring, error) {
	w, err := xymap.ParseWiring(wiring)
	if err != nil {
		return nil, w, err
	}
	if path == "" {
		return xymap.Reference(), xymap.Progressive, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, w, errors.Wrap(err, 0)
	}
	defer f.Close()

	m, err := xymap.ParseMask(f)
	if err != nil {
		return nil, w, errors.WrapPrefix(err, path, 0)
	}
	l, err := xymap.NewLayout(m, w)
	if err != nil {
		return nil, w, errors.WrapPrefix(err, path, 0)
	}
	return l, w, nil
}
