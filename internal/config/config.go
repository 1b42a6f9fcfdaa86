package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/waveplot/internal/sequence"
)

const (
	DefaultLo       = 0.0
	DefaultHi       = 10.0
	DefaultSamples  = 100
	DefaultWaveform = "sin"
	DefaultTitle    = "Sine Wave"
	DefaultXLabel   = "X"
	DefaultYLabel   = "Y"
	DefaultWidth    = 10.0
	DefaultHeight   = 6.0
)

// Config is the full run context: generation bounds, waveform, and figure
// annotations. Commands pass it explicitly; there is no ambient state.
type Config struct {
	Lo       float64 `yaml:"lo"`
	Hi       float64 `yaml:"hi"`
	Samples  int     `yaml:"samples"`
	Waveform string  `yaml:"waveform"`
	Title    string  `yaml:"title"`
	XLabel   string  `yaml:"xlabel"`
	YLabel   string  `yaml:"ylabel"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Grid     bool    `yaml:"grid"`
}

// DefaultConfig returns the fixed case: 100 samples of sine over [0, 10]
// on a 10x6 grid-on figure.
func DefaultConfig() *Config {
	return &Config{
		Lo:       DefaultLo,
		Hi:       DefaultHi,
		Samples:  DefaultSamples,
		Waveform: DefaultWaveform,
		Title:    DefaultTitle,
		XLabel:   DefaultXLabel,
		YLabel:   DefaultYLabel,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Grid:     true,
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto unmarshals a yaml config file over cfg in place. Fields the
// file does not set keep their current values, so a preset can serve as
// the base under a partial file.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the generation bounds and the waveform name before any
// sequence is produced.
func (c *Config) Validate() error {
	if c.Samples < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", sequence.ErrInvalidDomain, c.Samples)
	}
	if c.Hi <= c.Lo {
		return fmt.Errorf("%w: hi (%g) must exceed lo (%g)", sequence.ErrInvalidDomain, c.Hi, c.Lo)
	}
	if _, err := sequence.GetWaveform(c.Waveform); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", c.Width, c.Height)
	}
	return nil
}

// Generate produces the domain and range sequences described by the config.
func (c *Config) Generate() (sequence.Sequence, sequence.Sequence, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	x, err := sequence.Linspace(c.Lo, c.Hi, c.Samples)
	if err != nil {
		return nil, nil, err
	}
	w, err := sequence.GetWaveform(c.Waveform)
	if err != nil {
		return nil, nil, err
	}
	return x, x.Apply(w), nil
}
