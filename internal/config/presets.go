package config

import "sort"

var presets = map[string]*Config{
	"default": {
		Lo: 0, Hi: 10, Samples: 100, Waveform: "sin",
		Title: "Sine Wave", XLabel: "X", YLabel: "Y",
		Width: 10, Height: 6, Grid: true,
	},
	"dense": {
		Lo: 0, Hi: 10, Samples: 1000, Waveform: "sin",
		Title: "Sine Wave", XLabel: "X", YLabel: "Y",
		Width: 10, Height: 6, Grid: true,
	},
	"coarse": {
		Lo: 0, Hi: 10, Samples: 25, Waveform: "sin",
		Title: "Sine Wave", XLabel: "X", YLabel: "Y",
		Width: 10, Height: 6, Grid: true,
	},
	"two-cycles": {
		Lo: 0, Hi: 12.566370614359172, Samples: 200, Waveform: "sin",
		Title: "Sine Wave", XLabel: "X", YLabel: "Y",
		Width: 10, Height: 6, Grid: true,
	},
	"cosine": {
		Lo: 0, Hi: 10, Samples: 100, Waveform: "cos",
		Title: "Cosine Wave", XLabel: "X", YLabel: "Y",
		Width: 10, Height: 6, Grid: true,
	},
	"damped": {
		Lo: 0, Hi: 20, Samples: 400, Waveform: "damped",
		Title: "Damped Oscillation", XLabel: "X", YLabel: "Y",
		Width: 10, Height: 6, Grid: true,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
