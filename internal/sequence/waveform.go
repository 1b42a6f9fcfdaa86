package sequence

import (
	"fmt"
	"math"
	"sort"
)

// Waveform is a pointwise function applied to a domain sequence.
type Waveform func(float64) float64

var waveforms = map[string]Waveform{
	"sin": math.Sin,
	"cos": math.Cos,
	"damped": func(x float64) float64 {
		return math.Exp(-x/5) * math.Sin(x)
	},
	"square": func(x float64) float64 {
		if math.Sin(x) >= 0 {
			return 1
		}
		return -1
	},
}

// GetWaveform resolves a waveform by name.
func GetWaveform(name string) (Waveform, error) {
	w, ok := waveforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown waveform: %s (available: %v)", name, ListWaveforms())
	}
	return w, nil
}

// ListWaveforms returns the registered waveform names, sorted.
func ListWaveforms() []string {
	names := make([]string, 0, len(waveforms))
	for name := range waveforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
