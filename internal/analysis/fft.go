// Package analysis provides frequency-domain analysis of range sequences.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of data over the positive
// frequency half. Input is zero-padded to the next power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC bin of ps and its
// frequency in cycles per domain unit, given the padded sample count and
// the sample spacing. It returns 0, 0 for a flat or empty spectrum.
func DominantFrequency(ps []float64, n int, dx float64) (freq float64, power float64) {
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			maxIdx = i
		}
	}
	if maxIdx == 0 || n == 0 || dx == 0 {
		return 0, 0
	}
	return float64(maxIdx) / (float64(n) * dx), power
}
