package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrum_PureTone(t *testing.T) {
	// Two full cycles over 128 samples: the peak must land in bin 2.
	n := 128
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 2 {
		t.Errorf("expected peak at bin 2, got %d", peak)
	}
}

func TestPowerSpectrum_PadsToPowerOfTwo(t *testing.T) {
	data := make([]float64, 100)
	ps := PowerSpectrum(data)
	if len(ps) != 64 {
		t.Errorf("expected 100 samples padded to 128 (64 bins), got %d bins", len(ps))
	}
}

func TestPowerSpectrum_Empty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil for empty input, got %v", ps)
	}
}

func TestDominantFrequency(t *testing.T) {
	n := 128
	dx := 0.1
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2 * float64(i) / float64(n))
	}

	ps := PowerSpectrum(data)
	freq, power := DominantFrequency(ps, n, dx)

	want := 2.0 / (float64(n) * dx)
	if math.Abs(freq-want) > 1e-9 {
		t.Errorf("frequency: got %v, want %v", freq, want)
	}
	if power <= 0 {
		t.Errorf("expected positive peak power, got %v", power)
	}
}

func TestDominantFrequency_Flat(t *testing.T) {
	freq, power := DominantFrequency([]float64{0, 0, 0, 0}, 8, 0.1)
	if freq != 0 || power != 0 {
		t.Errorf("expected zero for flat spectrum, got %v, %v", freq, power)
	}
}
