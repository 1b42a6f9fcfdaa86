package sequence

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDomain reports generation bounds that cannot produce an evenly
// spaced sequence: fewer than two samples, or a span that is not positive.
var ErrInvalidDomain = errors.New("invalid domain")

// Sequence is an ordered series of real samples.
type Sequence []float64

// Linspace returns count evenly spaced samples from lo to hi inclusive.
// Spacing is (hi-lo)/(count-1); the result is strictly increasing with
// first element exactly lo and last element exactly hi.
func Linspace(lo, hi float64, count int) (Sequence, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidDomain, count)
	}
	if hi <= lo {
		return nil, fmt.Errorf("%w: hi (%g) must exceed lo (%g)", ErrInvalidDomain, hi, lo)
	}

	s := make(Sequence, count)
	step := (hi - lo) / float64(count-1)
	for i := range s {
		s[i] = lo + float64(i)*step
	}
	// Pin the endpoint so accumulated rounding never leaks past hi.
	s[count-1] = hi
	return s, nil
}

// Apply maps f over the sequence, returning a new sequence of equal length.
// The receiver is not modified.
func (s Sequence) Apply(f func(float64) float64) Sequence {
	out := make(Sequence, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// Min returns the smallest sample, or 0 for an empty sequence.
func (s Sequence) Min() float64 {
	if len(s) == 0 {
		return 0
	}
	min := s[0]
	for _, v := range s[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest sample, or 0 for an empty sequence.
func (s Sequence) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	max := s[0]
	for _, v := range s[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// IsValid reports whether every sample is finite.
func (s Sequence) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
