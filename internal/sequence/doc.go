// Package sequence generates evenly spaced domain sequences and maps
// waveform functions over them.
//
// [Linspace] produces the domain: count samples from lo to hi inclusive,
// strictly increasing, endpoints exact. [Sequence.Apply] produces the
// range by pointwise application, preserving positional correspondence.
// Both are pure; calling them twice with the same inputs yields
// bit-identical results.
//
// Named waveforms (sin, cos, damped, square) are resolved through
// [GetWaveform].
package sequence
