// Package viz provides the terminal live view for waveforms.
//
// The view is a Bubble Tea program: each tick advances a phase offset and
// re-renders the configured waveform as an asciigraph line plot with a
// lipgloss-styled stats column.
//
// # Key Bindings
//
//	Space - Pause/Resume animation
//	R     - Reset phase
//	Q     - Quit
package viz
