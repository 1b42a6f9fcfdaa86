// Package plot builds and renders single-series line plot artifacts.
//
// A [Figure] binds a domain sequence and its range sequence together with
// the plot annotations (title, axis labels, size, grid). Construction via
// [New] validates the pairing: series of differing lengths fail with
// [ErrLengthMismatch], zero-length series with [ErrEmptySequence]. Once
// built, a figure is immutable.
//
// Two renderers consume a figure:
//
//   - [Figure.RenderASCII]: terminal line plot on an io.Writer
//   - [Figure.RenderSVG]: standalone SVG document
//
// Renderers never mutate the figure, so the same artifact can be drawn to
// multiple sinks.
package plot
