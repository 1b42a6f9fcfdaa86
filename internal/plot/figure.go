package plot

import (
	"errors"
	"fmt"

	"github.com/san-kum/waveplot/internal/sequence"
)

var (
	// ErrLengthMismatch reports x and y series of differing lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrEmptySequence reports a zero-length input series.
	ErrEmptySequence = errors.New("empty sequence")
)

// Default figure attributes, matching a 10x6 annotated sine plot.
const (
	DefaultTitle  = "Sine Wave"
	DefaultXLabel = "X"
	DefaultYLabel = "Y"
	DefaultWidth  = 10.0
	DefaultHeight = 6.0
)

// Figure is a single-series line plot artifact. It is created once per run
// and not mutated after creation; renderers only read from it.
type Figure struct {
	X, Y   sequence.Sequence
	Title  string
	XLabel string
	YLabel string

	// Figure size in length units (inches at render time).
	Width  float64
	Height float64

	Grid bool
}

// Option configures a Figure at construction.
type Option func(*Figure)

func WithTitle(title string) Option {
	return func(f *Figure) { f.Title = title }
}

func WithLabels(x, y string) Option {
	return func(f *Figure) { f.XLabel, f.YLabel = x, y }
}

func WithSize(width, height float64) Option {
	return func(f *Figure) { f.Width, f.Height = width, height }
}

func WithGrid(on bool) Option {
	return func(f *Figure) { f.Grid = on }
}

// New validates the series and builds a figure with the default annotations
// unless overridden by options. The series are cloned so later mutation of
// the caller's slices cannot reach into the artifact.
func New(x, y sequence.Sequence, opts ...Option) (*Figure, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, fmt.Errorf("%w: x has %d samples, y has %d", ErrEmptySequence, len(x), len(y))
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: x has %d samples, y has %d", ErrLengthMismatch, len(x), len(y))
	}

	f := &Figure{
		X:      x.Clone(),
		Y:      y.Clone(),
		Title:  DefaultTitle,
		XLabel: DefaultXLabel,
		YLabel: DefaultYLabel,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Grid:   true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}
