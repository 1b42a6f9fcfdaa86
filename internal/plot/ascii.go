package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Character cells per figure length unit on the terminal sink. The default
// 10x6 figure renders as an 80x18 cell graph.
const (
	cellsPerUnitX = 8
	cellsPerUnitY = 3
)

const (
	minCols = 10
	minRows = 4
)

// asciiSize maps the figure size to terminal cell dimensions.
func (f *Figure) asciiSize() (cols, rows int) {
	cols = int(f.Width * cellsPerUnitX)
	rows = int(f.Height * cellsPerUnitY)
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	return cols, rows
}

// RenderASCII draws the figure as a terminal line plot on w, sized from
// the figure's Width and Height. The title is centered above the graph,
// the y-axis label sits on its own line, and the x-axis span is annotated
// below. With Grid enabled a tick ruler is drawn between the graph and the
// x annotation.
func (f *Figure) RenderASCII(w io.Writer) error {
	cols, rows := f.asciiSize()

	graph := asciigraph.Plot(f.Y,
		asciigraph.Height(rows),
		asciigraph.Width(cols),
	)

	pad := (cols - len(f.Title)) / 2
	if pad < 0 {
		pad = 0
	}
	if _, err := fmt.Fprintf(w, "%s%s\n\n", strings.Repeat(" ", pad), f.Title); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", f.YLabel); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, graph); err != nil {
		return err
	}

	if f.Grid {
		if _, err := fmt.Fprintln(w, tickRuler(cols, 10)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s: %.2f .. %.2f  (%d samples)\n",
		f.XLabel, f.X[0], f.X[len(f.X)-1], len(f.X))
	return err
}

// tickRuler builds a horizontal ruler with evenly spaced tick marks.
func tickRuler(width, ticks int) string {
	if ticks < 2 {
		ticks = 2
	}
	ruler := []rune(strings.Repeat("─", width))
	for i := 0; i < ticks; i++ {
		pos := i * (width - 1) / (ticks - 1)
		ruler[pos] = '┼'
	}
	return string(ruler)
}
