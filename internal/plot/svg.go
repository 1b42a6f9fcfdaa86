package plot

import (
	"fmt"
	"io"
	"strings"
)

// DPI converts figure length units to pixels when rendering SVG.
const DPI = 96

const (
	marginLeft   = 60.0
	marginRight  = 20.0
	marginTop    = 50.0
	marginBottom = 50.0
	gridTicks    = 10
)

// RenderSVG writes the figure as a standalone SVG document: background,
// optional grid, the line path, title and axis labels. The canvas is
// Width x Height figure units at DPI pixels per unit.
func (f *Figure) RenderSVG(w io.Writer) error {
	width := f.Width * DPI
	height := f.Height * DPI

	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom

	xMin, xMax := f.X.Min(), f.X.Max()
	yMin, yMax := f.Y.Min(), f.Y.Max()

	// Pad the value range so the line never touches the frame.
	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}
	yMin -= yRange * 0.1
	yMax += yRange * 0.1
	yRange = yMax - yMin

	toPx := func(x, y float64) (float64, float64) {
		px := marginLeft + (x-xMin)/xRange*plotW
		py := marginTop + plotH - (y-yMin)/yRange*plotH
		return px, py
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	if f.Grid {
		sb.WriteString(`<g stroke="#dddddd" stroke-width="1">` + "\n")
		for i := 0; i <= gridTicks; i++ {
			gx := marginLeft + float64(i)/gridTicks*plotW
			gy := marginTop + float64(i)/gridTicks*plotH
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, gx, marginTop, gx, marginTop+plotH))
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, marginLeft, gy, marginLeft+plotW, gy))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333333"/>
`, marginLeft, marginTop, plotW, plotH))

	sb.WriteString(`<path fill="none" stroke="#1f77b4" stroke-width="1.5" d="M`)
	for i := range f.X {
		px, py := toPx(f.X[i], f.Y[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="20">%s</text>
`, width/2, marginTop/2+7, f.Title))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text>
`, width/2, height-marginBottom/3, f.XLabel))
	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="14" transform="rotate(-90 %.1f %.1f)">%s</text>
`, marginLeft/3, height/2, marginLeft/3, height/2, f.YLabel))

	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
