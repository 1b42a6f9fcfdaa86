// Package export writes generated series to CSV and JSON sinks.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/waveplot/internal/plot"
	"github.com/san-kum/waveplot/internal/sequence"
)

// SeriesData is the JSON export shape.
type SeriesData struct {
	Waveform string    `json:"waveform"`
	Lo       float64   `json:"lo"`
	Hi       float64   `json:"hi"`
	Samples  int       `json:"samples"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
}

func validate(x, y sequence.Sequence) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("%w: x has %d samples, y has %d", plot.ErrEmptySequence, len(x), len(y))
	}
	if len(x) != len(y) {
		return fmt.Errorf("%w: x has %d samples, y has %d", plot.ErrLengthMismatch, len(x), len(y))
	}
	return nil
}

// WriteCSV writes the paired series as "x,y" rows with a header.
func WriteCSV(w io.Writer, x, y sequence.Sequence) error {
	if err := validate(x, y); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(y[i], 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the paired series with its generation metadata as
// indented JSON.
func WriteJSON(w io.Writer, waveform string, x, y sequence.Sequence) error {
	if err := validate(x, y); err != nil {
		return err
	}

	data := SeriesData{
		Waveform: waveform,
		Lo:       x[0],
		Hi:       x[len(x)-1],
		Samples:  len(x),
		X:        x,
		Y:        y,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
