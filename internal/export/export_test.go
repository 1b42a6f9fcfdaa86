package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/waveplot/internal/plot"
	"github.com/san-kum/waveplot/internal/sequence"
)

func TestWriteCSV(t *testing.T) {
	x := sequence.Sequence{0, 0.5, 1}
	y := sequence.Sequence{0, 0.25, 1}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, x, y); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(lines))
	}
	if lines[0] != "x,y" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[2] != "0.500000,0.250000" {
		t.Errorf("unexpected row: %s", lines[2])
	}
}

func TestWriteJSON(t *testing.T) {
	x := sequence.Sequence{0, 5, 10}
	y := sequence.Sequence{0, -1, 0.5}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, "sin", x, y); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data SeriesData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}

	if data.Waveform != "sin" {
		t.Errorf("expected waveform sin, got %s", data.Waveform)
	}
	if data.Lo != 0 || data.Hi != 10 || data.Samples != 3 {
		t.Errorf("unexpected metadata: %+v", data)
	}
	if len(data.X) != 3 || len(data.Y) != 3 {
		t.Errorf("series not round-tripped: %+v", data)
	}
}

func TestWrite_Invalid(t *testing.T) {
	x := sequence.Sequence{0, 1, 2}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, x, x[:2]); !errors.Is(err, plot.ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if err := WriteJSON(&buf, "sin", nil, nil); !errors.Is(err, plot.ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("expected no output on validation failure")
	}
}
