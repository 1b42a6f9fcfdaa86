package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/waveplot/internal/config"
	"github.com/san-kum/waveplot/internal/sequence"
)

const (
	graphWidth  = 80
	graphHeight = 16
	// Phase advance per frame, in radians.
	phaseStep = 0.15
)

type TickMsg time.Time

// Model animates the configured waveform by sliding a phase offset across
// the fixed domain each frame.
type Model struct {
	cfg     *config.Config
	wave    sequence.Waveform
	x       sequence.Sequence
	phase   float64
	frames  int
	fps     int
	running bool
}

// NewModel builds the live view state. The config must already validate.
func NewModel(cfg *config.Config, fps int) (Model, error) {
	if fps < 1 {
		return Model{}, fmt.Errorf("frame rate must be positive, got %d", fps)
	}
	wave, err := sequence.GetWaveform(cfg.Waveform)
	if err != nil {
		return Model{}, err
	}
	x, err := sequence.Linspace(cfg.Lo, cfg.Hi, cfg.Samples)
	if err != nil {
		return Model{}, err
	}
	return Model{cfg: cfg, wave: wave, x: x, fps: fps, running: true}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.phase = 0
			m.frames = 0
		}
	case TickMsg:
		if m.running {
			m.phase += phaseStep
			m.frames++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	phase := m.phase
	y := m.x.Apply(func(v float64) float64 { return m.wave(v + phase) })

	graph := asciigraph.Plot(y,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.cfg.Title) + "\n")
	b.WriteString(graphStyle.Render(graph) + "\n")

	status := "running"
	if !m.running {
		status = pausedStyle.Render("paused")
	}
	stats := []struct{ label, value string }{
		{"waveform", m.cfg.Waveform},
		{"span", fmt.Sprintf("%.2f .. %.2f", m.cfg.Lo, m.cfg.Hi)},
		{"samples", fmt.Sprintf("%d", m.cfg.Samples)},
		{"min / max", fmt.Sprintf("%.3f / %.3f", y.Min(), y.Max())},
		{"frame", fmt.Sprintf("%d", m.frames)},
		{"status", status},
	}
	for _, s := range stats {
		b.WriteString(labelStyle.Render(s.label) + valueStyle.Render(s.value) + "\n")
	}

	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}
