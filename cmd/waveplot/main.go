package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/waveplot/internal/analysis"
	"github.com/san-kum/waveplot/internal/config"
	"github.com/san-kum/waveplot/internal/export"
	"github.com/san-kum/waveplot/internal/plot"
	"github.com/san-kum/waveplot/internal/viz"
)

var (
	lo        float64
	hi        float64
	samples   int
	waveform  string
	title     string
	xLabel    string
	yLabel    string
	figWidth  float64
	figHeight float64
	grid      bool
	// Config file and preset
	configFile string
	preset     string
	// Output sinks
	svgPath string
	outPath string
	// Frame rate for live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waveplot",
		Short: "waveform sequence generator and line plotter",
		RunE:  plotWave,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "generate a waveform and render it",
		RunE:  plotWave,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis of the generated waveform",
		RunE:  analyzeWave,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated live view of the waveform",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the generated series to CSV",
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the generated series to JSON",
		RunE:  exportJSON,
	}

	for _, cmd := range []*cobra.Command{rootCmd, plotCmd, analyzeCmd, liveCmd, exportCSVCmd, exportJSONCmd} {
		addGenerationFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{rootCmd, plotCmd} {
		addFigureFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{exportCSVCmd, exportJSONCmd} {
		cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	}

	rootCmd.AddCommand(plotCmd, analyzeCmd, liveCmd, presetsCmd, exportCSVCmd, exportJSONCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&lo, "lo", config.DefaultLo, "domain lower bound")
	cmd.Flags().Float64Var(&hi, "hi", config.DefaultHi, "domain upper bound")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	cmd.Flags().StringVar(&waveform, "waveform", config.DefaultWaveform, "waveform function")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addFigureFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&title, "title", config.DefaultTitle, "plot title")
	cmd.Flags().StringVar(&xLabel, "xlabel", config.DefaultXLabel, "x-axis label")
	cmd.Flags().StringVar(&yLabel, "ylabel", config.DefaultYLabel, "y-axis label")
	cmd.Flags().Float64Var(&figWidth, "fig-width", config.DefaultWidth, "figure width")
	cmd.Flags().Float64Var(&figHeight, "fig-height", config.DefaultHeight, "figure height")
	cmd.Flags().BoolVar(&grid, "grid", true, "show grid")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write an SVG file instead of plotting to the terminal")
}

// resolveConfig merges preset, config file, and flags in ascending
// precedence: an explicitly set flag always wins, a config file overrides a
// preset, and anything left unset keeps its default.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("lo") {
		cfg.Lo = lo
	}
	if cmd.Flags().Changed("hi") {
		cfg.Hi = hi
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("waveform") {
		cfg.Waveform = waveform
	}
	if f := cmd.Flags().Lookup("title"); f != nil && f.Changed {
		cfg.Title = title
	}
	if f := cmd.Flags().Lookup("xlabel"); f != nil && f.Changed {
		cfg.XLabel = xLabel
	}
	if f := cmd.Flags().Lookup("ylabel"); f != nil && f.Changed {
		cfg.YLabel = yLabel
	}
	if f := cmd.Flags().Lookup("fig-width"); f != nil && f.Changed {
		cfg.Width = figWidth
	}
	if f := cmd.Flags().Lookup("fig-height"); f != nil && f.Changed {
		cfg.Height = figHeight
	}
	if f := cmd.Flags().Lookup("grid"); f != nil && f.Changed {
		cfg.Grid = grid
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func plotWave(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	x, y, err := cfg.Generate()
	if err != nil {
		return err
	}

	fig, err := plot.New(x, y,
		plot.WithTitle(cfg.Title),
		plot.WithLabels(cfg.XLabel, cfg.YLabel),
		plot.WithSize(cfg.Width, cfg.Height),
		plot.WithGrid(cfg.Grid),
	)
	if err != nil {
		return err
	}

	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := fig.RenderSVG(f); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
		return nil
	}

	return fig.RenderASCII(os.Stdout)
}

func analyzeWave(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	x, y, err := cfg.Generate()
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(y)

	plotData := ps
	if len(ps) > 4 {
		plotData = ps[:len(ps)/4]
	}

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (%s)", cfg.Waveform)),
	)
	fmt.Println(graph)
	fmt.Println()

	dx := (cfg.Hi - cfg.Lo) / float64(cfg.Samples-1)
	freq, power := analysis.DominantFrequency(ps, 2*len(ps), dx)

	fmt.Printf("samples: %d over [%.2f, %.2f]\n", len(x), cfg.Lo, cfg.Hi)
	if freq > 0 {
		fmt.Printf("dominant frequency: %.4f cycles/unit (power %.2f)\n", freq, power)
		fmt.Printf("period: %.4f units\n", 1.0/freq)
	} else {
		fmt.Println("no dominant frequency found")
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg, frameRate)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWAVEFORM\tSPAN\tSAMPLES\tTITLE")

	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%.2f .. %.2f\t%d\t%s\n",
			name, p.Waveform, p.Lo, p.Hi, p.Samples, p.Title)
	}

	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	x, y, err := cfg.Generate()
	if err != nil {
		return err
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteCSV(f, x, y)
	}
	return export.WriteCSV(os.Stdout, x, y)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	x, y, err := cfg.Generate()
	if err != nil {
		return err
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.WriteJSON(f, cfg.Waveform, x, y)
	}
	return export.WriteJSON(os.Stdout, cfg.Waveform, x, y)
}
