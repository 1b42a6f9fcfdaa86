package plot_test

import (
	"bytes"
	"math"
	"strings"
	"unicode/utf8"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/waveplot/internal/plot"
	"github.com/san-kum/waveplot/internal/sequence"
)

// rulerWidth renders the figure and measures the grid tick ruler in runes.
func rulerWidth(f *plot.Figure) int {
	var buf bytes.Buffer
	Expect(f.RenderASCII(&buf)).To(Succeed())
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.ContainsRune(line, '┼') {
			return utf8.RuneCountInString(line)
		}
	}
	return 0
}

var _ = Describe("Figure", func() {
	var x, y sequence.Sequence

	BeforeEach(func() {
		var err error
		x, err = sequence.Linspace(0, 10, 100)
		Expect(err).NotTo(HaveOccurred())
		y = x.Apply(math.Sin)
	})

	Describe("New", func() {
		It("builds a figure with the default annotations", func() {
			f, err := plot.New(x, y)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.Title).To(Equal("Sine Wave"))
			Expect(f.XLabel).To(Equal("X"))
			Expect(f.YLabel).To(Equal("Y"))
			Expect(f.Width).To(Equal(10.0))
			Expect(f.Height).To(Equal(6.0))
			Expect(f.Grid).To(BeTrue())
		})

		It("applies options over the defaults", func() {
			f, err := plot.New(x, y,
				plot.WithTitle("Damped"),
				plot.WithLabels("t", "amplitude"),
				plot.WithSize(8, 4),
				plot.WithGrid(false),
			)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.Title).To(Equal("Damped"))
			Expect(f.XLabel).To(Equal("t"))
			Expect(f.YLabel).To(Equal("amplitude"))
			Expect(f.Width).To(Equal(8.0))
			Expect(f.Height).To(Equal(4.0))
			Expect(f.Grid).To(BeFalse())
		})

		It("clones the series into the artifact", func() {
			f, err := plot.New(x, y)
			Expect(err).NotTo(HaveOccurred())

			x[0] = 999
			Expect(f.X[0]).To(Equal(0.0))
		})

		It("rejects series of differing lengths", func() {
			_, err := plot.New(x, y[:99])
			Expect(err).To(MatchError(plot.ErrLengthMismatch))
		})

		It("rejects empty series", func() {
			_, err := plot.New(sequence.Sequence{}, sequence.Sequence{})
			Expect(err).To(MatchError(plot.ErrEmptySequence))

			_, err = plot.New(x, sequence.Sequence{})
			Expect(err).To(MatchError(plot.ErrEmptySequence))
		})
	})

	Describe("RenderASCII", func() {
		It("annotates the plot with title, labels and sample count", func() {
			f, err := plot.New(x, y)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(f.RenderASCII(&buf)).To(Succeed())

			out := buf.String()
			Expect(out).To(ContainSubstring("Sine Wave"))
			Expect(out).To(ContainSubstring("Y"))
			Expect(out).To(ContainSubstring("X: 0.00 .. 10.00"))
			Expect(out).To(ContainSubstring("100 samples"))
		})

		It("derives the terminal dimensions from the figure size", func() {
			wide, err := plot.New(x, y)
			Expect(err).NotTo(HaveOccurred())
			narrow, err := plot.New(x, y, plot.WithSize(5, 6))
			Expect(err).NotTo(HaveOccurred())

			Expect(rulerWidth(wide)).To(Equal(80))
			Expect(rulerWidth(narrow)).To(Equal(40))
		})

		It("draws the tick ruler only when the grid is on", func() {
			withGrid, err := plot.New(x, y)
			Expect(err).NotTo(HaveOccurred())
			noGrid, err := plot.New(x, y, plot.WithGrid(false))
			Expect(err).NotTo(HaveOccurred())

			var a, b bytes.Buffer
			Expect(withGrid.RenderASCII(&a)).To(Succeed())
			Expect(noGrid.RenderASCII(&b)).To(Succeed())

			Expect(a.String()).To(ContainSubstring("┼"))
			Expect(b.String()).NotTo(ContainSubstring("┼"))
		})
	})

	Describe("RenderSVG", func() {
		It("emits a sized document with one line path and the annotations", func() {
			f, err := plot.New(x, y)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(f.RenderSVG(&buf)).To(Succeed())

			out := buf.String()
			Expect(out).To(ContainSubstring(`width="960" height="576"`))
			Expect(out).To(ContainSubstring("<path"))
			Expect(out).To(ContainSubstring(">Sine Wave</text>"))
			Expect(out).To(ContainSubstring(">X</text>"))
			Expect(out).To(ContainSubstring(">Y</text>"))
		})

		It("omits grid lines when the grid is off", func() {
			f, err := plot.New(x, y, plot.WithGrid(false))
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(f.RenderSVG(&buf)).To(Succeed())
			Expect(buf.String()).NotTo(ContainSubstring(`stroke="#dddddd"`))
		})
	})
})
