package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/wavekit/waveform"
)

// Line builds a line chart of the waveform's voltage trace over its time
// axis, titled with the waveform label.
func Line(w waveform.Waveform) *charts.Line {
	t, v := w.PlotData()

	x := make([]string, len(t))
	data := make([]opts.LineData, len(v))
	for i := range t {
		x[i] = fmt.Sprintf("%g", t[i])
		data[i] = opts.LineData{Value: v[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px"}),
		charts.WithTitleOpts(opts.Title{Title: w.Label()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time [s]"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amplitude [V]"}),
	)
	line.SetXAxis(x).AddSeries(w.Label(), data)

	return line
}

// WriteHTML renders the waveform chart as a standalone HTML page.
func WriteHTML(w waveform.Waveform, out io.Writer) error {
	return Line(w).Render(out)
}
