// Package render turns any waveform into an HTML line chart of its voltage
// trace over time, via go-echarts. It consumes only the presentation
// contract (PlotData and Label), so the core stays free of charting
// concerns.
//
//	s, _ := shapes.Sine(5, 2, 0, 0)
//	f, _ := os.Create("sine.html")
//	defer f.Close()
//	_ = render.WriteHTML(s, f)
//
//	go get github.com/katalvlaran/wavekit/render
package render
