package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavekit/render"
	"github.com/katalvlaran/wavekit/shapes"
	"github.com/katalvlaran/wavekit/waveform"
)

func TestWriteHTML_Periodic(t *testing.T) {
	sine, err := shapes.Sine(5, 2, 0, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteHTML(sine, &buf))

	html := buf.String()
	assert.True(t, strings.Contains(html, "<html>") || strings.Contains(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "Sine")
	assert.Contains(t, html, "Time [s]")
	assert.Contains(t, html, "Amplitude [V]")
}

func TestWriteHTML_NonPeriodic(t *testing.T) {
	w, err := waveform.NewNonPeriodic([]float64{0, 0.5, 1, 0.5, 0}, 2, 0.001, 0)
	require.NoError(t, err)
	labeled := w.WithLabel("Capture 7")

	var buf bytes.Buffer
	require.NoError(t, render.WriteHTML(labeled, &buf))
	assert.Contains(t, buf.String(), "Capture 7")
}

func TestLine_SeriesLength(t *testing.T) {
	w, err := waveform.NewNonPeriodic([]float64{0, 1, 0}, 1, 0.5, 0)
	require.NoError(t, err)

	line := render.Line(w)
	require.NotNil(t, line)
	require.Len(t, line.MultiSeries, 1)
	assert.Len(t, line.MultiSeries[0].Data, 3)
}
