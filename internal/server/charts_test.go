package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineChart(t *testing.T) {
	chart := newLineChart([]int{0, 250, 500}, 100, 200)
	assert.Equal(t, "0.0,200.0 50.0,100.0 100.0,0.0", chart.Points)
	assert.Equal(t, 100, chart.Width)
	assert.Equal(t, 200, chart.Height)

	single := newLineChart([]int{100}, 100, 200)
	assert.Equal(t, "0.0,160.0", single.Points)

	series := newLineChart(make([]int, 12), 600, 200)
	require.Len(t, strings.Fields(series.Points), 12)
}
