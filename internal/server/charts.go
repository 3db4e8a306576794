package server

import (
	"strconv"
	"strings"

	"github.com/Choovyy/portfolio/internal/portfolio"
)

type lineChart struct {
	Width  int
	Height int
	Points string
	Values []int
}

// newLineChart lays values out as an SVG polyline. The y axis is fixed to
// [0, ActivityMax] so redraws stay comparable.
func newLineChart(values []int, width, height int) lineChart {
	var b strings.Builder
	step := 0.0
	if len(values) > 1 {
		step = float64(width) / float64(len(values)-1)
	}
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		x := float64(i) * step
		y := float64(height) - float64(v)/float64(portfolio.ActivityMax)*float64(height)
		b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
	}
	return lineChart{Width: width, Height: height, Points: b.String(), Values: values}
}
