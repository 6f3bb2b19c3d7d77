package report

import (
	"fmt"
	"strconv"

	"github.com/fogleman/gg"

	diveknn "go-diveknn"
)

const (
	cellSize = 64
	margin   = 48
)

// ConfusionPNG draws m as a heat map and writes it to path as PNG.
// Rows are actual labels, columns predicted labels.
func ConfusionPNG(m diveknn.Confusion, path string) error {
	n := len(diveknn.Labels)
	size := margin + n*cellSize + 8
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	peak := float64(m.Max())
	for row, actual := range diveknn.Labels {
		y := float64(margin + row*cellSize)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(actual.String(), margin/2, y+cellSize/2, 0.5, 0.5)
		for col, predicted := range diveknn.Labels {
			x := float64(margin + col*cellSize)
			count := m.Count(actual, predicted)
			shade := 1.0
			if peak > 0 {
				shade = 1 - float64(count)/peak
			}
			dc.SetRGB(shade, shade, 1)
			dc.DrawRectangle(x, y, cellSize, cellSize)
			dc.Fill()
			dc.SetRGB(0.6, 0.6, 0.6)
			dc.DrawRectangle(x, y, cellSize, cellSize)
			dc.Stroke()
			dc.SetRGB(0, 0, 0)
			if shade < 0.5 {
				dc.SetRGB(1, 1, 1)
			}
			dc.DrawStringAnchored(strconv.Itoa(count), x+cellSize/2, y+cellSize/2, 0.5, 0.5)
		}
	}
	dc.SetRGB(0, 0, 0)
	for col, predicted := range diveknn.Labels {
		x := float64(margin + col*cellSize)
		dc.DrawStringAnchored(predicted.String(), x+cellSize/2, margin/2, 0.5, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("confusion png: save %s: %w", path, err)
	}
	return nil
}
