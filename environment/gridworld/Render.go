package gridworld

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gridsarsa/utils/floatutils"
	"gonum.org/v1/gonum/mat"
)

// Heatmap renders a table of values, one per grid cell, as a greyscale
// image. The lowest value is drawn black and the highest white. The
// terminal cell is outlined in red.
func Heatmap(values mat.Matrix, cellPixels int) (image.Image, error) {
	if cellPixels <= 0 {
		return nil, fmt.Errorf("heatmap: cell size must be positive, "+
			"have %d", cellPixels)
	}
	r, c := values.Dims()
	cell := float64(cellPixels)

	dc := gg.NewContext(c*cellPixels, r*cellPixels)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	low, high := mat.Min(values), mat.Max(values)
	span := high - low

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			shade := 0.0
			if span > 0 {
				shade = floatutils.Clip((values.At(i, j)-low)/span, 0, 1)
			}
			dc.SetRGB(shade, shade, shade)
			dc.DrawRectangle(float64(j)*cell, float64(i)*cell, cell, cell)
			dc.Fill()
		}
	}

	// Outline the terminal cell
	dc.SetRGB(1, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(float64(c-1)*cell+1, float64(r-1)*cell+1, cell-2,
		cell-2)
	dc.Stroke()

	return dc.Image(), nil
}

// SaveHeatmap renders values with Heatmap and saves the image as a PNG
func SaveHeatmap(filename string, values mat.Matrix, cellPixels int) error {
	img, err := Heatmap(values, cellPixels)
	if err != nil {
		return err
	}

	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("saveHeatmap: could not save %v: %w", filename, err)
	}
	return nil
}
