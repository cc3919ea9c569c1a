package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// CollageLayout selects how collage cells are arranged.
type CollageLayout string

const (
	LayoutGrid       CollageLayout = "grid"
	LayoutHorizontal CollageLayout = "horizontal"
	LayoutVertical   CollageLayout = "vertical"
)

// collageThumbSize bounds each input image inside the collage.
const collageThumbSize = 400

// Collage assembles at least two images onto a white canvas. Each image is
// shrunk to fit collageThumbSize and centered in its cell; cells are laid
// out per the layout with the given spacing in pixels.
func Collage(images []image.Image, layout CollageLayout, spacing int) (image.Image, error) {
	if len(images) < 2 {
		return nil, fmt.Errorf("at least 2 images required for collage, got %d", len(images))
	}
	if spacing < 0 {
		spacing = 0
	}

	thumbs := make([]image.Image, len(images))
	cellW, cellH := 0, 0
	for i, img := range images {
		t := imaging.Fit(img, collageThumbSize, collageThumbSize, imaging.Lanczos)
		thumbs[i] = t
		if w := t.Bounds().Dx(); w > cellW {
			cellW = w
		}
		if h := t.Bounds().Dy(); h > cellH {
			cellH = h
		}
	}

	var cols, rows int
	switch layout {
	case LayoutHorizontal:
		cols, rows = len(thumbs), 1
	case LayoutVertical:
		cols, rows = 1, len(thumbs)
	case LayoutGrid, "":
		cols = int(math.Ceil(math.Sqrt(float64(len(thumbs)))))
		rows = int(math.Ceil(float64(len(thumbs)) / float64(cols)))
	default:
		return nil, fmt.Errorf("unknown layout: %s (available: grid, horizontal, vertical)", layout)
	}

	canvasW := cols*cellW + (cols-1)*spacing
	canvasH := rows*cellH + (rows-1)*spacing
	canvas := imaging.New(canvasW, canvasH, color.White)

	for i, t := range thumbs {
		row := i / cols
		col := i % cols
		x := col*(cellW+spacing) + (cellW-t.Bounds().Dx())/2
		y := row*(cellH+spacing) + (cellH-t.Bounds().Dy())/2
		canvas = imaging.Paste(canvas, t, image.Pt(x, y))
	}

	return canvas, nil
}
