package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts the w x h region anchored at (x, y).
func Crop(img image.Image, x, y, w, h int) (image.Image, error) {
	bounds := img.Bounds()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("crop size must be positive, got %dx%d", w, h)
	}
	if x < 0 || y < 0 || x+w > bounds.Dx() || y+h > bounds.Dy() {
		return nil, fmt.Errorf("crop region (%d,%d %dx%d) exceeds image bounds %dx%d",
			x, y, w, h, bounds.Dx(), bounds.Dy())
	}
	rect := image.Rect(x, y, x+w, y+h).Add(bounds.Min)
	return imaging.Crop(img, rect), nil
}
