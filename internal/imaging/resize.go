package imaging

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// Resize scales img to the requested dimensions using Lanczos resampling.
//
// With both width and height set, keepAspect selects between fitting
// inside the box (aspect preserved) and an exact resize. With only one
// dimension set, the other is derived from the aspect ratio. At least one
// dimension is required.
func Resize(img image.Image, width, height int, keepAspect bool) (image.Image, error) {
	switch {
	case width < 0 || height < 0:
		return nil, errors.New("dimensions must be positive")
	case width > 0 && height > 0:
		if keepAspect {
			return imaging.Fit(img, width, height, imaging.Lanczos), nil
		}
		return imaging.Resize(img, width, height, imaging.Lanczos), nil
	case width > 0:
		return imaging.Resize(img, width, 0, imaging.Lanczos), nil
	case height > 0:
		return imaging.Resize(img, 0, height, imaging.Lanczos), nil
	default:
		return nil, errors.New("must specify width or height")
	}
}
