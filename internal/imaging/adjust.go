package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

// AdjustOptions are tonal adjustments applied in a fixed order:
// brightness, then contrast, then saturation.
type AdjustOptions struct {
	// Brightness shift in percent, -100 to 100. 0 is a no-op.
	Brightness float64

	// Contrast multiplier, 0.1 to 3.0. 1.0 is a no-op.
	Contrast float64

	// Saturation multiplier, 0.0 to 2.0. 1.0 is a no-op.
	Saturation float64
}

// Adjust applies the requested tonal adjustments.
func Adjust(img image.Image, opts AdjustOptions) (image.Image, error) {
	if opts.Brightness < -100 || opts.Brightness > 100 {
		return nil, fmt.Errorf("brightness must be -100 to 100, got %v", opts.Brightness)
	}
	if opts.Contrast < 0.1 || opts.Contrast > 3.0 {
		return nil, fmt.Errorf("contrast must be 0.1 to 3.0, got %v", opts.Contrast)
	}
	if opts.Saturation < 0.0 || opts.Saturation > 2.0 {
		return nil, fmt.Errorf("saturation must be 0.0 to 2.0, got %v", opts.Saturation)
	}

	out := img
	if opts.Brightness != 0 {
		out = adjust.Brightness(out, opts.Brightness/100)
	}
	if opts.Contrast != 1.0 {
		out = adjust.Contrast(out, clamp(opts.Contrast-1, -1, 1))
	}
	if opts.Saturation != 1.0 {
		out = adjust.Saturation(out, clamp(opts.Saturation-1, -1, 1))
	}
	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
