package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// Filter names one of the fixed filter variants.
type Filter string

const (
	FilterBlur      Filter = "blur"
	FilterSharpen   Filter = "sharpen"
	FilterGrayscale Filter = "grayscale"
	FilterEdge      Filter = "edge"
	FilterSepia     Filter = "sepia"
	FilterEmboss    Filter = "emboss"
	FilterInvert    Filter = "invert"
	FilterPosterize Filter = "posterize"
)

// Filters lists every supported filter. The set is fixed; there is no
// registration mechanism.
func Filters() []Filter {
	return []Filter{
		FilterBlur, FilterSharpen, FilterGrayscale, FilterEdge,
		FilterSepia, FilterEmboss, FilterInvert, FilterPosterize,
	}
}

// ApplyFilter runs one filter over img. Intensity (0.1 to 5.0) scales the
// filters that take a strength; the rest ignore it.
func ApplyFilter(img image.Image, f Filter, intensity float64) (image.Image, error) {
	if intensity < 0.1 || intensity > 5.0 {
		return nil, fmt.Errorf("intensity must be 0.1 to 5.0, got %v", intensity)
	}

	switch f {
	case FilterBlur:
		return blur.Gaussian(img, 2+intensity*3), nil
	case FilterSharpen:
		return effect.UnsharpMask(img, 1.0, intensity), nil
	case FilterGrayscale:
		return effect.Grayscale(img), nil
	case FilterEdge:
		return effect.EdgeDetection(img, 1.0), nil
	case FilterSepia:
		return effect.Sepia(img), nil
	case FilterEmboss:
		return effect.Emboss(img), nil
	case FilterInvert:
		return effect.Invert(img), nil
	case FilterPosterize:
		return posterize(img, intensity), nil
	default:
		return nil, fmt.Errorf("unknown filter: %s (available: %v)", f, Filters())
	}
}

// posterize quantizes each channel to a small number of levels; higher
// intensity means fewer levels.
func posterize(img image.Image, intensity float64) image.Image {
	levels := 8 - int(intensity)
	if levels < 2 {
		levels = 2
	}
	step := 255.0 / float64(levels-1)

	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out.SetRGBA(x, y, color.RGBA{
				R: quantize(uint8(r>>8), step),
				G: quantize(uint8(g>>8), step),
				B: quantize(uint8(b>>8), step),
				A: uint8(a >> 8),
			})
		}
	}
	return out
}

func quantize(v uint8, step float64) uint8 {
	q := float64(int(float64(v)/step+0.5)) * step
	if q > 255 {
		q = 255
	}
	return uint8(q)
}
