package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// AnnotationKind selects what Annotate draws.
type AnnotationKind string

const (
	AnnotationText      AnnotationKind = "text"
	AnnotationRectangle AnnotationKind = "rectangle"
	AnnotationCircle    AnnotationKind = "circle"
	AnnotationLine      AnnotationKind = "line"
)

// Annotation describes one drawing operation.
type Annotation struct {
	Kind AnnotationKind

	// Text content, required for text annotations.
	Text string

	// X, Y anchor the annotation: text baseline start, rectangle top-left,
	// circle center, or line start point.
	X, Y int

	// Width and Height are the rectangle size, the line end point, or (for
	// circles) Width doubles as the radius.
	Width, Height int

	// Color in #RRGGBB form.
	Color string

	// FontSize is the rendered text height in pixels.
	FontSize int

	// Thickness of lines and outlines in pixels.
	Thickness int
}

// Annotate draws the annotation onto a copy of img.
func Annotate(img image.Image, a Annotation) (image.Image, error) {
	col, err := parseHexColor(a.Color)
	if err != nil {
		return nil, err
	}
	if a.Thickness < 1 {
		a.Thickness = 1
	}

	bounds := img.Bounds()
	base := image.NewRGBA(bounds)
	draw.Draw(base, bounds, img, bounds.Min, draw.Src)

	switch a.Kind {
	case AnnotationText:
		if a.Text == "" {
			return nil, errors.New("text content required for text annotation")
		}
		return drawText(base, a, col), nil
	case AnnotationRectangle:
		if a.Width <= 0 || a.Height <= 0 {
			return nil, errors.New("width and height required for rectangle annotation")
		}
		drawRectOutline(base, a.X, a.Y, a.Width, a.Height, col, a.Thickness)
		return base, nil
	case AnnotationCircle:
		radius := a.Width
		if radius <= 0 {
			radius = 50
		}
		drawCircleOutline(base, a.X, a.Y, radius, col, a.Thickness)
		return base, nil
	case AnnotationLine:
		drawLine(base, a.X, a.Y, a.Width, a.Height, col, a.Thickness)
		return base, nil
	default:
		return nil, fmt.Errorf("unknown annotation type: %s", a.Kind)
	}
}

// parseHexColor parses a #RRGGBB color string.
func parseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q, use #RRGGBB", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawText renders the text with the built-in bitmap face, scaled to the
// requested font size, and composites it with (X, Y) as the baseline
// start.
func drawText(base *image.RGBA, a Annotation, col color.RGBA) image.Image {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, a.Text).Ceil()
	if textWidth == 0 {
		return base
	}

	layer := image.NewRGBA(image.Rect(0, 0, textWidth, face.Height))
	d := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(a.Text)

	fontSize := a.FontSize
	if fontSize <= 0 {
		fontSize = face.Height
	}
	scaled := image.Image(layer)
	ascent := face.Ascent
	if fontSize != face.Height {
		scale := float64(fontSize) / float64(face.Height)
		scaled = imaging.Resize(layer, int(float64(textWidth)*scale+0.5), fontSize, imaging.NearestNeighbor)
		ascent = int(float64(face.Ascent) * scale)
	}

	pos := image.Pt(a.X, a.Y-ascent).Add(base.Bounds().Min)
	return imaging.Overlay(base, scaled, pos, 1.0)
}

func drawRectOutline(dst *image.RGBA, x, y, w, h int, col color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		x1, y1 := x+t, y+t
		x2, y2 := x+w-1-t, y+h-1-t
		if x1 > x2 || y1 > y2 {
			return
		}
		for i := x1; i <= x2; i++ {
			setPixel(dst, i, y1, col)
			setPixel(dst, i, y2, col)
		}
		for j := y1; j <= y2; j++ {
			setPixel(dst, x1, j, col)
			setPixel(dst, x2, j, col)
		}
	}
}

func drawCircleOutline(dst *image.RGBA, cx, cy, radius int, col color.RGBA, thickness int) {
	inner := radius - thickness
	if inner < 0 {
		inner = 0
	}
	rr, ir := radius*radius, inner*inner
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			d := dx*dx + dy*dy
			if d <= rr && d >= ir {
				setPixel(dst, x, y, col)
			}
		}
	}
}

// drawLine plots a Bresenham line, thickened by stamping a square at each
// step.
func drawLine(dst *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		stamp(dst, x, y, col, thickness)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func stamp(dst *image.RGBA, x, y int, col color.RGBA, size int) {
	half := size / 2
	for j := -half; j <= half; j++ {
		for i := -half; i <= half; i++ {
			setPixel(dst, x+i, y+j, col)
		}
	}
}

func setPixel(dst *image.RGBA, x, y int, col color.RGBA) {
	p := image.Pt(x, y).Add(dst.Bounds().Min)
	if p.In(dst.Bounds()) {
		dst.SetRGBA(p.X, p.Y, col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
