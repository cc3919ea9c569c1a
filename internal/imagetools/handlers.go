package imagetools

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/namescout/domain-tools-mcp/internal/imaging"
	"github.com/namescout/domain-tools-mcp/internal/scratch"
)

const (
	defaultSaveQuality    = 95
	defaultConvertQuality = 90
)

// ToolSet wires the editing operations into the MCP tool surface. Loaded
// images are cached across calls; outputs without an explicit path land in
// the scratch directory.
type ToolSet struct {
	cache   *imaging.Cache
	scratch *scratch.Dir
}

// New creates the image editor toolset writing into dir.
func New(dir *scratch.Dir) *ToolSet {
	return &ToolSet{cache: imaging.NewCache(), scratch: dir}
}

// Call dispatches a tool invocation.
func (t *ToolSet) Call(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "load_image":
		return t.handleLoadImage(args)
	case "resize_image":
		return t.handleResizeImage(args)
	case "crop_image":
		return t.handleCropImage(args)
	case "convert_format":
		return t.handleConvertFormat(args)
	case "adjust_image":
		return t.handleAdjustImage(args)
	case "apply_filter":
		return t.handleApplyFilter(args)
	case "add_annotation":
		return t.handleAddAnnotation(args)
	case "create_collage":
		return t.handleCreateCollage(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// outputPath picks the explicit path when given, otherwise a scratch file
// with the derived name.
func (t *ToolSet) outputPath(explicit, derived string) string {
	if explicit != "" {
		return explicit
	}
	return t.scratch.File(derived)
}

// writeResult saves img, drops any stale cache entry for the path, and
// builds the standard response payload.
func (t *ToolSet) writeResult(img image.Image, path string, quality int) (interface{}, error) {
	if err := imaging.Save(img, path, quality); err != nil {
		return nil, err
	}
	t.cache.Evict(path)
	return imaging.BuildResult(t.cache, path)
}

type loadImageArgs struct {
	Path string `json:"path"`
}

func (t *ToolSet) handleLoadImage(args json.RawMessage) (interface{}, error) {
	var a loadImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	return imaging.FileInfo(t.cache, a.Path)
}

type resizeImageArgs struct {
	Path       string `json:"path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	KeepAspect *bool  `json:"keep_aspect"`
	OutputPath string `json:"output_path"`
}

func (t *ToolSet) handleResizeImage(args json.RawMessage) (interface{}, error) {
	var a resizeImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	img, err := t.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	keepAspect := a.KeepAspect == nil || *a.KeepAspect
	resized, err := imaging.Resize(img, a.Width, a.Height, keepAspect)
	if err != nil {
		return nil, err
	}
	out := t.outputPath(a.OutputPath, imaging.DerivedName(a.Path, "_resized"))
	return t.writeResult(resized, out, defaultSaveQuality)
}

type cropImageArgs struct {
	Path       string `json:"path"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	OutputPath string `json:"output_path"`
}

func (t *ToolSet) handleCropImage(args json.RawMessage) (interface{}, error) {
	var a cropImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	img, err := t.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	cropped, err := imaging.Crop(img, a.X, a.Y, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	out := t.outputPath(a.OutputPath, imaging.DerivedName(a.Path, "_cropped"))
	return t.writeResult(cropped, out, defaultSaveQuality)
}

type convertFormatArgs struct {
	Path       string `json:"path"`
	Format     string `json:"format"`
	Quality    int    `json:"quality"`
	OutputPath string `json:"output_path"`
}

func (t *ToolSet) handleConvertFormat(args json.RawMessage) (interface{}, error) {
	var a convertFormatArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.Format == "" {
		return nil, errors.New("format is required")
	}
	quality := a.Quality
	if quality == 0 {
		quality = defaultConvertQuality
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	img, err := t.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	out := t.outputPath(a.OutputPath, imaging.ConvertedName(a.Path, a.Format))
	return t.writeResult(img, out, quality)
}

type adjustImageArgs struct {
	Path       string   `json:"path"`
	Brightness float64  `json:"brightness"`
	Contrast   *float64 `json:"contrast"`
	Saturation *float64 `json:"saturation"`
	OutputPath string   `json:"output_path"`
}

func (t *ToolSet) handleAdjustImage(args json.RawMessage) (interface{}, error) {
	var a adjustImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	opts := imaging.AdjustOptions{Brightness: a.Brightness, Contrast: 1.0, Saturation: 1.0}
	if a.Contrast != nil {
		opts.Contrast = *a.Contrast
	}
	if a.Saturation != nil {
		opts.Saturation = *a.Saturation
	}

	img, err := t.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	adjusted, err := imaging.Adjust(img, opts)
	if err != nil {
		return nil, err
	}
	out := t.outputPath(a.OutputPath, imaging.DerivedName(a.Path, "_adjusted"))
	return t.writeResult(adjusted, out, defaultSaveQuality)
}

type applyFilterArgs struct {
	Path       string  `json:"path"`
	FilterType string  `json:"filter_type"`
	Intensity  float64 `json:"intensity"`
	OutputPath string  `json:"output_path"`
}

func (t *ToolSet) handleApplyFilter(args json.RawMessage) (interface{}, error) {
	var a applyFilterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.FilterType == "" {
		return nil, errors.New("filter_type is required")
	}
	intensity := a.Intensity
	if intensity == 0 {
		intensity = 1.0
	}

	img, err := t.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	filtered, err := imaging.ApplyFilter(img, imaging.Filter(a.FilterType), intensity)
	if err != nil {
		return nil, err
	}
	out := t.outputPath(a.OutputPath, imaging.DerivedName(a.Path, "_"+a.FilterType))
	return t.writeResult(filtered, out, defaultSaveQuality)
}

type addAnnotationArgs struct {
	Path           string `json:"path"`
	AnnotationType string `json:"annotation_type"`
	Text           string `json:"text"`
	X              int    `json:"x"`
	Y              int    `json:"y"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Color          string `json:"color"`
	FontSize       int    `json:"font_size"`
	Thickness      int    `json:"thickness"`
	OutputPath     string `json:"output_path"`
}

func (t *ToolSet) handleAddAnnotation(args json.RawMessage) (interface{}, error) {
	var a addAnnotationArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	if a.AnnotationType == "" {
		return nil, errors.New("annotation_type is required")
	}

	ann := imaging.Annotation{
		Kind:      imaging.AnnotationKind(a.AnnotationType),
		Text:      a.Text,
		X:         a.X,
		Y:         a.Y,
		Width:     a.Width,
		Height:    a.Height,
		Color:     a.Color,
		FontSize:  a.FontSize,
		Thickness: a.Thickness,
	}
	if ann.Color == "" {
		ann.Color = "#FF0000"
	}
	if ann.FontSize == 0 {
		ann.FontSize = 20
	}
	if ann.Thickness == 0 {
		ann.Thickness = 2
	}

	img, err := t.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	annotated, err := imaging.Annotate(img, ann)
	if err != nil {
		return nil, err
	}
	out := t.outputPath(a.OutputPath, imaging.DerivedName(a.Path, "_annotated"))
	return t.writeResult(annotated, out, defaultSaveQuality)
}

type createCollageArgs struct {
	ImagePaths []string `json:"image_paths"`
	Layout     string   `json:"layout"`
	Spacing    *int     `json:"spacing"`
	OutputPath string   `json:"output_path"`
}

func (t *ToolSet) handleCreateCollage(args json.RawMessage) (interface{}, error) {
	var a createCollageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.ImagePaths) < 2 {
		return nil, fmt.Errorf("at least 2 images required for collage, got %d", len(a.ImagePaths))
	}
	layout := imaging.CollageLayout(a.Layout)
	if layout == "" {
		layout = imaging.LayoutGrid
	}
	spacing := 10
	if a.Spacing != nil {
		spacing = *a.Spacing
	}

	images := make([]image.Image, 0, len(a.ImagePaths))
	for _, path := range a.ImagePaths {
		img, err := t.cache.Load(path)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	collage, err := imaging.Collage(images, layout, spacing)
	if err != nil {
		return nil, err
	}

	out := a.OutputPath
	if out == "" {
		out = t.scratch.File(fmt.Sprintf("collage_%d_images.jpg", len(images)))
	}
	return t.writeResult(collage, out, defaultSaveQuality)
}
