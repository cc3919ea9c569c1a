// Package imagetools exposes the editing operations as MCP tools.
package imagetools

import "github.com/namescout/domain-tools-mcp/internal/mcp"

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the input image file",
	}
}

func outputPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Path for the output image (auto-generated in the scratch directory if omitted)",
	}
}

// Tools returns the image editor's tool definitions.
func (t *ToolSet) Tools() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "load_image",
			Description: "Load and validate an image file, returning its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "resize_image",
			Description: "Resize an image to the given dimensions. With keep_aspect the image is fit inside the box preserving its aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels",
					},
					"keep_aspect": map[string]interface{}{
						"type":        "boolean",
						"description": "Whether to maintain the aspect ratio",
						"default":     true,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "crop_image",
			Description: "Crop a rectangular region from an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge of the crop region",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge of the crop region",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of the crop region",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height of the crop region",
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "x", "y", "width", "height"},
			},
		},
		{
			Name:        "convert_format",
			Description: "Convert an image to a different file format (jpg, jpeg, png, gif, bmp, tif, tiff).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff"},
						"description": "Target format",
					},
					"quality": map[string]interface{}{
						"type":        "integer",
						"description": "Quality for lossy formats (1-100, default 90)",
						"default":     90,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "format"},
			},
		},
		{
			Name:        "adjust_image",
			Description: "Adjust image brightness, contrast and saturation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"brightness": map[string]interface{}{
						"type":        "number",
						"description": "Brightness adjustment in percent (-100 to 100, default 0)",
						"default":     0,
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Contrast multiplier (0.1 to 3.0, default 1.0)",
						"default":     1.0,
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation multiplier (0.0 to 2.0, default 1.0)",
						"default":     1.0,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "apply_filter",
			Description: "Apply one of the fixed image filters: blur, sharpen, grayscale, edge, sepia, emboss, invert, posterize.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"filter_type": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"blur", "sharpen", "grayscale", "edge", "sepia", "emboss", "invert", "posterize"},
						"description": "Filter to apply",
					},
					"intensity": map[string]interface{}{
						"type":        "number",
						"description": "Filter intensity (0.1 to 5.0, default 1.0)",
						"default":     1.0,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "filter_type"},
			},
		},
		{
			Name:        "add_annotation",
			Description: "Draw a text, rectangle, circle or line annotation onto an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"annotation_type": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"text", "rectangle", "circle", "line"},
						"description": "Annotation to draw",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Text content (for text annotations)",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Width (rectangle), radius (circle) or end X (line)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Height (rectangle) or end Y (line)",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB (default #FF0000)",
						"default":     "#FF0000",
					},
					"font_size": map[string]interface{}{
						"type":        "integer",
						"description": "Font size for text annotations (default 20)",
						"default":     20,
					},
					"thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Line/border thickness (default 2)",
						"default":     2,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"path", "annotation_type"},
			},
		},
		{
			Name:        "create_collage",
			Description: "Assemble at least two images into a collage with a grid, horizontal or vertical layout.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_paths": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "string",
						},
						"description": "Image file paths (minimum 2)",
					},
					"layout": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"grid", "horizontal", "vertical"},
						"description": "Layout type (default grid)",
						"default":     "grid",
					},
					"spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Spacing between images in pixels (default 10)",
						"default":     10,
					},
					"output_path": outputPathProperty(),
				},
				"required": []string{"image_paths"},
			},
		},
	}
}
