package imaging

import (
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// Result describes a written output image: where it landed, its metadata,
// and the encoded bytes for inline display.
type Result struct {
	OutputPath  string `json:"output_path"`
	Info        *Info  `json:"info"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// DerivedName builds an output file name from an input path and an
// operation suffix, keeping the input's extension:
// "photo.png" + "_resized" -> "photo_resized.png".
func DerivedName(inputPath, suffix string) string {
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + suffix + ext
}

// ConvertedName builds an output file name carrying a new format
// extension: "photo.png" + "jpg" -> "photo.jpg".
func ConvertedName(inputPath, format string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "." + format
}

// Save encodes img to path, choosing the encoder from the extension.
// Quality applies to lossy encoders only.
func Save(img image.Image, path string, quality int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExts[ext] {
		return fmt.Errorf("unsupported output format %s", ext)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// MimeType returns the MIME type for an image file path.
func MimeType(path string) string {
	return "image/" + formatFromPath(path)
}

// BuildResult stats and re-reads a written output file, producing the
// standard tool response payload.
func BuildResult(cache *Cache, outputPath string) (*Result, error) {
	info, err := FileInfo(cache, outputPath)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read output: %w", err)
	}
	return &Result{
		OutputPath:  outputPath,
		Info:        info,
		ImageBase64: base64.StdEncoding.EncodeToString(raw),
		MimeType:    MimeType(outputPath),
	}, nil
}
