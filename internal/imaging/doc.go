// Package imaging implements the editing operations behind the image tool
// server: resize, crop, format conversion, tonal adjustments, a fixed set
// of filters, annotations, and collage assembly.
//
// Operations are pure image -> image functions; file I/O lives in the
// loader (decode, with caching) and the save/result helpers (encode,
// base64 wrapping). The coordinate system is 0-based with (0,0) at the
// top-left corner.
//
// Supported file formats are jpg/jpeg, png, gif, bmp and tif/tiff, the
// set the underlying codecs can both decode and encode. Lossy encoders
// honor a quality setting (1-100).
package imaging
