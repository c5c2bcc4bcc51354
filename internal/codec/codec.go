// Package codec loads and saves raster images in the formats pixkit
// understands. Decoding is content-sniffed; the decoded color model is
// preserved on plain load, and alpha-sensitive callers normalize through
// NormalizeNRGBA before touching pixels.
package codec

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/pixkit/internal/imgerr"
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "golang.org/x/image/webp"
)

// DefaultQuality is the encode quality used when the caller passes 0.
const DefaultQuality = 85

// alphaless formats flatten transparency onto an opaque background
// before encoding.
var alphaless = map[string]bool{
	"jpeg": true,
}

// Load reads and decodes the image at path. The reported format is the
// sniffed container format ("png", "jpeg", "gif", "bmp", "tiff", "webp").
func Load(path string) (image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", imgerr.ErrNotFound, path)
		}
		return nil, "", fmt.Errorf("%w: read %s: %v", imgerr.ErrIO, path, err)
	}
	img, format, err := Decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return img, format, nil
}

// Decode sniffs and decodes raw image bytes.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", imgerr.ErrDecode, err)
	}
	return img, format, nil
}

// DecodeBase64 decodes a base64 payload produced by EncodeBase64 (or any
// standard-encoded image bytes).
func DecodeBase64(text string) (image.Image, string, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, "", fmt.Errorf("%w: base64: %v", imgerr.ErrDecode, err)
	}
	return Decode(data)
}

// Encode serializes img in the given format. Quality applies to lossy
// formats; 0 selects DefaultQuality, anything else outside [1,100] is
// rejected. Formats that cannot represent alpha are flattened onto
// opaque white first.
func Encode(img image.Image, format string, quality int) ([]byte, error) {
	format = NormalizeFormat(format)
	if quality == 0 {
		quality = DefaultQuality
	}
	if quality < 1 || quality > 100 {
		return nil, fmt.Errorf("%w: quality %d outside [1,100]", imgerr.ErrInvalidParameter, quality)
	}
	if alphaless[format] && HasAlpha(img) {
		img = Flatten(img, color.NRGBA{255, 255, 255, 255})
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		enc := &png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	case "tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return nil, fmt.Errorf("%w: unsupported encode format %q", imgerr.ErrInvalidParameter, format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 serializes img in the given format and base64-encodes the
// result. DecodeBase64(EncodeBase64(img, "png")) is pixel-identical.
func EncodeBase64(img image.Image, format string) (string, error) {
	data, err := Encode(img, format, 0)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Save encodes img and writes it to path, creating intermediate
// directories. The format is inferred from the extension unless override
// is non-empty.
func Save(img image.Image, path, override string, quality int) error {
	format := override
	if format == "" {
		format = FormatFromPath(path)
		if format == "" {
			return fmt.Errorf("%w: cannot infer format from %q", imgerr.ErrInvalidParameter, path)
		}
	}
	data, err := Encode(img, format, quality)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir %s: %v", imgerr.ErrIO, dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", imgerr.ErrIO, path, err)
	}
	return nil
}

// Flatten composites img onto an opaque background color.
func Flatten(img image.Image, bg color.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}

// NormalizeNRGBA returns a fresh NRGBA copy of img. All alpha-sensitive
// operations work on this canonical representation.
func NormalizeNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// HasAlpha reports whether any pixel of img is not fully opaque.
func HasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.YCbCr, *image.CMYK:
		return false
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				return true
			}
		}
	}
	return false
}

// FormatFromPath maps a file extension to a normalized format name, or
// "" when the extension is not a recognized image format.
func FormatFromPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return ""
}

// NormalizeFormat folds format aliases ("jpg", "tif") onto their
// canonical names.
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	switch format {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return format
}
