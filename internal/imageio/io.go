// Package imageio decodes and encodes the image containers pixbuf can load
// and export: PNG, JPEG, GIF and BMP. Everything crossing the package
// boundary is a straight-alpha *image.NRGBA.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// Format is an image container format.
type Format uint8

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
	FormatGIF
	FormatBMP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFromExt returns the format for a file name extension, with or
// without the leading dot.
func FormatFromExt(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "gif":
		return FormatGIF, nil
	case "bmp":
		return FormatBMP, nil
	}
	return FormatUnknown, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}

// Sniff detects the format from the leading bytes of data.
func Sniff(data []byte) (Format, error) {
	if len(data) == 0 {
		return FormatUnknown, ErrEmptyData
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return FormatUnknown, fmt.Errorf("imageio: sniff: %w", err)
	}
	if kind == filetype.Unknown {
		return FormatUnknown, ErrUnsupportedFormat
	}
	f, err := FormatFromExt(kind.Extension)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
	}
	return f, nil
}

// Load reads and decodes the image file at path.
func Load(path string) (*image.NRGBA, Format, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("imageio: open file: %w", err)
	}
	return Decode(data)
}

// Decode decodes data, detecting the format from its content.
func Decode(data []byte) (*image.NRGBA, Format, error) {
	f, err := Sniff(data)
	if err != nil {
		return nil, FormatUnknown, err
	}
	img, err := DecodeFormat(bytes.NewReader(data), f)
	if err != nil {
		return nil, f, err
	}
	return img, f, nil
}

// DecodeFormat decodes r as the given format.
func DecodeFormat(r io.Reader, f Format) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", f, err)
	}
	return ToNRGBA(img), nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return ErrUnsupportedFormat
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromExt(filepath.Ext(path))
	if err != nil {
		return err
	}
	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}
	if err := Encode(file, img, f); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ToNRGBA converts any image to a zero-origin *image.NRGBA.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if nrgba, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) && nrgba.Stride == width*4 {
		return nrgba
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Row copy when the layout already matches.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			start := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:], nrgba.Pix[start:start+width*4])
		}
		return dst
	}

	draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)
	return dst
}
