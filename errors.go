package pixbuf

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixbuf/text"
)

var (
	// ErrInvalidDimensions is returned when a width or height is negative.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrTooManyColors is returned by CopyToIndexedImage when the surface
	// holds more than 255 distinct colors and simplification is disabled.
	ErrTooManyColors = errors.New("pixbuf: more than 255 distinct colors")

	// ErrPaletteIndex is returned when an indexed pixel refers to a color
	// outside the palette.
	ErrPaletteIndex = errors.New("pixbuf: pixel index outside palette")

	// ErrNoFrames is returned when an animated image has no frames.
	ErrNoFrames = errors.New("pixbuf: animated image has no frames")

	// ErrPolylineClosed is returned when a segment is added to a closed
	// polyline.
	ErrPolylineClosed = errors.New("pixbuf: polyline is closed")

	// ErrPolylineInvalid is returned when a polyline segment is added
	// before Start, or when Close is called with fewer than two points.
	ErrPolylineInvalid = errors.New("pixbuf: polyline is invalid")
)

// BufferSizeError reports a pixel buffer whose length does not match
// width*height*4.
type BufferSizeError struct {
	Expected int
	Actual   int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("pixbuf: buffer length %d, want %d", e.Actual, e.Expected)
}

// ImageSizeError reports a pixel array that does not match the image
// dimensions.
type ImageSizeError struct {
	Width, Height int
	Expected      int
	Actual        int
}

func (e *ImageSizeError) Error() string {
	return fmt.Sprintf("pixbuf: %dx%d image needs %d bytes, got %d",
		e.Width, e.Height, e.Expected, e.Actual)
}

// ImageBlendSizeError reports an attempt to blend two images of different
// sizes.
type ImageBlendSizeError struct {
	Width, Height           int
	OtherWidth, OtherHeight int
}

func (e *ImageBlendSizeError) Error() string {
	return fmt.Sprintf("pixbuf: cannot blend %dx%d image with %dx%d image",
		e.OtherWidth, e.OtherHeight, e.Width, e.Height)
}

// MaskSizeError reports a custom clip mask whose length is not
// width*height.
type MaskSizeError struct {
	Expected int
	Actual   int
}

func (e *MaskSizeError) Error() string {
	return fmt.Sprintf("pixbuf: clip mask length %d, want %d", e.Actual, e.Expected)
}

// GlyphSizeError reports a custom glyph bitmap that does not match the font
// cell size.
type GlyphSizeError struct {
	Code     byte
	Font     text.PixelFont
	Expected int
	Actual   int
}

func (e *GlyphSizeError) Error() string {
	return fmt.Sprintf("pixbuf: glyph %d for %s needs %d cells, got %d",
		e.Code, e.Font, e.Expected, e.Actual)
}

// IndexedSizeError reports a surface too large for the indexed image
// format, whose dimensions are limited to 255.
type IndexedSizeError struct {
	Width, Height int
}

func (e *IndexedSizeError) Error() string {
	return fmt.Sprintf("pixbuf: %dx%d exceeds indexed image limit of 255x255", e.Width, e.Height)
}

// HexError reports a malformed hex color string.
type HexError struct {
	Input  string
	Reason string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("pixbuf: invalid hex color %q: %s", e.Input, e.Reason)
}

// PolylineError wraps ErrPolylineClosed or ErrPolylineInvalid with the
// operation that failed.
type PolylineError struct {
	Op  string
	Err error
}

func (e *PolylineError) Error() string {
	return "pixbuf: polyline " + e.Op + ": " + e.Err.Error()
}

func (e *PolylineError) Unwrap() error { return e.Err }
