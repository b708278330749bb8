package pixbuf

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/pixbuf/internal/blend"
)

// Color is a straight (non-premultiplied) 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Gray(255)
	Black       = Gray(0)
	DarkGray    = Gray(75)
	LightGray   = Gray(180)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Magenta     = RGB(255, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Orange      = RGB(255, 165, 0)
	Brown       = RGB(139, 69, 19)
	Purple      = RGB(75, 0, 130)
	Cyan        = RGB(0, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from all four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray creates an opaque gray.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// Float creates a color from channels in [0, 1]. Values are rounded and
// clamped.
func Float(r, g, b, a float64) Color {
	return Color{R: unitByte(r), G: unitByte(g), B: unitByte(b), A: unitByte(a)}
}

// FromUint32 unpacks 0xRRGGBBAA.
func FromUint32(v uint32) Color {
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromHex parses "RRGGBB" or "RRGGBBAA" with an optional leading '#'.
// Six digit colors are opaque.
func FromHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, &HexError{Input: s, Reason: "wrong length"}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &HexError{Input: s, Reason: "non hex digits"}
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return FromUint32(uint32(v)), nil
}

// Uint32 packs the color as 0xRRGGBBAA.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// Hex returns the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Floats returns the channels in [0, 1].
func (c Color) Floats() [4]float64 {
	return [4]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}
}

// IsTransparent reports whether alpha is zero.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// Blend composites other over c.
func (c Color) Blend(other Color) Color {
	r, g, b, a := blend.Over(other.R, other.G, other.B, other.A, c.R, c.G, c.B, c.A)
	return Color{R: r, G: g, B: b, A: a}
}

// Brightness returns the relative luminance of the color in [0, 1].
func (c Color) Brightness() float64 {
	f := c.Floats()
	return 0.2126*f[0] + 0.7152*f[1] + 0.0722*f[2]
}

// IsDark reports whether Brightness is below one half.
func (c Color) IsDark() bool {
	return c.Brightness() < 0.5
}

// WithBrightness scales the color channels by amount, keeping alpha.
func (c Color) WithBrightness(amount float64) Color {
	f := c.Floats()
	return Float(f[0]*amount, f[1]*amount, f[2]*amount, f[3])
}

// Darken returns the color at 90% brightness.
func (c Color) Darken() Color { return c.WithBrightness(0.9) }

// Lighten returns the color at 110% brightness.
func (c Color) Lighten() Color { return c.WithBrightness(1.1) }

// WithSaturate moves each channel toward the luma by amount. Positive
// amounts desaturate, negative amounts saturate.
func (c Color) WithSaturate(amount float64) Color {
	f := c.Floats()
	lum := 0.2989*f[0] + 0.5870*f[1] + 0.1140*f[2]
	for i := range 3 {
		f[i] += amount * (lum - f[i])
	}
	return Float(f[0], f[1], f[2], f[3])
}

// Desaturate moves the color 10% toward gray.
func (c Color) Desaturate() Color { return c.WithSaturate(0.1) }

// Saturate moves the color 10% away from gray.
func (c Color) Saturate() Color { return c.WithSaturate(-0.1) }

// TintAdd adds a signed offset to each channel, clamping to [0, 255].
func (c Color) TintAdd(r, g, b, a int) Color {
	return Color{
		R: blend.AddClamped(c.R, r),
		G: blend.AddClamped(c.G, g),
		B: blend.AddClamped(c.B, b),
		A: blend.AddClamped(c.A, a),
	}
}

// TintMul multiplies each channel by a factor, rounding and clamping.
func (c Color) TintMul(r, g, b, a float64) Color {
	return Color{
		R: blend.MulClamped(c.R, r),
		G: blend.MulClamped(c.G, g),
		B: blend.MulClamped(c.B, b),
		A: blend.MulClamped(c.A, a),
	}
}

func unitByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
