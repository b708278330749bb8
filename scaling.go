package pixbuf

import "github.com/disintegration/imaging"

// ScalingKind selects an image scaling algorithm.
type ScalingKind uint8

const (
	// ScaleNearestNeighbour repeats every pixel by integer factors.
	ScaleNearestNeighbour ScalingKind = iota
	// ScaleEpx2x doubles the image with the EPX pixel art scaler.
	ScaleEpx2x
	// ScaleEpx4x applies EPX twice.
	ScaleEpx4x
)

// Scaling describes how Image.Scale enlarges an image.
type Scaling struct {
	Kind ScalingKind
	X, Y int // factors for ScaleNearestNeighbour
}

// NearestNeighbour scales by whole factors x and y.
func NearestNeighbour(x, y int) Scaling {
	return Scaling{Kind: ScaleNearestNeighbour, X: x, Y: y}
}

// Epx2x doubles the image, smoothing diagonal edges.
func Epx2x() Scaling { return Scaling{Kind: ScaleEpx2x} }

// Epx4x quadruples the image, smoothing diagonal edges.
func Epx4x() Scaling { return Scaling{Kind: ScaleEpx4x} }

// Scale returns an enlarged copy of img. Nearest neighbour factors below one
// are treated as one.
func (img *Image) Scale(s Scaling) *Image {
	switch s.Kind {
	case ScaleEpx2x:
		return epx(img)
	case ScaleEpx4x:
		return epx(epx(img))
	default:
		x, y := max(s.X, 1), max(s.Y, 1)
		if img.width == 0 || img.height == 0 {
			return NewBlankImage(img.width*x, img.height*y)
		}
		return ImageFromStd(imaging.Resize(img.ToNRGBA(), img.width*x, img.height*y, imaging.NearestNeighbor))
	}
}

// epx expands every pixel P into four, taking a neighbour's color for a
// corner when the two neighbours meeting at that corner agree and the
// opposite ones do not:
//
//	  A         1 2
//	C P B  ->   3 4
//	  D
func epx(img *Image) *Image {
	out := NewBlankImage(img.width*2, img.height*2)
	at := func(x, y int) Color {
		x = min(max(x, 0), img.width-1)
		y = min(max(y, 0), img.height-1)
		c, _ := img.GetPixel(x, y)
		return c
	}
	for y := range img.height {
		for x := range img.width {
			p := at(x, y)
			a, b, c, d := at(x, y-1), at(x+1, y), at(x-1, y), at(x, y+1)
			p1, p2, p3, p4 := p, p, p, p
			if c == a && c != d && a != b {
				p1 = a
			}
			if a == b && a != c && b != d {
				p2 = b
			}
			if d == c && d != b && c != a {
				p3 = c
			}
			if b == d && b != a && d != c {
				p4 = d
			}
			out.put(x*2, y*2, p1)
			out.put(x*2+1, y*2, p2)
			out.put(x*2, y*2+1, p3)
			out.put(x*2+1, y*2+1, p4)
		}
	}
	out.updateTransparency()
	return out
}
