package text

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixbuf/geom"
)

// Positioning anchors a text block to its origin. The name gives the
// horizontal then vertical side of the block that sits on the origin.
type Positioning uint8

const (
	LeftTop Positioning = iota
	CenterTop
	RightTop
	LeftCenter
	Center
	RightCenter
	LeftBottom
	CenterBottom
	RightBottom
)

var positioningNames = [...]string{
	LeftTop:      "LeftTop",
	CenterTop:    "CenterTop",
	RightTop:     "RightTop",
	LeftCenter:   "LeftCenter",
	Center:       "Center",
	RightCenter:  "RightCenter",
	LeftBottom:   "LeftBottom",
	CenterBottom: "CenterBottom",
	RightBottom:  "RightBottom",
}

// String returns the string representation of the anchor.
func (p Positioning) String() string {
	if int(p) < len(positioningNames) {
		return positioningNames[p]
	}
	return unknownStr
}

// ParsePositioning parses an anchor name, ignoring case.
func ParsePositioning(s string) (Positioning, error) {
	for i, name := range positioningNames {
		if strings.EqualFold(name, s) {
			return Positioning(i), nil
		}
	}
	return LeftTop, fmt.Errorf("%w: %q", ErrUnknownPositioning, s)
}

// factors returns the fraction of the block size to shift by per axis:
// 0 for left/top, 0.5 for center, 1 for right/bottom.
func (p Positioning) factors() (fx, fy float64) {
	if int(p) >= len(positioningNames) {
		return 0, 0
	}
	steps := [3]float64{0, 0.5, 1}
	return steps[int(p)%3], steps[int(p)/3]
}

// Calc returns the top-left corner of a width x height block anchored at
// origin.
func (p Positioning) Calc(origin geom.Coord, width, height int) geom.Coord {
	fx, fy := p.factors()
	return geom.Coord{
		X: origin.X - int(float64(width)*fx),
		Y: origin.Y - int(float64(height)*fy),
	}
}
