package geom

import (
	"fmt"
	"math"
)

// Coord is a signed integer position on (or off) a pixel grid.
type Coord struct {
	X, Y int
}

// C is a convenience function to create a Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// FromAngle returns the point at distance from center in the direction of
// degrees.
func FromAngle(center Coord, distance int, degrees float64) Coord {
	rad := degrees * math.Pi / 180
	x := float64(distance)*math.Cos(rad) + float64(center.X)
	y := float64(distance)*math.Sin(rad) + float64(center.Y)
	return Coord{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coords.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the difference of two coords.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Neg returns the coord with both components negated.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// Diff returns the absolute per-axis distance between two coords.
func (c Coord) Diff(o Coord) Coord {
	return Coord{X: abs(c.X - o.X), Y: abs(c.Y - o.Y)}
}

// Distance returns the truncated euclidean distance between two coords.
func (c Coord) Distance(o Coord) int {
	return int(math.Hypot(float64(o.X-c.X), float64(o.Y-c.Y)))
}

// MidPoint returns the point halfway between two coords (rounded towards zero).
func (c Coord) MidPoint(o Coord) Coord {
	return Coord{X: (c.X + o.X) / 2, Y: (c.Y + o.Y) / 2}
}

// AngleTo returns the angle in degrees from c to o.
func (c Coord) AngleTo(o Coord) float64 {
	return math.Atan2(float64(o.Y-c.Y), float64(o.X-c.X)) * 180 / math.Pi
}

// Cross returns the 2D cross product (scalar).
func (c Coord) Cross(o Coord) int {
	return c.X*o.Y - c.Y*o.X
}

// Dot returns the dot product.
func (c Coord) Dot(o Coord) int {
	return c.X*o.X + c.Y*o.Y
}

// Perpendicular returns the coord rotated by 90 degrees.
func (c Coord) Perpendicular() Coord {
	return Coord{X: c.Y, Y: -c.X}
}

// Lerp performs linear interpolation between two coords.
// t=0 returns c, t=1 returns o, intermediate values are rounded.
func (c Coord) Lerp(o Coord, t float64) Coord {
	return Coord{X: Lerp(c.X, o.X, t), Y: Lerp(c.Y, o.Y, t)}
}

// Lerp interpolates between two integers, rounding to the nearest value.
func Lerp(start, end int, t float64) int {
	return int(math.Round(Flerp(float64(start), float64(end), t)))
}

// Flerp interpolates between two floats.
func Flerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
