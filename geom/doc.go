// Package geom provides the integer geometry used by pixbuf: coordinates,
// the closed set of drawable shapes and the affine transforms applied to them.
//
// Shapes are immutable values. Every transform (Translate, Scale, Rotate,
// MoveTo) returns a new Shape and leaves the receiver untouched.
//
// # Coordinate System
//
// Uses the usual raster convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increases clockwise on screen
//
// Rectangle corners are inclusive: Rect{TopLeft: (1,1), BottomRight: (2,2)}
// covers four pixels.
package geom
