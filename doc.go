// Package pixbuf provides a software rasterizer that draws shapes, bitmap
// text and images onto a caller-owned RGBA byte buffer.
//
// # Overview
//
// A Surface borrows a []byte of width*height*4 bytes and routes every write
// through a single pixel pipeline: translate, bounds check, clip check, then
// straight alpha "over" compositing. Nothing is antialiased; every primitive
// touches whole pixels.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/pixbuf"
//		"github.com/gogpu/pixbuf/geom"
//		"github.com/gogpu/pixbuf/text"
//	)
//
//	buf := make([]byte, 64*64*4)
//	s, err := pixbuf.NewSurface(buf, 64, 64)
//	if err != nil {
//		return err
//	}
//	s.Clear(pixbuf.Black)
//	s.DrawRect(geom.NewRect(geom.C(4, 4), geom.C(59, 59)), pixbuf.Stroke(pixbuf.White))
//	s.DrawText("hello", text.Px(8, 8), text.Format{}, pixbuf.Yellow)
//
// # Clipping
//
// Each Surface owns a Clip. It is either open (Nothing), a single rectangle
// or circle (Simple), an ordered list of add/remove operations baked into a
// mask (Complex), or a caller supplied mask (Custom). Clip keeps exactly one
// level of history for Restore.
//
// # Drawables
//
// A Drawable pairs a geom.Shape with a DrawType and the list of pixels it
// covers, computed once at construction. Transforms return new Drawables.
// ShapeCollection groups Drawables and keeps their combined bounds.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increasing clockwise on screen
//
// # Concurrency
//
// A Surface is not safe for concurrent use. Surfaces over disjoint buffers
// may be used from different goroutines. SetLogger and Logger are safe for
// concurrent use.
package pixbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
