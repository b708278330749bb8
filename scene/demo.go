package scene

import (
	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/text"
)

// Demo returns a small scene that exercises every shape kind, text anchors
// and a complex clip.
func Demo() *Scene {
	return NewBuilder(96, 64).
		Background(pixbuf.RGB(16, 16, 32)).
		RemoveClipCircle(geom.NewCircle(geom.C(18, 20), 3)).
		RoundedRect(geom.NewRect(geom.C(1, 1), geom.C(94, 62)), 6, pixbuf.LightGray).
		Circle(geom.NewCircle(geom.C(18, 20), 10), pixbuf.Fill(pixbuf.Red)).
		Circle(geom.NewCircle(geom.C(28, 24), 10), pixbuf.Fill(pixbuf.RGBA(0, 0, 255, 160))).
		Ellipse(geom.NewEllipse(geom.C(70, 20), 36, 18), pixbuf.Stroke(pixbuf.Cyan)).
		Triangle(geom.NewTriangle(geom.C(8, 56), geom.C(24, 36), geom.C(40, 56)), pixbuf.Fill(pixbuf.Green)).
		Polygon(geom.NewPolygon(
			geom.C(52, 38), geom.C(60, 46), geom.C(68, 38), geom.C(76, 46),
			geom.C(84, 38), geom.C(84, 56), geom.C(52, 56),
		), pixbuf.Fill(pixbuf.Orange)).
		Line(geom.C(4, 32), geom.C(91, 32), pixbuf.DarkGray).
		Text("pixbuf", geom.C(48, 8), text.Format{Font: text.Small4x5, Positioning: text.CenterTop}, pixbuf.Yellow).
		Text("v"+pixbuf.Version, geom.C(90, 58), text.Format{Font: text.Limited3x5, Positioning: text.RightBottom}, pixbuf.White).
		Build()
}
