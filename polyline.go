package pixbuf

import "github.com/gogpu/pixbuf/geom"

type segmentKind uint8

const (
	segmentStart segmentKind = iota
	segmentLine
	segmentArc
)

type segment struct {
	kind     segmentKind
	point    geom.Coord // start or line end, arc center
	radius   int
	startDeg int
	endDeg   int
}

func (s segment) end() geom.Coord {
	if s.kind == segmentArc {
		return geom.FromAngle(s.point, s.radius, float64(s.endDeg))
	}
	return s.point
}

// Polyline is a connected path of lines and arcs drawn in one color.
// The zero value has no start point; every method on it fails with
// ErrPolylineInvalid.
type Polyline struct {
	Color    Color
	segments []segment
	closed   bool
}

// NewPolyline starts a polyline at start.
func NewPolyline(start geom.Coord, c Color) *Polyline {
	return &Polyline{Color: c, segments: []segment{{kind: segmentStart, point: start}}}
}

// RoundedRect builds the closed outline of r whose corners are quarter
// circles of radius corner. corner is clamped to half the shorter side.
func RoundedRect(r geom.Rect, corner int, c Color) *Polyline {
	corner = min(max(corner, 0), min(r.Width(), r.Height())/2)
	left, top, right, bottom := r.Left(), r.Top(), r.Right(), r.Bottom()
	arc := func(center geom.Coord, startDeg int) segment {
		return segment{kind: segmentArc, point: center, radius: corner, startDeg: startDeg, endDeg: startDeg + 90}
	}
	line := func(to geom.Coord) segment {
		return segment{kind: segmentLine, point: to}
	}
	p := NewPolyline(geom.C(left+corner, top), c)
	p.segments = append(p.segments,
		line(geom.C(right-corner, top)),
		arc(geom.C(right-corner, top+corner), 270),
		line(geom.C(right, bottom-corner)),
		arc(geom.C(right-corner, bottom-corner), 0),
		line(geom.C(left+corner, bottom)),
		arc(geom.C(left+corner, bottom-corner), 90),
		line(geom.C(left, top+corner)),
		arc(geom.C(left+corner, top+corner), 180),
	)
	p.closed = true
	return p
}

func (p *Polyline) check(op string) error {
	if len(p.segments) == 0 {
		return &PolylineError{Op: op, Err: ErrPolylineInvalid}
	}
	if p.closed {
		return &PolylineError{Op: op, Err: ErrPolylineClosed}
	}
	return nil
}

// LineTo adds a straight line from the current end to point.
func (p *Polyline) LineTo(point geom.Coord) error {
	if err := p.check("line to"); err != nil {
		return err
	}
	p.segments = append(p.segments, segment{kind: segmentLine, point: point})
	return nil
}

// ArcAround adds an arc of radius around center, from startDeg sweeping
// clockwise by sweepDeg. The next segment continues from the arc's end.
func (p *Polyline) ArcAround(center geom.Coord, radius, startDeg, sweepDeg int) error {
	if err := p.check("arc around"); err != nil {
		return err
	}
	p.segments = append(p.segments, segment{
		kind:     segmentArc,
		point:    center,
		radius:   radius,
		startDeg: startDeg,
		endDeg:   startDeg + sweepDeg,
	})
	return nil
}

// Close adds a line back to the start point. No segments may be added
// afterwards.
func (p *Polyline) Close() error {
	if err := p.check("close"); err != nil {
		return err
	}
	if err := p.LineTo(p.segments[0].point); err != nil {
		return err
	}
	p.closed = true
	return nil
}

// IsClosed reports whether Close has been called.
func (p *Polyline) IsClosed() bool { return p.closed }

// Len returns the number of segments, including the start.
func (p *Polyline) Len() int { return len(p.segments) }

// Render implements Renderable.
func (p *Polyline) Render(s *Surface) {
	if len(p.segments) == 0 {
		Logger().Warn("pixbuf: polyline has no start, nothing drawn")
		return
	}
	if len(p.segments) < 2 {
		Logger().Warn("pixbuf: polyline only has a start point")
	}
	last := p.segments[0].point
	for _, seg := range p.segments[1:] {
		switch seg.kind {
		case segmentLine:
			s.DrawLine(last, seg.point, p.Color)
		case segmentArc:
			s.DrawArc(seg.point, seg.startDeg, seg.endDeg, seg.radius, false, p.Color)
		}
		last = seg.end()
	}
}
