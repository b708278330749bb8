package pixbuf

import "github.com/gogpu/pixbuf/geom"

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// Plain surface
//	s, err := pixbuf.NewSurface(buf, 320, 240)
//
//	// Drawing origin moved to the centre, complex clip edits batched
//	s, err := pixbuf.NewSurface(buf, 320, 240,
//		pixbuf.WithTranslate(geom.C(160, 120)),
//		pixbuf.WithClipAutoBuild(false))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	translate geom.Coord
	clip      *Clip
	autoBuild *bool
}

// defaultOptions returns the default surface options.
func defaultOptions() surfaceOptions {
	return surfaceOptions{
		clip:      nil, // Will be created if nil
		autoBuild: nil, // Clip default unless set
	}
}

// WithTranslate sets the initial translate offset added to every drawing
// coordinate.
func WithTranslate(offset geom.Coord) SurfaceOption {
	return func(o *surfaceOptions) {
		o.translate = offset
	}
}

// WithClip installs an existing clip. Its size must match the surface,
// otherwise NewSurface returns a *MaskSizeError.
//
// Example:
//
//	clip := pixbuf.NewClip(64, 64)
//	clip.SetValidCircle(geom.NewCircle(geom.C(32, 32), 20))
//	s, err := pixbuf.NewSurface(buf, 64, 64, pixbuf.WithClip(clip))
func WithClip(c *Clip) SurfaceOption {
	return func(o *surfaceOptions) {
		o.clip = c
	}
}

// WithClipAutoBuild sets whether complex clip edits rebuild the clip mask
// immediately. See Clip.SetAutoBuild.
func WithClipAutoBuild(enabled bool) SurfaceOption {
	return func(o *surfaceOptions) {
		o.autoBuild = &enabled
	}
}
