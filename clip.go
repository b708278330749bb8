package pixbuf

import "github.com/gogpu/pixbuf/geom"

// ClipMode identifies how a Clip decides pixel validity.
type ClipMode uint8

const (
	// ClipNothing allows every pixel.
	ClipNothing ClipMode = iota
	// ClipSimple allows pixels inside a single rectangle or circle.
	ClipSimple
	// ClipComplex allows pixels according to an ordered list of add and
	// remove operations, baked into a mask.
	ClipComplex
	// ClipCustom allows pixels according to a caller supplied mask.
	ClipCustom
)

// String returns the string representation of the clip mode.
func (m ClipMode) String() string {
	switch m {
	case ClipNothing:
		return "Nothing"
	case ClipSimple:
		return "Simple"
	case ClipComplex:
		return "Complex"
	case ClipCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// clipOp is one step of a complex clip. Pixels inside shape become valid
// when add is set and invalid otherwise.
type clipOp struct {
	add   bool
	shape geom.Shape
}

type clipState struct {
	mode   ClipMode
	shape  geom.Shape // ClipSimple
	ops    []clipOp   // ClipComplex
	custom []bool     // ClipCustom
	mask   []bool     // built ClipComplex mask, nil until built
	warned bool       // unbuilt mask already reported
}

// Clip restricts which pixels of a surface may be written.
//
// Every mode change saves the current state into a single history slot,
// overwriting whatever was saved before, so Restore undoes exactly one
// change.
//
// In complex mode each Add/Remove rebuilds the mask, which costs
// width*height*ops. Disable auto build with SetAutoBuild(false) to batch
// many edits and call UpdatePixelMap once afterwards. Until the mask is
// built, IsValid treats every pixel as valid and logs one warning per
// change to the operation list.
type Clip struct {
	width, height int
	cur           clipState
	prev          *clipState
	autoBuild     bool
}

// NewClip creates a clip for a width x height surface that allows every
// pixel.
func NewClip(width, height int) *Clip {
	return &Clip{width: width, height: height, autoBuild: true}
}

// Size returns the dimensions the clip covers.
func (c *Clip) Size() (width, height int) {
	return c.width, c.height
}

// Mode returns the current clip mode.
func (c *Clip) Mode() ClipMode { return c.cur.mode }

// IsNothing reports whether every pixel is allowed.
func (c *Clip) IsNothing() bool { return c.cur.mode == ClipNothing }

// IsSimple reports whether the clip is a single shape.
func (c *Clip) IsSimple() bool { return c.cur.mode == ClipSimple }

// IsComplex reports whether the clip is a list of add/remove operations.
func (c *Clip) IsComplex() bool { return c.cur.mode == ClipComplex }

// IsCustom reports whether the clip uses a caller supplied mask.
func (c *Clip) IsCustom() bool { return c.cur.mode == ClipCustom }

// AutoBuild reports whether complex edits rebuild the mask immediately.
func (c *Clip) AutoBuild() bool { return c.autoBuild }

// SetAutoBuild controls whether AddRect, RemoveRect, AddCircle and
// RemoveCircle rebuild the mask immediately.
func (c *Clip) SetAutoBuild(enabled bool) {
	c.autoBuild = enabled
}

// IsValid reports whether pixel (x, y) may be written.
func (c *Clip) IsValid(x, y int) bool {
	switch c.cur.mode {
	case ClipSimple:
		return c.cur.shape.Contains(geom.Coord{X: x, Y: y})
	case ClipComplex:
		if c.cur.mask == nil {
			if !c.cur.warned {
				Logger().Warn("pixbuf: complex clip used before its pixel map was built",
					"x", x, "y", y, "ops", len(c.cur.ops))
				c.cur.warned = true
			}
			return true
		}
		return c.lookup(c.cur.mask, x, y)
	case ClipCustom:
		return c.lookup(c.cur.custom, x, y)
	default:
		return true
	}
}

func (c *Clip) lookup(mask []bool, x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	return mask[y*c.width+x]
}

// save moves the current state into the history slot.
func (c *Clip) save() {
	prev := c.cur
	c.prev = &prev
	c.cur = clipState{}
}

// SetAllValid allows every pixel.
func (c *Clip) SetAllValid() {
	c.save()
}

// SetValidRect allows only pixels inside r (edges inclusive).
func (c *Clip) SetValidRect(r geom.Rect) {
	c.save()
	c.cur = clipState{mode: ClipSimple, shape: r}
}

// SetValidCircle allows only pixels inside circle.
func (c *Clip) SetValidCircle(circle geom.Circle) {
	c.save()
	c.cur = clipState{mode: ClipSimple, shape: circle}
}

// SetCustom installs mask, indexed y*width+x. The mask is copied.
// It returns a *MaskSizeError if len(mask) != width*height.
func (c *Clip) SetCustom(mask []bool) error {
	if want := c.width * c.height; len(mask) != want {
		return &MaskSizeError{Expected: want, Actual: len(mask)}
	}
	c.save()
	c.cur = clipState{mode: ClipCustom, custom: append([]bool(nil), mask...)}
	return nil
}

// Restore swaps the previously saved state back in. It reports false when
// there is nothing to restore. Only one level is kept.
func (c *Clip) Restore() bool {
	if c.prev == nil {
		return false
	}
	c.cur = *c.prev
	c.prev = nil
	return true
}

// AddRect marks pixels inside r valid, switching to complex mode.
func (c *Clip) AddRect(r geom.Rect) { c.push(clipOp{add: true, shape: r}) }

// RemoveRect marks pixels inside r invalid, switching to complex mode.
func (c *Clip) RemoveRect(r geom.Rect) { c.push(clipOp{add: false, shape: r}) }

// AddCircle marks pixels inside circle valid, switching to complex mode.
func (c *Clip) AddCircle(circle geom.Circle) { c.push(clipOp{add: true, shape: circle}) }

// RemoveCircle marks pixels inside circle invalid, switching to complex
// mode.
func (c *Clip) RemoveCircle(circle geom.Circle) { c.push(clipOp{add: false, shape: circle}) }

func (c *Clip) push(op clipOp) {
	if c.cur.mode != ClipComplex {
		c.save()
		c.cur = clipState{mode: ClipComplex}
	}
	c.cur.ops = append(c.cur.ops, op)
	c.cur.mask = nil
	c.cur.warned = false
	if c.autoBuild {
		c.UpdatePixelMap()
	}
}

// UpdatePixelMap rebuilds the complex mask. It is a no-op in other modes.
func (c *Clip) UpdatePixelMap() {
	if c.cur.mode != ClipComplex {
		c.cur.mask = nil
		return
	}
	c.cur.mask = c.build()
}

// PixelMap returns a fully built mask indexed y*width+x. The result is a
// copy the caller may modify.
func (c *Clip) PixelMap() []bool {
	switch c.cur.mode {
	case ClipComplex:
		if c.cur.mask == nil {
			c.UpdatePixelMap()
		}
		return append([]bool(nil), c.cur.mask...)
	case ClipCustom:
		return append([]bool(nil), c.cur.custom...)
	default:
		return c.build()
	}
}

func (c *Clip) build() []bool {
	out := make([]bool, c.width*c.height)
	for y := range c.height {
		for x := range c.width {
			out[y*c.width+x] = c.buildPixel(x, y)
		}
	}
	return out
}

func (c *Clip) buildPixel(x, y int) bool {
	p := geom.Coord{X: x, Y: y}
	switch c.cur.mode {
	case ClipSimple:
		return c.cur.shape.Contains(p)
	case ClipComplex:
		valid := true
		for _, op := range c.cur.ops {
			if op.shape.Contains(p) {
				valid = op.add
			}
		}
		return valid
	case ClipCustom:
		return c.cur.custom[y*c.width+x]
	default:
		return true
	}
}
