// Package blend provides straight (non-premultiplied) alpha compositing on
// 8-bit RGBA channels.
package blend

import "math"

// Over composites a straight-alpha source over a straight-alpha destination:
//
//	outA = 1 - (1-Sa)(1-Da)
//	outC = (Sc*Sa + Dc*Da*(1-Sa)) / outA
//
// Results are rounded to the nearest 8-bit value.
func Over(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 255:
		return sr, sg, sb, 255
	case 0:
		return dr, dg, db, da
	}
	srcA := float64(sa) / 255
	dstA := float64(da) / 255
	outA := 1 - (1-srcA)*(1-dstA)
	if outA == 0 {
		return 0, 0, 0, 0
	}
	mix := func(s, d byte) byte {
		v := float64(s)/255*srcA/outA + float64(d)/255*dstA*(1-srcA)/outA
		return unit(v)
	}
	return mix(sr, dr), mix(sg, dg), mix(sb, db), unit(outA)
}

// unit converts a 0..1 value to a rounded, clamped byte.
func unit(v float64) byte {
	return clampByte(math.Round(v * 255))
}

// AddClamped adds diff to v, clamping to 0..255.
func AddClamped(v byte, diff int) byte {
	return clampByte(float64(int(v) + diff))
}

// MulClamped multiplies v by factor, rounding and clamping to 0..255.
func MulClamped(v byte, factor float64) byte {
	return clampByte(math.Round(float64(v) * factor))
}

func clampByte(v float64) byte {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return byte(v)
	}
}
