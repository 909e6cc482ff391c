package utils

// Viewport maps the XZ ground plane onto screen pixels for a top-down view.
// +X goes right, +Z goes up the screen.
type Viewport struct {
	CenterX, CenterZ float64
	Scale            float64 // pixels per world unit
	Width, Height    int
}

func (v Viewport) ToScreen(x, z float64) (float32, float32) {
	sx := float64(v.Width)/2 + (x-v.CenterX)*v.Scale
	sy := float64(v.Height)/2 - (z-v.CenterZ)*v.Scale
	return float32(sx), float32(sy)
}

func (v Viewport) ToWorld(sx, sy float64) (x, z float64) {
	if v.Scale == 0 {
		return v.CenterX, v.CenterZ
	}
	x = v.CenterX + (sx-float64(v.Width)/2)/v.Scale
	z = v.CenterZ - (sy-float64(v.Height)/2)/v.Scale
	return x, z
}

// Visible reports whether a world point, padded by r units, falls on screen.
func (v Viewport) Visible(x, z, r float64) bool {
	sx, sy := v.ToScreen(x, z)
	pad := float32(r * v.Scale)
	return sx >= -pad && sy >= -pad && sx <= float32(v.Width)+pad && sy <= float32(v.Height)+pad
}

// Follow centers the viewport on a world point.
func (v *Viewport) Follow(x, z float64) {
	v.CenterX, v.CenterZ = x, z
}
