package math

// Color is an 8 bit per channel RGBA colour. The zero value is transparent black.
type Color struct {
	R, G, B, A uint8
}

func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ToVector4 returns the channels scaled to [0, 1] as (W=A, X=R, Y=G, Z=B).
func (c Color) ToVector4() Vector4f {
	return Vector4f{
		W: float64(c.A) / 255.0,
		X: float64(c.R) / 255.0,
		Y: float64(c.G) / 255.0,
		Z: float64(c.B) / 255.0,
	}
}
