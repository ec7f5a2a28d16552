package math

import (
	m "math"

	"golang.org/x/exp/rand"
)

// RandomUnitVector3 returns a direction uniformly distributed on the unit sphere.
func RandomUnitVector3(r *rand.Rand) Vector3f {
	for {
		v := Vector3f{r.NormFloat64(), r.NormFloat64(), r.NormFloat64()}
		if l := v.Length(); l > 1e-12 {
			return v.Div(l)
		}
	}
}

// RandomRotation returns a uniformly distributed unit quaternion with w >= 0.
func RandomRotation(r *rand.Rand) Quaternion {
	// Shoemake, "Uniform random rotations", Graphics Gems III.
	u1, u2, u3 := r.Float64(), r.Float64(), r.Float64()
	s1, s2 := m.Sqrt(1-u1), m.Sqrt(u1)
	q := Quaternion{
		W: s2 * m.Cos(2*K_PI*u3),
		X: s1 * m.Sin(2*K_PI*u2),
		Y: s1 * m.Cos(2*K_PI*u2),
		Z: s2 * m.Sin(2*K_PI*u3),
	}
	q.EnforceSign()
	return q
}
