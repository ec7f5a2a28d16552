package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types the vector, matrix and shape types
// are defined over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

/**
 * Note that these are here in order to keep the float64 conversions
 * of generic scalars in one place.
 */
func ksqrt[T Number](x T) float64 {
	return m.Sqrt(float64(x))
}

func kabs(x float64) float64 {
	return m.Abs(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}
