package math

const (
	/** @brief An approximate representation of PI. */
	K_PI float64 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI float64 = 0.25 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO float64 = 1.41421356237309504880
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO float64 = 0.70710678118654752440
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
)

const (
	// K_FLOAT32_EPSILON is the tolerance for float32 and integer scalars.
	K_FLOAT32_EPSILON float64 = 1e-5
	// K_FLOAT64_EPSILON is the tolerance for float64 scalars.
	K_FLOAT64_EPSILON float64 = 1e-9

	// Dot product margin used to detect (anti)parallel vector pairs.
	kParallelThreshold float64 = 1e-6
)

/**
 * @brief Returns the comparison tolerance for the scalar type T.
 *
 * float64 gets 1e-9; float32 and every integer type get 1e-5. The value
 * is returned as a float64 for use with Compare and similar helpers;
 * converting it to an integer T yields 0, which is the threshold the
 * predicates use for integer scalars.
 */
func Epsilon[T Number]() float64 {
	var zero T
	switch any(zero).(type) {
	case float64:
		return K_FLOAT64_EPSILON
	default:
		return K_FLOAT32_EPSILON
	}
}
