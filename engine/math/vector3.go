package math

import (
	m "math"
)

// Vector3 represents a 3D vector
type Vector3[T Number] struct {
	X, Y, Z T
}

type (
	Vector3f = Vector3[float64]
	Vector3i = Vector3[int32]
	Vector3u = Vector3[uint32]
)

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVector3[T Number](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVector3Up[T Number]() Vector3[T] {
	return Vector3[T]{0, 1, 0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVector3Right[T Number]() Vector3[T] {
	return Vector3[T]{1, 0, 0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.
 */
func NewVector3One[T Number]() Vector3[T] {
	return Vector3[T]{1, 1, 1}
}

// XY drops the z component.
func (v Vector3[T]) XY() Vector2[T] {
	return Vector2[T]{v.X, v.Y}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vector3[T]) Mul(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vector3[T]) Scale(scalar T) Vector3[T] {
	return Vector3[T]{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

func (v Vector3[T]) Div(scalar T) Vector3[T] {
	return Vector3[T]{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vector3[T]) Neg() Vector3[T] {
	return Vector3[T]{-v.X, -v.Y, -v.Z}
}

func (v Vector3[T]) Equal(other Vector3[T]) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// IsZero reports whether every component is exactly zero.
func (v Vector3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vector3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vector3[T]) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero
 * vector normalizes to itself instead of dividing by zero.
 */
func (v Vector3[T]) Normalized() Vector3[T] {
	length := v.Length()
	if length == 0 {
		return Vector3[T]{}
	}
	return Vector3[T]{
		T(float64(v.X) / length),
		T(float64(v.Y) / length),
		T(float64(v.Z) / length)}
}

// Normalize normalizes v in place. The zero vector is left untouched.
func (v *Vector3[T]) Normalize() {
	*v = v.Normalized()
}

/**
 * @brief Calculates the dot product of v and other.
 * Typically used to calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product.
 */
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthoganal to both
 * provided vectors.
 *
 * @param other The second vector.
 * @return The cross product.
 */
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vector3[T]) Distance(other Vector3[T]) float64 {
	return v.Sub(other).Length()
}

// Angle returns the unsigned angle in radians between v and other.
func (v Vector3[T]) Angle(other Vector3[T]) float64 {
	return m.Atan2(v.Cross(other).Length(), float64(v.Dot(other)))
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically Epsilon[T]() or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vector3[T]) Compare(other Vector3[T], tolerance float64) bool {
	if kabs(float64(v.X)-float64(other.X)) > tolerance {
		return false
	}
	if kabs(float64(v.Y)-float64(other.Y)) > tolerance {
		return false
	}
	if kabs(float64(v.Z)-float64(other.Z)) > tolerance {
		return false
	}
	return true
}
