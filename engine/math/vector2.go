package math

import (
	m "math"
)

// Vector2 represents a 2D vector
type Vector2[T Number] struct {
	X, Y T
}

type (
	Vector2f = Vector2[float64]
	Vector2i = Vector2[int32]
	Vector2u = Vector2[uint32]
)

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVector2[T Number](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	return Vector2[T]{v.X - other.X, v.Y - other.Y}
}

// Scale multiplies both components by scalar.
func (v Vector2[T]) Scale(scalar T) Vector2[T] {
	return Vector2[T]{v.X * scalar, v.Y * scalar}
}

// Div divides both components by scalar.
func (v Vector2[T]) Div(scalar T) Vector2[T] {
	return Vector2[T]{v.X / scalar, v.Y / scalar}
}

func (v Vector2[T]) Neg() Vector2[T] {
	return Vector2[T]{-v.X, -v.Y}
}

func (v Vector2[T]) Equal(other Vector2[T]) bool {
	return v.X == other.X && v.Y == other.Y
}

func (v Vector2[T]) Dot(other Vector2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of v and other.
func (v Vector2[T]) Cross(other Vector2[T]) T {
	return v.X*other.Y - v.Y*other.X
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vector2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vector2[T]) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vector2[T]) Distance(other Vector2[T]) float64 {
	return v.Sub(other).Length()
}

// Angle returns the signed angle in radians from v to other.
func (v Vector2[T]) Angle(other Vector2[T]) float64 {
	return m.Atan2(float64(v.Cross(other)), float64(v.Dot(other)))
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero
 * vector normalizes to itself.
 */
func (v Vector2[T]) Normalized() Vector2[T] {
	length := v.Length()
	if length == 0 {
		return Vector2[T]{}
	}
	return Vector2[T]{T(float64(v.X) / length), T(float64(v.Y) / length)}
}

/**
 * Normalizes the vector in place. The zero vector is left untouched.
 */
func (v *Vector2[T]) Normalize() {
	*v = v.Normalized()
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically Epsilon[T]() or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vector2[T]) Compare(other Vector2[T], tolerance float64) bool {
	if kabs(float64(v.X)-float64(other.X)) > tolerance {
		return false
	}
	if kabs(float64(v.Y)-float64(other.Y)) > tolerance {
		return false
	}
	return true
}
