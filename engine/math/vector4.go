package math

// Vector4 represents a 4D vector. Components are ordered W, X, Y, Z.
type Vector4[T Number] struct {
	W, X, Y, Z T
}

type (
	Vector4f = Vector4[float64]
	Vector4i = Vector4[int32]
	Vector4u = Vector4[uint32]
)

func NewVector4[T Number](w, x, y, z T) Vector4[T] {
	return Vector4[T]{w, x, y, z}
}

/**
 * @brief Returns a new Vector4 using v as the x, y and z components and w for w.
 */
func (v Vector3[T]) ToVector4(w T) Vector4[T] {
	return Vector4[T]{w, v.X, v.Y, v.Z}
}

// ToVector3 drops the w component.
func (v Vector4[T]) ToVector3() Vector3[T] {
	return Vector3[T]{v.X, v.Y, v.Z}
}

func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.W + other.W, v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	return Vector4[T]{v.W - other.W, v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector4[T]) Scale(scalar T) Vector4[T] {
	return Vector4[T]{v.W * scalar, v.X * scalar, v.Y * scalar, v.Z * scalar}
}

func (v Vector4[T]) Div(scalar T) Vector4[T] {
	return Vector4[T]{v.W / scalar, v.X / scalar, v.Y / scalar, v.Z / scalar}
}

func (v Vector4[T]) Neg() Vector4[T] {
	return Vector4[T]{-v.W, -v.X, -v.Y, -v.Z}
}

func (v Vector4[T]) Equal(other Vector4[T]) bool {
	return v.W == other.W && v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

func (v Vector4[T]) Dot(other Vector4[T]) T {
	return v.W*other.W + v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vector4[T]) LengthSquared() T {
	return v.Dot(v)
}

func (v Vector4[T]) Length() float64 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero
 * vector normalizes to itself.
 */
func (v Vector4[T]) Normalized() Vector4[T] {
	length := v.Length()
	if length == 0 {
		return Vector4[T]{}
	}
	return Vector4[T]{
		T(float64(v.W) / length),
		T(float64(v.X) / length),
		T(float64(v.Y) / length),
		T(float64(v.Z) / length)}
}

func (v *Vector4[T]) Normalize() {
	*v = v.Normalized()
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vector4[T]) Compare(other Vector4[T], tolerance float64) bool {
	if kabs(float64(v.W)-float64(other.W)) > tolerance {
		return false
	}
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
