package math

import (
	"fmt"
	m "math"

	"github.com/spaghettifunk/anima-math/engine/core"
)

/**
 * @brief A quaternion, used to represent rotational orientation.
 *
 * W is the scalar part and X, Y, Z the vector part. Only unit quaternions
 * represent rotations; the zero value is the zero quaternion, so use
 * NewQuaternion or QuaternionIdentity to get the identity rotation.
 */
type Quaternion struct {
	W, X, Y, Z float64
}

// NewQuaternion returns the identity rotation.
func NewQuaternion() Quaternion {
	return QuaternionIdentity()
}

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func QuaternionIdentity() Quaternion {
	return Quaternion{1, 0, 0, 0}
}

/**
 * @brief Creates a quaternion from the given angle and axis.
 *
 * The axis is expected to be a unit vector and is not renormalized; the
 * result has unit norm only when the axis does.
 *
 * @param angle The angle of rotation in radians.
 * @param axis The axis of rotation.
 * @return A new quaternion.
 */
func QuaternionFromAxisAngle(angle float64, axis Vector3f) Quaternion {
	half := angle / 2
	s := m.Sin(half)
	return Quaternion{
		W: m.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

/**
 * @brief Creates a quaternion from roll (x), pitch (y) and yaw (z) angles
 * in radians using the half-angle product expansion.
 */
func QuaternionFromEulerAngles(x, y, z float64) Quaternion {
	sx, cx := m.Sincos(x / 2)
	sy, cy := m.Sincos(y / 2)
	sz, cz := m.Sincos(z / 2)

	return Quaternion{
		W: cx*cy*cz + sx*sy*sz,
		X: sx*cy*cz - cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz - sx*sy*cz,
	}
}

// QuaternionFromVectors is QuaternionFromVectorsUp with the default
// reference up vector (0, 1, 0).
func QuaternionFromVectors(v1, v2 Vector3f) Quaternion {
	return QuaternionFromVectorsUp(v1, v2, NewVector3Up[float64]())
}

/**
 * @brief Returns the shortest-arc rotation taking the direction of v1 onto
 * the direction of v2. The result is NOT normalized, call Normalize before
 * using it as a rotation.
 *
 * Nearly parallel inputs yield the identity. Nearly opposite inputs yield a
 * half turn (w = 0) around (1, 0, 0) x v1, or (0, 1, 0) x v1 when the first
 * is zero. referenceUp does not take part in that choice.
 *
 * In the general case the scalar part is sqrt(|v1|^2 * |v2|^2) + dot, where
 * dot is taken between the normalized inputs while the magnitudes are those
 * of the inputs as given.
 *
 * Zero-length inputs are not rejected here and produce the zero quaternion;
 * use QuaternionFromVectorsChecked to get an error instead.
 */
func QuaternionFromVectorsUp(v1, v2, referenceUp Vector3f) Quaternion {
	u1 := v1.Normalized()
	u2 := v2.Normalized()

	dot := u1.Dot(u2)
	if dot > 1-kParallelThreshold {
		return QuaternionIdentity()
	}
	if dot < -1+kParallelThreshold {
		axis := NewVector3Right[float64]().Cross(u1)
		if axis.IsZero() {
			axis = NewVector3Up[float64]().Cross(u1)
		}
		core.LogDebug("quaternion from opposite vectors, half turn around (%g, %g, %g)", axis.X, axis.Y, axis.Z)
		return Quaternion{0, axis.X, axis.Y, axis.Z}
	}

	axis := u1.Cross(u2)
	w := m.Sqrt(v1.LengthSquared()*v2.LengthSquared()) + dot
	return Quaternion{w, axis.X, axis.Y, axis.Z}
}

// QuaternionFromVectorsChecked behaves like QuaternionFromVectorsUp but
// rejects zero-length or non-finite inputs with core.ErrDegenerateInput.
func QuaternionFromVectorsChecked(v1, v2, referenceUp Vector3f) (Quaternion, error) {
	if err := checkDirection("v1", v1); err != nil {
		return Quaternion{}, err
	}
	if err := checkDirection("v2", v2); err != nil {
		return Quaternion{}, err
	}
	return QuaternionFromVectorsUp(v1, v2, referenceUp), nil
}

func checkDirection(name string, v Vector3f) error {
	length := v.Length()
	if length == 0 || m.IsNaN(length) || m.IsInf(length, 0) {
		core.LogDebug("rejecting %s = (%g, %g, %g) as a rotation direction", name, v.X, v.Y, v.Z)
		return fmt.Errorf("%s has length %g: %w", name, length, core.ErrDegenerateInput)
	}
	return nil
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 * For unit quaternions this is the inverse rotation.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q.W, -q.X, -q.Y, -q.Z}
}

/**
 * @brief Returns the euclidean norm of the quaternion.
 */
func (q Quaternion) Length() float64 {
	return m.Sqrt(q.Dot(q))
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.W*other.W +
		q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z
}

/**
 * @brief Normalizes the quaternion in place. A quaternion of zero norm is
 * reset to the identity instead of producing NaN.
 */
func (q *Quaternion) Normalize() {
	length := q.Length()
	if length == 0 {
		*q = QuaternionIdentity()
		return
	}
	q.W /= length
	q.X /= length
	q.Y /= length
	q.Z /= length
}

// Normalise is an alias of Normalize.
//
// Deprecated: use Normalize.
func (q *Quaternion) Normalise() {
	q.Normalize()
}

// Normalized returns a normalized copy of q, see Normalize.
func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

/**
 * @brief Negates all four components when w is negative so that w >= 0.
 * q and -q represent the same rotation.
 */
func (q *Quaternion) EnforceSign() {
	if q.W < 0 {
		q.W = -q.W
		q.X = -q.X
		q.Y = -q.Y
		q.Z = -q.Z
	}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalized()
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product).
 *
 * As rotations q.Mul(other) applies other first, then q.
 *
 * @param other The right hand side quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Rotate rotates point around the origin.
func (q Quaternion) Rotate(point Vector3f) Vector3f {
	return q.RotateAround(point, Vector3f{})
}

/**
 * @brief Rotates point around center with the sandwich product q * p * q'.
 *
 * q must have unit norm for the result to be a rigid rotation; any other
 * norm also scales the point by |q|^2.
 */
func (q Quaternion) RotateAround(point, center Vector3f) Vector3f {
	rel := point.Sub(center)
	p := Quaternion{0, rel.X, rel.Y, rel.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vector3f{r.X + center.X, r.Y + center.Y, r.Z + center.Z}
}

// Equal reports whether all four components are exactly equal.
func (q Quaternion) Equal(other Quaternion) bool {
	return q.W == other.W && q.X == other.X && q.Y == other.Y && q.Z == other.Z
}

// Compare reports whether every component differs by at most tolerance.
func (q Quaternion) Compare(other Quaternion, tolerance float64) bool {
	return Vector4f(q).Compare(Vector4f(other), tolerance)
}

/**
 * @brief Creates a 4x4 rotation matrix from the given quaternion. The
 * matrix acts on column vectors. A normalized copy of q is used.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMatrix() Matrix[float64] {
	out := NewMatrixIdentity[float64](4)

	// https://stackoverflow.com/questions/1556260/convert-quaternion-rotation-to-rotation-matrix
	n := q.Normalized()

	out.Data[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out.Data[1] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out.Data[2] = 2.0*n.X*n.Z + 2.0*n.Y*n.W

	out.Data[4] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out.Data[5] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out.Data[6] = 2.0*n.Y*n.Z - 2.0*n.X*n.W

	out.Data[8] = 2.0*n.X*n.Z - 2.0*n.Y*n.W
	out.Data[9] = 2.0*n.Y*n.Z + 2.0*n.X*n.W
	out.Data[10] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0-1.0.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float64) Quaternion {
	// Source: https://en.Wikipedia.org/wiki/Slerp
	// Only unit quaternions are valid rotations.
	v0 := q.Normalized()
	v1 := other.Normalized()

	dot := v0.Dot(v1)

	// v1 and -v1 are the same rotation; flip one to take the shorter path.
	if dot < 0.0 {
		v1 = Quaternion{-v1.W, -v1.X, -v1.Y, -v1.Z}
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		// Too close for comfort, interpolate linearly and normalize.
		qt := Quaternion{
			v0.W + ((v1.W - v0.W) * percentage),
			v0.X + ((v1.X - v0.X) * percentage),
			v0.Y + ((v1.Y - v0.Y) * percentage),
			v0.Z + ((v1.Z - v0.Z) * percentage)}
		return qt.Normalized()
	}

	// dot is in [0, dotThreshold] so acos is safe
	theta0 := m.Acos(dot)
	theta := theta0 * percentage
	sinTheta := m.Sin(theta)
	sinTheta0 := m.Sin(theta0)

	s0 := m.Cos(theta) - dot*sinTheta/sinTheta0 // == sin(theta0 - theta) / sin(theta0)
	s1 := sinTheta / sinTheta0

	return Quaternion{
		(v0.W * s0) + (v1.W * s1),
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1)}
}
