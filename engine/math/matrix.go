package math

import (
	"fmt"

	"github.com/spaghettifunk/anima-math/engine/core"
)

/**
 * @brief A Rows x Cols matrix. Elements are stored row-major, element
 * (i, j) lives at Data[i*Cols+j].
 */
type Matrix[T Number] struct {
	Rows, Cols int
	Data       []T
}

/**
 * @brief Creates a zero matrix of the given dimensions. Both dimensions
 * must be at least 1.
 */
func NewMatrix[T Number](rows, cols int) Matrix[T] {
	if rows < 1 || cols < 1 {
		panic(fmt.Sprintf("math: invalid matrix dimensions %dx%d", rows, cols))
	}
	return Matrix[T]{
		Rows: rows,
		Cols: cols,
		Data: make([]T, rows*cols),
	}
}

/**
 * @brief Creates and returns an n x n identity matrix.
 */
func NewMatrixIdentity[T Number](n int) Matrix[T] {
	out := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		out.Data[i*n+i] = 1
	}
	return out
}

// NewMatrixDiagonal returns a square matrix with values on its diagonal.
// It panics when called without values, like NewMatrix with a zero dimension.
func NewMatrixDiagonal[T Number](values ...T) Matrix[T] {
	n := len(values)
	out := NewMatrix[T](n, n)
	for i, v := range values {
		out.Data[i*n+i] = v
	}
	return out
}

/**
 * @brief Creates a 4x4 translation matrix acting on column vectors.
 */
func NewMatrixTranslation[T Number](position Vector3[T]) Matrix[T] {
	out := NewMatrixIdentity[T](4)
	out.Data[3] = position.X
	out.Data[7] = position.Y
	out.Data[11] = position.Z
	return out
}

/**
 * @brief Creates a 4x4 scale matrix.
 */
func NewMatrixScale[T Number](scale Vector3[T]) Matrix[T] {
	return NewMatrixDiagonal(scale.X, scale.Y, scale.Z, 1)
}

func (mt Matrix[T]) At(row, col int) T {
	return mt.Data[row*mt.Cols+col]
}

func (mt Matrix[T]) Set(row, col int, value T) {
	mt.Data[row*mt.Cols+col] = value
}

func (mt Matrix[T]) sameShape(other Matrix[T]) error {
	if mt.Rows != other.Rows || mt.Cols != other.Cols {
		return fmt.Errorf("%dx%d and %dx%d: %w", mt.Rows, mt.Cols, other.Rows, other.Cols, core.ErrDimensionMismatch)
	}
	return nil
}

func (mt Matrix[T]) apply(fn func(i int, v T) T) Matrix[T] {
	out := NewMatrix[T](mt.Rows, mt.Cols)
	for i, v := range mt.Data {
		out.Data[i] = fn(i, v)
	}
	return out
}

func (mt Matrix[T]) Neg() Matrix[T] {
	return mt.apply(func(_ int, v T) T { return -v })
}

func (mt Matrix[T]) Add(other Matrix[T]) (Matrix[T], error) {
	if err := mt.sameShape(other); err != nil {
		return Matrix[T]{}, err
	}
	return mt.apply(func(i int, v T) T { return v + other.Data[i] }), nil
}

func (mt Matrix[T]) Sub(other Matrix[T]) (Matrix[T], error) {
	if err := mt.sameShape(other); err != nil {
		return Matrix[T]{}, err
	}
	return mt.apply(func(i int, v T) T { return v - other.Data[i] }), nil
}

func (mt Matrix[T]) Scale(scalar T) Matrix[T] {
	return mt.apply(func(_ int, v T) T { return v * scalar })
}

func (mt Matrix[T]) Div(scalar T) Matrix[T] {
	return mt.apply(func(_ int, v T) T { return v / scalar })
}

/**
 * @brief Returns the result of multiplying mt and other. mt.Cols must
 * equal other.Rows; the result is mt.Rows x other.Cols.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Matrix[T]) Mul(other Matrix[T]) (Matrix[T], error) {
	if mt.Cols != other.Rows {
		return Matrix[T]{}, fmt.Errorf("cannot multiply %dx%d by %dx%d: %w", mt.Rows, mt.Cols, other.Rows, other.Cols, core.ErrDimensionMismatch)
	}

	out := NewMatrix[T](mt.Rows, other.Cols)
	for row := 0; row < mt.Rows; row++ {
		for col := 0; col < other.Cols; col++ {
			var sum T
			for i := 0; i < mt.Cols; i++ {
				sum += mt.Data[row*mt.Cols+i] * other.Data[i*other.Cols+col]
			}
			out.Data[row*other.Cols+col] = sum
		}
	}
	return out, nil
}

/**
 * @brief Returns a transposed copy of the provided matrix.
 */
func (mt Matrix[T]) Transpose() Matrix[T] {
	out := NewMatrix[T](mt.Cols, mt.Rows)
	for row := 0; row < mt.Rows; row++ {
		for col := 0; col < mt.Cols; col++ {
			out.Data[col*mt.Rows+row] = mt.Data[row*mt.Cols+col]
		}
	}
	return out
}

// TransformPoint multiplies the homogeneous point (p, 1) by a 4x4 matrix.
func (mt Matrix[T]) TransformPoint(p Vector3[T]) (Vector3[T], error) {
	if mt.Rows != 4 || mt.Cols != 4 {
		return Vector3[T]{}, fmt.Errorf("transform point with %dx%d matrix: %w", mt.Rows, mt.Cols, core.ErrDimensionMismatch)
	}
	d := mt.Data
	return Vector3[T]{
		d[0]*p.X + d[1]*p.Y + d[2]*p.Z + d[3],
		d[4]*p.X + d[5]*p.Y + d[6]*p.Z + d[7],
		d[8]*p.X + d[9]*p.Y + d[10]*p.Z + d[11],
	}, nil
}

// Equal reports whether both matrices have the same shape and elements.
func (mt Matrix[T]) Equal(other Matrix[T]) bool {
	if mt.sameShape(other) != nil {
		return false
	}
	for i, v := range mt.Data {
		if v != other.Data[i] {
			return false
		}
	}
	return true
}

// Compare is Equal with an absolute per-element tolerance.
func (mt Matrix[T]) Compare(other Matrix[T], tolerance float64) bool {
	if mt.sameShape(other) != nil {
		return false
	}
	for i, v := range mt.Data {
		if kabs(float64(v)-float64(other.Data[i])) > tolerance {
			return false
		}
	}
	return true
}
