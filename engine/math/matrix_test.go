package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/anima-math/engine/core"
)

func TestMatrix_Constructors(t *testing.T) {
	z := NewMatrix[int32](2, 3)
	assert.Equal(t, 2, z.Rows)
	assert.Equal(t, 3, z.Cols)
	assert.Equal(t, []int32{0, 0, 0, 0, 0, 0}, z.Data)

	id := NewMatrixIdentity[float64](3)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data)

	d := NewMatrixDiagonal(2, 3)
	assert.Equal(t, []int{2, 0, 0, 3}, d.Data)

	assert.Panics(t, func() { NewMatrix[float64](0, 2) })
	assert.Panics(t, func() { NewMatrixDiagonal[float64]() })
}

func TestMatrix_Arithmetic(t *testing.T) {
	a := Matrix[float64]{Rows: 2, Cols: 2, Data: []float64{1, 2, 3, 4}}
	b := Matrix[float64]{Rows: 2, Cols: 2, Data: []float64{5, 6, 7, 8}}

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8, 10, 12}, sum.Data)

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, diff.Data)

	assert.Equal(t, []float64{-1, -2, -3, -4}, a.Neg().Data)
	assert.Equal(t, []float64{2, 4, 6, 8}, a.Scale(2).Data)
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, a.Div(2).Data)

	// operands are not modified
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, prod.Data)

	id, err := a.Mul(NewMatrixIdentity[float64](2))
	require.NoError(t, err)
	assert.True(t, id.Equal(a))

	_, err = a.Add(NewMatrix[float64](3, 2))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	_, err = a.Sub(NewMatrix[float64](2, 3))
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestMatrix_MulShapes(t *testing.T) {
	a := Matrix[int]{Rows: 2, Cols: 3, Data: []int{1, 2, 3, 4, 5, 6}}
	b := Matrix[int]{Rows: 3, Cols: 1, Data: []int{1, 0, -1}}

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 2, prod.Rows)
	assert.Equal(t, 1, prod.Cols)
	assert.Equal(t, []int{-2, -2}, prod.Data)

	_, err = b.Mul(a)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestMatrix_Transpose(t *testing.T) {
	a := Matrix[int]{Rows: 2, Cols: 3, Data: []int{1, 2, 3, 4, 5, 6}}
	tr := a.Transpose()

	assert.Equal(t, 3, tr.Rows)
	assert.Equal(t, 2, tr.Cols)
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, tr.Data)
	assert.Equal(t, 6, tr.At(2, 1))
	assert.True(t, tr.Transpose().Equal(a))
}

func TestMatrix_AtSet(t *testing.T) {
	mt := NewMatrix[float64](2, 2)
	mt.Set(0, 1, 7)
	assert.Equal(t, 7.0, mt.At(0, 1))
	assert.Equal(t, []float64{0, 7, 0, 0}, mt.Data)
}

func TestMatrix_TransformPoint(t *testing.T) {
	tr := NewMatrixTranslation(Vector3f{1, 2, 3})
	p, err := tr.TransformPoint(Vector3f{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, Vector3f{2, 3, 4}, p)

	s := NewMatrixScale(Vector3f{2, 3, 4})
	p, err = s.TransformPoint(Vector3f{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, Vector3f{2, 3, 4}, p)

	_, err = NewMatrixIdentity[float64](3).TransformPoint(Vector3f{})
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestMatrix_Compare(t *testing.T) {
	a := NewMatrixIdentity[float64](2)
	b := NewMatrixIdentity[float64](2)
	b.Set(1, 0, 1e-7)

	assert.False(t, a.Equal(b))
	assert.True(t, a.Compare(b, 1e-6))
	assert.False(t, a.Compare(NewMatrixIdentity[float64](3), 1))
}
