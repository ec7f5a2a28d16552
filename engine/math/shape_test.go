package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangle_IsInside(t *testing.T) {
	ccw := NewTriangle(Vector3f{0, 0, 0}, Vector3f{4, 0, 0}, Vector3f{0, 4, 0})
	cw := NewTriangle(Vector3f{0, 0, 0}, Vector3f{0, 4, 0}, Vector3f{4, 0, 0})

	tests := []struct {
		name  string
		point Vector2f
		want  bool
	}{
		{"interior", Vector2f{1, 1}, true},
		{"far outside", Vector2f{10, 10}, false},
		{"on edge", Vector2f{2, 0}, true},
		{"on hypotenuse", Vector2f{2, 2}, true},
		{"vertex", Vector2f{4, 0}, true},
		{"just outside", Vector2f{2.01, 2}, false},
		{"negative side", Vector2f{-1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ccw.IsInside(tt.point))
			assert.Equal(t, tt.want, cw.IsInside(tt.point))
		})
	}

	t.Run("ignores z", func(t *testing.T) {
		tilted := NewTriangle(Vector3f{0, 0, 5}, Vector3f{4, 0, -3}, Vector3f{0, 4, 1})
		assert.True(t, tilted.IsInside(Vector2f{1, 1}))
	})

	t.Run("integer coordinates", func(t *testing.T) {
		tri := NewTriangle(Vector3i{0, 0, 0}, Vector3i{4, 0, 0}, Vector3i{0, 4, 0})
		assert.True(t, tri.IsInside(Vector2i{1, 1}))
		assert.False(t, tri.IsInside(Vector2i{10, 10}))
	})
}

func TestTriangle_IsInsideCircumcircle(t *testing.T) {
	// clockwise; the circumcircle is centered at (0.5, 0.5) with radius ~0.707
	cw := NewTriangle(Vector3f{0, 0, 0}, Vector3f{0, 1, 0}, Vector3f{1, 0, 0})

	tests := []struct {
		name  string
		point Vector2f
		want  bool
	}{
		{"inside triangle", Vector2f{0.25, 0.25}, true},
		{"center", Vector2f{0.5, 0.5}, true},
		{"inside circle outside triangle", Vector2f{0.9, 0.9}, true},
		{"outside", Vector2f{2, 2}, false},
		{"outside below", Vector2f{0.5, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cw.IsInsideCircumcircle(tt.point))
		})
	}

	t.Run("counter-clockwise inverts the result", func(t *testing.T) {
		ccw := NewTriangle(Vector3f{0, 0, 0}, Vector3f{1, 0, 0}, Vector3f{0, 1, 0})
		assert.False(t, ccw.IsInsideCircumcircle(Vector2f{0.25, 0.25}))
		assert.True(t, ccw.IsInsideCircumcircle(Vector2f{2, 2}))
	})

	t.Run("float32", func(t *testing.T) {
		tri := NewTriangle(Vector3[float32]{0, 0, 0}, Vector3[float32]{0, 1, 0}, Vector3[float32]{1, 0, 0})
		assert.True(t, tri.IsInsideCircumcircle(Vector2[float32]{0.25, 0.25}))
		assert.False(t, tri.IsInsideCircumcircle(Vector2[float32]{2, 2}))
	})

	t.Run("integer coordinates", func(t *testing.T) {
		tri := NewTriangle(Vector3i{0, 0, 0}, Vector3i{0, 2, 0}, Vector3i{2, 0, 0})
		assert.True(t, tri.IsInsideCircumcircle(Vector2i{1, 1}))
		assert.False(t, tri.IsInsideCircumcircle(Vector2i{4, 4}))
	})

	t.Run("on the circle", func(t *testing.T) {
		// (2, 2) lies on the circle through (0,0), (0,2), (2,0), so det == 0
		ints := NewTriangle(Vector3i{0, 0, 0}, Vector3i{0, 2, 0}, Vector3i{2, 0, 0})
		assert.False(t, ints.IsInsideCircumcircle(Vector2i{2, 2}))
		assert.False(t, ints.IsInsideCircumcircle(Vector2i{0, 0}))

		floats := NewTriangle(Vector3f{0, 0, 0}, Vector3f{0, 2, 0}, Vector3f{2, 0, 0})
		assert.True(t, floats.IsInsideCircumcircle(Vector2f{2, 2}))
		assert.True(t, floats.IsInsideCircumcircle(Vector2f{0, 0}))
	})
}

func TestTriangle_Measures(t *testing.T) {
	ccw := NewTriangle(Vector3f{0, 0, 0}, Vector3f{1, 0, 0}, Vector3f{0, 1, 0})
	cw := NewTriangle(Vector3f{0, 0, 0}, Vector3f{0, 1, 0}, Vector3f{1, 0, 0})

	assert.InDelta(t, 0.5, ccw.SignedArea(), 1e-12)
	assert.InDelta(t, -0.5, cw.SignedArea(), 1e-12)
	assert.InDelta(t, 0.5, ccw.Area(), 1e-12)
	assert.InDelta(t, 0.5, cw.Area(), 1e-12)

	assert.Equal(t, Vector3f{0, 0, 1}, ccw.Normal())
	assert.Equal(t, Vector3f{0, 0, -1}, cw.Normal())

	collinear := NewTriangle(Vector3f{0, 0, 0}, Vector3f{1, 1, 0}, Vector3f{2, 2, 0})
	assert.Equal(t, 0.0, collinear.SignedArea())
	assert.Equal(t, Vector3f{}, collinear.Normal())
}

func TestLine_Equal(t *testing.T) {
	a := Line[int32]{Vector2i{0, 0}, Vector2i{1, 2}}

	assert.True(t, a.Equal(Line[int32]{Vector2i{0, 0}, Vector2i{1, 2}}))
	assert.True(t, a.Equal(Line[int32]{Vector2i{1, 2}, Vector2i{0, 0}}))
	assert.False(t, a.Equal(Line[int32]{Vector2i{0, 0}, Vector2i{2, 1}}))
}

func TestRect_Contains(t *testing.T) {
	r := Rect[float64]{X: 1, Y: 1, W: 2, H: 3}

	assert.True(t, r.Contains(Vector2f{2, 2}))
	assert.True(t, r.Contains(Vector2f{1, 4}))
	assert.False(t, r.Contains(Vector2f{0.5, 2}))
	assert.False(t, r.Contains(Vector2f{2, 4.5}))
}
