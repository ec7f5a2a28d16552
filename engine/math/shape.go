package math

// Rect is an axis aligned rectangle with its origin at (X, Y).
type Rect[T Number] struct {
	X, Y, W, H T
}

// Contains reports whether p lies inside r, edges included.
func (r Rect[T]) Contains(p Vector2[T]) bool {
	return p.X >= r.X && p.X <= r.X+r.W &&
		p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Line is an undirected segment between P1 and P2.
type Line[T Number] struct {
	P1, P2 Vector2[T]
}

// Equal treats (P1, P2) and (P2, P1) as the same edge.
func (l Line[T]) Equal(other Line[T]) bool {
	return (l.P1.Equal(other.P1) && l.P2.Equal(other.P2)) ||
		(l.P1.Equal(other.P2) && l.P2.Equal(other.P1))
}

/**
 * @brief A triangle given by three vertices. The 2D predicates only look
 * at the x and y components.
 */
type Triangle[T Number] struct {
	P1, P2, P3 Vector3[T]
}

func NewTriangle[T Number](p1, p2, p3 Vector3[T]) Triangle[T] {
	return Triangle[T]{P1: p1, P2: p2, P3: p3}
}

// twiceArea is the shoelace sum for a, b, c. Its sign follows the winding.
func twiceArea(ax, ay, bx, by, cx, cy float64) float64 {
	return ax*(by-cy) + bx*(cy-ay) + cx*(ay-by)
}

/**
 * @brief Returns the signed area of the triangle projected on the xy plane.
 * Positive for counter-clockwise vertices, negative for clockwise ones and
 * zero for collinear ones.
 */
func (t Triangle[T]) SignedArea() float64 {
	return 0.5 * twiceArea(
		float64(t.P1.X), float64(t.P1.Y),
		float64(t.P2.X), float64(t.P2.Y),
		float64(t.P3.X), float64(t.P3.Y))
}

// Area returns the surface area of the triangle in 3D.
func (t Triangle[T]) Area() float64 {
	return t.P2.Sub(t.P1).Cross(t.P3.Sub(t.P1)).Length() / 2.0
}

// Normal returns the unit face normal, following the right hand rule.
func (t Triangle[T]) Normal() Vector3[T] {
	edge1 := t.P2.Sub(t.P1)
	edge2 := t.P3.Sub(t.P1)
	return edge1.Cross(edge2).Normalized()
}

/**
 * @brief Reports whether p lies inside the triangle, edges included.
 *
 * The three sub-triangles formed by p and each edge must add up to the
 * area of the triangle. Areas are absolute so the winding does not matter.
 */
func (t Triangle[T]) IsInside(p Vector2[T]) bool {
	x1, y1 := float64(t.P1.X), float64(t.P1.Y)
	x2, y2 := float64(t.P2.X), float64(t.P2.Y)
	x3, y3 := float64(t.P3.X), float64(t.P3.Y)
	px, py := float64(p.X), float64(p.Y)

	abc := 0.5 * kabs(twiceArea(x1, y1, x2, y2, x3, y3))

	abp := 0.5 * kabs(twiceArea(x1, y1, x2, y2, px, py))
	bcp := 0.5 * kabs(twiceArea(x2, y2, x3, y3, px, py))
	cpa := 0.5 * kabs(twiceArea(x3, y3, x1, y1, px, py))

	return kabs(abc-(abp+bcp+cpa)) < Epsilon[float64]()
}

/**
 * @brief Reports whether p lies inside the circle through the three
 * vertices, the predicate used by Delaunay triangulation.
 *
 * The vertices are translated so that p is the origin and the incircle
 * determinant is evaluated. The test is det < T(Epsilon[T]()), which is only
 * meaningful when the vertices are given in clockwise order. For
 * counter-clockwise triangles the result is inverted; check SignedArea
 * and reorder the vertices beforehand when the winding is not known.
 *
 * The tolerance is converted to T, so integer triangles compare strictly
 * against zero and points exactly on the circle are reported outside.
 */
func (t Triangle[T]) IsInsideCircumcircle(p Vector2[T]) bool {
	a := Vector2[T]{t.P1.X - p.X, t.P1.Y - p.Y}
	b := Vector2[T]{t.P2.X - p.X, t.P2.Y - p.Y}
	c := Vector2[T]{t.P3.X - p.X, t.P3.Y - p.Y}

	a2 := a.LengthSquared()
	b2 := b.LengthSquared()
	c2 := c.LengthSquared()

	det := a.X*(b.Y*c2-c.Y*b2) - a.Y*(b.X*c2-c.X*b2) + a2*b.Cross(c)

	return det < T(Epsilon[T]())
}
