package math

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods below to ensure
 * proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vector3f
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vector3f
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Matrix[float64]
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}

func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(Vector3f{}, QuaternionIdentity(), NewVector3One[float64]())
}

func NewTransformFromPosition(position Vector3f) *Transform {
	return NewTransformFromPositionRotationScale(position, QuaternionIdentity(), NewVector3One[float64]())
}

func NewTransformFromRotation(rotation Quaternion) *Transform {
	return NewTransformFromPositionRotationScale(Vector3f{}, rotation, NewVector3One[float64]())
}

func NewTransformFromPositionRotationScale(position Vector3f, rotation Quaternion, scale Vector3f) *Transform {
	t := &Transform{Local: NewMatrixIdentity[float64](4)}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) SetPosition(position Vector3f) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vector3f) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate composes rotation in local space: it is applied to points before
// the current rotation.
func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vector3f) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) ScaleBy(scale Vector3f) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vector3f, rotation Quaternion, scale Vector3f) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

/**
 * @brief Returns the local matrix, translation * rotation * scale, acting
 * on column vectors. It is recomputed only when the transform is dirty.
 */
func (t *Transform) GetLocal() Matrix[float64] {
	if t == nil {
		return NewMatrixIdentity[float64](4)
	}
	if t.IsDirty {
		// all operands are 4x4, Mul cannot fail
		rs, _ := t.Rotation.ToMatrix().Mul(NewMatrixScale(t.Scale))
		trs, _ := NewMatrixTranslation(t.Position).Mul(rs)
		t.Local = trs
		t.IsDirty = false
	}
	return t.Local
}

// GetWorld returns the local matrix combined with every parent's.
func (t *Transform) GetWorld() Matrix[float64] {
	if t == nil {
		return NewMatrixIdentity[float64](4)
	}
	l := t.GetLocal()
	if t.Parent != nil {
		w, _ := t.Parent.GetWorld().Mul(l)
		return w
	}
	return l
}

/**
 * @brief Applies the transform and its parents to point: scale, then
 * rotation, then translation.
 */
func (t *Transform) Apply(point Vector3f) Vector3f {
	if t == nil {
		return point
	}
	rotation := t.Rotation.Normalized()
	p := rotation.Rotate(point.Mul(t.Scale)).Add(t.Position)
	if t.Parent != nil {
		return t.Parent.Apply(p)
	}
	return p
}
