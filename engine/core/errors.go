package core

import (
	"errors"
)

var (
	ErrDegenerateInput   = errors.New("degenerate geometric input")
	ErrDimensionMismatch = errors.New("matrix dimensions do not match")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
