package math3d

import "errors"

var (
	// ErrIndexOutOfRange is returned by the row accessors for a row outside 0..3.
	ErrIndexOutOfRange = errors.New("math3d: row index out of range")

	// ErrSingularMatrix is returned by InverseAffineChecked when the linear
	// part of the matrix has a (near) zero determinant.
	ErrSingularMatrix = errors.New("math3d: singular matrix")
)
