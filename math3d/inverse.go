package math3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// SingularEpsilon is the determinant magnitude at or below which
// InverseAffineChecked reports ErrSingularMatrix.
const SingularEpsilon = 1e-12

// InverseAffine returns the inverse of m assuming it is affine: an invertible
// upper-left 3x3, translation in row 3 and a fourth column of (0,0,0,1). The
// fourth column of the result is always (0,0,0,1).
//
// A singular 3x3 yields Inf/NaN elements rather than an error; use
// InverseAffineChecked to detect that case.
func InverseAffine(m Matrix4x4) Matrix4x4 {
	out, _ := inverseAffine(m)
	return out
}

// InverseAffineChecked is InverseAffine but fails with ErrSingularMatrix when
// the determinant of the upper-left 3x3 is zero, near zero or not finite.
func InverseAffineChecked(m Matrix4x4) (Matrix4x4, error) {
	out, det := inverseAffine(m)
	if math32.Abs(det) <= SingularEpsilon || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return Matrix4x4{}, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}
	return out, nil
}

func inverseAffine(m Matrix4x4) (Matrix4x4, float32) {
	var out Matrix4x4

	// cofactors of the first row
	det0 := m[5]*m[10] - m[6]*m[9]
	det1 := m[6]*m[8] - m[4]*m[10]
	det2 := m[4]*m[9] - m[5]*m[8]
	det := m[0]*det0 + m[1]*det1 + m[2]*det2

	// adjugate / determinant
	invDet := 1 / det
	out[0] = invDet * det0
	out[4] = invDet * det1
	out[8] = invDet * det2

	out[1] = invDet * (m[9]*m[2] - m[10]*m[1])
	out[5] = invDet * (m[10]*m[0] - m[8]*m[2])
	out[9] = invDet * (m[8]*m[1] - m[9]*m[0])

	out[2] = invDet * (m[1]*m[6] - m[2]*m[5])
	out[6] = invDet * (m[2]*m[4] - m[0]*m[6])
	out[10] = invDet * (m[0]*m[5] - m[1]*m[4])

	// negated translation through the inverted 3x3
	out[12] = -m[12]*out[0] - m[13]*out[4] - m[14]*out[8]
	out[13] = -m[12]*out[1] - m[13]*out[5] - m[14]*out[9]
	out[14] = -m[12]*out[2] - m[13]*out[6] - m[14]*out[10]

	out[3], out[7], out[11], out[15] = 0, 0, 0, 1

	return out, det
}
