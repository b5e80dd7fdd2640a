package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix4x4 is a 4x4 float32 matrix stored row-major, element (row, col) at
// index row*4+col.
//
// Points are row vectors transformed as v' = v * M, so a product A.Mul(B)
// applies A first and then B. The layout of a transform matrix is:
//
//	| Xx Xy Xz 0 |   X,Y,Z = axes (rotation/scale)
//	| Yx Yy Yz 0 |   T = translation
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
//
// Any 16 floats are a legal value; the constructors guarantee their own shape.
type Matrix4x4 [16]float32

// At returns the element at (row, col). It panics on bad indices like any
// array access.
func (m Matrix4x4) At(row, col int) float32 {
	return m[row*4+col]
}

// Set sets the element at (row, col).
func (m *Matrix4x4) Set(row, col int, v float32) {
	m[row*4+col] = v
}

// MakeIdentity makes m the identity matrix.
func (m *Matrix4x4) MakeIdentity() {
	*m = MatrixIdentity()
}

// SetRow sets the first three elements of a row (0-3) from v. The fourth
// element of the row is left unchanged. Row 3 is the position, rows 0-2 the
// x, y and z axes.
func (m *Matrix4x4) SetRow(row int, v Vector3) error {
	if row < 0 || row > 3 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, row)
	}
	r := m[row*4 : row*4+3]
	r[0], r[1], r[2] = v.X, v.Y, v.Z
	return nil
}

// GetRow returns the first three elements of a row (0-3). The fourth element
// is ignored.
func (m Matrix4x4) GetRow(row int) (Vector3, error) {
	if row < 0 || row > 3 {
		return Vector3{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, row)
	}
	r := m[row*4 : row*4+3]
	return Vector3{X: r[0], Y: r[1], Z: r[2]}, nil
}

// Position returns the translation row.
func (m Matrix4x4) Position() Vector3 {
	return Vector3{X: m[12], Y: m[13], Z: m[14]}
}

// Mul returns m * n.
func (m Matrix4x4) Mul(n Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		r := i * 4
		for j := 0; j < 4; j++ {
			out[r+j] = m[r]*n[j] + m[r+1]*n[4+j] + m[r+2]*n[8+j] + m[r+3]*n[12+j]
		}
	}
	return out
}

// MulAssign post-multiplies m by n in place (m = m * n). n may be m itself.
func (m *Matrix4x4) MulAssign(n *Matrix4x4) {
	if m == n {
		// rows of n would be overwritten while still being read
		*m = m.Mul(*n)
		return
	}
	for i := 0; i < 4; i++ {
		r := i * 4
		e0, e1, e2, e3 := m[r], m[r+1], m[r+2], m[r+3]
		for j := 0; j < 4; j++ {
			m[r+j] = e0*n[j] + e1*n[4+j] + e2*n[8+j] + e3*n[12+j]
		}
	}
}

// TransformPoint returns v * m treating v as a point (w = 1). The resulting w
// is discarded, which is exact for affine matrices.
func (m Matrix4x4) TransformPoint(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14],
	}
}

// TransformVector returns v * m treating v as a direction (w = 0).
func (m Matrix4x4) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10],
	}
}

// TransformCoord returns the homogeneous result of the point v * m: the
// undivided xyz and the w component. Used with projection matrices.
func (m Matrix4x4) TransformCoord(v Vector3) (Vector3, float32) {
	p := m.TransformPoint(v)
	w := v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	return p, w
}

// Mat4 returns m as a mathgl matrix. A row-major, row-vector matrix has the
// same memory layout as the column-major, column-vector mathgl matrix of the
// same transform, so the elements are copied unchanged and the result can be
// uploaded to GL with transpose=false.
func (m Matrix4x4) Mat4() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// FromMat4 is the inverse of Matrix4x4.Mat4.
func FromMat4(m mgl32.Mat4) Matrix4x4 {
	return Matrix4x4(m)
}
