package math3d

import "github.com/chewxy/math32"

// The following functions create a new matrix holding a particular
// transformation. They compose left to right, e.g.
//
//	m := MatrixScalingUniform(3).Mul(MatrixTranslation(V3(10, -10, 20)))

// MatrixIdentity returns the identity matrix.
func MatrixIdentity() Matrix4x4 {
	return Matrix4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixTranslation returns a translation by t.
func MatrixTranslation(t Vector3) Matrix4x4 {
	return Matrix4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// MatrixRotationX returns a rotation of angle radians around the X axis.
func MatrixRotationX(angle float32) Matrix4x4 {
	s, c := math32.Sincos(angle)
	return Matrix4x4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationY returns a rotation of angle radians around the Y axis.
func MatrixRotationY(angle float32) Matrix4x4 {
	s, c := math32.Sincos(angle)
	return Matrix4x4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// MatrixRotationZ returns a rotation of angle radians around the Z axis.
func MatrixRotationZ(angle float32) Matrix4x4 {
	s, c := math32.Sincos(angle)
	return Matrix4x4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// MatrixScaling returns a scaling in X, Y and Z by the components of s.
func MatrixScaling(s Vector3) Matrix4x4 {
	return Matrix4x4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// MatrixScalingUniform returns a uniform scaling by s.
func MatrixScalingUniform(s float32) Matrix4x4 {
	return MatrixScaling(Vector3{s, s, s})
}

// MatrixPerspectiveFovLH returns a left-handed perspective projection with a
// vertical field of view of fovY radians. View space looks down +Z and depth
// maps to [0,1] between near and far.
func MatrixPerspectiveFovLH(fovY, aspect, near, far float32) Matrix4x4 {
	yScale := 1 / math32.Tan(fovY/2)
	xScale := yScale / aspect
	q := far / (far - near)
	return Matrix4x4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, q, 1,
		0, 0, -near * q, 0,
	}
}
