// Package math3d is a small float32 matrix and vector library for building
// world and view transforms once per frame.
//
// Matrices are row-major and act on row vectors (v' = v * M), so a.Mul(b)
// applies a then b. Only affine inversion is provided.
package math3d
