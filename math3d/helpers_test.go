package math3d_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"indexbuffer/math3d"
)

const eps = 1e-6

func requireMatrixInDelta(t *testing.T, want, got math3d.Matrix4x4, delta float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "element (%d,%d)\nwant %v\n got %v", i/4, i%4, want, got)
	}
}

func requireVectorInDelta(t *testing.T, want, got math3d.Vector3, delta float64) {
	t.Helper()
	require.InDelta(t, want.X, got.X, delta, "x")
	require.InDelta(t, want.Y, got.Y, delta, "y")
	require.InDelta(t, want.Z, got.Z, delta, "z")
}

// randomAffine builds scale * rotations * translation from r.
func randomAffine(r *rand.Rand) math3d.Matrix4x4 {
	f := func(lo, hi float32) float32 { return lo + r.Float32()*(hi-lo) }
	m := math3d.MatrixScaling(math3d.V3(f(0.5, 2), f(0.5, 2), f(0.5, 2)))
	m = m.Mul(math3d.MatrixRotationX(f(-3, 3)))
	m = m.Mul(math3d.MatrixRotationY(f(-3, 3)))
	m = m.Mul(math3d.MatrixRotationZ(f(-3, 3)))
	return m.Mul(math3d.MatrixTranslation(math3d.V3(f(-10, 10), f(-10, 10), f(-10, 10))))
}
