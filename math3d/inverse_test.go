package math3d_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indexbuffer/math3d"
)

func TestInverseAffineRoundTrip(t *testing.T) {
	m := math3d.MatrixRotationX(0.3).
		Mul(math3d.MatrixRotationY(-0.7)).
		Mul(math3d.MatrixRotationZ(1.1)).
		Mul(math3d.MatrixTranslation(math3d.V3(3, -2, 5)))
	inv := math3d.InverseAffine(m)

	requireMatrixInDelta(t, math3d.MatrixIdentity(), m.Mul(inv), 1e-4)
	requireMatrixInDelta(t, math3d.MatrixIdentity(), inv.Mul(m), 1e-4)
}

func TestInverseAffineRandom(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		m := randomAffine(r)
		inv, err := math3d.InverseAffineChecked(m)
		require.NoError(t, err)
		requireMatrixInDelta(t, math3d.InverseAffine(m), inv, 0)
		requireMatrixInDelta(t, math3d.MatrixIdentity(), m.Mul(inv), 1e-4)
	}
}

func TestInverseAffineCamera(t *testing.T) {
	view := math3d.InverseAffine(math3d.MatrixTranslation(math3d.V3(0, 0, -5)))
	requireMatrixInDelta(t, math3d.MatrixTranslation(math3d.V3(0, 0, 5)), view, eps)
}

func TestInverseAffineForcesFourthColumn(t *testing.T) {
	m := math3d.MatrixScalingUniform(2)
	m.Set(0, 3, 7)
	m.Set(1, 3, 8)
	m.Set(2, 3, 9)
	m.Set(3, 3, 4)

	inv := math3d.InverseAffine(m)
	assert.Equal(t, float32(0), inv.At(0, 3))
	assert.Equal(t, float32(0), inv.At(1, 3))
	assert.Equal(t, float32(0), inv.At(2, 3))
	assert.Equal(t, float32(1), inv.At(3, 3))
	assert.InDelta(t, 0.5, inv.At(0, 0), eps)
}

func TestInverseAffineSingular(t *testing.T) {
	m := math3d.MatrixScaling(math3d.V3(1, 0, 1))

	inv := math3d.InverseAffine(m)
	finite := true
	for _, e := range inv[:12] {
		if math.IsInf(float64(e), 0) || math.IsNaN(float64(e)) {
			finite = false
		}
	}
	assert.False(t, finite, "singular inverse should not be finite: %v", inv)

	_, err := math3d.InverseAffineChecked(m)
	require.ErrorIs(t, err, math3d.ErrSingularMatrix)
}
