package scene_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"indexbuffer/scene"
)

func TestVertexData(t *testing.T) {
	data := scene.VertexData(scene.CubeVertices)
	require.Len(t, data, len(scene.CubeVertices)*scene.VertexStride/4)
	require.Equal(t, []float32{-1, 1, -1, 1, 0.3, 0.3, 0}, data[:7])
	require.Equal(t, []float32{-1, -1, 1, 1, 0.8, 0.8, 0}, data[len(data)-7:])
}

func TestCubeIndicesInRange(t *testing.T) {
	for _, i := range scene.CubeIndices {
		require.Less(t, int(i), len(scene.CubeVertices))
	}
}

func TestStripTriangles(t *testing.T) {
	tris := scene.StripTriangles(scene.CubeIndices)
	require.Len(t, tris, 12)
	require.Equal(t, [3]uint32{0, 1, 2}, tris[0])
	require.Equal(t, [3]uint32{2, 1, 3}, tris[1])

	// every face of the cube is covered by two triangles
	faces := map[[2]int]int{}
	for _, tri := range tris {
		for axis := 0; axis < 3; axis++ {
			sign := 0
			same := true
			for _, idx := range tri {
				p := scene.CubeVertices[idx].Position
				c := []float32{p.X, p.Y, p.Z}[axis]
				s := 1
				if c < 0 {
					s = -1
				}
				if sign == 0 {
					sign = s
				} else if sign != s {
					same = false
				}
			}
			if same {
				faces[[2]int{axis, sign}]++
			}
		}
	}
	require.Len(t, faces, 6)
	for face, n := range faces {
		require.Equal(t, 2, n, "face %v", face)
	}

	require.Empty(t, scene.StripTriangles([]uint32{0, 0, 1}))
}

func TestFrameTimer(t *testing.T) {
	timer := scene.FrameTimer{Interval: 0.5}
	for i := 0; i < 4; i++ {
		_, ok := timer.Tick(0.125)
		require.False(t, ok)
	}
	avg, ok := timer.Tick(0.125)
	require.True(t, ok)
	require.InDelta(t, 0.125, avg, 1e-6)

	_, ok = timer.Tick(0.125)
	require.False(t, ok, "timer resets after reporting")
}
