package scene

import "indexbuffer/math3d"

// Colour is an RGBA colour with float channels in [0,1].
type Colour struct {
	R, G, B, A float32
}

// Vertex is a single vertex of the cube mesh as laid out in GPU memory.
type Vertex struct {
	Position math3d.Vector3
	Colour   Colour
}

// Vertex layout in bytes.
const (
	PositionOffset = 0
	ColourOffset   = 12
	VertexStride   = 28
)

// CubeVertices lists each corner of the cube once; CubeIndices joins them.
var CubeVertices = []Vertex{
	{math3d.V3(-1, 1, -1), Colour{1, 0.3, 0.3, 0}},  // 0
	{math3d.V3(1, 1, -1), Colour{1, 0.5, 0.5, 0}},   // 1
	{math3d.V3(-1, -1, -1), Colour{1, 0.6, 0.6, 0}}, // 2
	{math3d.V3(1, -1, -1), Colour{1, 0.8, 0.8, 0}},  // 3
	{math3d.V3(1, -1, 1), Colour{1, 0.8, 0.8, 0}},   // 4
	{math3d.V3(1, 1, 1), Colour{1, 0.8, 0.8, 0}},    // 5
	{math3d.V3(-1, 1, 1), Colour{1, 0.8, 0.8, 0}},   // 6
	{math3d.V3(-1, -1, 1), Colour{1, 0.8, 0.8, 0}},  // 7
}

// CubeIndices is a triangle strip covering all six faces.
var CubeIndices = []uint32{0, 1, 2, 3, 4, 1, 5, 0, 6, 2, 7, 4, 6, 5}

// VertexData flattens vertices into interleaved floats matching VertexStride.
func VertexData(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*VertexStride/4)
	for _, v := range vertices {
		data = append(data,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Colour.R, v.Colour.G, v.Colour.B, v.Colour.A)
	}
	return data
}

// StripTriangles expands triangle-strip indices into one index triple per
// triangle, skipping degenerate triangles.
func StripTriangles(indices []uint32) [][3]uint32 {
	var tris [][3]uint32
	for i := 2; i < len(indices); i++ {
		a, b, c := indices[i-2], indices[i-1], indices[i]
		if a == b || b == c || a == c {
			continue
		}
		if i%2 == 1 {
			// odd triangles swap winding
			a, b = b, a
		}
		tris = append(tris, [3]uint32{a, b, c})
	}
	return tris
}
