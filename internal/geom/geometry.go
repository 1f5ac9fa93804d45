// Package geom holds the static vertex data and camera math of the demos.
package geom

// TrianglePositions holds the triangle corners (xyz), one row per vertex.
var TrianglePositions = []float32{
	0.0, 0.5, 0.0,
	0.5, -0.5, 0.0,
	-0.5, -0.5, 0.0,
}

// TriangleColors holds the corner colors (rgb): red, green, blue.
var TriangleColors = []float32{
	1.0, 0.0, 0.0,
	0.0, 1.0, 0.0,
	0.0, 0.0, 1.0,
}

// CubeFaces is the number of quads in the cube.
const CubeFaces = 6

// CubePositions lists four corners (xyz) for each face of a cube spanning
// [-1, 1] on every axis. Faces are not shared so each can carry its own UVs.
var CubePositions = []float32{
	// x = -1
	-1, -1, -1,
	-1, +1, -1,
	-1, +1, +1,
	-1, -1, +1,
	// x = +1
	+1, -1, -1,
	+1, +1, -1,
	+1, +1, +1,
	+1, -1, +1,
	// y = -1
	-1, -1, -1,
	+1, -1, -1,
	+1, -1, +1,
	-1, -1, +1,
	// y = +1
	-1, +1, -1,
	+1, +1, -1,
	+1, +1, +1,
	-1, +1, +1,
	// z = -1
	-1, -1, -1,
	+1, -1, -1,
	+1, +1, -1,
	-1, +1, -1,
	// z = +1
	-1, -1, +1,
	+1, -1, +1,
	+1, +1, +1,
	-1, +1, +1,
}

// CubeUVs maps each face's corners onto the full texture.
var CubeUVs = repeatFace([]float32{
	0, 0,
	1, 0,
	1, 1,
	0, 1,
}, CubeFaces)

// CubeIndices splits every face into the triangles (0,1,2) and (0,2,3).
var CubeIndices = quadIndices(CubeFaces)

func repeatFace(face []float32, n int) []float32 {
	out := make([]float32, 0, len(face)*n)
	for i := 0; i < n; i++ {
		out = append(out, face...)
	}
	return out
}

func quadIndices(quads int) []uint32 {
	out := make([]uint32, 0, quads*6)
	for q := 0; q < quads; q++ {
		base := uint32(4 * q)
		out = append(out,
			base+0, base+1, base+2,
			base+0, base+2, base+3,
		)
	}
	return out
}
