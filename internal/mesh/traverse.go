package mesh

import "github.com/Faultbox/globemesh/pkg/math"

// TriangleFunc receives one triangle's corner positions. temp reports
// whether the positions are synthesized by strip/fan decomposition rather
// than stored verbatim in the vertex array.
type TriangleFunc func(v0, v1, v2 math.Vec3, temp bool)

// LineFunc receives one line segment's endpoint positions.
type LineFunc func(v0, v1 math.Vec3, temp bool)

// EachTriangle invokes fn for every triangle described by the mesh's
// primitive sets, decomposing strips and fans into individual triangles.
// Strip decomposition flips every odd triangle so winding is preserved.
func (m *Mesh) EachTriangle(fn TriangleFunc) {
	for _, set := range m.sets {
		idx := set.Indices
		switch set.Mode {
		case Triangles:
			for i := 0; i+2 < len(idx); i += 3 {
				fn(m.vertices[idx[i]], m.vertices[idx[i+1]], m.vertices[idx[i+2]], false)
			}
		case TriangleStrip:
			for i := 0; i+2 < len(idx); i++ {
				if i%2 == 0 {
					fn(m.vertices[idx[i]], m.vertices[idx[i+1]], m.vertices[idx[i+2]], true)
				} else {
					fn(m.vertices[idx[i+1]], m.vertices[idx[i]], m.vertices[idx[i+2]], true)
				}
			}
		case TriangleFan:
			for i := 1; i+1 < len(idx); i++ {
				fn(m.vertices[idx[0]], m.vertices[idx[i]], m.vertices[idx[i+1]], true)
			}
		}
	}
}

// EachLine invokes fn for every line segment described by the mesh's
// primitive sets, decomposing strips and loops into individual segments.
// A loop contributes the closing segment from its last index back to its
// first.
func (m *Mesh) EachLine(fn LineFunc) {
	for _, set := range m.sets {
		idx := set.Indices
		switch set.Mode {
		case Lines:
			for i := 0; i+1 < len(idx); i += 2 {
				fn(m.vertices[idx[i]], m.vertices[idx[i+1]], false)
			}
		case LineStrip:
			for i := 0; i+1 < len(idx); i++ {
				fn(m.vertices[idx[i]], m.vertices[idx[i+1]], true)
			}
		case LineLoop:
			for i := 0; i+1 < len(idx); i++ {
				fn(m.vertices[idx[i]], m.vertices[idx[i+1]], true)
			}
			if len(idx) > 2 {
				fn(m.vertices[idx[len(idx)-1]], m.vertices[idx[0]], true)
			}
		}
	}
}
