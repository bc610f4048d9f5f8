package subdivide

import "github.com/Faultbox/globemesh/pkg/math"

// triangle is an ordered index triple. Index order is winding-significant:
// the refinement loop rotates it to keep children wound like their parent.
type triangle struct {
	i0, i1, i2 uint32
}

// line is an ordered index pair.
type line struct {
	i0, i1 uint32
}

// edge is an undirected edge key, smaller index first.
type edge struct {
	lo, hi uint32
}

func edgeBetween(a, b uint32) edge {
	if a < b {
		return edge{a, b}
	}
	return edge{b, a}
}

// triangleSink collects the triangles enumerated by a mesh traversal into a
// worklist of index triples over a deduplicated vertex array. Vertices are
// welded by exact position equality, so topology that relies on duplicated
// positions is preserved bit-for-bit.
type triangleSink struct {
	verts  []math.Vec3
	lookup map[math.Vec3]uint32
	queue  []triangle
}

func newTriangleSink() *triangleSink {
	return &triangleSink{lookup: make(map[math.Vec3]uint32)}
}

func (s *triangleSink) record(v math.Vec3) uint32 {
	if i, ok := s.lookup[v]; ok {
		return i
	}
	i := uint32(len(s.verts))
	s.verts = append(s.verts, v)
	s.lookup[v] = i
	return i
}

func (s *triangleSink) visit(v0, v1, v2 math.Vec3, _ bool) {
	s.queue = append(s.queue, triangle{s.record(v0), s.record(v1), s.record(v2)})
}

// lineSink is the line-segment counterpart of triangleSink.
type lineSink struct {
	verts  []math.Vec3
	lookup map[math.Vec3]uint32
	queue  []line
}

func newLineSink() *lineSink {
	return &lineSink{lookup: make(map[math.Vec3]uint32)}
}

func (s *lineSink) record(v math.Vec3) uint32 {
	if i, ok := s.lookup[v]; ok {
		return i
	}
	i := uint32(len(s.verts))
	s.verts = append(s.verts, v)
	s.lookup[v] = i
	return i
}

func (s *lineSink) visit(v0, v1 math.Vec3, _ bool) {
	s.queue = append(s.queue, line{s.record(v0), s.record(v1)})
}
