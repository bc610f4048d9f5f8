// Package subdivide refines triangle and line meshes on a geocentric world
// model: any edge whose great-circle angular span exceeds a granularity
// threshold is split at its spherical midpoint, recursively, so chord
// geometry bends to follow the globe.
package subdivide

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/globemesh/internal/geo"
	"github.com/Faultbox/globemesh/internal/logger"
	"github.com/Faultbox/globemesh/internal/mesh"
	"github.com/Faultbox/globemesh/pkg/math"
)

// Subdivider refines meshes in place. The transform pair moves vertices
// between the mesh's local frame and the world (geocentric) frame where
// angular measurement is meaningful. A Subdivider may be reused across
// meshes; it is safe for concurrent use as long as each mesh is touched by
// one goroutine at a time.
type Subdivider struct {
	world2local math.Mat4
	local2world math.Mat4
	maxElements int
}

// New returns a Subdivider for the given transform pair. If exactly one of
// the two matrices is the identity, it is replaced by the inverse of the
// other so the pair is always consistent. If both are set (or both are
// identity) they are taken as given.
func New(world2local, local2world math.Mat4) *Subdivider {
	if !world2local.IsIdentity() && local2world.IsIdentity() {
		local2world = world2local.Inverse()
	} else if world2local.IsIdentity() && !local2world.IsIdentity() {
		world2local = local2world.Inverse()
	}
	return &Subdivider{
		world2local: world2local,
		local2world: local2world,
		maxElements: gomath.MaxInt32,
	}
}

// WorldToLocal returns the world-to-local transform.
func (s *Subdivider) WorldToLocal() math.Mat4 { return s.world2local }

// LocalToWorld returns the local-to-world transform.
func (s *Subdivider) LocalToWorld() math.Mat4 { return s.local2world }

// SetMaxElementsPerBuffer caps the number of index elements written to a
// single primitive set; output is chunked into as many sets as needed.
func (s *Subdivider) SetMaxElementsPerBuffer(n int) {
	s.maxElements = n
}

// Run subdivides the mesh in place until every primitive edge spans at most
// granularity radians. A mesh with no primitive sets, or with POINTS mode,
// is left untouched.
func (s *Subdivider) Run(granularity float64, m *mesh.Mesh) {
	if m.NumPrimitiveSets() < 1 {
		return
	}

	switch m.PrimitiveSet(0).Mode {
	case mesh.Points:
		return
	case mesh.Lines, mesh.LineStrip, mesh.LineLoop:
		s.subdivideLines(granularity, m)
	default:
		s.subdivideTriangles(granularity, m)
	}
}

// subdivideTriangles collects all triangles in the mesh into a single
// worklist, drains it splitting the widest edge of any triangle over the
// threshold, and replaces the mesh's vertex array and primitive sets with
// the refined result. An edge-split cache guarantees an edge shared by two
// triangles is split exactly once, keeping the mesh watertight.
func (s *Subdivider) subdivideTriangles(granularity float64, m *mesh.Mesh) {
	sink := newTriangleSink()
	m.EachTriangle(sink.visit)

	numIn := len(sink.queue)

	done := make([]triangle, 0, 2*numIn)
	edges := make(map[edge]uint32)

	queue := sink.queue
	for len(queue) > 0 {
		tri := queue[0]
		queue = queue[1:]

		v0w := s.local2world.TransformVec3(sink.verts[tri.i0])
		v1w := s.local2world.TransformVec3(sink.verts[tri.i1])
		v2w := s.local2world.TransformVec3(sink.verts[tri.i2])

		g0 := geo.AngularSeparation(v0w, v1w)
		g1 := geo.AngularSeparation(v1w, v2w)
		g2 := geo.AngularSeparation(v2w, v0w)
		max := gomath.Max(g0, gomath.Max(g1, g2))

		if max <= granularity {
			done = append(done, tri)
			continue
		}

		// Rotate the triple so the split edge is (a,b) with c opposite;
		// ties resolve to the first edge reaching the max.
		var a, b, c uint32
		var aw, bw math.Vec3
		switch {
		case g0 == max:
			a, b, c = tri.i0, tri.i1, tri.i2
			aw, bw = v0w, v1w
		case g1 == max:
			a, b, c = tri.i1, tri.i2, tri.i0
			aw, bw = v1w, v2w
		default:
			a, b, c = tri.i2, tri.i0, tri.i1
			aw, bw = v2w, v0w
		}

		e := edgeBetween(a, b)
		midIdx, ok := edges[e]
		if !ok {
			midLocal := s.world2local.TransformVec3(geo.SphericalMidpoint(aw, bw))
			sink.verts = append(sink.verts, midLocal)
			midIdx = uint32(len(sink.verts) - 1)
			edges[e] = midIdx
		}

		queue = append(queue, triangle{a, midIdx, c}, triangle{midIdx, b, c})
	}

	if len(done) == 0 {
		return
	}

	indices := make([]uint32, 0, 3*len(done))
	for _, tri := range done {
		indices = append(indices, tri.i0, tri.i1, tri.i2)
	}
	sets := packIndexSets(mesh.Triangles, indices, 3, len(sink.verts), s.maxElements)

	commit(m, sink.verts, sets)

	logger.Debug("subdivided triangles",
		zap.Int("in", numIn),
		zap.Int("out", len(done)),
		zap.Int("vertices", len(sink.verts)),
		zap.Int("buffers", len(sets)))
}

// subdivideLines is the line-segment refinement loop. Segments own their
// single edge outright, so there is no split cache: two split segments that
// meet at a point each append their own midpoint vertex.
func (s *Subdivider) subdivideLines(granularity float64, m *mesh.Mesh) {
	sink := newLineSink()
	m.EachLine(sink.visit)

	numIn := len(sink.queue)

	done := make([]line, 0, 2*numIn)

	queue := sink.queue
	for len(queue) > 0 {
		ln := queue[0]
		queue = queue[1:]

		v0w := s.local2world.TransformVec3(sink.verts[ln.i0])
		v1w := s.local2world.TransformVec3(sink.verts[ln.i1])

		if geo.AngularSeparation(v0w, v1w) <= granularity {
			done = append(done, ln)
			continue
		}

		midLocal := s.world2local.TransformVec3(geo.SphericalMidpoint(v0w, v1w))
		sink.verts = append(sink.verts, midLocal)
		mid := uint32(len(sink.verts) - 1)

		queue = append(queue, line{ln.i0, mid}, line{mid, ln.i1})
	}

	if len(done) == 0 {
		return
	}

	indices := make([]uint32, 0, 2*len(done))
	for _, ln := range done {
		indices = append(indices, ln.i0, ln.i1)
	}
	sets := packIndexSets(mesh.Lines, indices, 2, len(sink.verts), s.maxElements)

	commit(m, sink.verts, sets)

	logger.Debug("subdivided lines",
		zap.Int("in", numIn),
		zap.Int("out", len(done)),
		zap.Int("vertices", len(sink.verts)),
		zap.Int("buffers", len(sets)))
}

// commit swaps the fully built vertex array and primitive sets into the
// mesh. Nothing is removed until the replacement data exists, so no partial
// state is ever visible.
func commit(m *mesh.Mesh, verts []math.Vec3, sets []*mesh.PrimitiveSet) {
	for m.NumPrimitiveSets() > 0 {
		m.RemovePrimitiveSet(0)
	}
	m.SetVertexArray(verts)
	for _, set := range sets {
		m.AddPrimitiveSet(set)
	}
}
