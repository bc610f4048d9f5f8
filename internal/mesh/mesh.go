// Package mesh holds indexed vertex geometry in the form the renderer
// consumes: one vertex array plus an ordered list of primitive sets, each
// with a GL draw mode and an index buffer of the narrowest width that can
// address the vertex array.
package mesh

import (
	"encoding/binary"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/globemesh/pkg/math"
)

// Draw modes, aliased from the GL binding so primitive sets can be handed
// to glDrawElements without remapping.
const (
	Points        = uint32(gl.POINTS)
	Lines         = uint32(gl.LINES)
	LineStrip     = uint32(gl.LINE_STRIP)
	LineLoop      = uint32(gl.LINE_LOOP)
	Triangles     = uint32(gl.TRIANGLES)
	TriangleStrip = uint32(gl.TRIANGLE_STRIP)
	TriangleFan   = uint32(gl.TRIANGLE_FAN)
)

// IndexWidth is the byte width of one index element.
type IndexWidth uint8

const (
	Index8  IndexWidth = 1
	Index16 IndexWidth = 2
	Index32 IndexWidth = 4
)

// WidthFor returns the narrowest index width that can address vertexCount
// vertices.
func WidthFor(vertexCount int) IndexWidth {
	switch {
	case vertexCount < 256:
		return Index8
	case vertexCount < 65536:
		return Index16
	default:
		return Index32
	}
}

// PrimitiveSet is one index buffer plus its draw mode. Indices are kept as
// uint32 for manipulation; Bytes packs them to Width for upload.
type PrimitiveSet struct {
	Mode    uint32
	Width   IndexWidth
	Indices []uint32
}

// NewPrimitiveSet returns an empty primitive set with capacity reserved for
// the given number of index elements.
func NewPrimitiveSet(mode uint32, width IndexWidth, capacity int) *PrimitiveSet {
	return &PrimitiveSet{Mode: mode, Width: width, Indices: make([]uint32, 0, capacity)}
}

// Append adds one index element.
func (p *PrimitiveSet) Append(i uint32) {
	p.Indices = append(p.Indices, i)
}

// Len returns the number of index elements.
func (p *PrimitiveSet) Len() int {
	return len(p.Indices)
}

// ElementType returns the GL element type matching the index width.
func (p *PrimitiveSet) ElementType() uint32 {
	switch p.Width {
	case Index8:
		return gl.UNSIGNED_BYTE
	case Index16:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

// Bytes packs the indices to the set's width, little-endian, ready for an
// element buffer upload.
func (p *PrimitiveSet) Bytes() []byte {
	out := make([]byte, 0, len(p.Indices)*int(p.Width))
	for _, i := range p.Indices {
		switch p.Width {
		case Index8:
			out = append(out, byte(i))
		case Index16:
			out = binary.LittleEndian.AppendUint16(out, uint16(i))
		default:
			out = binary.LittleEndian.AppendUint32(out, i)
		}
	}
	return out
}

// Mesh is a vertex array with its primitive sets. Vertices are in the
// mesh's local coordinate frame.
type Mesh struct {
	vertices []math.Vec3
	sets     []*PrimitiveSet
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// VertexArray returns the mesh's vertex array.
func (m *Mesh) VertexArray() []math.Vec3 {
	return m.vertices
}

// SetVertexArray replaces the mesh's vertex array. The mesh takes ownership
// of the slice.
func (m *Mesh) SetVertexArray(verts []math.Vec3) {
	m.vertices = verts
}

// NumPrimitiveSets returns the number of primitive sets.
func (m *Mesh) NumPrimitiveSets() int {
	return len(m.sets)
}

// PrimitiveSet returns the i-th primitive set.
func (m *Mesh) PrimitiveSet(i int) *PrimitiveSet {
	return m.sets[i]
}

// AddPrimitiveSet appends a primitive set.
func (m *Mesh) AddPrimitiveSet(p *PrimitiveSet) {
	m.sets = append(m.sets, p)
}

// RemovePrimitiveSet removes the i-th primitive set.
func (m *Mesh) RemovePrimitiveSet(i int) {
	m.sets = append(m.sets[:i], m.sets[i+1:]...)
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{vertices: append([]math.Vec3(nil), m.vertices...)}
	for _, s := range m.sets {
		c.sets = append(c.sets, &PrimitiveSet{
			Mode:    s.Mode,
			Width:   s.Width,
			Indices: append([]uint32(nil), s.Indices...),
		})
	}
	return c
}
