package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globemesh/pkg/math"
)

func TestWidthFor(t *testing.T) {
	require.Equal(t, Index8, WidthFor(1))
	require.Equal(t, Index8, WidthFor(255))
	require.Equal(t, Index16, WidthFor(256))
	require.Equal(t, Index16, WidthFor(65535))
	require.Equal(t, Index32, WidthFor(65536))
}

func TestPrimitiveSetBytes(t *testing.T) {
	p := NewPrimitiveSet(Triangles, Index16, 3)
	p.Append(0x0102)
	p.Append(7)
	p.Append(0xFFFF)

	b := p.Bytes()
	require.Len(t, b, 6)
	// little-endian packing
	require.Equal(t, []byte{0x02, 0x01, 0x07, 0x00, 0xFF, 0xFF}, b)

	p.Width = Index8
	require.Equal(t, []byte{0x02, 0x07, 0xFF}, p.Bytes())

	p.Width = Index32
	require.Len(t, p.Bytes(), 12)
}

func TestAddRemovePrimitiveSet(t *testing.T) {
	m := New()
	a := NewPrimitiveSet(Lines, Index8, 0)
	b := NewPrimitiveSet(Triangles, Index8, 0)
	m.AddPrimitiveSet(a)
	m.AddPrimitiveSet(b)
	require.Equal(t, 2, m.NumPrimitiveSets())

	m.RemovePrimitiveSet(0)
	require.Equal(t, 1, m.NumPrimitiveSets())
	require.Same(t, b, m.PrimitiveSet(0))
}

func TestCloneIsDeep(t *testing.T) {
	m := New()
	m.SetVertexArray([]math.Vec3{{X: 1}, {Y: 2}})
	p := NewPrimitiveSet(Lines, Index8, 2)
	p.Append(0)
	p.Append(1)
	m.AddPrimitiveSet(p)

	c := m.Clone()
	c.VertexArray()[0] = math.Vec3{X: 9}
	c.PrimitiveSet(0).Indices[0] = 9

	require.Equal(t, math.Vec3{X: 1}, m.VertexArray()[0])
	require.Equal(t, uint32(0), m.PrimitiveSet(0).Indices[0])
}

func triMesh(mode uint32, verts []math.Vec3, idx []uint32) *Mesh {
	m := New()
	m.SetVertexArray(verts)
	p := NewPrimitiveSet(mode, WidthFor(len(verts)), len(idx))
	p.Indices = append(p.Indices, idx...)
	m.AddPrimitiveSet(p)
	return m
}

func TestEachTriangleModes(t *testing.T) {
	verts := []math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}

	count := func(m *Mesh) int {
		n := 0
		m.EachTriangle(func(_, _, _ math.Vec3, _ bool) { n++ })
		return n
	}

	require.Equal(t, 1, count(triMesh(Triangles, verts, []uint32{0, 1, 2})))
	require.Equal(t, 3, count(triMesh(TriangleStrip, verts, []uint32{0, 1, 2, 3, 4})))
	require.Equal(t, 3, count(triMesh(TriangleFan, verts, []uint32{0, 1, 2, 3, 4})))
}

func TestEachTriangleStripWinding(t *testing.T) {
	verts := []math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	m := triMesh(TriangleStrip, verts, []uint32{0, 1, 2, 3})

	var got [][3]float64
	m.EachTriangle(func(a, b, c math.Vec3, temp bool) {
		require.True(t, temp)
		got = append(got, [3]float64{a.X, b.X, c.X})
	})

	// Second (odd) triangle swaps its first two vertices.
	require.Equal(t, [][3]float64{{0, 1, 2}, {2, 1, 3}}, got)
}

func TestEachLineModes(t *testing.T) {
	verts := []math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}}

	count := func(m *Mesh) int {
		n := 0
		m.EachLine(func(_, _ math.Vec3, _ bool) { n++ })
		return n
	}

	require.Equal(t, 2, count(triMesh(Lines, verts, []uint32{0, 1, 2, 3})))
	require.Equal(t, 3, count(triMesh(LineStrip, verts, []uint32{0, 1, 2, 3})))
	// loop adds the closing segment
	require.Equal(t, 4, count(triMesh(LineLoop, verts, []uint32{0, 1, 2, 3})))
}
