// Package feature builds geocentric meshes from GeoJSON vector geometry,
// the input side of the subdivision pipeline.
package feature

import (
	"fmt"
	"io"
	gomath "math"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/Faultbox/globemesh/internal/mesh"
	"github.com/Faultbox/globemesh/pkg/math"
)

// Geocentric converts a (longitude, latitude) position in degrees to a
// geocentric point on a sphere of the given radius.
func Geocentric(lonDeg, latDeg, radius float64) math.Vec3 {
	lon := lonDeg * gomath.Pi / 180
	lat := latDeg * gomath.Pi / 180
	return math.Vec3{
		X: gomath.Cos(lat) * gomath.Cos(lon),
		Y: gomath.Cos(lat) * gomath.Sin(lon),
		Z: gomath.Sin(lat),
	}.Scale(radius)
}

// builder accumulates welded vertices and line-pair indices.
type builder struct {
	verts  []math.Vec3
	lookup map[math.Vec3]uint32
	idx    []uint32
	radius float64
}

func (b *builder) record(coord []float64) uint32 {
	v := Geocentric(coord[0], coord[1], b.radius)
	if i, ok := b.lookup[v]; ok {
		return i
	}
	i := uint32(len(b.verts))
	b.verts = append(b.verts, v)
	b.lookup[v] = i
	return i
}

func (b *builder) addPath(coords [][]float64) {
	for i := 0; i+1 < len(coords); i++ {
		b.idx = append(b.idx, b.record(coords[i]), b.record(coords[i+1]))
	}
}

func (b *builder) addGeometry(g *geojson.Geometry) error {
	switch g.Type {
	case geojson.GeometryLineString:
		b.addPath(g.LineString)
	case geojson.GeometryMultiLineString:
		for _, path := range g.MultiLineString {
			b.addPath(path)
		}
	case geojson.GeometryPolygon:
		for _, ring := range g.Polygon {
			b.addPath(ring)
		}
	case geojson.GeometryMultiPolygon:
		for _, poly := range g.MultiPolygon {
			for _, ring := range poly {
				b.addPath(ring)
			}
		}
	case geojson.GeometryCollection:
		for _, sub := range g.Geometries {
			if err := b.addGeometry(sub); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported geometry type %q", g.Type)
	}
	return nil
}

// Load reads GeoJSON (a FeatureCollection, Feature, or bare Geometry) and
// returns a LINES-mode geocentric mesh of all its line-like geometry.
// Polygon rings contribute their outlines.
func Load(r io.Reader, radius float64) (*mesh.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading geojson: %w", err)
	}

	geoms, err := collectGeometries(data)
	if err != nil {
		return nil, err
	}

	b := &builder{lookup: make(map[math.Vec3]uint32), radius: radius}
	for _, g := range geoms {
		if err := b.addGeometry(g); err != nil {
			return nil, err
		}
	}

	m := mesh.New()
	m.SetVertexArray(b.verts)
	if len(b.idx) > 0 {
		p := mesh.NewPrimitiveSet(mesh.Lines, mesh.WidthFor(len(b.verts)), len(b.idx))
		p.Indices = append(p.Indices, b.idx...)
		m.AddPrimitiveSet(p)
	}
	return m, nil
}

// LoadFile is Load on a file path.
func LoadFile(path string, radius float64) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m, err := Load(f, radius)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

func collectGeometries(data []byte) ([]*geojson.Geometry, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		geoms := make([]*geojson.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			if f.Geometry != nil {
				geoms = append(geoms, f.Geometry)
			}
		}
		return geoms, nil
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		return []*geojson.Geometry{f.Geometry}, nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("decoding geojson: %w", err)
	}
	return []*geojson.Geometry{g}, nil
}

// FanFromRing builds a TRIANGLE_FAN mesh from a polygon ring given as
// (longitude, latitude) degree pairs. A closing coordinate equal to the
// first is dropped. Only sensible for convex rings; concave outlines should
// go through Load instead.
func FanFromRing(ring [][]float64, radius float64) *mesh.Mesh {
	if len(ring) > 1 {
		first, last := ring[0], ring[len(ring)-1]
		if first[0] == last[0] && first[1] == last[1] {
			ring = ring[:len(ring)-1]
		}
	}

	verts := make([]math.Vec3, len(ring))
	for i, coord := range ring {
		verts[i] = Geocentric(coord[0], coord[1], radius)
	}

	m := mesh.New()
	m.SetVertexArray(verts)
	if len(verts) >= 3 {
		p := mesh.NewPrimitiveSet(mesh.TriangleFan, mesh.WidthFor(len(verts)), len(verts))
		for i := range verts {
			p.Append(uint32(i))
		}
		m.AddPrimitiveSet(p)
	}
	return m
}
