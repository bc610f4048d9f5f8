package geo

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globemesh/pkg/math"
)

func TestToGeodetic(t *testing.T) {
	// +X axis: longitude 0, on the equator (colatitude π/2).
	g := ToGeodetic(math.Vec3{X: 1})
	require.InDelta(t, 0, g.X, 1e-12)
	require.InDelta(t, gomath.Pi/2, g.Y, 1e-12)

	// North pole: colatitude 0.
	g = ToGeodetic(math.Vec3{Z: 2})
	require.InDelta(t, 0, g.Y, 1e-12)

	// -X axis: longitude π.
	g = ToGeodetic(math.Vec3{X: -3})
	require.InDelta(t, gomath.Pi, gomath.Abs(g.X), 1e-12)
}

func TestGeodeticMidpointSimple(t *testing.T) {
	g0 := math.Vec2{X: 0.2, Y: 1.0}
	g1 := math.Vec2{X: 0.4, Y: 1.2}
	mid := GeodeticMidpoint(g0, g1)
	require.InDelta(t, 0.3, mid.X, 1e-12)
	require.InDelta(t, 1.1, mid.Y, 1e-12)
}

func TestGeodeticMidpointAntimeridian(t *testing.T) {
	// Longitudes 179° and -179° should meet at ±180°, not 0°.
	g0 := math.Vec2{X: 179 * gomath.Pi / 180, Y: gomath.Pi / 2}
	g1 := math.Vec2{X: -179 * gomath.Pi / 180, Y: gomath.Pi / 2}

	mid := GeodeticMidpoint(g0, g1)
	lon := gomath.Mod(mid.X+2*gomath.Pi, 2*gomath.Pi)
	require.InDelta(t, gomath.Pi, lon, 1e-9)

	// Order must not matter.
	mid = GeodeticMidpoint(g1, g0)
	lon = gomath.Mod(mid.X+2*gomath.Pi, 2*gomath.Pi)
	require.InDelta(t, gomath.Pi, lon, 1e-9)
}

func TestSphericalMidpointEquator(t *testing.T) {
	// Midpoint of +X and +Y on the unit sphere sits at longitude 45° on
	// the equator, still at radius 1.
	mid := SphericalMidpoint(math.Vec3{X: 1}, math.Vec3{Y: 1})
	require.InDelta(t, 1.0, mid.Length(), 1e-12)
	require.InDelta(t, gomath.Sqrt2/2, mid.X, 1e-12)
	require.InDelta(t, gomath.Sqrt2/2, mid.Y, 1e-12)
	require.InDelta(t, 0, mid.Z, 1e-12)
}

func TestSphericalMidpointRadiusMean(t *testing.T) {
	mid := SphericalMidpoint(math.Vec3{X: 2}, math.Vec3{Y: 4})
	require.InDelta(t, 3.0, mid.Length(), 1e-12)
}

func TestSphericalMidpointStaysOnShortArc(t *testing.T) {
	// Across the antimeridian the midpoint must land near (-r, 0, 0),
	// not near (r, 0, 0).
	v0 := math.Vec3{X: gomath.Cos(179 * gomath.Pi / 180), Y: gomath.Sin(179 * gomath.Pi / 180)}
	v1 := math.Vec3{X: gomath.Cos(-179 * gomath.Pi / 180), Y: gomath.Sin(-179 * gomath.Pi / 180)}
	mid := SphericalMidpoint(v0, v1)
	require.Less(t, mid.X, -0.99)
}

func TestAngularSeparation(t *testing.T) {
	require.InDelta(t, gomath.Pi/2,
		AngularSeparation(math.Vec3{X: 1}, math.Vec3{Y: 5}), 1e-12)
	require.InDelta(t, 0,
		AngularSeparation(math.Vec3{X: 1, Y: 1}, math.Vec3{X: 3, Y: 3}), 1e-7)
	require.InDelta(t, gomath.Pi,
		AngularSeparation(math.Vec3{Z: 1}, math.Vec3{Z: -2}), 1e-12)
}

func TestAngularSeparationNoNaN(t *testing.T) {
	// Identical vectors whose normalized dot rounds above 1 must not
	// produce NaN.
	v := math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	require.False(t, gomath.IsNaN(AngularSeparation(v, v)))
}

func TestSurfaceDistanceQuarterCircle(t *testing.T) {
	// Pole to equator is a quarter of the great circle.
	d := SurfaceDistance(math.Vec3{Z: 1}, math.Vec3{X: 1})
	require.InDelta(t, gomath.Pi/2*EquatorialRadius, d, 1)
}
