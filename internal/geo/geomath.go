// Package geo implements the spherical-geodetic math the subdivision engine
// measures and interpolates with. All angles are in radians; geocentric
// vectors originate at the globe center.
package geo

import (
	gomath "math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/Faultbox/globemesh/pkg/math"
)

// EquatorialRadius is the WGS84 equatorial radius in meters, used to scale
// unit-sphere arc lengths to surface distances.
const EquatorialRadius = 6378137.0

// ToGeodetic converts a geocentric point to spherical geodetic coordinates:
// X is the longitude atan2(y,x), Y is the colatitude acos(z/r).
// Undefined for the zero vector; callers only pass real mesh vertices.
func ToGeodetic(v math.Vec3) math.Vec2 {
	r := v.Length()
	return math.Vec2{X: gomath.Atan2(v.Y, v.X), Y: gomath.Acos(v.Z / r)}
}

// GeodeticMidpoint averages two geodetic coordinates, shifting one longitude
// by 2π when the pair straddles the antimeridian so the midpoint follows the
// shorter arc.
func GeodeticMidpoint(g0, g1 math.Vec2) math.Vec2 {
	switch {
	case gomath.Abs(g0.X-g1.X) < gomath.Pi:
		return math.Vec2{X: 0.5 * (g0.X + g1.X), Y: 0.5 * (g0.Y + g1.Y)}
	case g1.X > g0.X:
		return math.Vec2{X: 0.5 * ((g0.X + 2*gomath.Pi) + g1.X), Y: 0.5 * (g0.Y + g1.Y)}
	default:
		return math.Vec2{X: 0.5 * (g0.X + (g1.X + 2*gomath.Pi)), Y: 0.5 * (g0.Y + g1.Y)}
	}
}

// SphericalMidpoint finds the midpoint between two geocentric points along
// the great circle through them. The interpolation runs in geodetic space;
// the result is scaled by the mean of the two input radii, which is close
// enough once granularity keeps the arc short.
func SphericalMidpoint(v0, v1 math.Vec3) math.Vec3 {
	g0 := ToGeodetic(v0)
	g1 := ToGeodetic(v1)
	mid := GeodeticMidpoint(g0, g1)

	size := 0.5 * (v0.Length() + v1.Length())

	sinColat := gomath.Sin(mid.Y)
	return math.Vec3{
		X: gomath.Cos(mid.X) * sinColat,
		Y: gomath.Sin(mid.X) * sinColat,
		Z: gomath.Cos(mid.Y),
	}.Scale(size)
}

// AngularSeparation returns the angle in radians between two geocentric
// vectors. Undefined for zero-length inputs.
func AngularSeparation(v0, v1 math.Vec3) float64 {
	d := v0.Normalize().Dot(v1.Normalize())
	// rounding can push the dot product a hair outside [-1,1]
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return gomath.Abs(gomath.Acos(d))
}

// SurfaceDistance returns the great-circle distance in meters between two
// geocentric points, measured on the equatorial-radius sphere.
func SurfaceDistance(v0, v1 math.Vec3) float64 {
	g0 := ToGeodetic(v0)
	g1 := ToGeodetic(v1)
	ll0 := s2.LatLng{Lat: s1.Angle(gomath.Pi/2 - g0.Y), Lng: s1.Angle(g0.X)}
	ll1 := s2.LatLng{Lat: s1.Angle(gomath.Pi/2 - g1.Y), Lng: s1.Angle(g1.X)}
	return ll0.Distance(ll1).Radians() * EquatorialRadius
}
