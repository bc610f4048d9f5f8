// Package locator places local coordinate frames on the geocentric globe.
// A locator owns the mutually inverse local↔world matrix pair that the
// subdivision engine measures through.
package locator

import (
	gomath "math"

	"github.com/Faultbox/globemesh/pkg/math"
)

// Locator is a local tangent frame at a point on the globe surface:
// local X points east, Y north, Z up, with the origin on the sphere.
type Locator struct {
	local2world math.Mat4
	world2local math.Mat4
}

// NewGeocentric builds a locator at the given longitude/latitude (degrees)
// on a sphere of the given radius.
func NewGeocentric(lonDeg, latDeg, radius float64) *Locator {
	lon := lonDeg * gomath.Pi / 180
	lat := latDeg * gomath.Pi / 180

	up := math.Vec3{
		X: gomath.Cos(lat) * gomath.Cos(lon),
		Y: gomath.Cos(lat) * gomath.Sin(lon),
		Z: gomath.Sin(lat),
	}
	east := math.Vec3{X: -gomath.Sin(lon), Y: gomath.Cos(lon)}
	north := up.Cross(east)

	l2w := math.Basis(east, north, up, up.Scale(radius))
	return &Locator{
		local2world: l2w,
		world2local: l2w.Inverse(),
	}
}

// LocalToWorld returns the local-to-world transform.
func (l *Locator) LocalToWorld() math.Mat4 {
	return l.local2world
}

// WorldToLocal returns the world-to-local transform.
func (l *Locator) WorldToLocal() math.Mat4 {
	return l.world2local
}
