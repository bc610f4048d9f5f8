package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() should be true")
	}
}

func TestIsIdentityFalse(t *testing.T) {
	if Translate(1, 0, 0).IsIdentity() {
		t.Error("translation matrix reported as identity")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformVec3Translate(t *testing.T) {
	m := Translate(10, 20, 30)
	result := m.TransformVec3(Vec3{1, 2, 3})

	expected := Vec3{11, 22, 33}
	if result != expected {
		t.Errorf("TransformVec3: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(math.Pi / 2)
	result := m.TransformVec3(Vec3{1, 0, 0})

	// After a 90 degree Y rotation, (1,0,0) should land at (0,0,-1).
	if math.Abs(result.X) > 1e-12 || math.Abs(result.Y) > 1e-12 || math.Abs(result.Z+1) > 1e-12 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(5, -3, 2).Mul(RotateZ(0.7)).Mul(Scale(2, 2, 2))
	inv := m.Inverse()
	p := Vec3{1.5, -2.25, 4}

	back := inv.TransformVec3(m.TransformVec3(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 || math.Abs(back.Z-p.Z) > 1e-9 {
		t.Errorf("Inverse round trip: got %v, want %v", back, p)
	}
}

func TestInverseSingular(t *testing.T) {
	m := Scale(0, 0, 0)
	if !m.Inverse().IsIdentity() {
		t.Error("singular matrix inverse should be identity")
	}
}

func TestBasis(t *testing.T) {
	m := Basis(Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{4, 5, 6})
	got := m.TransformVec3(Vec3{1, 1, 1})
	want := Vec3{5, 6, 7}
	if got != want {
		t.Errorf("Basis transform: got %v, want %v", got, want)
	}
}
