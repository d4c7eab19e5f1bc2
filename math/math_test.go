package math

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	cross := NewVec3(1, 0, 0).Cross(Vec3Up)
	if cross != (Vec3{0, 0, 1}) {
		t.Errorf("Cross: expected (0,0,1), got %v", cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := NewVec3(2, -5, 11).Normalize().Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}

	// Zero vector stays zero instead of producing NaNs
	if Vec3Zero.Normalize() != Vec3Zero {
		t.Errorf("Normalize: expected zero vector to stay zero")
	}
}

func TestVec3Clamp(t *testing.T) {
	min := NewVec3(-10, -10, 2)
	max := NewVec3(10, 10, 20)

	cases := []struct {
		in, want Vec3
	}{
		{NewVec3(0, 0, 8), NewVec3(0, 0, 8)},
		{NewVec3(-200, 200, 0), NewVec3(-10, 10, 2)},
		{NewVec3(10.5, -10.5, 100), NewVec3(10, -10, 20)},
	}
	for _, c := range cases {
		if got := c.in.Clamp(min, max); got != c.want {
			t.Errorf("Clamp(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if m[i][j] != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", i, j, expected, m[i][j])
			}
		}
	}
}

// mulReference is an independently written flat-array 4x4 product used to
// cross-check Mat4.Mul. out = B∘A in column-major layout, the same order
// A.Mul(B) promises.
func mulReference(a, b Mat4) Mat4 {
	var af, bf, of [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			af[c*4+r] = a[c][r]
			bf[c*4+r] = b[c][r]
		}
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += bf[k*4+r] * af[c*4+k]
			}
			of[c*4+r] = sum
		}
	}
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = of[c*4+r]
		}
	}
	return out
}

func randomMat4(rng *rand.Rand) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = rng.Float32()*20 - 10
		}
	}
	return m
}

func matNearlyEqual(a, b Mat4, tol float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if float32(math.Abs(float64(a[i][j]-b[i][j]))) > tol {
				return false
			}
		}
	}
	return true
}

func TestMat4MulAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		a := randomMat4(rng)
		b := randomMat4(rng)
		got := a.Mul(b)
		want := mulReference(a, b)
		if !matNearlyEqual(got, want, 1e-3) {
			t.Errorf("Mul pair %d: mismatch with reference\n got %v\nwant %v", i, got, want)
		}
	}
}

func TestMat4MulAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5; i++ {
		a := randomMat4(rng)
		b := randomMat4(rng)
		c := randomMat4(rng)
		left := a.Mul(b).Mul(c)
		right := a.Mul(b.Mul(c))
		// Random entries reach ±10, so triple products reach ~1e4; scale the
		// tolerance accordingly.
		if !matNearlyEqual(left, right, 0.5) {
			t.Errorf("associativity violated for triple %d", i)
		}
	}
}

func randomRigid(rng *rand.Rand) Mat4 {
	rx := Mat4RotationX(rng.Float32() * 2 * float32(math.Pi))
	ry := Mat4RotationY(rng.Float32() * 2 * float32(math.Pi))
	rz := Mat4RotationZ(rng.Float32() * 2 * float32(math.Pi))
	tr := Mat4Translation(NewVec3(
		rng.Float32()*100-50,
		rng.Float32()*100-50,
		rng.Float32()*100-50,
	))
	return rx.Mul(ry).Mul(rz).Mul(tr)
}

func TestInvertRigidRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ident := Mat4Identity()
	for i := 0; i < 20; i++ {
		m := randomRigid(rng)
		inv := m.InvertRigid()
		if !matNearlyEqual(m.Mul(inv), ident, 1e-4) {
			t.Errorf("rigid %d: M * M⁻¹ != I", i)
		}
		if !matNearlyEqual(inv.Mul(m), ident, 1e-4) {
			t.Errorf("rigid %d: M⁻¹ * M != I", i)
		}
	}
}

func TestInvertRigidLookAt(t *testing.T) {
	view := Mat4LookAt(NewVec3(0, 0, 35), Vec3Zero, Vec3Up)
	inv := view.InvertRigid()

	// The inverse view must map the origin of eye space back to the eye.
	eye := inv.MulPoint(Vec3Zero)
	if math.Abs(float64(eye.X)) > 1e-4 ||
		math.Abs(float64(eye.Y)) > 1e-4 ||
		math.Abs(float64(eye.Z-35)) > 1e-4 {
		t.Errorf("InvertRigid(LookAt): expected eye (0,0,35), got %v", eye)
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(1, 2, 3)
	m := Mat4Translation(translation)

	if m[3][0] != 1 || m[3][1] != 2 || m[3][2] != 3 {
		t.Errorf("Translation: expected (1,2,3), got (%v,%v,%v)", m[3][0], m[3][1], m[3][2])
	}

	point := NewVec4(0, 0, 0, 1)
	result := point.MulMat(m)
	if result.ToVec3() != translation {
		t.Errorf("Translation: expected %v, got %v", translation, result.ToVec3())
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 0, 5)
	target := NewVec3(0, 0, 0)

	m := Mat4LookAt(eye, target, Vec3Up)

	// The view matrix should transform the eye position to origin
	result := m.MulVec(eye.ToVec4(1))

	tolerance := float32(0.001)
	if math.Abs(float64(result.X)) > float64(tolerance) ||
		math.Abs(float64(result.Y)) > float64(tolerance) ||
		math.Abs(float64(result.Z)) > float64(tolerance) {
		t.Errorf("LookAt: expected eye to transform to origin, got (%v,%v,%v)", result.X, result.Y, result.Z)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(DegToRad(25), 2.0, 0.1, 1000.0)

	if m[0][0] == 0 {
		t.Error("Perspective: expected non-zero X scale")
	}
	if m[1][1] == 0 {
		t.Error("Perspective: expected non-zero Y scale")
	}
	if m[2][3] != -1 {
		t.Errorf("Perspective: expected w' = -z, got %v", m[2][3])
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4RotationY(0.4)
	m2 := Mat4Translation(NewVec3(1, 2, 3))

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkInvertRigid(b *testing.B) {
	m := Mat4LookAt(NewVec3(0, 0, 35), Vec3Zero, Vec3Up)

	for i := 0; i < b.N; i++ {
		_ = m.InvertRigid()
	}
}
