package types

import (
	"math"
	"testing"
)

// TestVec3_LerpEndpointsExact 测试插值端点按位精确
func TestVec3_LerpEndpointsExact(t *testing.T) {
	a := Vec3{X: 0.1, Y: -0.7, Z: 2.3}
	b := Vec3{X: -1.9, Y: 0.33, Z: 0.0001}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want exactly %+v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v, want exactly %+v", got, b)
	}

	// 越界参数也钳制到端点
	if got := a.Lerp(b, -0.5); got != a {
		t.Errorf("Lerp(-0.5) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1.5); got != b {
		t.Errorf("Lerp(1.5) = %+v, want %+v", got, b)
	}
}

// TestVec3_LerpMidpoint 测试中点插值
func TestVec3_LerpMidpoint(t *testing.T) {
	a := Vec3{X: 0, Y: 0, Z: 0}
	b := Vec3{X: 2, Y: -4, Z: 6}

	got := a.Lerp(b, 0.5)
	want := Vec3{X: 1, Y: -2, Z: 3}
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
		t.Errorf("Lerp(0.5) = %+v, want %+v", got, want)
	}
}

// TestVec3_NormalizedZeroVector 测试零向量归一化返回零向量
func TestVec3_NormalizedZeroVector(t *testing.T) {
	zero := Vec3{}
	if got := zero.Normalized(); got != zero {
		t.Errorf("Normalized() of zero vector = %+v, want zero", got)
	}

	n := Vec3{X: 3, Y: 4, Z: 0}.Normalized()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
}

// TestVec3_IsFinite 测试有限性检查
func TestVec3_IsFinite(t *testing.T) {
	if !(Vec3{X: 1, Y: 2, Z: 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec3{X: math.NaN()}).IsFinite() {
		t.Error("NaN component not detected")
	}
	if (Vec3{Z: math.Inf(1)}).IsFinite() {
		t.Error("Inf component not detected")
	}
}
