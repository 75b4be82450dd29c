package utils

import (
	"math"
	"math/rand"
	"testing"
)

func TestWrapOffset(t *testing.T) {
	tests := []struct {
		name     string
		x, m     float64
		expected float64
	}{
		{"范围内", 3, 10, 3},
		{"零", 0, 10, 0},
		{"等于模", 10, 10, 0},
		{"超出一倍", 12.5, 10, 2.5},
		{"超出多倍", 47, 10, 7},
		{"负数", -5, 10, 5},
		{"负数多倍", -25, 10, 5},
		{"负的模倍数", -20, 10, 0},
		{"模为零", 5, 0, 0},
		{"模为负", 5, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapOffset(tt.x, tt.m); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("WrapOffset(%v, %v) = %v, want %v", tt.x, tt.m, got, tt.expected)
			}
		})
	}
}

// TestWrapOffsetProperty 随机输入下结果始终落在 [0, m)
func TestWrapOffsetProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		m := rng.Float64()*5000 + 0.001
		x := (rng.Float64() - 0.5) * 1e6
		got := WrapOffset(x, m)
		if got < 0 || got >= m {
			t.Fatalf("WrapOffset(%v, %v) = %v, outside [0, m)", x, m, got)
		}
	}

	// 舍入边界：极小负数
	if got := WrapOffset(-1e-20, 10); got < 0 || got >= 10 {
		t.Errorf("WrapOffset(-1e-20, 10) = %v, outside [0, 10)", got)
	}

	if got := WrapOffset(math.NaN(), 10); got != 0 {
		t.Errorf("WrapOffset(NaN) = %v, want 0", got)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, n, expected int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{-1, 4, 3},
		{-5, 4, 3},
		{9, 4, 1},
		{7, 0, 0},
	}

	for _, tt := range tests {
		if got := WrapIndex(tt.i, tt.n); got != tt.expected {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.expected)
		}
	}
}
