package utils

import "math"

// WrapOffset 将 x 归一化到 [0, m)
//
// 对负数同样正确：((x % m) + m) % m，例如 WrapOffset(-5, 10) = 5。
// m ≤ 0（空轨道或尚未布局）时返回 0，不做取模，避免除零产生 NaN。
func WrapOffset(x, m float64) float64 {
	if m <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// 极小负数加 m 后可能因舍入恰好等于 m
	if r >= m {
		r = 0
	}
	return r
}

// WrapIndex 将索引循环归一化到 [0, n)
// n ≤ 0（空目录）时返回 0
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
