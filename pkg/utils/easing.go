package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 超出范围的输入会先被截断。

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（灯箱淡入）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快（灯箱淡出）
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	t = Clamp01(t)
	return t * t * t
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Approach 让 current 以 step 的步长向 target 靠近，不会越过 target
func Approach(current, target, step float64) float64 {
	if step <= 0 {
		return current
	}
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}
