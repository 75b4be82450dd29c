package config

// 布局配置常量
// 本文件定义了画廊页面的窗口尺寸和灯箱控件布局参数

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 默认窗口宽度（逻辑像素）
	GameWindowWidth = 1024

	// GameWindowHeight 默认窗口高度（逻辑像素）
	GameWindowHeight = 640

	// PageHeight 宿主页面的总高度，超出窗口的部分通过滚轮滚动
	PageHeight = 1400.0

	// PageWheelStep 滚轮每格滚动的距离（像素）
	PageWheelStep = 40.0

	// TrackTopY 画廊轨道在页面中的顶部Y坐标（页面坐标）
	TrackTopY = 180.0
)

// Lightbox Layout (灯箱布局)
// 控件位置相对于当前屏幕尺寸计算，见 LightboxControlRects
const (
	// LightboxImageMaxRatio 灯箱图片最大占屏比例
	LightboxImageMaxRatio = 0.8

	// LightboxControlSize 关闭/上一张/下一张按钮的边长（像素）
	LightboxControlSize = 48.0

	// LightboxControlMargin 按钮距屏幕边缘的距离（像素）
	LightboxControlMargin = 24.0

	// LightboxBackdropAlpha 背景遮罩透明度
	LightboxBackdropAlpha = 0.85
)

// ControlRect 屏幕上的矩形区域
type ControlRect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（左闭右开）
func (r ControlRect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// LightboxControlRects 根据屏幕尺寸计算灯箱控件区域
// 返回：关闭按钮（右上角）、上一张（左侧居中）、下一张（右侧居中）
func LightboxControlRects(screenW, screenH float64) (closeRect, prevRect, nextRect ControlRect) {
	s := LightboxControlSize
	m := LightboxControlMargin
	closeRect = ControlRect{X: screenW - m - s, Y: m, W: s, H: s}
	prevRect = ControlRect{X: m, Y: (screenH - s) / 2, W: s, H: s}
	nextRect = ControlRect{X: screenW - m - s, Y: (screenH - s) / 2, W: s, H: s}
	return
}

// FitLightboxImage 计算图片在灯箱中等比缩放后的区域（居中）
// imgW/imgH 为 0 时返回空矩形
func FitLightboxImage(screenW, screenH, imgW, imgH float64) ControlRect {
	if imgW <= 0 || imgH <= 0 {
		return ControlRect{}
	}
	maxW := screenW * LightboxImageMaxRatio
	maxH := screenH * LightboxImageMaxRatio
	scale := maxW / imgW
	if imgH*scale > maxH {
		scale = maxH / imgH
	}
	w, h := imgW*scale, imgH*scale
	return ControlRect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}
}
