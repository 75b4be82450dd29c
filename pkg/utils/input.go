// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ============================================================================
// 指针采样 - 统一鼠标和触摸输入
// ============================================================================

// PointerSample 某一帧的指针状态
type PointerSample struct {
	// Pressed 鼠标左键按下或有活动触摸
	Pressed bool
	// X, Y 指针位置（屏幕坐标）；触摸刚释放时无效
	X, Y int
	// Touch 是否来自触摸输入
	Touch bool
}

// lastTouchID 上一帧跟踪的触摸ID，-1 表示没有
var lastTouchID ebiten.TouchID = -1

// SamplePointer 读取当前帧的指针状态
// 优先使用触摸输入（移动设备），没有触摸时使用鼠标
func SamplePointer() PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		// 继续跟踪同一根手指，原手指抬起才切换
		id := touchIDs[0]
		for _, tid := range touchIDs {
			if tid == lastTouchID {
				id = tid
				break
			}
		}
		lastTouchID = id
		x, y := ebiten.TouchPosition(id)
		return PointerSample{Pressed: true, X: x, Y: y, Touch: true}
	}

	// 触摸刚释放：位置由 GestureTracker 保存的最后位置代替
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		lastTouchID = -1
		return PointerSample{Pressed: false, Touch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// ============================================================================
// 手势跟踪器 - 把逐帧采样转换为离散手势事件
// ============================================================================

// GestureKind 手势事件类型
type GestureKind int

const (
	// GestureHoverEnter 鼠标进入有效区域
	GestureHoverEnter GestureKind = iota
	// GestureHoverLeave 鼠标离开有效区域
	GestureHoverLeave
	// GesturePress 在有效区域内按下
	GesturePress
	// GestureMove 按住移动
	GestureMove
	// GestureRelease 结束一次在有效区域内开始的按压
	GestureRelease
	// GestureClick 按下并释放（不限区域），InRegion 表示释放点是否在区域内
	GestureClick
)

// String 返回事件名，用于日志
func (k GestureKind) String() string {
	switch k {
	case GestureHoverEnter:
		return "HoverEnter"
	case GestureHoverLeave:
		return "HoverLeave"
	case GesturePress:
		return "Press"
	case GestureMove:
		return "Move"
	case GestureRelease:
		return "Release"
	case GestureClick:
		return "Click"
	}
	return "Unknown"
}

// GestureEvent 手势事件
type GestureEvent struct {
	Kind     GestureKind
	X, Y     float64
	Touch    bool
	InRegion bool
}

// RegionFunc 判断屏幕坐标是否落在有效区域内
type RegionFunc func(x, y float64) bool

// GestureTracker 手势跟踪器
//
// 每帧调用一次 Update（或在测试中调用 Feed），同一帧产生的事件按
// 悬停 → 按下/移动/释放 → 点击 的顺序返回。
// 触摸输入不会产生悬停事件。
type GestureTracker struct {
	region RegionFunc

	hovering bool // 鼠标当前在区域内
	pressed  bool // 指针处于按下状态
	active   bool // 本次按压从区域内开始，需要输出 Move/Release
	touch    bool // 本次按压来自触摸

	lastX, lastY float64
}

// NewGestureTracker 创建手势跟踪器，region 为 nil 表示没有有效区域
func NewGestureTracker(region RegionFunc) *GestureTracker {
	return &GestureTracker{region: region}
}

// SetRegion 替换有效区域
func (g *GestureTracker) SetRegion(region RegionFunc) {
	g.region = region
}

// IsHovering 鼠标是否悬停在区域内
func (g *GestureTracker) IsHovering() bool {
	return g.hovering
}

// Update 采样 ebiten 输入并返回本帧事件
func (g *GestureTracker) Update() []GestureEvent {
	return g.Feed(SamplePointer())
}

// Feed 处理一帧采样并返回事件
func (g *GestureTracker) Feed(s PointerSample) []GestureEvent {
	var events []GestureEvent

	x, y := float64(s.X), float64(s.Y)
	if s.Touch && !s.Pressed {
		// 触摸释放帧没有位置
		x, y = g.lastX, g.lastY
	}

	// 1. 悬停（仅鼠标）
	inside := !s.Touch && g.inRegion(x, y)
	if inside != g.hovering {
		g.hovering = inside
		kind := GestureHoverLeave
		if inside {
			kind = GestureHoverEnter
		}
		events = append(events, GestureEvent{Kind: kind, X: x, Y: y, InRegion: inside})
	}

	// 2. 按压
	switch {
	case s.Pressed && !g.pressed:
		g.pressed = true
		g.touch = s.Touch
		g.active = g.inRegion(x, y)
		if g.active {
			events = append(events, GestureEvent{Kind: GesturePress, X: x, Y: y, Touch: s.Touch, InRegion: true})
		}

	case s.Pressed && g.pressed:
		if g.active && (x != g.lastX || y != g.lastY) {
			events = append(events, GestureEvent{Kind: GestureMove, X: x, Y: y, Touch: g.touch, InRegion: g.inRegion(x, y)})
		}

	case !s.Pressed && g.pressed:
		inRegion := g.inRegion(x, y)
		if g.active {
			events = append(events, GestureEvent{Kind: GestureRelease, X: x, Y: y, Touch: g.touch, InRegion: inRegion})
		}
		events = append(events, GestureEvent{Kind: GestureClick, X: x, Y: y, Touch: g.touch, InRegion: inRegion})
		g.pressed = false
		g.active = false
	}

	g.lastX, g.lastY = x, y
	return events
}

// inRegion 判断坐标是否在有效区域内
func (g *GestureTracker) inRegion(x, y float64) bool {
	return g.region != nil && g.region(x, y)
}

// ============================================================================
// 键盘
// ============================================================================

// NavKey 灯箱导航按键
type NavKey int

const (
	// NavNone 没有按键
	NavNone NavKey = iota
	// NavClose 关闭（Escape）
	NavClose
	// NavPrev 上一张（左方向键）
	NavPrev
	// NavNext 下一张（右方向键）
	NavNext
)

// JustPressedNavKeys 返回本帧刚按下的导航键
func JustPressedNavKeys() []NavKey {
	var keys []NavKey
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		keys = append(keys, NavClose)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		keys = append(keys, NavPrev)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		keys = append(keys, NavNext)
	}
	return keys
}
