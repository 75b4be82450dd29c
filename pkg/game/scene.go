package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 表示一个可独立更新和绘制的画面（例如画廊页面）
type Scene interface {
	// Update 按经过的时间（秒）更新场景逻辑
	Update(deltaTime float64)

	// Draw 将场景绘制到 screen
	Draw(screen *ebiten.Image)
}

// LayoutAware 是一个可选接口，场景实现后会在窗口尺寸变化时收到通知
//
// 响应式布局依赖它：轨道宽度随窗口变化，半长度必须重新计算
type LayoutAware interface {
	// Layout 在逻辑屏幕尺寸变化时调用
	Layout(width, height int)
}
