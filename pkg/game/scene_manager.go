package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 控制当前活动的场景
// 任一时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	width        int // 最近一次布局的宽度
	height       int // 最近一次布局的高度
}

// NewSceneManager 创建没有活动场景的 SceneManager
// 使用 SwitchTo 设置初始场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景
// 如果已经知道屏幕尺寸，新场景会立即收到一次 Layout
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	if la, ok := scene.(LayoutAware); ok && sm.width > 0 && sm.height > 0 {
		la.Layout(sm.width, sm.height)
	}
	log.Printf("[SceneManager] Switched scene: %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Layout 记录屏幕尺寸，尺寸变化时通知实现了 LayoutAware 的场景
func (sm *SceneManager) Layout(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if la, ok := sm.currentScene.(LayoutAware); ok {
		la.Layout(width, height)
	}
}

// Update 更新当前场景；没有活动场景时不做任何事
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景；没有活动场景时不做任何事
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
