package systems

import (
	"log"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/utils"
)

// ClearTimerName 灯箱关闭后延迟清空图片的计时器名称
const ClearTimerName = "lightbox_clear"

// ScrollLocker 锁定/解锁宿主页面的滚动
type ScrollLocker interface {
	SetScrollLocked(locked bool)
}

// LightboxSystem 灯箱系统
//
// 灯箱是目录上的模态单图查看器，持有独立的循环游标。
// 打开时暂停自动滚动并锁定页面滚动；关闭时只移除灯箱这一个暂停原因，
// 其他原因（悬停、触摸冷却）仍然生效时自动滚动不会恢复。
// 关闭后图片引用延迟 closeDelay 秒清空，让淡出动画播完；期间重新打开会取消清空。
type LightboxSystem struct {
	entityManager *ecs.EntityManager
	lightbox      ecs.EntityID
	carousel      ecs.EntityID
	catalog       *game.Catalog
	locker        ScrollLocker
	sizer         ImageSizer

	closeDelay float64

	screenWidth  float64
	screenHeight float64
}

// NewLightboxSystem 创建灯箱系统
//
// 参数：
//   - lightbox: 灯箱实体
//   - carousel: 轮播实体（打开/关闭时修改其暂停原因）
//   - locker: 页面滚动锁，可为 nil
//   - sizer: 图片尺寸，用于判断点击是否落在图片上，可为 nil
//   - closeDelay: 关闭后清空图片的延迟（秒）
func NewLightboxSystem(
	em *ecs.EntityManager,
	lightbox ecs.EntityID,
	carousel ecs.EntityID,
	catalog *game.Catalog,
	locker ScrollLocker,
	sizer ImageSizer,
	closeDelay float64,
) *LightboxSystem {
	return &LightboxSystem{
		entityManager: em,
		lightbox:      lightbox,
		carousel:      carousel,
		catalog:       catalog,
		locker:        locker,
		sizer:         sizer,
		closeDelay:    closeDelay,
		screenWidth:   config.GameWindowWidth,
		screenHeight:  config.GameWindowHeight,
	}
}

// SetScreenSize 更新屏幕尺寸（控件和图片区域随之变化）
func (s *LightboxSystem) SetScreenSize(width, height float64) {
	s.screenWidth = width
	s.screenHeight = height
}

// ScreenSize 返回当前屏幕尺寸
func (s *LightboxSystem) ScreenSize() (float64, float64) {
	return s.screenWidth, s.screenHeight
}

// Open 打开灯箱显示 index 对应的条目
// index 循环归一化到 [0, 目录长度)；目录为空时不做任何事
func (s *LightboxSystem) Open(index int) {
	lb, ok := s.component()
	if !ok || s.catalog.IsEmpty() {
		return
	}

	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, s.lightbox)
	lb.IsOpen = true
	s.show(lb, utils.WrapIndex(index, s.catalog.Len()))

	if state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel); ok {
		state.Suspend(components.SuspendLightbox)
	}
	if s.locker != nil {
		s.locker.SetScrollLocked(true)
	}
	log.Printf("[LightboxSystem] Opened at index %d (%s)", lb.CurrentIndex, lb.DisplayedSrc)
}

// Close 关闭灯箱，已关闭时不做任何事
func (s *LightboxSystem) Close() {
	lb, ok := s.component()
	if !ok || !lb.IsOpen {
		return
	}

	lb.IsOpen = false
	if state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel); ok {
		state.Release(components.SuspendLightbox)
	}
	if s.locker != nil {
		s.locker.SetScrollLocked(false)
	}

	if s.closeDelay <= 0 {
		lb.DisplayedSrc = ""
		lb.DisplayedAlt = ""
	} else {
		ecs.AddComponent(s.entityManager, s.lightbox, &components.TimerComponent{
			Name:       ClearTimerName,
			TargetTime: s.closeDelay,
		})
	}
	log.Printf("[LightboxSystem] Closed at index %d", lb.CurrentIndex)
}

// ShowPrev 上一张（循环），灯箱关闭时不做任何事
func (s *LightboxSystem) ShowPrev() {
	s.step(-1)
}

// ShowNext 下一张（循环），灯箱关闭时不做任何事
func (s *LightboxSystem) ShowNext() {
	s.step(1)
}

func (s *LightboxSystem) step(delta int) {
	lb, ok := s.component()
	if !ok || !lb.IsOpen || s.catalog.IsEmpty() {
		return
	}
	s.show(lb, utils.WrapIndex(lb.CurrentIndex+delta, s.catalog.Len()))
}

// show 设置当前索引并同步显示的图片
func (s *LightboxSystem) show(lb *components.LightboxComponent, index int) {
	item, ok := s.catalog.Item(index)
	if !ok {
		return
	}
	lb.CurrentIndex = index
	lb.DisplayedSrc = item.SourceRef
	lb.DisplayedAlt = item.Label
}

// HandleKey 处理导航键，只在灯箱打开时生效
// 返回按键是否被消费
func (s *LightboxSystem) HandleKey(key utils.NavKey) bool {
	if !s.IsOpen() {
		return false
	}
	switch key {
	case utils.NavClose:
		s.Close()
	case utils.NavPrev:
		s.ShowPrev()
	case utils.NavNext:
		s.ShowNext()
	default:
		return false
	}
	return true
}

// HandleClick 处理灯箱打开时的点击
//
// 命中顺序：关闭按钮 → 上一张 → 下一张 → 图片本身（忽略）→ 背景遮罩（关闭）。
// 返回点击是否被灯箱消费（打开期间总是 true）。
func (s *LightboxSystem) HandleClick(x, y float64) bool {
	if !s.IsOpen() {
		return false
	}
	closeRect, prevRect, nextRect := config.LightboxControlRects(s.screenWidth, s.screenHeight)
	switch {
	case closeRect.Contains(x, y):
		s.Close()
	case prevRect.Contains(x, y):
		s.ShowPrev()
	case nextRect.Contains(x, y):
		s.ShowNext()
	case s.ImageRect().Contains(x, y):
		// 点击图片本身不关闭
	default:
		s.Close()
	}
	return true
}

// ImageRect 返回当前图片在屏幕上的区域
func (s *LightboxSystem) ImageRect() config.ControlRect {
	lb, ok := s.component()
	if !ok {
		return config.ControlRect{}
	}
	w, h := float64(game.PlaceholderWidth), float64(game.PlaceholderHeight)
	if s.sizer != nil {
		w, h = s.sizer.ImageSize(lb.CurrentIndex)
	}
	return config.FitLightboxImage(s.screenWidth, s.screenHeight, w, h)
}

// Update 推进淡入淡出和延迟清空
func (s *LightboxSystem) Update(deltaTime float64) {
	lb, ok := s.component()
	if !ok {
		return
	}

	target := 0.0
	if lb.IsOpen {
		target = 1.0
	}
	if s.closeDelay > 0 {
		lb.Fade = utils.Approach(lb.Fade, target, deltaTime/s.closeDelay)
	} else {
		lb.Fade = target
	}

	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, s.lightbox)
	if !ok || !timer.Advance(deltaTime) {
		return
	}
	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, s.lightbox)
	lb.DisplayedSrc = ""
	lb.DisplayedAlt = ""
}

// IsOpen 灯箱是否可见
func (s *LightboxSystem) IsOpen() bool {
	lb, ok := s.component()
	return ok && lb.IsOpen
}

// CurrentIndex 返回当前目录索引
func (s *LightboxSystem) CurrentIndex() int {
	lb, ok := s.component()
	if !ok {
		return 0
	}
	return lb.CurrentIndex
}

// Current 返回当前显示的目录条目，图片已清空时返回 false
func (s *LightboxSystem) Current() (game.CatalogItem, bool) {
	lb, ok := s.component()
	if !ok || lb.DisplayedSrc == "" {
		return game.CatalogItem{}, false
	}
	return s.catalog.Item(lb.CurrentIndex)
}

// State 返回灯箱组件（只读使用）
func (s *LightboxSystem) State() (components.LightboxComponent, bool) {
	lb, ok := s.component()
	if !ok {
		return components.LightboxComponent{}, false
	}
	return *lb, true
}

func (s *LightboxSystem) component() (*components.LightboxComponent, bool) {
	return ecs.GetComponent[*components.LightboxComponent](s.entityManager, s.lightbox)
}
