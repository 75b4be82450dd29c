package systems

import (
	"log"
	"math"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/utils"
)

// ResumeTimerName 拖拽结束后恢复自动滚动的计时器名称
const ResumeTimerName = "autoplay_resume"

// LightboxOpener 点击轨道条目时打开灯箱
type LightboxOpener interface {
	Open(index int)
}

// InteractionSystem 轨道交互系统
//
// 负责：
//   - 悬停：进入暂停，离开恢复
//   - 拖拽：手势期间直接写偏移，结束后经过冷却再恢复
//   - 点击：解析条目的目录索引并打开灯箱，拖拽后的第一次点击被吞掉
//
// 冷却计时器是挂在轮播实体上的 TimerComponent，同一时刻最多一个；
// 任何新的暂停事件都会先移除它，因此不会出现两个竞争的恢复。
type InteractionSystem struct {
	entityManager *ecs.EntityManager
	carousel      ecs.EntityID
	layout        *TrackLayoutSystem
	lightbox      LightboxOpener

	resumeDelay   float64 // 秒
	dragThreshold float64 // 像素
}

// NewInteractionSystem 创建交互系统
func NewInteractionSystem(
	em *ecs.EntityManager,
	carousel ecs.EntityID,
	layout *TrackLayoutSystem,
	lightbox LightboxOpener,
	resumeDelay float64,
	dragThreshold float64,
) *InteractionSystem {
	return &InteractionSystem{
		entityManager: em,
		carousel:      carousel,
		layout:        layout,
		lightbox:      lightbox,
		resumeDelay:   resumeDelay,
		dragThreshold: dragThreshold,
	}
}

// HandleGesture 分发一个手势事件
func (s *InteractionSystem) HandleGesture(ev utils.GestureEvent) {
	switch ev.Kind {
	case utils.GestureHoverEnter:
		s.HandlePointerEnter()
	case utils.GestureHoverLeave:
		s.HandlePointerLeave()
	case utils.GesturePress:
		s.HandleTouchStart(ev.X)
	case utils.GestureMove:
		s.HandleTouchMove(ev.X)
	case utils.GestureRelease:
		s.HandleTouchEnd()
	case utils.GestureClick:
		s.HandleClick(ev.X, ev.Y)
	}
}

// HandlePointerEnter 指针进入轨道
// 取消待触发的恢复；不在拖拽中时悬停接管触摸冷却
func (s *InteractionSystem) HandlePointerEnter() {
	state, ok := s.state()
	if !ok {
		return
	}
	s.cancelResume()
	if !state.Dragging {
		state.Release(components.SuspendTouch)
	}
	state.Suspend(components.SuspendHover)
}

// HandlePointerLeave 指针离开轨道
// 拖拽进行中时只清除悬停，恢复要等拖拽结束后的冷却
func (s *InteractionSystem) HandlePointerLeave() {
	state, ok := s.state()
	if !ok {
		return
	}
	state.Release(components.SuspendHover)
	if state.Dragging {
		return
	}
	s.cancelResume()
	state.Release(components.SuspendTouch)
}

// HandleTouchStart 手势开始
func (s *InteractionSystem) HandleTouchStart(x float64) {
	state, ok := s.state()
	if !ok {
		return
	}
	s.cancelResume()
	state.Suspend(components.SuspendTouch)
	state.Dragging = true
	state.WasDragging = false
	state.DragStartX = x
	state.DragStartOffset = state.Offset
}

// HandleTouchMove 手势移动
// 位移超过阈值才算拖拽；偏移按 起始偏移 + (起点 - 当前) 计算并回绕
func (s *InteractionSystem) HandleTouchMove(x float64) {
	state, ok := s.state()
	if !ok || !state.Dragging {
		return
	}
	delta := state.DragStartX - x
	if math.Abs(delta) > s.dragThreshold {
		state.WasDragging = true
	}
	state.Offset = utils.WrapOffset(state.DragStartOffset+delta, s.layout.ComputeHalfExtent())
}

// HandleTouchEnd 手势结束，开始恢复冷却
func (s *InteractionSystem) HandleTouchEnd() {
	state, ok := s.state()
	if !ok || !state.Dragging {
		return
	}
	state.Dragging = false
	s.scheduleResume(state)
}

// HandleClick 处理点击
//
// 返回：
//   - true 表示打开了灯箱
//
// 上一次手势是拖拽时吞掉这次点击并清除标记（只生效一次）。
// 打开灯箱时取消待触发的恢复冷却并清除触摸暂停。
func (s *InteractionSystem) HandleClick(x, y float64) bool {
	state, ok := s.state()
	if !ok {
		return false
	}
	if state.WasDragging {
		state.WasDragging = false
		log.Printf("[InteractionSystem] Click at (%.0f, %.0f) suppressed after drag", x, y)
		return false
	}

	item, ok := s.layout.ItemAt(x, y)
	if !ok {
		return false
	}
	log.Printf("[InteractionSystem] Clicked track position %d (clone=%v) -> catalog index %d",
		item.Position, item.IsClone, item.CatalogIndex)
	if s.lightbox != nil {
		// 轻点不算拖拽，冷却作废，改由灯箱暂停接管
		s.cancelResume()
		state.Release(components.SuspendTouch)
		s.lightbox.Open(item.CatalogIndex)
	}
	return true
}

// Update 推进恢复冷却
func (s *InteractionSystem) Update(deltaTime float64) {
	timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, s.carousel)
	if !ok || !timer.Advance(deltaTime) {
		return
	}
	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, s.carousel)
	if state, ok := s.state(); ok {
		state.Release(components.SuspendTouch)
	}
	log.Printf("[InteractionSystem] Resume cooldown elapsed")
}

// HasPendingResume 是否有待触发的恢复
func (s *InteractionSystem) HasPendingResume() bool {
	return ecs.HasComponent[*components.TimerComponent](s.entityManager, s.carousel)
}

func (s *InteractionSystem) scheduleResume(state *components.ScrollStateComponent) {
	s.cancelResume()
	if s.resumeDelay <= 0 {
		state.Release(components.SuspendTouch)
		return
	}
	ecs.AddComponent(s.entityManager, s.carousel, &components.TimerComponent{
		Name:       ResumeTimerName,
		TargetTime: s.resumeDelay,
	})
}

func (s *InteractionSystem) cancelResume() {
	ecs.RemoveComponent[*components.TimerComponent](s.entityManager, s.carousel)
}

func (s *InteractionSystem) state() (*components.ScrollStateComponent, bool) {
	return ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel)
}
