package systems

import (
	"log"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/utils"
)

// AutoplaySystem 自动滚动系统
//
// 每帧在 Running 状态下按 velocity × dt 推进偏移，并在越过半长度时回绕。
// 系统本身没有停止操作：暂停与恢复完全由 ScrollStateComponent 的暂停原因决定，
// 拖拽期间 Dragging 为 true，本系统不会写 Offset。
type AutoplaySystem struct {
	entityManager *ecs.EntityManager
	carousel      ecs.EntityID
	layout        *TrackLayoutSystem

	// velocity 滚动速度（像素/秒）
	velocity float64

	lastState components.AutoplayState
}

// NewAutoplaySystem 创建自动滚动系统
//
// 参数：
//   - velocity: 像素/秒，通常为 GalleryConfig.Velocity()
func NewAutoplaySystem(em *ecs.EntityManager, carousel ecs.EntityID, layout *TrackLayoutSystem, velocity float64) *AutoplaySystem {
	return &AutoplaySystem{
		entityManager: em,
		carousel:      carousel,
		layout:        layout,
		velocity:      velocity,
		lastState:     components.AutoplayRunning,
	}
}

// Update 推进一帧
func (s *AutoplaySystem) Update(deltaTime float64) {
	state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel)
	if !ok {
		return
	}

	current := state.State()
	if current != s.lastState {
		log.Printf("[AutoplaySystem] %s -> %s (suspenders=%03b, dragging=%v)",
			s.lastState, current, state.Suspenders, state.Dragging)
		s.lastState = current
	}
	if current != components.AutoplayRunning {
		return
	}

	state.Offset = StepOffset(state.Offset, s.velocity*deltaTime, s.layout.ComputeHalfExtent())
}

// State 返回当前状态
func (s *AutoplaySystem) State() components.AutoplayState {
	state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel)
	if !ok {
		return components.AutoplaySuspended
	}
	return state.State()
}

// StepOffset 推进偏移并回绕到 [0, halfExtent)
//
// 一帧的步长远小于半长度，通常一次减法就够；步长异常大时退回取模。
// halfExtent ≤ 0 时直接返回 0。
func StepOffset(offset, step, halfExtent float64) float64 {
	if halfExtent <= 0 {
		return 0
	}
	offset += step
	if offset >= halfExtent {
		offset -= halfExtent
		if offset >= halfExtent {
			offset = utils.WrapOffset(offset, halfExtent)
		}
	}
	if offset < 0 {
		offset = utils.WrapOffset(offset, halfExtent)
	}
	return offset
}
