package components

// SuspendReason 暂停自动滚动的原因（位标志）
// 多个原因可以同时存在，只有全部清除后自动滚动才恢复
type SuspendReason uint8

const (
	// SuspendHover 指针悬停在轨道上
	SuspendHover SuspendReason = 1 << iota
	// SuspendTouch 触摸/拖拽中，或拖拽结束后的冷却期
	SuspendTouch
	// SuspendLightbox 灯箱打开
	SuspendLightbox
)

// AutoplayState 自动滚动状态机的状态
type AutoplayState int

const (
	// AutoplayRunning 每帧推进偏移
	AutoplayRunning AutoplayState = iota
	// AutoplaySuspended 偏移保持不变
	AutoplaySuspended
)

// String 返回状态名，用于日志
func (s AutoplayState) String() string {
	if s == AutoplayRunning {
		return "Running"
	}
	return "Suspended"
}

// ScrollStateComponent 轮播滚动状态
//
// Offset 是自动滚动和拖拽共享的唯一状态单元。两个写入者互斥：
// 拖拽期间 SuspendTouch 必然置位，自动滚动不会推进。
// 不变量：0 ≤ Offset < 半长度（半长度为 0 时 Offset 为 0）。
type ScrollStateComponent struct {
	// Offset 轨道当前的水平平移量（像素），渲染时平移 -Offset
	Offset float64

	// Suspenders 当前生效的暂停原因
	Suspenders SuspendReason

	// Dragging 手势进行中
	Dragging bool

	// WasDragging 上一次手势位移超过阈值，用于吞掉紧随其后的一次点击
	WasDragging bool

	// DragStartX 手势起点的屏幕 X 坐标
	DragStartX float64

	// DragStartOffset 手势开始时的 Offset
	DragStartOffset float64
}

// Suspend 添加暂停原因
func (s *ScrollStateComponent) Suspend(reason SuspendReason) {
	s.Suspenders |= reason
}

// Release 移除暂停原因
func (s *ScrollStateComponent) Release(reason SuspendReason) {
	s.Suspenders &^= reason
}

// IsSuspendedBy 判断某个原因是否生效
func (s *ScrollStateComponent) IsSuspendedBy(reason SuspendReason) bool {
	return s.Suspenders&reason != 0
}

// Paused 是否处于暂停状态（任一原因生效或正在拖拽）
func (s *ScrollStateComponent) Paused() bool {
	return s.Suspenders != 0 || s.Dragging
}

// State 返回自动滚动状态机的当前状态
func (s *ScrollStateComponent) State() AutoplayState {
	if s.Paused() {
		return AutoplaySuspended
	}
	return AutoplayRunning
}
