package systems

import (
	"log"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/utils"
)

// ImageSizer 提供目录条目的原始尺寸
// 轨道按高度等比缩放条目，灯箱按屏幕适配图片，都只需要宽高比
type ImageSizer interface {
	ImageSize(catalogIndex int) (w, h float64)
}

// TrackLayoutSystem 轨道布局系统
//
// 负责：
//   - 按条目高度和图片宽高比计算每个条目的局部 X 和宽度
//   - 计算半长度（双份轨道总长度的一半），作为偏移的取模基数
//   - 把屏幕坐标解析为轨道条目（点击命中）
//
// 半长度每次调用都从当前布局重新求和，窗口尺寸变化后不会使用过期值。
type TrackLayoutSystem struct {
	entityManager *ecs.EntityManager
	carousel      ecs.EntityID
	sizer         ImageSizer
}

// NewTrackLayoutSystem 创建轨道布局系统
func NewTrackLayoutSystem(em *ecs.EntityManager, carousel ecs.EntityID, sizer ImageSizer) *TrackLayoutSystem {
	return &TrackLayoutSystem{
		entityManager: em,
		carousel:      carousel,
		sizer:         sizer,
	}
}

// Layout 重新布局轨道
//
// 参数：
//   - originX, originY: 轨道左上角的屏幕坐标
//   - viewportWidth: 可见区域宽度
//
// 布局会改变半长度，因此结束时把当前偏移重新取模，保持 0 ≤ offset < 半长度。
func (s *TrackLayoutSystem) Layout(originX, originY, viewportWidth float64) {
	track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
	if !ok {
		return
	}
	track.OriginX = originX
	track.OriginY = originY
	track.ViewportWidth = viewportWidth

	x := 0.0
	for _, id := range track.Items {
		item, ok := ecs.GetComponent[*components.TrackItemComponent](s.entityManager, id)
		if !ok {
			continue
		}
		item.X = x
		item.Width = s.itemWidth(item.CatalogIndex, track.ItemHeight)
		x += item.Width + track.Gap
	}

	if state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel); ok {
		state.Offset = utils.WrapOffset(state.Offset, x/2)
	}

	log.Printf("[TrackLayoutSystem] Layout: origin=(%.0f, %.0f) viewport=%.0f extent=%.1f",
		originX, originY, viewportWidth, x)
}

// SetOrigin 移动轨道原点（页面滚动时调用），不改变布局和偏移
func (s *TrackLayoutSystem) SetOrigin(originX, originY float64) {
	if track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel); ok {
		track.OriginX = originX
		track.OriginY = originY
	}
}

// SetItemHeight 修改条目高度，需要再调用 Layout 生效
func (s *TrackLayoutSystem) SetItemHeight(height float64) {
	if track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel); ok && height > 0 {
		track.ItemHeight = height
	}
}

// itemWidth 按高度等比计算条目宽度
func (s *TrackLayoutSystem) itemWidth(catalogIndex int, height float64) float64 {
	if s.sizer == nil {
		return height
	}
	w, h := s.sizer.ImageSize(catalogIndex)
	if w <= 0 || h <= 0 {
		return height
	}
	return height * w / h
}

// ComputeHalfExtent 返回双份轨道总长度的一半
// 每个条目贡献 宽度 + 间距；空轨道返回 0
func (s *TrackLayoutSystem) ComputeHalfExtent() float64 {
	track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
	if !ok {
		return 0
	}
	total := 0.0
	for _, id := range track.Items {
		if item, ok := ecs.GetComponent[*components.TrackItemComponent](s.entityManager, id); ok {
			total += item.Width + track.Gap
		}
	}
	return total / 2
}

// Translation 返回当前应施加在轨道上的水平平移（-offset）
func (s *TrackLayoutSystem) Translation() float64 {
	state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel)
	if !ok {
		return 0
	}
	return -state.Offset
}

// Contains 判断屏幕坐标是否在轨道可见区域内（悬停/拖拽的有效区域）
func (s *TrackLayoutSystem) Contains(x, y float64) bool {
	track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
	if !ok || len(track.Items) == 0 {
		return false
	}
	return x >= track.OriginX && x < track.OriginX+track.ViewportWidth &&
		y >= track.OriginY && y < track.OriginY+track.ItemHeight
}

// ItemAt 返回屏幕坐标命中的轨道条目
// 落在间距或轨道之外时返回 false
func (s *TrackLayoutSystem) ItemAt(x, y float64) (components.TrackItemComponent, bool) {
	if !s.Contains(x, y) {
		return components.TrackItemComponent{}, false
	}
	track, _ := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)

	localX := x - track.OriginX - s.Translation()
	for _, id := range track.Items {
		item, ok := ecs.GetComponent[*components.TrackItemComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if localX >= item.X && localX < item.Right() {
			return *item, true
		}
	}
	return components.TrackItemComponent{}, false
}

// ResolvePosition 返回轨道位置对应的目录索引
// 原件和克隆解析到同一个索引
func (s *TrackLayoutSystem) ResolvePosition(position int) (int, bool) {
	track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
	if !ok || position < 0 || position >= len(track.Items) {
		return 0, false
	}
	item, ok := ecs.GetComponent[*components.TrackItemComponent](s.entityManager, track.Items[position])
	if !ok {
		return 0, false
	}
	return item.CatalogIndex, true
}

// Items 返回按 Position 排列的轨道条目（副本）
func (s *TrackLayoutSystem) Items() []components.TrackItemComponent {
	track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
	if !ok {
		return nil
	}
	out := make([]components.TrackItemComponent, 0, len(track.Items))
	for _, id := range track.Items {
		if item, ok := ecs.GetComponent[*components.TrackItemComponent](s.entityManager, id); ok {
			out = append(out, *item)
		}
	}
	return out
}

// AccessibleItems 返回未对辅助技术隐藏的条目（即原件）
func (s *TrackLayoutSystem) AccessibleItems() []components.TrackItemComponent {
	all := s.Items()
	out := make([]components.TrackItemComponent, 0, len(all)/2)
	for _, item := range all {
		if !item.Hidden {
			out = append(out, item)
		}
	}
	return out
}

// VisibleItems 返回与可见区域相交的条目及其屏幕 X 坐标
func (s *TrackLayoutSystem) VisibleItems() ([]components.TrackItemComponent, []float64) {
	track, ok := ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
	if !ok {
		return nil, nil
	}
	shift := track.OriginX + s.Translation()

	var items []components.TrackItemComponent
	var screenX []float64
	for _, item := range s.Items() {
		left := shift + item.X
		if left+item.Width <= track.OriginX || left >= track.OriginX+track.ViewportWidth {
			continue
		}
		items = append(items, item)
		screenX = append(screenX, left)
	}
	return items, screenX
}

// Track 返回轨道容器组件
func (s *TrackLayoutSystem) Track() (*components.TrackComponent, bool) {
	return ecs.GetComponent[*components.TrackComponent](s.entityManager, s.carousel)
}
