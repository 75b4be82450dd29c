package components

import "github.com/decker502/gallery/pkg/ecs"

// TrackComponent 轨道容器
// 挂在轮播实体上，记录条目顺序和布局结果
type TrackComponent struct {
	// Items 按 Position 排列的条目实体，长度为 2 × 目录长度
	Items []ecs.EntityID

	// ItemHeight 条目高度（像素）
	ItemHeight float64

	// Gap 相邻条目之间的间距（像素），每个条目右侧都带一个间距
	Gap float64

	// OriginX, OriginY 轨道左上角的屏幕坐标（未平移时）
	OriginX, OriginY float64

	// ViewportWidth 可见区域宽度（像素）
	ViewportWidth float64
}

// CatalogLength 返回目录长度（轨道条目数的一半）
func (c *TrackComponent) CatalogLength() int {
	return len(c.Items) / 2
}
