package components

// TrackItemComponent 轨道上的一个渲染实例
//
// 轨道由两份目录条目拼接而成：先是全部原件，再是按相同顺序排列的克隆。
// 克隆只是视觉副本，点击克隆与点击原件解析到同一个 CatalogIndex。
type TrackItemComponent struct {
	// CatalogIndex 对应的目录索引，构建时写入，之后不变
	CatalogIndex int

	// Position 在轨道序列中的全局位置，范围 [0, 2N)
	Position int

	// IsClone 是否为克隆（第二份）
	IsClone bool

	// Hidden 对辅助技术隐藏（克隆为 true，避免重复朗读）
	Hidden bool

	// X 条目左边缘在轨道局部坐标中的位置（像素），由布局计算
	X float64

	// Width 条目宽度（像素），由布局计算，随窗口尺寸变化
	Width float64
}

// Right 返回条目右边缘的局部坐标
func (c *TrackItemComponent) Right() float64 {
	return c.X + c.Width
}
