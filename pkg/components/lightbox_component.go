package components

// LightboxComponent 灯箱（模态单图查看器）状态
//
// CurrentIndex 是独立于轨道偏移的循环游标，始终落在 [0, 目录长度) 内。
type LightboxComponent struct {
	// IsOpen 是否可见
	IsOpen bool

	// CurrentIndex 当前显示的目录索引
	CurrentIndex int

	// DisplayedSrc 当前显示的图片引用，关闭后延迟清空
	DisplayedSrc string

	// DisplayedAlt 当前显示的描述文字
	DisplayedAlt string

	// Fade 可见度 0.0 ~ 1.0，打开时趋向 1，关闭时趋向 0
	Fade float64
}

// AriaHidden 返回无障碍属性值，与可见状态相反
func (c *LightboxComponent) AriaHidden() string {
	if c.IsOpen {
		return "false"
	}
	return "true"
}
