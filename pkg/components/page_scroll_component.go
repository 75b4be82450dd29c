package components

// PageScrollComponent 宿主页面的纵向滚动
// 灯箱打开时锁定，页面不响应滚轮
type PageScrollComponent struct {
	Y      float64 // 当前滚动位置（像素）
	MaxY   float64 // 最大滚动位置
	Locked bool    // 是否锁定
}

// ScrollBy 按增量滚动并限制在 [0, MaxY]，锁定时忽略
func (c *PageScrollComponent) ScrollBy(dy float64) {
	if c.Locked {
		return
	}
	c.Y += dy
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y > c.MaxY {
		c.Y = c.MaxY
	}
}
