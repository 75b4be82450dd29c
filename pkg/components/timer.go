package components

// TimerComponent 一次性计时器组件
//
// 用于可取消的延迟动作（拖拽后的恢复冷却、灯箱关闭后清空图片）。
// 组件存在即表示计时进行中；取消就是把组件从实体上移除，
// 因此同一实体同一时刻最多只有一个待触发的计时器。
type TimerComponent struct {
	Name        string  // 计时器名称，如 "autoplay_resume"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Advance 推进计时器，返回本次调用是否刚好到期
func (t *TimerComponent) Advance(dt float64) bool {
	if t.IsReady {
		return false
	}
	t.CurrentTime += dt
	if t.CurrentTime >= t.TargetTime {
		t.IsReady = true
		return true
	}
	return false
}

// Remaining 返回剩余时间（秒），已到期返回 0
func (t *TimerComponent) Remaining() float64 {
	if t.IsReady || t.CurrentTime >= t.TargetTime {
		return 0
	}
	return t.TargetTime - t.CurrentTime
}
