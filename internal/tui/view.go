package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/config"
)

// lightboxContentLines 灯箱边框内的文字行数
const lightboxContentLines = 6

// lightboxRects 灯箱各区域在屏幕上的位置
type lightboxRects struct {
	box   config.ControlRect
	prev  config.ControlRect
	close config.ControlRect
	next  config.ControlRect

	x0, y0 int
	width  int
	inner  int
}

// View 实现 tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.gallery.lightbox.IsOpen() {
		return m.renderLightbox()
	}

	lines := []string{
		m.renderHeader(),
		"",
	}
	lines = append(lines, m.renderTrack()...)
	lines = append(lines, "", m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// renderHeader 标题和自动滚动状态
func (m Model) renderHeader() string {
	status := "▶ scrolling"
	if m.gallery.autoplay.State() == components.AutoplaySuspended {
		status = "❚❚ paused"
		if m.gallery.interaction.HasPendingResume() {
			status += " (resuming)"
		}
	}
	return m.styles.Title.Render("GALLERY") + "  " + m.styles.Status.Render(status)
}

// renderTrack 绘制双份轨道在视口内的部分
func (m Model) renderTrack() []string {
	if m.gallery.catalog.IsEmpty() {
		return []string{"", m.styles.Muted.Render("No images configured"), ""}
	}

	total := int(math.Round(2 * m.gallery.layout.ComputeHalfExtent()))
	if total <= 0 || m.width <= 0 {
		return []string{"", "", ""}
	}

	var rows [cardHeight][]rune
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", total))
	}
	for _, item := range m.gallery.layout.Items() {
		entry, ok := m.gallery.catalog.Item(item.CatalogIndex)
		if !ok {
			continue
		}
		drawCard(&rows, int(math.Round(item.X)), int(math.Round(item.Width)), cardLabel(entry))
	}

	// 轨道以半长度为周期，视口超出双份长度时循环取字符
	offset := int(math.Floor(-m.gallery.layout.Translation()))
	out := make([]string, cardHeight)
	for r := range rows {
		line := make([]rune, m.width)
		for col := range line {
			line[col] = rows[r][(offset+col)%total]
		}
		out[r] = m.styles.Track.Render(string(line))
	}
	return out
}

// drawCard 在第 x 列写入宽度为 w 的带边框卡片
func drawCard(rows *[cardHeight][]rune, x, w int, label string) {
	if w < 2 {
		return
	}
	put := func(r, col int, ch rune) {
		if col >= 0 && col < len(rows[r]) {
			rows[r][col] = ch
		}
	}

	put(0, x, '╭')
	put(1, x, '│')
	put(2, x, '╰')
	for i := 1; i < w-1; i++ {
		put(0, x+i, '─')
		put(2, x+i, '─')
	}
	put(0, x+w-1, '╮')
	put(1, x+w-1, '│')
	put(2, x+w-1, '╯')

	text := []rune(label)
	start := x + (w-len(text))/2
	for i, ch := range text {
		if start+i > x && start+i < x+w-1 {
			put(1, start+i, ch)
		}
	}
}

// lightboxLayout 按当前终端尺寸计算灯箱布局
func (m Model) lightboxLayout() lightboxRects {
	w := m.width - 4
	if w > 60 {
		w = 60
	}
	if w < 24 {
		w = m.width
	}
	h := lightboxContentLines + 2

	x0 := (m.width - w) / 2
	if x0 < 0 {
		x0 = 0
	}
	y0 := (m.height - h) / 2
	if y0 < 0 {
		y0 = 0
	}

	inner := w - 4
	third := inner / 3
	rowY := float64(y0 + lightboxContentLines)
	left := float64(x0 + 2)

	return lightboxRects{
		box:   config.ControlRect{X: float64(x0), Y: float64(y0), W: float64(w), H: float64(h)},
		prev:  config.ControlRect{X: left, Y: rowY, W: float64(third), H: 1},
		close: config.ControlRect{X: left + float64(third), Y: rowY, W: float64(inner - 2*third), H: 1},
		next:  config.ControlRect{X: left + float64(inner-third), Y: rowY, W: float64(third), H: 1},
		x0:    x0,
		y0:    y0,
		width: w,
		inner: inner,
	}
}

// renderLightbox 在空白屏幕上绘制灯箱
func (m Model) renderLightbox() string {
	layout := m.lightboxLayout()
	lightbox := m.gallery.lightbox
	state, _ := lightbox.State()

	third := layout.inner / 3
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Control.Width(third).Align(lipgloss.Left).Render("‹ prev"),
		m.styles.Control.Width(layout.inner-2*third).Align(lipgloss.Center).Render("× close"),
		m.styles.Control.Width(third).Align(lipgloss.Right).Render("next ›"),
	)

	content := []string{
		m.styles.Muted.Render(fmt.Sprintf("Image %d / %d", state.CurrentIndex+1, m.gallery.catalog.Len())),
		"",
		m.styles.Label.Render(truncate(state.DisplayedAlt, layout.inner)),
		m.styles.Muted.Render(truncate(state.DisplayedSrc, layout.inner)),
		"",
		controls,
	}

	box := m.styles.Modal.Width(layout.width - 2).Render(strings.Join(content, "\n"))
	return lipgloss.NewStyle().MarginLeft(layout.x0).MarginTop(layout.y0).Render(box)
}
