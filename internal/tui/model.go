// Package tui 画廊的 Bubble Tea 终端宿主
//
// 与 ebiten 窗口使用同一套 ECS 系统，单位换成字符格：
// 卡片宽度由标签决定，轨道由定时 tick 推动滚动，
// 终端鼠标事件喂给同一个手势跟踪器。
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/utils"
)

// frameInterval 终端宿主的 tick 周期
const frameInterval = time.Second / 30

// maxFrameDelta 单次 tick 的时间上限，终端卡顿后轨道不会跳跃
const maxFrameDelta = 0.1

// Options 终端画廊启动参数
type Options struct {
	Config  *config.GalleryConfig
	Catalog *game.Catalog
}

// Model Bubble Tea 根模型
type Model struct {
	gallery *gallery

	keys   keyMap
	help   help.Model
	styles Styles

	width    int
	height   int
	ready    bool
	showHelp bool
	lastTick time.Time
}

// New 创建终端画廊模型
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGalleryConfig()
	}
	return Model{
		gallery: newGallery(cfg, opts.Catalog),
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultTheme().Styles(),
	}
}

// Init 实现 tea.Model
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update 实现 tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.gallery.resize(msg.Width, msg.Height)
		m.ready = true
		return m, nil

	case tickMsg:
		m.handleTick(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

// handleKey 处理键盘输入
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	lightbox := m.gallery.lightbox
	switch {
	case key.Matches(msg, m.keys.Close):
		lightbox.HandleKey(utils.NavClose)
	case key.Matches(msg, m.keys.Prev):
		lightbox.HandleKey(utils.NavPrev)
	case key.Matches(msg, m.keys.Next):
		lightbox.HandleKey(utils.NavNext)
	case key.Matches(msg, m.keys.Open):
		if !lightbox.IsOpen() {
			m.gallery.openLeftmost()
		}
	}
	return m, nil
}

// handleMouse 把终端鼠标事件转换成指针采样
func (m Model) handleMouse(msg tea.MouseMsg) {
	sample := m.gallery.pointer
	sample.X, sample.Y = msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		sample.Pressed = true
	case tea.MouseActionRelease:
		sample.Pressed = false
	}

	m.gallery.feed(sample, m.handleLightboxClick)
}

// handleLightboxClick 灯箱打开时分发点击：控制按钮、内容区或背景
func (m Model) handleLightboxClick(x, y float64) {
	lightbox := m.gallery.lightbox
	layout := m.lightboxLayout()
	switch {
	case layout.prev.Contains(x, y):
		lightbox.ShowPrev()
	case layout.close.Contains(x, y):
		lightbox.Close()
	case layout.next.Contains(x, y):
		lightbox.ShowNext()
	case layout.box.Contains(x, y):
		// 点击卡片内容不关闭
	default:
		lightbox.Close()
	}
}

// handleTick 按距上次 tick 的时间推进各系统
func (m *Model) handleTick(now time.Time) {
	dt := 1.0 / 30.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	m.gallery.tick(dt)
}

// 消息

type tickMsg time.Time

// 命令

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run 启动终端画廊（备用屏幕 + 鼠标移动事件）
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
