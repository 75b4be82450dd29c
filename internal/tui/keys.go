package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap 终端画廊的全部按键绑定
type keyMap struct {
	Quit  key.Binding
	Help  key.Binding
	Open  key.Binding
	Close key.Binding
	Prev  key.Binding
	Next  key.Binding
}

// defaultKeyMap 返回默认按键绑定
func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open leftmost image"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close lightbox"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous image"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next image"),
		),
	}
}

// ShortHelp 简短帮助中显示的按键
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Help, k.Quit}
}

// FullHelp 完整帮助中显示的按键（按列分组）
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close},
		{k.Prev, k.Next},
		{k.Help, k.Quit},
	}
}
