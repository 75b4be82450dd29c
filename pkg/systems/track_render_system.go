package systems

import (
	"image/color"

	"github.com/decker502/gallery/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TrackRenderSystem 轨道渲染系统
// 只读取布局结果和偏移，按 -offset 平移后绘制可见条目
type TrackRenderSystem struct {
	layout    *TrackLayoutSystem
	catalog   *game.Catalog
	resources *game.ResourceManager
}

// NewTrackRenderSystem 创建轨道渲染系统
func NewTrackRenderSystem(layout *TrackLayoutSystem, catalog *game.Catalog, rm *game.ResourceManager) *TrackRenderSystem {
	return &TrackRenderSystem{
		layout:    layout,
		catalog:   catalog,
		resources: rm,
	}
}

// Draw 绘制轨道
func (s *TrackRenderSystem) Draw(screen *ebiten.Image) {
	track, ok := s.layout.Track()
	if !ok {
		return
	}
	items, screenX := s.layout.VisibleItems()
	for i, item := range items {
		entry, ok := s.catalog.Item(item.CatalogIndex)
		if !ok {
			continue
		}
		s.drawItem(screen, entry, screenX[i], track.OriginY, item.Width, track.ItemHeight)
	}
}

// drawItem 把图片缩放到条目尺寸后绘制
func (s *TrackRenderSystem) drawItem(screen *ebiten.Image, entry game.CatalogItem, x, y, w, h float64) {
	img := s.resources.ImageFor(entry)
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)

	// 占位图上标出描述文字
	if s.resources.IsPlaceholder(entry.SourceRef) {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, color.RGBA{255, 255, 255, 60}, false)
		ebitenutil.DebugPrintAt(screen, entry.Label, int(x)+8, int(y)+8)
	}
}
