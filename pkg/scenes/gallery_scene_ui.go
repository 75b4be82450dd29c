package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pageBackground = color.RGBA{R: 0x14, G: 0x12, B: 0x10, A: 0xff}
	sectionBand    = color.RGBA{R: 0x1e, G: 0x1a, B: 0x17, A: 0xff}
	accentColor    = color.RGBA{R: 0xc8, G: 0xa2, B: 0x6b, A: 0xff}
)

// Draw 绘制页面、轨道和灯箱
func (s *GalleryScene) Draw(screen *ebiten.Image) {
	screen.Fill(pageBackground)
	pageY := s.pageY()

	s.drawPageChrome(screen, pageY)
	s.trackRender.Draw(screen)
	s.drawDebug(screen)

	// 灯箱在最上层
	s.lightboxRender.Draw(screen)
}

// drawPageChrome 绘制页面标题和画廊区块背景（页面坐标减去滚动位置）
func (s *GalleryScene) drawPageChrome(screen *ebiten.Image, pageY float64) {
	titleY := 60 - pageY
	ebitenutil.DebugPrintAt(screen, "GALLERY", 40, int(titleY))
	vector.DrawFilledRect(screen, 40, float32(titleY+20), 64, 2, accentColor, false)

	track, ok := s.layoutSystem.Track()
	if !ok {
		return
	}
	bandTop := float32(track.OriginY - 40)
	bandHeight := float32(track.ItemHeight + 80)
	vector.DrawFilledRect(screen, 0, bandTop, float32(s.screenWidth), bandHeight, sectionBand, false)

	if s.catalog.IsEmpty() {
		ebitenutil.DebugPrintAt(screen, "No images configured", 40, int(track.OriginY))
	}

	footer := "Scroll the page with the mouse wheel. F11 toggles fullscreen."
	if utils.IsMobile() {
		footer = "Swipe the gallery, tap a photo to enlarge it."
	}
	footerY := config.PageHeight - 80 - pageY
	ebitenutil.DebugPrintAt(screen, footer, 40, int(footerY))
}

// drawDebug 显示自动滚动状态（F3 切换）
func (s *GalleryScene) drawDebug(screen *ebiten.Image) {
	if !s.showDebug {
		return
	}
	half := s.layoutSystem.ComputeHalfExtent()
	msg := fmt.Sprintf("autoplay: %s\noffset: %.1f / %.1f\nlightbox open: %v (index %d)\nresume pending: %v",
		s.autoplaySystem.State(),
		-s.layoutSystem.Translation(), half,
		s.lightboxSystem.IsOpen(), s.lightboxSystem.CurrentIndex(),
		s.interactionSystem.HasPendingResume(),
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, int(s.screenHeight)-72)
}
