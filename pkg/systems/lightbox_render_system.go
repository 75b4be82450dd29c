package systems

import (
	"image/color"

	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LightboxRenderSystem 灯箱渲染系统
//
// 绘制顺序：背景遮罩 → 图片 → 控件 → 说明文字。
// 整体透明度跟随 LightboxComponent.Fade，关闭后淡出期间仍绘制最后一张图。
type LightboxRenderSystem struct {
	lightbox  *LightboxSystem
	resources *game.ResourceManager
}

// NewLightboxRenderSystem 创建灯箱渲染系统
func NewLightboxRenderSystem(lightbox *LightboxSystem, rm *game.ResourceManager) *LightboxRenderSystem {
	return &LightboxRenderSystem{
		lightbox:  lightbox,
		resources: rm,
	}
}

// Draw 绘制灯箱
func (s *LightboxRenderSystem) Draw(screen *ebiten.Image) {
	state, ok := s.lightbox.State()
	if !ok || state.Fade <= 0 {
		return
	}

	var alpha float64
	if state.IsOpen {
		alpha = utils.EaseOutCubic(state.Fade)
	} else {
		alpha = utils.EaseInCubic(state.Fade)
	}
	sw, sh := s.lightbox.ScreenSize()

	backdrop := color.RGBA{A: uint8(255 * config.LightboxBackdropAlpha * alpha)}
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), backdrop, false)

	if item, ok := s.lightbox.Current(); ok {
		s.drawImage(screen, item, alpha)
	}
	s.drawControls(screen, sw, sh, alpha)
}

// drawImage 绘制居中适配的图片和描述
func (s *LightboxRenderSystem) drawImage(screen *ebiten.Image, item game.CatalogItem, alpha float64) {
	rect := s.lightbox.ImageRect()
	img := s.resources.ImageFor(item)
	bounds := img.Bounds()
	if rect.W <= 0 || bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W/float64(bounds.Dx()), rect.H/float64(bounds.Dy()))
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)

	if alpha >= 1 {
		ebitenutil.DebugPrintAt(screen, item.Label, int(rect.X), int(rect.Y+rect.H)+8)
	}
}

// drawControls 绘制关闭、上一张、下一张按钮
func (s *LightboxRenderSystem) drawControls(screen *ebiten.Image, sw, sh, alpha float64) {
	closeRect, prevRect, nextRect := config.LightboxControlRects(sw, sh)
	clr := color.RGBA{R: 255, G: 255, B: 255, A: uint8(200 * alpha)}

	for _, r := range []config.ControlRect{closeRect, prevRect, nextRect} {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, clr, true)
	}

	// 关闭按钮画叉
	pad := float32(14)
	x0, y0 := float32(closeRect.X)+pad, float32(closeRect.Y)+pad
	x1, y1 := float32(closeRect.X+closeRect.W)-pad, float32(closeRect.Y+closeRect.H)-pad
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
	vector.StrokeLine(screen, x0, y1, x1, y0, 2, clr, true)

	// 左右箭头
	s.drawChevron(screen, prevRect, -1, clr)
	s.drawChevron(screen, nextRect, 1, clr)
}

// drawChevron 在矩形内绘制箭头，dir 为 -1 向左，1 向右
func (s *LightboxRenderSystem) drawChevron(screen *ebiten.Image, r config.ControlRect, dir float32, clr color.Color) {
	cx := float32(r.X + r.W/2)
	cy := float32(r.Y + r.H/2)
	arm := float32(r.W / 5)
	tipX := cx + dir*arm/2
	tailX := cx - dir*arm/2
	vector.StrokeLine(screen, tailX, cy-arm, tipX, cy, 2, clr, true)
	vector.StrokeLine(screen, tipX, cy, tailX, cy+arm, 2, clr, true)
}
