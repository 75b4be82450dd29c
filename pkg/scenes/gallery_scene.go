package scenes

import (
	"log"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/entities"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/systems"
	"github.com/decker502/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// trackHeightRatio 轨道条目最多占窗口高度的比例（小窗口时缩小条目）
const trackHeightRatio = 0.4

// FrameInput 一帧的输入快照
// Update 从 ebiten 采样，测试直接构造
type FrameInput struct {
	Pointer utils.PointerSample
	Keys    []utils.NavKey
	WheelY  float64
}

// GalleryScene 画廊页面场景
//
// 页面可以纵向滚动，画廊轨道位于页面中部。场景负责：
//   - 组装实体和系统（布局、自动滚动、交互、灯箱及其渲染）
//   - 把指针手势分发给交互系统或灯箱
//   - 响应窗口尺寸变化重新布局
//   - 实现 systems.ScrollLocker：灯箱打开时页面滚动被锁定
type GalleryScene struct {
	entityManager *ecs.EntityManager
	catalog       *game.Catalog
	resources     *game.ResourceManager
	cfg           *config.GalleryConfig

	carousel ecs.EntityID
	page     ecs.EntityID

	layoutSystem      *systems.TrackLayoutSystem
	autoplaySystem    *systems.AutoplaySystem
	interactionSystem *systems.InteractionSystem
	lightboxSystem    *systems.LightboxSystem
	trackRender       *systems.TrackRenderSystem
	lightboxRender    *systems.LightboxRenderSystem

	gestures *utils.GestureTracker

	screenWidth  float64
	screenHeight float64

	showDebug bool
}

// NewGalleryScene 创建画廊场景
//
// 参数：
//   - cfg: 已校验的画廊配置
//   - catalog: 由配置条目构建的目录
//   - rm: 图片资源管理器
func NewGalleryScene(cfg *config.GalleryConfig, catalog *game.Catalog, rm *game.ResourceManager) *GalleryScene {
	em := ecs.NewEntityManager()

	s := &GalleryScene{
		entityManager: em,
		catalog:       catalog,
		resources:     rm,
		cfg:           cfg,
		screenWidth:   config.GameWindowWidth,
		screenHeight:  config.GameWindowHeight,
	}

	s.carousel = entities.NewCarouselEntity(em, cfg.ItemHeight, cfg.ItemGap)
	entities.BuildTrack(em, s.carousel, catalog)
	lightbox := entities.NewLightboxEntity(em)
	s.page = entities.NewPageEntity(em, config.PageHeight, s.screenHeight)

	sizer := game.CatalogSizer{Catalog: catalog, Resources: rm}
	s.layoutSystem = systems.NewTrackLayoutSystem(em, s.carousel, sizer)
	s.autoplaySystem = systems.NewAutoplaySystem(em, s.carousel, s.layoutSystem, cfg.Velocity())
	s.lightboxSystem = systems.NewLightboxSystem(em, lightbox, s.carousel, catalog, s, sizer, cfg.CloseDelay)
	s.interactionSystem = systems.NewInteractionSystem(em, s.carousel, s.layoutSystem, s.lightboxSystem,
		cfg.ResumeDelay, cfg.DragThreshold)
	s.trackRender = systems.NewTrackRenderSystem(s.layoutSystem, catalog, rm)
	s.lightboxRender = systems.NewLightboxRenderSystem(s.lightboxSystem, rm)

	s.gestures = utils.NewGestureTracker(s.layoutSystem.Contains)

	s.relayout()
	log.Printf("[GalleryScene] Created with %d catalog items", catalog.Len())
	return s
}

// Update 采样输入并推进一帧
func (s *GalleryScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}
	_, wheelY := ebiten.Wheel()
	s.step(deltaTime, FrameInput{
		Pointer: utils.SamplePointer(),
		Keys:    utils.JustPressedNavKeys(),
		WheelY:  wheelY,
	})
}

// step 处理一帧输入并更新所有系统
//
// 顺序：页面滚动 → 键盘 → 手势 → 冷却计时 → 自动滚动 → 灯箱过渡。
// 灯箱打开时手势区域置空，鼠标下一帧收到离开事件，悬停暂停随之解除。
func (s *GalleryScene) step(deltaTime float64, in FrameInput) {
	if in.WheelY != 0 {
		s.scrollPage(-in.WheelY * config.PageWheelStep)
	}

	for _, key := range in.Keys {
		s.lightboxSystem.HandleKey(key)
	}

	if s.lightboxSystem.IsOpen() {
		s.gestures.SetRegion(nil)
	} else {
		s.gestures.SetRegion(s.layoutSystem.Contains)
	}
	for _, ev := range s.gestures.Feed(in.Pointer) {
		s.dispatchGesture(ev)
	}

	s.interactionSystem.Update(deltaTime)
	s.autoplaySystem.Update(deltaTime)
	s.lightboxSystem.Update(deltaTime)
}

// dispatchGesture 灯箱打开时点击交给灯箱，其余事件交给轨道交互
func (s *GalleryScene) dispatchGesture(ev utils.GestureEvent) {
	if ev.Kind == utils.GestureClick && s.lightboxSystem.IsOpen() {
		s.lightboxSystem.HandleClick(ev.X, ev.Y)
		return
	}
	s.interactionSystem.HandleGesture(ev)
}

// Layout 窗口尺寸变化时重新布局
func (s *GalleryScene) Layout(width, height int) {
	s.screenWidth = float64(width)
	s.screenHeight = float64(height)
	s.relayout()
}

// relayout 按当前屏幕尺寸重新计算轨道、灯箱和页面
func (s *GalleryScene) relayout() {
	height := s.cfg.ItemHeight
	if limit := s.screenHeight * trackHeightRatio; height > limit {
		height = limit
	}
	s.layoutSystem.SetItemHeight(height)
	s.layoutSystem.Layout(0, config.TrackTopY-s.pageY(), s.screenWidth)
	s.lightboxSystem.SetScreenSize(s.screenWidth, s.screenHeight)

	if page, ok := ecs.GetComponent[*components.PageScrollComponent](s.entityManager, s.page); ok {
		page.MaxY = config.PageHeight - s.screenHeight
		if page.MaxY < 0 {
			page.MaxY = 0
		}
		if page.Y > page.MaxY {
			page.Y = page.MaxY
		}
	}
}

// scrollPage 滚动页面，轨道跟随移动
func (s *GalleryScene) scrollPage(dy float64) {
	page, ok := ecs.GetComponent[*components.PageScrollComponent](s.entityManager, s.page)
	if !ok {
		return
	}
	page.ScrollBy(dy)
	s.layoutSystem.SetOrigin(0, config.TrackTopY-page.Y)
}

// SetScrollLocked 实现 systems.ScrollLocker
func (s *GalleryScene) SetScrollLocked(locked bool) {
	if page, ok := ecs.GetComponent[*components.PageScrollComponent](s.entityManager, s.page); ok {
		page.Locked = locked
		log.Printf("[GalleryScene] Page scroll locked=%v", locked)
	}
}

// pageY 返回页面当前滚动位置
func (s *GalleryScene) pageY() float64 {
	if page, ok := ecs.GetComponent[*components.PageScrollComponent](s.entityManager, s.page); ok {
		return page.Y
	}
	return 0
}

// Lightbox 返回灯箱系统（供宿主和测试查询状态）
func (s *GalleryScene) Lightbox() *systems.LightboxSystem {
	return s.lightboxSystem
}

// Autoplay 返回自动滚动系统
func (s *GalleryScene) Autoplay() *systems.AutoplaySystem {
	return s.autoplaySystem
}
