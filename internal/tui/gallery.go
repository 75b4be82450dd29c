package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/entities"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/systems"
	"github.com/decker502/gallery/pkg/utils"
)

// 终端中的轨道尺寸（单位：字符格）
const (
	// cardHeight 卡片高度（上边框、标签、下边框）
	cardHeight = 3
	// cardGap 卡片间距
	cardGap = 1
	// trackTop 轨道所在的行
	trackTop = 2
	// maxLabelWidth 卡片标签最大宽度，超出截断
	maxLabelWidth = 24
	// pixelsPerCell 把像素单位的速度和阈值换算到字符格
	pixelsPerCell = 8.0
)

// labelSizer 按卡片标签宽度给出"图片尺寸"
// 返回 (宽, cardHeight)，布局后卡片宽度就等于标签宽度加边框
type labelSizer struct {
	catalog *game.Catalog
}

func (s labelSizer) ImageSize(catalogIndex int) (float64, float64) {
	item, ok := s.catalog.Item(catalogIndex)
	if !ok {
		return cardHeight, cardHeight
	}
	return float64(utf8.RuneCountInString(cardLabel(item)) + 4), cardHeight
}

// cardLabel 返回卡片上显示的文字
func cardLabel(item game.CatalogItem) string {
	return truncate(fmt.Sprintf("%d %s", item.Index+1, item.Label), maxLabelWidth)
}

// truncate 按字符数截断，超出时以 … 结尾
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// gallery 终端宿主中的画廊实体和系统
// 与图形宿主使用同一套系统，只是单位换成字符格
type gallery struct {
	entityManager *ecs.EntityManager
	carousel      ecs.EntityID
	catalog       *game.Catalog

	layout      *systems.TrackLayoutSystem
	autoplay    *systems.AutoplaySystem
	interaction *systems.InteractionSystem
	lightbox    *systems.LightboxSystem

	gestures *utils.GestureTracker
	pointer  utils.PointerSample
}

func newGallery(cfg *config.GalleryConfig, catalog *game.Catalog) *gallery {
	em := ecs.NewEntityManager()
	g := &gallery{
		entityManager: em,
		catalog:       catalog,
	}

	g.carousel = entities.NewCarouselEntity(em, cardHeight, cardGap)
	entities.BuildTrack(em, g.carousel, catalog)
	lightbox := entities.NewLightboxEntity(em)

	sizer := labelSizer{catalog: catalog}
	g.layout = systems.NewTrackLayoutSystem(em, g.carousel, sizer)
	g.autoplay = systems.NewAutoplaySystem(em, g.carousel, g.layout, cfg.Velocity()/pixelsPerCell)
	// 终端没有页面滚动，灯箱不需要滚动锁；没有图片，关闭后立即清空
	g.lightbox = systems.NewLightboxSystem(em, lightbox, g.carousel, catalog, nil, sizer, 0)
	g.interaction = systems.NewInteractionSystem(em, g.carousel, g.layout, g.lightbox,
		cfg.ResumeDelay, cfg.DragThreshold/pixelsPerCell)

	g.gestures = utils.NewGestureTracker(g.layout.Contains)
	return g
}

// resize 终端尺寸变化时重新布局
func (g *gallery) resize(width, height int) {
	g.layout.Layout(0, trackTop, float64(width))
	g.lightbox.SetScreenSize(float64(width), float64(height))
}

// feed 处理一次指针变化
// clickHandler 在灯箱打开时接管点击
func (g *gallery) feed(sample utils.PointerSample, lightboxClick func(x, y float64)) {
	if g.lightbox.IsOpen() {
		g.gestures.SetRegion(nil)
	} else {
		g.gestures.SetRegion(g.layout.Contains)
	}
	g.pointer = sample
	for _, ev := range g.gestures.Feed(sample) {
		if ev.Kind == utils.GestureClick && g.lightbox.IsOpen() {
			lightboxClick(ev.X, ev.Y)
			continue
		}
		g.interaction.HandleGesture(ev)
	}
}

// tick 推进一帧
func (g *gallery) tick(deltaTime float64) {
	// 灯箱开关会改变有效区域，重新喂一次当前指针以产生悬停进入/离开
	g.feed(g.pointer, func(float64, float64) {})
	g.interaction.Update(deltaTime)
	g.autoplay.Update(deltaTime)
	g.lightbox.Update(deltaTime)
}

// openLeftmost 打开视口最左侧完整可见的条目
func (g *gallery) openLeftmost() {
	items, xs := g.layout.VisibleItems()
	for i, item := range items {
		if xs[i] >= 0 {
			g.lightbox.Open(item.CatalogIndex)
			return
		}
	}
	if len(items) > 0 {
		g.lightbox.Open(items[0].CatalogIndex)
	}
}

// state 返回滚动状态
func (g *gallery) state() (*components.ScrollStateComponent, bool) {
	return ecs.GetComponent[*components.ScrollStateComponent](g.entityManager, g.carousel)
}
