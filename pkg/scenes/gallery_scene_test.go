package scenes

import (
	"testing"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/utils"
)

const testFrame = 1.0 / 60.0

// newTestScene 创建 4 个条目的画廊场景（图片缺失，使用 400×500 占位尺寸）
func newTestScene(t *testing.T) *GalleryScene {
	t.Helper()
	cfg := config.DefaultGalleryConfig()
	cfg.Items = []config.GalleryItemSource{
		{Src: "gallery/a.jpg", Alt: "A"},
		{Src: "gallery/b.jpg", Alt: "B"},
		{Src: "gallery/c.jpg", Alt: "C"},
		{Src: "gallery/d.jpg", Alt: "D"},
	}
	catalog, err := game.BuildCatalog(cfg.Items)
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}
	return NewGalleryScene(cfg, catalog, game.NewResourceManager(nil))
}

// feed 依次喂入指针采样，每个采样一帧
func feed(s *GalleryScene, samples ...utils.PointerSample) {
	for _, sample := range samples {
		s.step(testFrame, FrameInput{Pointer: sample})
	}
}

func (s *GalleryScene) scrollState(t *testing.T) *components.ScrollStateComponent {
	t.Helper()
	state, ok := ecs.GetComponent[*components.ScrollStateComponent](s.entityManager, s.carousel)
	if !ok {
		t.Fatal("carousel has no ScrollStateComponent")
	}
	return state
}

func (s *GalleryScene) pageScroll(t *testing.T) *components.PageScrollComponent {
	t.Helper()
	page, ok := ecs.GetComponent[*components.PageScrollComponent](s.entityManager, s.page)
	if !ok {
		t.Fatal("page has no PageScrollComponent")
	}
	return page
}

func TestGallerySceneImplementsSceneInterfaces(t *testing.T) {
	scene := newTestScene(t)
	var _ game.Scene = scene
	var _ game.LayoutAware = scene
}

func TestGallerySceneAutoplayRuns(t *testing.T) {
	scene := newTestScene(t)
	feed(scene, utils.PointerSample{X: 10, Y: 10})

	if scene.Autoplay().State() != components.AutoplayRunning {
		t.Fatal("Autoplay should run with the pointer away from the track")
	}
	if scene.scrollState(t).Offset <= 0 {
		t.Error("Offset should advance")
	}
}

func TestGallerySceneHover(t *testing.T) {
	scene := newTestScene(t)
	feed(scene, utils.PointerSample{X: 100, Y: 250})

	if scene.Autoplay().State() != components.AutoplaySuspended {
		t.Fatal("Hovering over the track should suspend autoplay")
	}

	feed(scene, utils.PointerSample{X: 100, Y: 600})
	if scene.Autoplay().State() != components.AutoplayRunning {
		t.Fatal("Leaving the track should resume autoplay")
	}
}

func TestGallerySceneClickOpensAndBackdropCloses(t *testing.T) {
	scene := newTestScene(t)
	onTrack := utils.PointerSample{X: 100, Y: 250}
	pressed := onTrack
	pressed.Pressed = true

	feed(scene, onTrack, pressed, onTrack)
	if !scene.Lightbox().IsOpen() {
		t.Fatal("Click on the track should open the lightbox")
	}
	if got := scene.Lightbox().CurrentIndex(); got != 0 {
		t.Errorf("Expected lightbox at index 0, got %d", got)
	}
	if !scene.pageScroll(t).Locked {
		t.Error("Page scroll should be locked while the lightbox is open")
	}

	// 灯箱打开时页面滚轮无效
	scene.step(testFrame, FrameInput{Pointer: onTrack, WheelY: -1})
	if scene.pageScroll(t).Y != 0 {
		t.Error("Wheel should not scroll the page while locked")
	}

	backdrop := utils.PointerSample{X: 200, Y: 40}
	backdropPressed := backdrop
	backdropPressed.Pressed = true
	feed(scene, backdrop, backdropPressed, backdrop)

	if scene.Lightbox().IsOpen() {
		t.Fatal("Backdrop click should close the lightbox")
	}
	if scene.pageScroll(t).Locked {
		t.Error("Page scroll should unlock after close")
	}
	if scene.Autoplay().State() != components.AutoplayRunning {
		t.Error("Autoplay should resume immediately after close")
	}
}

// TestGallerySceneTouchTapThenEscape 触摸轻点打开灯箱，Esc 关闭的同一帧恢复自动滚动
func TestGallerySceneTouchTapThenEscape(t *testing.T) {
	scene := newTestScene(t)
	feed(scene,
		utils.PointerSample{X: 100, Y: 250, Pressed: true, Touch: true},
		utils.PointerSample{Touch: true},
	)
	if !scene.Lightbox().IsOpen() {
		t.Fatal("Tap on the track should open the lightbox")
	}

	scene.step(testFrame, FrameInput{Pointer: utils.PointerSample{Touch: true}, Keys: []utils.NavKey{utils.NavClose}})
	if scene.Lightbox().IsOpen() {
		t.Fatal("Escape should close the lightbox")
	}
	if got := scene.Autoplay().State(); got != components.AutoplayRunning {
		t.Fatalf("Expected autoplay running on the closing frame, got %s", got)
	}
	if scene.interactionSystem.HasPendingResume() {
		t.Error("No resume cooldown should be pending after a tap")
	}
}

func TestGallerySceneKeys(t *testing.T) {
	scene := newTestScene(t)
	scene.Lightbox().Open(0)

	scene.step(testFrame, FrameInput{Keys: []utils.NavKey{utils.NavPrev}})
	if got := scene.Lightbox().CurrentIndex(); got != 3 {
		t.Errorf("Expected index 3 after ArrowLeft, got %d", got)
	}
	scene.step(testFrame, FrameInput{Keys: []utils.NavKey{utils.NavClose}})
	if scene.Lightbox().IsOpen() {
		t.Error("Escape should close the lightbox")
	}
}

func TestGallerySceneWheelScrollsPage(t *testing.T) {
	scene := newTestScene(t)
	scene.step(testFrame, FrameInput{WheelY: -1})

	if got := scene.pageScroll(t).Y; got != config.PageWheelStep {
		t.Fatalf("Expected page Y %.0f, got %.0f", config.PageWheelStep, got)
	}
	track, _ := scene.layoutSystem.Track()
	if want := config.TrackTopY - config.PageWheelStep; track.OriginY != want {
		t.Errorf("Expected track origin Y %.0f, got %.0f", want, track.OriginY)
	}
}

func TestGallerySceneLayout(t *testing.T) {
	scene := newTestScene(t)
	scene.Layout(800, 400)

	track, _ := scene.layoutSystem.Track()
	if track.ItemHeight != 400*trackHeightRatio {
		t.Errorf("Expected item height %.0f for a short window, got %.0f", 400*trackHeightRatio, track.ItemHeight)
	}
	if track.ViewportWidth != 800 {
		t.Errorf("Expected viewport width 800, got %.0f", track.ViewportWidth)
	}
	if w, h := scene.Lightbox().ScreenSize(); w != 800 || h != 400 {
		t.Errorf("Expected lightbox screen 800x400, got %.0fx%.0f", w, h)
	}
	if got := scene.pageScroll(t).MaxY; got != config.PageHeight-400 {
		t.Errorf("Expected page MaxY %.0f, got %.0f", config.PageHeight-400, got)
	}
}
