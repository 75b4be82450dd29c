package systems

import (
	"fmt"
	"math"
	"testing"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/entities"
	"github.com/decker502/gallery/pkg/game"
)

// 测试用布局：条目 100×100，间距 10，每个条目占 110 像素
const (
	testItemHeight = 100.0
	testGap        = 10.0
	testStride     = testItemHeight + testGap
	testViewport   = 1000.0
	testVelocity   = 33.0
	testResume     = 2.5
	testThreshold  = 4.0
	testCloseDelay = 0.3
	testFrame      = 1.0 / 60.0
)

// squareSizer 所有图片都是正方形
type squareSizer struct{}

func (squareSizer) ImageSize(int) (float64, float64) { return 400, 400 }

// fakeLocker 记录页面滚动锁状态
type fakeLocker struct {
	locked bool
	calls  int
}

func (l *fakeLocker) SetScrollLocked(locked bool) {
	l.locked = locked
	l.calls++
}

type galleryFixture struct {
	em          *ecs.EntityManager
	carousel    ecs.EntityID
	catalog     *game.Catalog
	layout      *TrackLayoutSystem
	autoplay    *AutoplaySystem
	interaction *InteractionSystem
	lightbox    *LightboxSystem
	locker      *fakeLocker
}

// newGalleryFixture 构建 n 个条目的完整画廊（原点 (0,0)，宽 1000）
func newGalleryFixture(t *testing.T, n int) *galleryFixture {
	t.Helper()

	sources := make([]config.GalleryItemSource, n)
	for i := range sources {
		sources[i] = config.GalleryItemSource{
			Src: fmt.Sprintf("gallery/%d.jpg", i),
			Alt: string(rune('A' + i)),
		}
	}
	catalog, err := game.BuildCatalog(sources)
	if err != nil {
		t.Fatalf("BuildCatalog failed: %v", err)
	}

	em := ecs.NewEntityManager()
	carousel := entities.NewCarouselEntity(em, testItemHeight, testGap)
	entities.BuildTrack(em, carousel, catalog)
	lightboxEntity := entities.NewLightboxEntity(em)

	f := &galleryFixture{
		em:       em,
		carousel: carousel,
		catalog:  catalog,
		locker:   &fakeLocker{},
	}
	f.layout = NewTrackLayoutSystem(em, carousel, squareSizer{})
	f.layout.Layout(0, 0, testViewport)
	f.autoplay = NewAutoplaySystem(em, carousel, f.layout, testVelocity)
	f.lightbox = NewLightboxSystem(em, lightboxEntity, carousel, catalog, f.locker, squareSizer{}, testCloseDelay)
	f.interaction = NewInteractionSystem(em, carousel, f.layout, f.lightbox, testResume, testThreshold)
	return f
}

func (f *galleryFixture) state(t *testing.T) *components.ScrollStateComponent {
	t.Helper()
	state, ok := ecs.GetComponent[*components.ScrollStateComponent](f.em, f.carousel)
	if !ok {
		t.Fatal("carousel has no ScrollStateComponent")
	}
	return state
}

// positionX 返回偏移为 0 时轨道位置 p 的中心 X
func positionX(p int) float64 {
	return float64(p)*testStride + testItemHeight/2
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
