package entities

import (
	"log"

	"github.com/decker502/gallery/pkg/components"
	"github.com/decker502/gallery/pkg/ecs"
	"github.com/decker502/gallery/pkg/game"
)

// NewCarouselEntity 创建轮播实体（滚动状态 + 轨道容器）
//
// 参数：
//   - em: 实体管理器
//   - itemHeight: 条目高度（像素）
//   - gap: 条目间距（像素）
//
// 返回：
//   - 轮播实体ID，轨道条目需要再调用 BuildTrack 填充
func NewCarouselEntity(em *ecs.EntityManager, itemHeight, gap float64) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.ScrollStateComponent{})
	ecs.AddComponent(em, entity, &components.TrackComponent{
		Items:      make([]ecs.EntityID, 0),
		ItemHeight: itemHeight,
		Gap:        gap,
	})
	return entity
}

// BuildTrack 为目录构建双份轨道
//
// 先按顺序创建全部原件（Position 0..N-1），再按相同顺序追加克隆
// （Position N..2N-1）。克隆保留原件的 CatalogIndex 并对辅助技术隐藏。
// 只在启动时调用一次，轨道之后不再增减条目。
//
// 返回：
//   - 按 Position 排列的条目实体
func BuildTrack(em *ecs.EntityManager, carousel ecs.EntityID, catalog *game.Catalog) []ecs.EntityID {
	track, ok := ecs.GetComponent[*components.TrackComponent](em, carousel)
	if !ok {
		log.Printf("[BuildTrack] Entity %d has no TrackComponent", carousel)
		return nil
	}

	n := catalog.Len()
	items := make([]ecs.EntityID, 0, 2*n)
	for copyIndex := 0; copyIndex < 2; copyIndex++ {
		isClone := copyIndex == 1
		for i := 0; i < n; i++ {
			entity := em.CreateEntity()
			ecs.AddComponent(em, entity, &components.TrackItemComponent{
				CatalogIndex: i,
				Position:     copyIndex*n + i,
				IsClone:      isClone,
				Hidden:       isClone,
			})
			items = append(items, entity)
		}
	}

	track.Items = items
	log.Printf("[BuildTrack] Built track with %d items (%d originals + %d clones)", len(items), n, n)
	return items
}

// NewLightboxEntity 创建灯箱实体（初始关闭）
func NewLightboxEntity(em *ecs.EntityManager) ecs.EntityID {
	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.LightboxComponent{})
	return entity
}

// NewPageEntity 创建宿主页面滚动实体
//
// 参数：
//   - pageHeight: 页面总高度
//   - viewportHeight: 窗口高度
func NewPageEntity(em *ecs.EntityManager, pageHeight, viewportHeight float64) ecs.EntityID {
	entity := em.CreateEntity()
	maxY := pageHeight - viewportHeight
	if maxY < 0 {
		maxY = 0
	}
	ecs.AddComponent(em, entity, &components.PageScrollComponent{MaxY: maxY})
	return entity
}
