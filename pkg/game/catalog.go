package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decker502/gallery/pkg/config"
)

// ErrMissingImageRef 原始条目缺少图片引用
// 目录中缺一项会让灯箱索引错位，因此构建时直接失败
var ErrMissingImageRef = errors.New("gallery item is missing an image reference")

// CatalogItem 画廊目录中的一项，构建后不可变
type CatalogItem struct {
	Index     int    // 在目录中的位置（从 0 开始）
	SourceRef string // 图片引用（相对资源目录的路径）
	Label     string // 无障碍描述文字
}

// Catalog 按原始顺序排列、不含克隆的图片目录
// 轨道条目和灯箱都通过 Index 引用同一个目录
type Catalog struct {
	items []CatalogItem
}

// BuildCatalog 从原始条目构建目录
//
// 按输入顺序为每个条目分配 Index。任何条目缺少图片引用都会返回
// 包装了 ErrMissingImageRef 的错误，错误信息中包含条目位置。
// 空输入返回空目录（不是错误）。
func BuildCatalog(sources []config.GalleryItemSource) (*Catalog, error) {
	items := make([]CatalogItem, 0, len(sources))
	for i, src := range sources {
		ref := strings.TrimSpace(src.Src)
		if ref == "" {
			return nil, fmt.Errorf("item %d (alt %q): %w", i, src.Alt, ErrMissingImageRef)
		}
		items = append(items, CatalogItem{
			Index:     i,
			SourceRef: ref,
			Label:     src.Alt,
		})
	}
	return &Catalog{items: items}, nil
}

// Len 返回目录条目数
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// IsEmpty 目录是否为空
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// Item 返回指定位置的条目
// 越界返回 false，调用方需要循环索引时应先归一化
func (c *Catalog) Item(index int) (CatalogItem, bool) {
	if index < 0 || index >= c.Len() {
		return CatalogItem{}, false
	}
	return c.items[index], true
}

// Items 返回全部条目的副本
func (c *Catalog) Items() []CatalogItem {
	out := make([]CatalogItem, c.Len())
	if c != nil {
		copy(out, c.items)
	}
	return out
}
