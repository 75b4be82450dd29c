package game

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// 占位图尺寸（图片缺失时使用，4:5 竖图）
const (
	PlaceholderWidth  = 400
	PlaceholderHeight = 500
)

// placeholderPalette 占位图背景色，按目录索引循环使用
var placeholderPalette = []color.RGBA{
	{R: 0x3a, G: 0x2e, B: 0x27, A: 0xff},
	{R: 0x5c, G: 0x47, B: 0x3a, A: 0xff},
	{R: 0x27, G: 0x33, B: 0x3a, A: 0xff},
	{R: 0x4a, G: 0x3b, B: 0x52, A: 0xff},
}

// ResourceManager 负责画廊图片的加载和缓存
//
// 图片尺寸通过 image.DecodeConfig 读取，不需要 GPU 上下文，
// 可以在游戏循环启动前完成轨道布局；像素数据在首次绘制时才加载。
// 缺失或损坏的图片用纯色占位图代替，并通过 IsPlaceholder 告知渲染系统绘制文字标签。
//
// 非线程安全，只在游戏主循环中使用。
type ResourceManager struct {
	assets       fs.FS
	imageCache   map[string]*ebiten.Image // 路径 -> 图片
	sizeCache    map[string]image.Point   // 路径 -> 尺寸
	placeholders map[string]bool          // 使用占位图的路径
}

// NewResourceManager 创建资源管理器
//
// 参数：
//   - assets: 图片根文件系统（通常为 os.DirFS(assetsDir)）
func NewResourceManager(assets fs.FS) *ResourceManager {
	return &ResourceManager{
		assets:       assets,
		imageCache:   make(map[string]*ebiten.Image),
		sizeCache:    make(map[string]image.Point),
		placeholders: make(map[string]bool),
	}
}

// ImageSize 返回图片尺寸
// 读取失败时返回占位图尺寸，并把该路径标记为占位图
func (rm *ResourceManager) ImageSize(ref string) (int, int) {
	if size, ok := rm.sizeCache[ref]; ok {
		return size.X, size.Y
	}

	size, err := rm.decodeSize(ref)
	if err != nil {
		log.Printf("[ResourceManager] Image %s unavailable, using placeholder: %v", ref, err)
		size = image.Point{X: PlaceholderWidth, Y: PlaceholderHeight}
		rm.placeholders[ref] = true
	}
	rm.sizeCache[ref] = size
	return size.X, size.Y
}

// decodeSize 只解码图片头部获取尺寸
func (rm *ResourceManager) decodeSize(ref string) (image.Point, error) {
	if rm.assets == nil {
		return image.Point{}, fmt.Errorf("no assets filesystem")
	}
	file, err := rm.assets.Open(path.Clean(ref))
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to open image file %s: %w", ref, err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return image.Point{}, fmt.Errorf("failed to decode image header %s: %w", ref, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return image.Point{}, fmt.Errorf("image %s has empty bounds", ref)
	}
	return image.Point{X: cfg.Width, Y: cfg.Height}, nil
}

// IsPlaceholder 判断该路径是否使用占位图
func (rm *ResourceManager) IsPlaceholder(ref string) bool {
	rm.ImageSize(ref)
	return rm.placeholders[ref]
}

// LoadImage 加载并缓存图片
// 失败时返回错误，调用方可改用 PlaceholderImage
func (rm *ResourceManager) LoadImage(ref string) (*ebiten.Image, error) {
	if cached, exists := rm.imageCache[ref]; exists {
		return cached, nil
	}
	if rm.assets == nil {
		return nil, fmt.Errorf("no assets filesystem")
	}

	file, err := rm.assets.Open(path.Clean(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", ref, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", ref, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[ref] = ebitenImg
	return ebitenImg, nil
}

// ImageFor 返回目录条目的图片，加载失败时返回占位图
// 必须在游戏循环内（Update/Draw）调用
func (rm *ResourceManager) ImageFor(item CatalogItem) *ebiten.Image {
	if !rm.IsPlaceholder(item.SourceRef) {
		img, err := rm.LoadImage(item.SourceRef)
		if err == nil {
			return img
		}
		log.Printf("[ResourceManager] %v, using placeholder", err)
		rm.placeholders[item.SourceRef] = true
	}
	return rm.placeholderImage(item)
}

// placeholderImage 创建（或复用）纯色占位图
func (rm *ResourceManager) placeholderImage(item CatalogItem) *ebiten.Image {
	key := "placeholder:" + item.SourceRef
	if cached, ok := rm.imageCache[key]; ok {
		return cached
	}
	w, h := rm.ImageSize(item.SourceRef)
	img := ebiten.NewImage(w, h)
	img.Fill(PlaceholderColor(item.Index))
	rm.imageCache[key] = img
	return img
}

// PlaceholderColor 返回目录索引对应的占位颜色
func PlaceholderColor(index int) color.RGBA {
	if index < 0 {
		index = -index
	}
	return placeholderPalette[index%len(placeholderPalette)]
}

// CatalogSizer 按目录索引查询图片尺寸
// 供轨道布局和灯箱命中判断使用
type CatalogSizer struct {
	Catalog   *Catalog
	Resources *ResourceManager
}

// ImageSize 返回目录索引对应图片的尺寸，索引越界时返回占位图尺寸
func (s CatalogSizer) ImageSize(catalogIndex int) (float64, float64) {
	item, ok := s.Catalog.Item(catalogIndex)
	if !ok || s.Resources == nil {
		return PlaceholderWidth, PlaceholderHeight
	}
	w, h := s.Resources.ImageSize(item.SourceRef)
	return float64(w), float64(h)
}
