// cmd/check_gallery/main.go
// 校验画廊配置和图片资源
//
// 用法（在仓库根目录运行）：
//
//	go run ./cmd/check_gallery
//	go run ./cmd/check_gallery --config=my_gallery.toml --assets=./photos --strict
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"os"

	"github.com/decker502/gallery/pkg/app"
	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/embedded"
	"github.com/decker502/gallery/pkg/game"
)

var (
	configPath = flag.String("config", "", "画廊配置文件路径，默认 data/gallery.yaml")
	assetsDir  = flag.String("assets", "", "图片根目录，默认使用配置中的 assetsDir")
	strict     = flag.Bool("strict", false, "有图片缺失时以非零状态退出")
)

func main() {
	flag.Parse()
	embedded.Init(os.DirFS("."))

	path := *configPath
	if path == "" {
		path = config.DefaultGalleryConfigPath
	}
	data, err := embedded.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取配置失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("配置文件: %s (%d bytes, MD5 %x)\n", path, len(data), md5.Sum(data))

	cfg, catalog, err := app.LoadGallery(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置有效：%d 个条目，滚动速度 %.1f px/s，恢复冷却 %.1fs\n",
		catalog.Len(), cfg.Velocity(), cfg.ResumeDelay)

	dir := cfg.AssetsDir
	if *assetsDir != "" {
		dir = *assetsDir
	}
	rm := game.NewResourceManager(os.DirFS(dir))

	missing := 0
	for _, item := range catalog.Items() {
		w, h := rm.ImageSize(item.SourceRef)
		if rm.IsPlaceholder(item.SourceRef) {
			fmt.Printf("❌ [%d] %s 缺失或无法解码（将显示占位图）\n", item.Index, item.SourceRef)
			missing++
			continue
		}
		fmt.Printf("✅ [%d] %s %dx%d %q\n", item.Index, item.SourceRef, w, h, item.Label)
	}

	if missing > 0 {
		fmt.Printf("有 %d 张图片缺失（资源目录 %s）\n", missing, dir)
		if *strict {
			os.Exit(1)
		}
	}
}
