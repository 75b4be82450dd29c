// main.go
// 画廊桌面端入口
//
// 用法：
//
//	go run . --verbose
//	go run . --config=my_gallery.toml --assets=./photos
package main

import (
	"flag"
	"log"

	"github.com/decker502/gallery/pkg/app"
	"github.com/decker502/gallery/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "详细日志")
	configPath = flag.String("config", "", "画廊配置文件路径（.yaml/.yml/.toml），默认使用内置配置")
	assetsDir  = flag.String("assets", "", "图片根目录，默认使用配置文件中的 assetsDir")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		AssetsDir:  *assetsDir,
	})
	if err != nil {
		log.Fatalf("画廊初始化失败: %v", err)
	}

	settings := gameApp.Settings()
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetWindowTitle("Gallery")

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
