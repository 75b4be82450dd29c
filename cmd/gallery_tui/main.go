// cmd/gallery_tui/main.go
// 画廊终端预览
//
// 用法（在仓库根目录运行，读取 data/gallery.yaml）：
//
//	go run ./cmd/gallery_tui
//	go run ./cmd/gallery_tui --config=my_gallery.toml --log=gallery.log
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/gallery/internal/tui"
	"github.com/decker502/gallery/pkg/app"
	"github.com/decker502/gallery/pkg/embedded"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "画廊配置文件路径，默认读取当前目录下的 data/gallery.yaml")
	logPath := flag.String("log", "", "日志文件路径（终端界面占用标准输出，日志只能写文件）")
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "gallery")
		if err != nil {
			fmt.Fprintf(os.Stderr, "gallery_tui: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// 终端预览不嵌入数据，data/ 路径从工作目录读取
	embedded.Init(os.DirFS("."))

	cfg, catalog, err := app.LoadGallery(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gallery_tui: %v\n", err)
		return 1
	}

	if err := tui.Run(tui.Options{Config: cfg, Catalog: catalog}); err != nil {
		fmt.Fprintf(os.Stderr, "gallery_tui: %v\n", err)
		return 1
	}
	return 0
}
