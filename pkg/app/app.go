// Package app 提供画廊应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/gallery/pkg/config"
	"github.com/decker502/gallery/pkg/game"
	"github.com/decker502/gallery/pkg/scenes"
	"github.com/decker502/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// gdataAppName gdata 存储目录名
const gdataAppName = "decker502_gallery"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 画廊配置文件，为空时使用嵌入的 data/gallery.yaml
	ConfigPath string
	// AssetsDir 图片根目录，为空时使用配置文件中的 assetsDir
	AssetsDir string
}

// App 是画廊应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化画廊应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	galleryConfig, catalog, err := LoadGallery(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	assetsDir := galleryConfig.AssetsDir
	if cfg.AssetsDir != "" {
		assetsDir = cfg.AssetsDir
	}
	resourceManager := game.NewResourceManager(os.DirFS(assetsDir))
	log.Printf("[App] Assets directory: %s", assetsDir)

	settingsManager, err := game.NewSettingsManager(openGdata())
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGalleryScene(galleryConfig, catalog, resourceManager))

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadGallery 加载画廊配置并构建目录
// path 为空时使用嵌入的默认配置
func LoadGallery(path string) (*config.GalleryConfig, *game.Catalog, error) {
	if path == "" {
		path = config.DefaultGalleryConfigPath
	}
	galleryConfig, err := config.LoadGalleryConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("画廊配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s: %d items, velocity %.1f px/s", path, len(galleryConfig.Items), galleryConfig.Velocity())

	catalog, err := game.BuildCatalog(galleryConfig.Items)
	if err != nil {
		return nil, nil, fmt.Errorf("画廊目录构建失败: %w", err)
	}
	return galleryConfig, catalog, nil
}

// openGdata 打开跨平台存储，失败时返回 nil（设置退化为仅内存）
func openGdata() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
		return nil
	}
	if path := utils.GetStoragePath(); path != "" {
		log.Printf("[App] Storage path: %s", path)
	}
	manager, err := gdata.Open(gdata.Config{AppName: gdataAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}

// Settings 返回当前窗口设置，供 main 在启动前应用
func (a *App) Settings() *game.GallerySettings {
	return a.settingsManager.GetSettings()
}

// Update 更新画廊逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			settings := a.settingsManager.GetSettings()
			ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", settings.WindowWidth, settings.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏（移动端没有窗口）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		w, h := ebiten.WindowSize()
		a.settingsManager.SetWindowSize(w, h)
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 画廊是响应式的：逻辑尺寸跟随窗口，场景在尺寸变化时重新布局轨道
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		outsideWidth, outsideHeight = config.GameWindowWidth, config.GameWindowHeight
	}
	a.sceneManager.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
