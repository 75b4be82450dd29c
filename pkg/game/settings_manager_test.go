package game

import (
	"testing"

	"github.com/decker502/gallery/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.WindowWidth != config.GameWindowWidth || settings.WindowHeight != config.GameWindowHeight {
		t.Errorf("Window size: got %dx%d, want %dx%d",
			settings.WindowWidth, settings.WindowHeight, config.GameWindowWidth, config.GameWindowHeight)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	// 降级模式下 Save 不报错
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_gallery_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetWindowSize(1280, 720)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 新的设置管理器应读到保存的值
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.WindowWidth != 1280 || settings.WindowHeight != 720 {
		t.Errorf("Loaded window size: got %dx%d, want 1280x720", settings.WindowWidth, settings.WindowHeight)
	}
}

// TestSetWindowSizeClamp 测试窗口尺寸下限
func TestSetWindowSizeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"正常值", 800, 600, 800, 600},
		{"宽度过小", 10, 600, minWindowWidth, 600},
		{"高度过小", 800, 0, 800, minWindowHeight},
		{"负值", -5, -5, minWindowWidth, minWindowHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm.SetWindowSize(tt.width, tt.height)
			got := sm.GetSettings()
			if got.WindowWidth != tt.wantW || got.WindowHeight != tt.wantH {
				t.Errorf("SetWindowSize(%d, %d): got %dx%d, want %dx%d",
					tt.width, tt.height, got.WindowWidth, got.WindowHeight, tt.wantW, tt.wantH)
			}
		})
	}
}
