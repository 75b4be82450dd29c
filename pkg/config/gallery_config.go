package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/decker502/gallery/pkg/embedded"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultGalleryConfigPath 内置默认画廊配置（嵌入资源）
const DefaultGalleryConfigPath = "data/gallery.yaml"

// 画廊行为默认值
const (
	// DefaultSpeedPerFrame 每帧自动滚动距离（像素），60fps 时约 33px/s
	DefaultSpeedPerFrame = 0.55

	// DefaultDesignFPS 速度标定所用的帧率
	DefaultDesignFPS = 60.0

	// DefaultResumeDelay 触摸结束后恢复自动滚动的冷却时间（秒）
	DefaultResumeDelay = 2.5

	// DefaultDragThreshold 区分点击与拖拽的位移阈值（像素）
	DefaultDragThreshold = 4.0

	// DefaultCloseDelay 灯箱关闭后清空图片引用的延迟（秒），留给关闭过渡动画
	DefaultCloseDelay = 0.3

	// DefaultItemHeight 轨道条目高度（像素）
	DefaultItemHeight = 260.0

	// DefaultItemGap 轨道条目间距（像素）
	DefaultItemGap = 16.0

	// DefaultAssetsDir 图片根目录
	DefaultAssetsDir = "assets"
)

// ErrInvalidGalleryConfig 配置值不合法
var ErrInvalidGalleryConfig = errors.New("invalid gallery config")

// GalleryItemSource 画廊中的一个原始条目（图片引用 + 描述文字）
type GalleryItemSource struct {
	Src string `yaml:"src" toml:"src"` // 图片路径，相对 AssetsDir
	Alt string `yaml:"alt" toml:"alt"` // 无障碍描述文字
}

// GalleryConfig 画廊配置文件结构
type GalleryConfig struct {
	SpeedPerFrame float64             `yaml:"speedPerFrame" toml:"speedPerFrame"`
	DesignFPS     float64             `yaml:"designFPS" toml:"designFPS"`
	ResumeDelay   float64             `yaml:"resumeDelay" toml:"resumeDelay"`
	DragThreshold float64             `yaml:"dragThreshold" toml:"dragThreshold"`
	CloseDelay    float64             `yaml:"closeDelay" toml:"closeDelay"`
	ItemHeight    float64             `yaml:"itemHeight" toml:"itemHeight"`
	ItemGap       float64             `yaml:"itemGap" toml:"itemGap"`
	AssetsDir     string              `yaml:"assetsDir" toml:"assetsDir"`
	Items         []GalleryItemSource `yaml:"items" toml:"items"`
}

// DefaultGalleryConfig 返回全部使用默认值、没有条目的配置
func DefaultGalleryConfig() *GalleryConfig {
	return &GalleryConfig{
		SpeedPerFrame: DefaultSpeedPerFrame,
		DesignFPS:     DefaultDesignFPS,
		ResumeDelay:   DefaultResumeDelay,
		DragThreshold: DefaultDragThreshold,
		CloseDelay:    DefaultCloseDelay,
		ItemHeight:    DefaultItemHeight,
		ItemGap:       DefaultItemGap,
		AssetsDir:     DefaultAssetsDir,
	}
}

// Velocity 返回自动滚动速度（像素/秒）
// 按时间增量缩放，帧率变化时视觉速度不变
func (c *GalleryConfig) Velocity() float64 {
	return c.SpeedPerFrame * c.DesignFPS
}

// LoadGalleryConfig 加载画廊配置
// 根据扩展名选择格式：.toml 使用 TOML，其它使用 YAML。
// 文件中未出现的字段保留默认值。
//
// 参数：
//
//	path - "data/" 前缀读取嵌入资源，其它路径读取本地文件
func LoadGalleryConfig(path string) (*GalleryConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery config %s: %w", path, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}

	cfg, err := ParseGalleryConfig(data, format)
	if err != nil {
		return nil, fmt.Errorf("gallery config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGalleryConfig 解析配置内容并校验
// format 取值 "yaml" 或 "toml"
func ParseGalleryConfig(data []byte, format string) (*GalleryConfig, error) {
	cfg := DefaultGalleryConfig()

	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置值
// 条目本身（图片引用是否缺失）由目录构建时校验
func (c *GalleryConfig) Validate() error {
	if c.SpeedPerFrame < 0 {
		return fmt.Errorf("%w: speedPerFrame cannot be negative, got %v", ErrInvalidGalleryConfig, c.SpeedPerFrame)
	}
	if c.DesignFPS <= 0 {
		return fmt.Errorf("%w: designFPS must be positive, got %v", ErrInvalidGalleryConfig, c.DesignFPS)
	}
	if c.ResumeDelay < 0 {
		return fmt.Errorf("%w: resumeDelay cannot be negative, got %v", ErrInvalidGalleryConfig, c.ResumeDelay)
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("%w: dragThreshold cannot be negative, got %v", ErrInvalidGalleryConfig, c.DragThreshold)
	}
	if c.CloseDelay < 0 {
		return fmt.Errorf("%w: closeDelay cannot be negative, got %v", ErrInvalidGalleryConfig, c.CloseDelay)
	}
	if c.ItemHeight <= 0 {
		return fmt.Errorf("%w: itemHeight must be positive, got %v", ErrInvalidGalleryConfig, c.ItemHeight)
	}
	if c.ItemGap < 0 {
		return fmt.Errorf("%w: itemGap cannot be negative, got %v", ErrInvalidGalleryConfig, c.ItemGap)
	}
	return nil
}
