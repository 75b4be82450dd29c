package game

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"testing/fstest"
)

// encodeTestPNG 生成指定尺寸的 PNG 数据
func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestResourceManagerImageSize(t *testing.T) {
	fsys := fstest.MapFS{
		"gallery/wide.png": &fstest.MapFile{Data: encodeTestPNG(t, 300, 200)},
		"gallery/bad.png":  &fstest.MapFile{Data: []byte("not an image")},
	}
	rm := NewResourceManager(fsys)

	w, h := rm.ImageSize("gallery/wide.png")
	if w != 300 || h != 200 {
		t.Errorf("ImageSize(wide.png) = %dx%d, want 300x200", w, h)
	}
	if rm.IsPlaceholder("gallery/wide.png") {
		t.Error("Existing image should not be a placeholder")
	}

	// 缺失和损坏的图片都退回占位尺寸
	for _, ref := range []string{"gallery/missing.png", "gallery/bad.png"} {
		w, h := rm.ImageSize(ref)
		if w != PlaceholderWidth || h != PlaceholderHeight {
			t.Errorf("ImageSize(%s) = %dx%d, want placeholder size", ref, w, h)
		}
		if !rm.IsPlaceholder(ref) {
			t.Errorf("%s should be marked as placeholder", ref)
		}
	}
}

func TestResourceManagerNilAssets(t *testing.T) {
	rm := NewResourceManager(nil)
	if !rm.IsPlaceholder("any.jpg") {
		t.Error("Without an assets filesystem every image is a placeholder")
	}
	if _, err := rm.LoadImage("any.jpg"); err == nil {
		t.Error("LoadImage should fail without an assets filesystem")
	}
}

func TestPlaceholderColor(t *testing.T) {
	if PlaceholderColor(0) != PlaceholderColor(len(placeholderPalette)) {
		t.Error("Placeholder colours should cycle through the palette")
	}
	if PlaceholderColor(-1) != PlaceholderColor(1) {
		t.Error("Negative indices should not panic and map to a palette colour")
	}
}
