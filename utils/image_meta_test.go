package utils

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestReadImageMeta(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		meta, err := ReadImageMeta(encodePNG(t, 1920, 600))
		if err != nil {
			t.Fatalf("ReadImageMeta: %v", err)
		}
		if meta.Width != 1920 || meta.Height != 600 {
			t.Errorf("尺寸 = %dx%d, 期望 1920x600", meta.Width, meta.Height)
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 800, 400)), nil); err != nil {
			t.Fatalf("jpeg encode: %v", err)
		}
		meta, err := ReadImageMeta(buf.Bytes())
		if err != nil {
			t.Fatalf("ReadImageMeta: %v", err)
		}
		if meta.Width != 800 || meta.Height != 400 {
			t.Errorf("尺寸 = %dx%d, 期望 800x400", meta.Width, meta.Height)
		}
	})

	t.Run("gif", func(t *testing.T) {
		var buf bytes.Buffer
		if err := gif.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 100, 50)), nil); err != nil {
			t.Fatalf("gif encode: %v", err)
		}
		meta, err := ReadImageMeta(buf.Bytes())
		if err != nil {
			t.Fatalf("ReadImageMeta: %v", err)
		}
		if meta.Width != 100 || meta.Height != 50 {
			t.Errorf("尺寸 = %dx%d, 期望 100x50", meta.Width, meta.Height)
		}
	})

	t.Run("非图片字节", func(t *testing.T) {
		if _, err := ReadImageMeta([]byte("definitely not an image")); err == nil {
			t.Error("期望解码失败")
		}
	})
}

func TestGenerateBannerFilename(t *testing.T) {
	name := GenerateBannerFilename("photo.PNG", "home_hero")
	if !strings.HasPrefix(name, "banners/home_hero/") {
		t.Errorf("对象key前缀错误: %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("扩展名应小写保留: %q", name)
	}

	// 无扩展名时补默认
	name = GenerateBannerFilename("upload", "footer_main")
	if !strings.HasSuffix(name, ".jpg") {
		t.Errorf("缺省扩展名错误: %q", name)
	}

	// 防冲突：同一输入两次生成应不同
	a := GenerateBannerFilename("a.jpg", "home_hero")
	b := GenerateBannerFilename("a.jpg", "home_hero")
	if a == b {
		t.Errorf("文件名应带随机后缀: %q == %q", a, b)
	}
}
