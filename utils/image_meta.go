package utils

import (
	"bytes"
	"fmt"
	"image"

	// 注册解码器，DecodeConfig只读文件头，不解整张图
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ImageMeta 图片像素尺寸
type ImageMeta struct {
	Width  int
	Height int
	Format string
}

// ReadImageMeta 从已缓冲的字节中读取图片宽高
// 仅用于位图格式，SVG等矢量格式由调用方跳过
func ReadImageMeta(data []byte) (*ImageMeta, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("无法读取图片信息: %w", err)
	}
	return &ImageMeta{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
