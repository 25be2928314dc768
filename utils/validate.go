package utils

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"usprime-go-admin/model/admin_model"
)

// 文件校验错误类型
const (
	FileErrSize        = "size"
	FileErrFormat      = "format"
	FileErrDimensions  = "dimensions"
	FileErrAspectRatio = "aspect_ratio"
)

// FileValidationError 文件校验错误，前后端共用同一套规则
type FileValidationError struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

func (e *FileValidationError) Error() string {
	if e.Expected != "" || e.Actual != "" {
		return fmt.Sprintf("%s (需要: %s, 实际: %s)", e.Message, e.Expected, e.Actual)
	}
	return e.Message
}

// 表单字段长度限制
const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1000
	MaxAltTextLength     = 500
	MaxLinkUrlLength     = 2000
)

// 链接必须以 / 或 http(s):// 开头
var linkUrlPattern = regexp.MustCompile(`^(/|https?://)`)

// ValidateFileType 校验MIME类型是否在允许列表内
// 只信任声明的MIME类型，不做字节嗅探
func ValidateFileType(mimeType string, allowedTypes []string) *FileValidationError {
	for _, t := range allowedTypes {
		if mimeType == t {
			return nil
		}
	}
	return &FileValidationError{
		Type:     FileErrFormat,
		Message:  "不支持的文件类型",
		Expected: strings.Join(allowedTypes, ", "),
		Actual:   mimeType,
	}
}

// ValidateFileSize 校验文件大小，等于上限时放行
func ValidateFileSize(sizeBytes, maxSizeBytes int64) *FileValidationError {
	if sizeBytes > maxSizeBytes {
		return &FileValidationError{
			Type:     FileErrSize,
			Message:  "文件过大",
			Expected: fmt.Sprintf("不超过 %s", FormatBytes(maxSizeBytes)),
			Actual:   FormatBytes(sizeBytes),
		}
	}
	return nil
}

// ValidateImageDimensions 校验图片像素尺寸
// strict为true时要求完全一致，否则只校验宽高比（容差0.01，对比值而非像素数）
func ValidateImageDimensions(width, height, requiredWidth, requiredHeight int, strict bool) *FileValidationError {
	if strict {
		if width != requiredWidth || height != requiredHeight {
			return &FileValidationError{
				Type:     FileErrDimensions,
				Message:  "图片尺寸不符合要求",
				Expected: fmt.Sprintf("%d x %d px", requiredWidth, requiredHeight),
				Actual:   fmt.Sprintf("%d x %d px", width, height),
			}
		}
		return nil
	}

	expectedRatio := float64(requiredWidth) / float64(requiredHeight)
	actualRatio := float64(width) / float64(height)
	const tolerance = 0.01

	if math.Abs(expectedRatio-actualRatio) > tolerance {
		return &FileValidationError{
			Type:     FileErrAspectRatio,
			Message:  "图片宽高比不符合要求",
			Expected: fmt.Sprintf("%d:%d", requiredWidth, requiredHeight),
			Actual:   fmt.Sprintf("%d:%d", width, height),
		}
	}
	return nil
}

// IsSvg SVG为矢量格式，没有固有像素尺寸，跳过尺寸校验
func IsSvg(mimeType string) bool {
	return mimeType == "image/svg+xml"
}

// BannerFormData 横幅表单数据（文件之外的字段）
type BannerFormData struct {
	Name        string
	Description string
	AltText     string
	LinkUrl     string
	LinkType    string
}

// ValidateBannerForm 校验表单字段，所有错误一次性收集返回
// 返回 字段名 -> 错误信息，空map表示通过
func ValidateBannerForm(data BannerFormData) map[string]string {
	errs := make(map[string]string)

	// 长度按字符数计，与浏览器端的 .length 规则保持一致，多字节文字不吃亏
	if strings.TrimSpace(data.Name) == "" {
		errs["name"] = "请填写横幅名称"
	} else if utf8.RuneCountInString(data.Name) > MaxNameLength {
		errs["name"] = fmt.Sprintf("名称不能超过 %d 个字符", MaxNameLength)
	}

	if utf8.RuneCountInString(data.Description) > MaxDescriptionLength {
		errs["description"] = fmt.Sprintf("描述不能超过 %d 个字符", MaxDescriptionLength)
	}

	if utf8.RuneCountInString(data.AltText) > MaxAltTextLength {
		errs["alt_text"] = fmt.Sprintf("Alt text 不能超过 %d 个字符", MaxAltTextLength)
	}

	if data.LinkUrl != "" && data.LinkType != admin_model.LinkTypeNone {
		if utf8.RuneCountInString(data.LinkUrl) > MaxLinkUrlLength {
			errs["link_url"] = fmt.Sprintf("链接不能超过 %d 个字符", MaxLinkUrlLength)
		} else if !linkUrlPattern.MatchString(data.LinkUrl) {
			errs["link_url"] = "链接必须以 / 或 http:// 或 https:// 开头"
		}
	}

	return errs
}

// ValidateBannerFile 组合文件校验：类型 -> 大小 -> 尺寸，按顺序短路
// 尺寸由调用方先读出（SVG传0即可，会被跳过）
func ValidateBannerFile(mimeType string, sizeBytes int64, width, height int, spec admin_model.BannerSizeSpec, strict bool) *FileValidationError {
	if err := ValidateFileType(mimeType, admin_model.AllowedImageTypes); err != nil {
		return err
	}
	if err := ValidateFileSize(sizeBytes, admin_model.MaxFileSizeBytes); err != nil {
		return err
	}
	if IsSvg(mimeType) {
		return nil
	}
	return ValidateImageDimensions(width, height, spec.RequiredWidth, spec.RequiredHeight, strict)
}

// FormatBytes 字节数转人类可读
func FormatBytes(bytes int64) string {
	const k = 1024
	if bytes == 0 {
		return "0 Bytes"
	}
	sizes := []string{"Bytes", "KB", "MB", "GB"}
	i := 0
	v := float64(bytes)
	for v >= k && i < len(sizes)-1 {
		v /= k
		i++
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d %s", int64(v), sizes[i])
	}
	return fmt.Sprintf("%.2f %s", v, sizes[i])
}
