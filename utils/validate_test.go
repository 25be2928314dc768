package utils

import (
	"strings"
	"testing"

	"usprime-go-admin/model/admin_model"
)

func TestValidateFileType(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		wantErr  bool
	}{
		{"jpeg允许", "image/jpeg", false},
		{"png允许", "image/png", false},
		{"webp允许", "image/webp", false},
		{"gif允许", "image/gif", false},
		{"svg允许", "image/svg+xml", false},
		{"pdf拒绝", "application/pdf", true},
		{"bmp拒绝", "image/bmp", true},
		{"空类型拒绝", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileType(tt.mimeType, admin_model.AllowedImageTypes)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileType(%q) error = %v, wantErr %v", tt.mimeType, err, tt.wantErr)
			}
			if err != nil && err.Type != FileErrFormat {
				t.Errorf("错误类型 = %q, 期望 %q", err.Type, FileErrFormat)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	const max = admin_model.MaxFileSizeBytes

	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"远小于上限", 1024, false},
		{"恰好等于上限放行", max, false},
		{"超过上限1字节", max + 1, true},
		{"零字节", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFileSize(tt.size, max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFileSize(%d) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
			if err != nil && err.Type != FileErrSize {
				t.Errorf("错误类型 = %q, 期望 %q", err.Type, FileErrSize)
			}
		})
	}
}

func TestValidateImageDimensionsStrict(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"完全一致", 1920, 600, false},
		{"宽差1像素", 1919, 600, true},
		{"高差1像素", 1920, 601, true},
		{"等比缩放也拒绝", 960, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageDimensions(tt.width, tt.height, 1920, 600, true)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageDimensions(%d, %d, strict) error = %v, wantErr %v",
					tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil {
				if err.Type != FileErrDimensions {
					t.Errorf("错误类型 = %q, 期望 %q", err.Type, FileErrDimensions)
				}
				if err.Expected != "1920 x 600 px" {
					t.Errorf("Expected = %q, 期望 %q", err.Expected, "1920 x 600 px")
				}
			}
		})
	}
}

func TestValidateImageDimensionsAspectRatio(t *testing.T) {
	tests := []struct {
		name                          string
		width, height                 int
		requiredWidth, requiredHeight int
		wantErr                       bool
	}{
		{"完全一致", 1920, 600, 1920, 600, false},
		{"等比缩放通过", 960, 300, 1920, 600, false},
		// 1600/599 与 1600/600 的比值差约 0.0045，在容差内
		{"高差1像素在容差内", 1600, 599, 1600, 600, false},
		// 1600/500 = 3.2，与 8/3 差 0.53，远超容差
		{"比例明显不符", 1600, 500, 1600, 600, true},
		{"方图对横幅位", 1080, 1080, 1920, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImageDimensions(tt.width, tt.height, tt.requiredWidth, tt.requiredHeight, false)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImageDimensions(%d, %d) error = %v, wantErr %v",
					tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && err.Type != FileErrAspectRatio {
				t.Errorf("错误类型 = %q, 期望 %q", err.Type, FileErrAspectRatio)
			}
		})
	}
}

func TestValidateBannerForm(t *testing.T) {
	valid := BannerFormData{
		Name:     "夏季大促",
		LinkUrl:  "/sale/summer",
		LinkType: admin_model.LinkTypeInternal,
	}
	if errs := ValidateBannerForm(valid); len(errs) != 0 {
		t.Fatalf("合法表单不应报错: %v", errs)
	}

	t.Run("名称必填", func(t *testing.T) {
		data := valid
		data.Name = "   "
		errs := ValidateBannerForm(data)
		if _, ok := errs["name"]; !ok {
			t.Errorf("期望 name 字段报错, got %v", errs)
		}
	})

	t.Run("名称超长", func(t *testing.T) {
		data := valid
		data.Name = strings.Repeat("a", MaxNameLength+1)
		if _, ok := ValidateBannerForm(data)["name"]; !ok {
			t.Error("期望 name 字段报错")
		}
	})

	t.Run("长度按字符数而非字节数", func(t *testing.T) {
		// 100个泰文字符是300字节，按字符数远未超限
		data := valid
		data.Name = strings.Repeat("ก", 100)
		if errs := ValidateBannerForm(data); len(errs) != 0 {
			t.Errorf("100个多字节字符的名称应通过: %v", errs)
		}

		// 中文描述：字符数恰好等于上限放行，超1个报错
		data = valid
		data.Description = strings.Repeat("横", MaxDescriptionLength)
		if errs := ValidateBannerForm(data); len(errs) != 0 {
			t.Errorf("恰好 %d 个字符的描述应通过: %v", MaxDescriptionLength, errs)
		}
		data.Description = strings.Repeat("横", MaxDescriptionLength+1)
		if _, ok := ValidateBannerForm(data)["description"]; !ok {
			t.Error("期望 description 字段报错")
		}
	})

	t.Run("描述超长", func(t *testing.T) {
		data := valid
		data.Description = strings.Repeat("d", MaxDescriptionLength+1)
		if _, ok := ValidateBannerForm(data)["description"]; !ok {
			t.Error("期望 description 字段报错")
		}
	})

	t.Run("链接格式错误", func(t *testing.T) {
		data := valid
		data.LinkUrl = "javascript:alert(1)"
		if _, ok := ValidateBannerForm(data)["link_url"]; !ok {
			t.Error("期望 link_url 字段报错")
		}
	})

	t.Run("链接类型none跳过链接校验", func(t *testing.T) {
		data := valid
		data.LinkUrl = "not-a-url"
		data.LinkType = admin_model.LinkTypeNone
		if errs := ValidateBannerForm(data); len(errs) != 0 {
			t.Errorf("link_type=none 时不应校验链接: %v", errs)
		}
	})

	t.Run("https链接通过", func(t *testing.T) {
		data := valid
		data.LinkUrl = "https://example.com/promo"
		data.LinkType = admin_model.LinkTypeExternal
		if errs := ValidateBannerForm(data); len(errs) != 0 {
			t.Errorf("https 链接应通过: %v", errs)
		}
	})

	t.Run("多个错误一次性返回", func(t *testing.T) {
		data := BannerFormData{
			Name:     "",
			AltText:  strings.Repeat("x", MaxAltTextLength+1),
			LinkUrl:  "bad",
			LinkType: admin_model.LinkTypeInternal,
		}
		errs := ValidateBannerForm(data)
		if len(errs) != 3 {
			t.Errorf("期望3个字段错误, got %d: %v", len(errs), errs)
		}
	})
}

func TestValidateBannerFileShortCircuit(t *testing.T) {
	spec, ok := admin_model.GetPositionSpec("home_hero")
	if !ok {
		t.Fatal("home_hero 运营位应存在")
	}

	// 类型和大小都不合法时，先报类型错
	err := ValidateBannerFile("application/pdf", admin_model.MaxFileSizeBytes+1, 0, 0, spec, false)
	if err == nil || err.Type != FileErrFormat {
		t.Errorf("期望先报类型错误, got %v", err)
	}

	// 类型合法但超大时，报大小错
	err = ValidateBannerFile("image/png", admin_model.MaxFileSizeBytes+1, 1920, 600, spec, false)
	if err == nil || err.Type != FileErrSize {
		t.Errorf("期望报大小错误, got %v", err)
	}

	// SVG跳过尺寸校验
	if err := ValidateBannerFile("image/svg+xml", 1024, 0, 0, spec, true); err != nil {
		t.Errorf("SVG 应跳过尺寸校验: %v", err)
	}

	// 全部通过
	if err := ValidateBannerFile("image/jpeg", 1024, 1920, 600, spec, true); err != nil {
		t.Errorf("合法文件不应报错: %v", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{512, "512 Bytes"},
		{1024, "1 KB"},
		{1536, "1.50 KB"},
		{10 * 1024 * 1024, "10 MB"},
	}

	for _, tt := range tests {
		if got := FormatBytes(tt.bytes); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
