package admin_model

import (
	"testing"
	"time"
)

func TestGetPositionSpec(t *testing.T) {
	tests := []struct {
		position      string
		wantOk        bool
		width, height int
		maxItems      int
	}{
		{"home_hero", true, 1920, 600, 1},
		{"home_hero_mobile", true, 1080, 1080, 1},
		{"home_promo_slider", true, 1600, 600, 5},
		{"footer_main", true, 1920, 300, 1},
		{"category_vitamins", true, 800, 400, 1},
		{"sidebar_left", false, 0, 0, 0},
		{"", false, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			spec, ok := GetPositionSpec(tt.position)
			if ok != tt.wantOk {
				t.Fatalf("GetPositionSpec(%q) ok = %v, want %v", tt.position, ok, tt.wantOk)
			}
			if !ok {
				return
			}
			if spec.RequiredWidth != tt.width || spec.RequiredHeight != tt.height {
				t.Errorf("尺寸 = %dx%d, 期望 %dx%d",
					spec.RequiredWidth, spec.RequiredHeight, tt.width, tt.height)
			}
			if spec.MaxItems != tt.maxItems {
				t.Errorf("MaxItems = %d, 期望 %d", spec.MaxItems, tt.maxItems)
			}
			if spec.MaxFileSizeBytes != MaxFileSizeBytes {
				t.Errorf("MaxFileSizeBytes = %d", spec.MaxFileSizeBytes)
			}
			if len(spec.AllowedFormats) == 0 {
				t.Error("AllowedFormats 应被填充")
			}
		})
	}
}

func TestAllPositionSpecs(t *testing.T) {
	specs := AllPositionSpecs()
	if len(specs) != len(BannerPositions) {
		t.Fatalf("返回 %d 个运营位, 期望 %d", len(specs), len(BannerPositions))
	}
	for pos, spec := range specs {
		if spec.Position != pos {
			t.Errorf("key %q 与 Position %q 不一致", pos, spec.Position)
		}
		if spec.MaxFileSizeBytes == 0 {
			t.Errorf("%s 的文件上限未填充", pos)
		}
	}
}

func TestBannerInSchedule(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	tests := []struct {
		name       string
		start, end *time.Time
		want       bool
	}{
		{"无窗口长期有效", nil, nil, true},
		{"窗口内", &before, &after, true},
		{"未开始", &after, nil, false},
		{"已结束", nil, &before, false},
		{"仅有开始且已过", &before, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Banner{StartDate: tt.start, EndDate: tt.end}
			if got := b.InSchedule(now); got != tt.want {
				t.Errorf("InSchedule = %v, want %v", got, tt.want)
			}
		})
	}
}
