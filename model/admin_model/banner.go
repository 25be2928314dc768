package admin_model

import "time"

// BannerLinkType 链接类型
const (
	LinkTypeInternal = "internal"
	LinkTypeExternal = "external"
	LinkTypeNone     = "none"
)

// Banner 运营位横幅记录
type Banner struct {
	Id          string `json:"id" gorm:"column:id;primaryKey;size:36"`
	Name        string `json:"name" gorm:"column:name;size:255"`
	Description string `json:"description" gorm:"column:description;size:1000"`
	Position    string `json:"position" gorm:"column:position;size:64;index"`

	// 图片信息
	ImageUrl       string `json:"image_url" gorm:"column:image_url;size:2000"`
	ImageFilename  string `json:"image_filename" gorm:"column:image_filename;size:512"`
	ImageSizeBytes int64  `json:"image_size_bytes" gorm:"column:image_size_bytes"`
	ImageWidth     int    `json:"image_width" gorm:"column:image_width"`
	ImageHeight    int    `json:"image_height" gorm:"column:image_height"`
	AltText        string `json:"alt_text" gorm:"column:alt_text;size:500"`

	// 链接信息
	LinkUrl      string `json:"link_url" gorm:"column:link_url;size:2000"`
	LinkType     string `json:"link_type" gorm:"column:link_type;size:16;default:none"`
	OpenInNewTab bool   `json:"open_in_new_tab" gorm:"column:open_in_new_tab"`

	// 展示控制
	IsActive  bool `json:"is_active" gorm:"column:is_active;index"`
	SortOrder int  `json:"sort_order" gorm:"column:sort_order"`

	// 投放时间（仅存储，核心不强制执行）
	StartDate *time.Time `json:"start_date" gorm:"column:start_date"`
	EndDate   *time.Time `json:"end_date" gorm:"column:end_date"`

	// 操作痕迹
	CreatedBy string    `json:"created_by" gorm:"column:created_by;size:64"`
	UpdatedBy string    `json:"updated_by" gorm:"column:updated_by;size:64"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Banner) TableName() string {
	return "banners"
}

// InSchedule 判断当前时间是否落在投放窗口内（窗口为空视为长期有效）
func (b *Banner) InSchedule(now time.Time) bool {
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
