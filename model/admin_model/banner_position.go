package admin_model

// BannerSizeSpec 运营位静态元数据（不落库，随代码发布）
type BannerSizeSpec struct {
	Position         string   `json:"position"`
	DisplayName      string   `json:"display_name"`
	Category         string   `json:"category"`
	RequiredWidth    int      `json:"required_width"`
	RequiredHeight   int      `json:"required_height"`
	MaxFileSizeBytes int64    `json:"max_file_size_bytes"`
	AllowedFormats   []string `json:"allowed_formats"`
	AllowMultiple    bool     `json:"allow_multiple"`
	MaxItems         int      `json:"max_items"`
}

// 文件上限
const (
	MaxFileSizeBytes = 10 * 1024 * 1024 // 10MB
)

// AllowedImageTypes 允许上传的图片MIME类型
var AllowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/svg+xml",
}

// BannerPositions 全部运营位定义，key为位置标识
var BannerPositions = map[string]BannerSizeSpec{
	"home_hero": {
		Position: "home_hero", DisplayName: "Hero Banner (Desktop)", Category: "home",
		RequiredWidth: 1920, RequiredHeight: 600, AllowMultiple: false, MaxItems: 1,
	},
	"home_hero_mobile": {
		Position: "home_hero_mobile", DisplayName: "Hero Banner (Mobile)", Category: "home",
		RequiredWidth: 1080, RequiredHeight: 1080, AllowMultiple: false, MaxItems: 1,
	},
	"home_promo_slider": {
		Position: "home_promo_slider", DisplayName: "Promo Slider", Category: "home",
		RequiredWidth: 1600, RequiredHeight: 600, AllowMultiple: true, MaxItems: 5,
	},
	"home_flash_sale": {
		Position: "home_flash_sale", DisplayName: "Flash Sale Banner", Category: "home",
		RequiredWidth: 1200, RequiredHeight: 400, AllowMultiple: false, MaxItems: 1,
	},
	"home_us_deals": {
		Position: "home_us_deals", DisplayName: "US Deals Banner", Category: "home",
		RequiredWidth: 1200, RequiredHeight: 400, AllowMultiple: false, MaxItems: 1,
	},
	"lotto_powerball": {
		Position: "lotto_powerball", DisplayName: "Powerball Banner", Category: "lotto",
		RequiredWidth: 1200, RequiredHeight: 500, AllowMultiple: false, MaxItems: 1,
	},
	"lotto_megamillions": {
		Position: "lotto_megamillions", DisplayName: "Mega Millions Banner", Category: "lotto",
		RequiredWidth: 1200, RequiredHeight: 500, AllowMultiple: false, MaxItems: 1,
	},
	"footer_main": {
		Position: "footer_main", DisplayName: "Footer Banner", Category: "footer",
		RequiredWidth: 1920, RequiredHeight: 300, AllowMultiple: false, MaxItems: 1,
	},
	"category_electronics": {
		Position: "category_electronics", DisplayName: "Electronics Category", Category: "category",
		RequiredWidth: 800, RequiredHeight: 400, AllowMultiple: false, MaxItems: 1,
	},
	"category_fashion": {
		Position: "category_fashion", DisplayName: "Fashion Category", Category: "category",
		RequiredWidth: 800, RequiredHeight: 400, AllowMultiple: false, MaxItems: 1,
	},
	"category_vitamins": {
		Position: "category_vitamins", DisplayName: "Vitamins Category", Category: "category",
		RequiredWidth: 800, RequiredHeight: 400, AllowMultiple: false, MaxItems: 1,
	},
}

// GetPositionSpec 查找运营位定义，填充统一的文件限制
func GetPositionSpec(position string) (BannerSizeSpec, bool) {
	spec, ok := BannerPositions[position]
	if !ok {
		return BannerSizeSpec{}, false
	}
	spec.MaxFileSizeBytes = MaxFileSizeBytes
	spec.AllowedFormats = AllowedImageTypes
	return spec, true
}

// AllPositionSpecs 返回全部运营位定义，key为位置标识
func AllPositionSpecs() map[string]BannerSizeSpec {
	specs := make(map[string]BannerSizeSpec, len(BannerPositions))
	for pos := range BannerPositions {
		spec, _ := GetPositionSpec(pos)
		specs[pos] = spec
	}
	return specs
}
