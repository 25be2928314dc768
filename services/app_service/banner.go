package app_service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"usprime-go-admin/model/admin_model"
)

const (
	bannerCachePrefix = "banners:active:"
	bannerCacheTTL    = 5 * time.Minute
)

// PublicBanner 商城前台的横幅视图，只暴露展示需要的字段
type PublicBanner struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	ImageUrl     string `json:"image_url"`
	AltText      string `json:"alt_text"`
	LinkUrl      string `json:"link_url,omitempty"`
	LinkType     string `json:"link_type"`
	OpenInNewTab bool   `json:"open_in_new_tab"`
	SortOrder    int    `json:"sort_order"`
}

// BannerService 前台横幅读取服务，带Redis缓存
type BannerService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewBannerService 创建前台横幅服务，rdb可为nil（直接走库）
func NewBannerService(db *gorm.DB, rdb *redis.Client) *BannerService {
	return &BannerService{db: db, rdb: rdb}
}

// GetActiveBanners 获取某运营位当前可投放的横幅
// 过滤条件：is_active + 投放时间窗口，按sort_order升序
func (s *BannerService) GetActiveBanners(ctx context.Context, position string) ([]PublicBanner, error) {
	cacheKey := bannerCachePrefix + position

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var result []PublicBanner
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	var banners []admin_model.Banner
	err := s.db.WithContext(ctx).
		Where("position = ? AND is_active = ?", position, true).
		Order("sort_order ASC, created_at ASC").
		Find(&banners).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]PublicBanner, 0, len(banners))
	for _, b := range banners {
		if !b.InSchedule(now) {
			continue
		}
		result = append(result, PublicBanner{
			Id:           b.Id,
			Name:         b.Name,
			ImageUrl:     b.ImageUrl,
			AltText:      b.AltText,
			LinkUrl:      b.LinkUrl,
			LinkType:     b.LinkType,
			OpenInNewTab: b.OpenInNewTab,
			SortOrder:    b.SortOrder,
		})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, data, bannerCacheTTL).Err(); err != nil {
				log.Printf("[WARN] 横幅缓存写入失败 position=%s err=%v", position, err)
			}
		}
	}

	return result, nil
}

// Invalidate 删除某运营位的缓存，后台任何变更后调用
func (s *BannerService) Invalidate(position string) {
	if s.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.rdb.Del(ctx, bannerCachePrefix+position).Err(); err != nil {
		log.Printf("[WARN] 横幅缓存失效失败 position=%s err=%v", position, err)
	}
}
