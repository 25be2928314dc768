package admin_service

import (
	"errors"

	"gorm.io/gorm"

	"usprime-go-admin/model/admin_model"
)

// BannerFilter 列表查询条件
type BannerFilter struct {
	Position  string
	IsActive  *bool
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// BannerStore 横幅持久化接口，单行写入由底层存储保证原子性
type BannerStore interface {
	List(filter BannerFilter) ([]admin_model.Banner, int64, error)
	Get(id string) (*admin_model.Banner, error)
	CountActive(position string) (int64, error)
	Insert(banner *admin_model.Banner) error
	Update(banner *admin_model.Banner) error
	Delete(id string) error
	// SetSortOrder 仅更新属于指定运营位的记录，返回实际命中的行数
	SetSortOrder(id, position string, sortOrder int, updatedBy string) (int64, error)
}

// 排序字段白名单，防止排序参数注入
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"sort_order": "sort_order",
	"name":       "name",
}

type gormBannerStore struct {
	db *gorm.DB
}

// NewBannerStore 创建基于gorm的横幅存储
func NewBannerStore(db *gorm.DB) BannerStore {
	return &gormBannerStore{db: db}
}

func (s *gormBannerStore) List(filter BannerFilter) ([]admin_model.Banner, int64, error) {
	var banners []admin_model.Banner
	var total int64

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	query := s.db.Model(&admin_model.Banner{})
	if filter.Position != "" {
		query = query.Where("position = ?", filter.Position)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "sort_order"
	}
	direction := "ASC"
	if filter.SortOrder == "desc" {
		direction = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Order(column + " " + direction + ", created_at ASC").
		Offset(offset).Limit(filter.Limit).Find(&banners).Error
	if err != nil {
		return nil, 0, err
	}

	return banners, total, nil
}

func (s *gormBannerStore) Get(id string) (*admin_model.Banner, error) {
	var banner admin_model.Banner
	err := s.db.Where("id = ?", id).First(&banner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBannerNotFound
		}
		return nil, err
	}
	return &banner, nil
}

func (s *gormBannerStore) CountActive(position string) (int64, error) {
	var count int64
	err := s.db.Model(&admin_model.Banner{}).
		Where("position = ? AND is_active = ?", position, true).
		Count(&count).Error
	return count, err
}

func (s *gormBannerStore) Insert(banner *admin_model.Banner) error {
	return s.db.Create(banner).Error
}

func (s *gormBannerStore) Update(banner *admin_model.Banner) error {
	// Save整行写回，patch合并在服务层完成
	return s.db.Save(banner).Error
}

func (s *gormBannerStore) Delete(id string) error {
	return s.db.Where("id = ?", id).Delete(&admin_model.Banner{}).Error
}

func (s *gormBannerStore) SetSortOrder(id, position string, sortOrder int, updatedBy string) (int64, error) {
	result := s.db.Model(&admin_model.Banner{}).
		Where("id = ? AND position = ?", id, position).
		Updates(map[string]interface{}{
			"sort_order": sortOrder,
			"updated_by": updatedBy,
		})
	return result.RowsAffected, result.Error
}
