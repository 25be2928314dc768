package admin_service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"usprime-go-admin/model/admin_model"
	"usprime-go-admin/utils"
)

// Actor 操作者信息，写进审计日志
type Actor struct {
	Id        string
	Ip        string
	UserAgent string
}

// ImageUpload 已缓冲的上传文件
type ImageUpload struct {
	Bytes            []byte
	MimeType         string
	OriginalFilename string
}

// CreateBannerInput 创建横幅的表单字段
type CreateBannerInput struct {
	Name         string
	Description  string
	Position     string
	LinkUrl      string
	LinkType     string
	OpenInNewTab bool
	AltText      string
	IsActive     *bool
	SortOrder    *int
	StartDate    *time.Time
	EndDate      *time.Time
}

// UpdateBannerInput 更新横幅的表单字段
// nil表示保持原值，指向空串表示清空
type UpdateBannerInput struct {
	Name         *string
	Description  *string
	LinkUrl      *string
	LinkType     *string
	OpenInNewTab *bool
	AltText      *string
	IsActive     *bool
	SortOrder    *int
	StartDate    *time.Time
	EndDate      *time.Time
	ClearStart   bool
	ClearEnd     bool
}

// BannerCache 读侧缓存失效接口，任何变更后调用
type BannerCache interface {
	Invalidate(position string)
}

// BannerEvents 横幅变更事件发布接口（CDN刷新等下游消费）
type BannerEvents interface {
	PublishChange(position, action, bannerId string)
}

// BannerService 横幅业务逻辑
type BannerService struct {
	store    BannerStore
	uploader Uploader
	audit    AuditLogger
	cache    BannerCache
	events   BannerEvents
}

// NewBannerService 创建横幅服务，cache和events可为nil
func NewBannerService(store BannerStore, uploader Uploader, audit AuditLogger, cache BannerCache, events BannerEvents) *BannerService {
	return &BannerService{
		store:    store,
		uploader: uploader,
		audit:    audit,
		cache:    cache,
		events:   events,
	}
}

// List 分页查询横幅
func (s *BannerService) List(filter BannerFilter) ([]admin_model.Banner, int64, error) {
	return s.store.List(filter)
}

// Get 查询单条横幅
func (s *BannerService) Get(id string) (*admin_model.Banner, error) {
	return s.store.Get(id)
}

// Create 创建横幅
// 顺序：表单 -> 运营位 -> 容量 -> 文件（类型->大小->尺寸短路）-> 存资产 -> 落库
// 落库失败时删除已存资产作为补偿，绝不留下孤儿文件
func (s *BannerService) Create(input CreateBannerInput, image *ImageUpload, actor Actor) (*admin_model.Banner, error) {
	if formErrs := utils.ValidateBannerForm(utils.BannerFormData{
		Name:        input.Name,
		Description: input.Description,
		AltText:     input.AltText,
		LinkUrl:     input.LinkUrl,
		LinkType:    input.LinkType,
	}); len(formErrs) > 0 {
		return nil, &FormError{Fields: formErrs}
	}

	spec, ok := admin_model.GetPositionSpec(input.Position)
	if !ok {
		return nil, ErrInvalidPosition
	}

	// 容量检查必须在任何存储写入之前
	// 注意：计数和插入之间没有事务保护，并发创建同一运营位可能双双通过，
	// max_items=1 的运营位上线前需补唯一约束
	activeCount, err := s.store.CountActive(input.Position)
	if err != nil {
		return nil, err
	}
	if activeCount >= int64(spec.MaxItems) {
		return nil, ErrPositionLimitReached
	}

	if image == nil || len(image.Bytes) == 0 {
		return nil, ErrImageRequired
	}

	width, height, err := s.probeImage(image)
	if err != nil {
		return nil, err
	}

	// 服务端按宽高比校验（strict=false），与前端预检同一套规则
	if fileErr := utils.ValidateBannerFile(image.MimeType, int64(len(image.Bytes)), width, height, spec, false); fileErr != nil {
		return nil, &FileError{Detail: fileErr}
	}

	url, filename, err := s.uploader.Store(image.Bytes, image.MimeType, image.OriginalFilename, input.Position)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	banner := &admin_model.Banner{
		Id:             uuid.NewString(),
		Name:           input.Name,
		Description:    input.Description,
		Position:       input.Position,
		ImageUrl:       url,
		ImageFilename:  filename,
		ImageSizeBytes: int64(len(image.Bytes)),
		ImageWidth:     width,
		ImageHeight:    height,
		AltText:        input.AltText,
		LinkUrl:        input.LinkUrl,
		LinkType:       input.LinkType,
		OpenInNewTab:   input.OpenInNewTab,
		IsActive:       true,
		SortOrder:      int(activeCount) + 1,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		CreatedBy:      actor.Id,
		UpdatedBy:      actor.Id,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if banner.AltText == "" {
		banner.AltText = banner.Name
	}
	if banner.LinkType == "" {
		banner.LinkType = admin_model.LinkTypeNone
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}

	if err := s.store.Insert(banner); err != nil {
		// 补偿：资产已落对象存储，回滚删除
		s.uploader.Delete(filename)
		return nil, err
	}

	s.audit.Append(AuditEntry{
		BannerId:    &banner.Id,
		Action:      AuditActionCreate,
		NewImageUrl: url,
		PerformedBy: actor.Id,
		IpAddress:   actor.Ip,
		UserAgent:   actor.UserAgent,
	})
	s.afterChange(banner.Position, AuditActionCreate, banner.Id)

	return banner, nil
}

// Update 更新横幅，patch语义合并
// 新图先存新再删旧，更新失败时新资产被补偿删除，旧记录旧资产原样保留
func (s *BannerService) Update(id string, input UpdateBannerInput, image *ImageUpload, actor Actor) (*admin_model.Banner, error) {
	existing, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.LinkUrl != nil {
		merged.LinkUrl = *input.LinkUrl
	}
	if input.LinkType != nil {
		merged.LinkType = *input.LinkType
	}
	if input.OpenInNewTab != nil {
		merged.OpenInNewTab = *input.OpenInNewTab
	}
	if input.AltText != nil {
		merged.AltText = *input.AltText
	}
	if input.IsActive != nil {
		merged.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		merged.SortOrder = *input.SortOrder
	}
	if input.StartDate != nil {
		merged.StartDate = input.StartDate
	} else if input.ClearStart {
		merged.StartDate = nil
	}
	if input.EndDate != nil {
		merged.EndDate = input.EndDate
	} else if input.ClearEnd {
		merged.EndDate = nil
	}

	if formErrs := utils.ValidateBannerForm(utils.BannerFormData{
		Name:        merged.Name,
		Description: merged.Description,
		AltText:     merged.AltText,
		LinkUrl:     merged.LinkUrl,
		LinkType:    merged.LinkType,
	}); len(formErrs) > 0 {
		return nil, &FormError{Fields: formErrs}
	}

	oldImageUrl := existing.ImageUrl
	oldFilename := ""
	newImageUrl := ""

	if image != nil && len(image.Bytes) > 0 {
		spec, ok := admin_model.GetPositionSpec(existing.Position)
		if !ok {
			return nil, ErrInvalidPosition
		}

		width, height, err := s.probeImage(image)
		if err != nil {
			return nil, err
		}
		if fileErr := utils.ValidateBannerFile(image.MimeType, int64(len(image.Bytes)), width, height, spec, false); fileErr != nil {
			// 校验失败，原记录和原资产不动
			return nil, &FileError{Detail: fileErr}
		}

		url, filename, err := s.uploader.Store(image.Bytes, image.MimeType, image.OriginalFilename, existing.Position)
		if err != nil {
			return nil, err
		}

		oldFilename = existing.ImageFilename
		newImageUrl = url
		merged.ImageUrl = url
		merged.ImageFilename = filename
		merged.ImageSizeBytes = int64(len(image.Bytes))
		merged.ImageWidth = width
		merged.ImageHeight = height
	}

	merged.UpdatedBy = actor.Id
	merged.UpdatedAt = time.Now()

	if err := s.store.Update(&merged); err != nil {
		if newImageUrl != "" {
			// 更新失败，补偿删除刚上传的新资产，横幅仍指向旧图
			s.uploader.Delete(merged.ImageFilename)
		}
		return nil, err
	}

	// 先新后旧：记录已指向新图，旧资产才可以删
	if oldFilename != "" {
		s.uploader.Delete(oldFilename)
	}

	entry := AuditEntry{
		BannerId:    &merged.Id,
		Action:      AuditActionUpdate,
		PerformedBy: actor.Id,
		IpAddress:   actor.Ip,
		UserAgent:   actor.UserAgent,
	}
	if newImageUrl != "" {
		entry.OldImageUrl = oldImageUrl
		entry.NewImageUrl = newImageUrl
	}
	s.audit.Append(entry)
	s.afterChange(merged.Position, AuditActionUpdate, merged.Id)

	return &merged, nil
}

// Delete 删除横幅
// permanent为true时资产和记录一并删除（不可逆），否则仅置为不可见
func (s *BannerService) Delete(id string, permanent bool, actor Actor) error {
	existing, err := s.store.Get(id)
	if err != nil {
		return err
	}

	if permanent {
		if existing.ImageFilename != "" {
			s.uploader.Delete(existing.ImageFilename)
		}
		if err := s.store.Delete(id); err != nil {
			return err
		}

		s.audit.Append(AuditEntry{
			BannerId:    nil, // 硬删除后记录已不存在
			Action:      AuditActionDelete,
			OldImageUrl: existing.ImageUrl,
			PerformedBy: actor.Id,
			IpAddress:   actor.Ip,
			UserAgent:   actor.UserAgent,
		})
		s.afterChange(existing.Position, AuditActionDelete, id)
		return nil
	}

	existing.IsActive = false
	existing.UpdatedBy = actor.Id
	existing.UpdatedAt = time.Now()
	if err := s.store.Update(existing); err != nil {
		return err
	}

	s.audit.Append(AuditEntry{
		BannerId:    &existing.Id,
		Action:      AuditActionDeactivate,
		OldImageUrl: existing.ImageUrl,
		PerformedBy: actor.Id,
		IpAddress:   actor.Ip,
		UserAgent:   actor.UserAgent,
	})
	s.afterChange(existing.Position, AuditActionDeactivate, id)
	return nil
}

// ToggleActive 翻转可见状态
func (s *BannerService) ToggleActive(id string, actor Actor) (*admin_model.Banner, error) {
	existing, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	existing.IsActive = !existing.IsActive
	existing.UpdatedBy = actor.Id
	existing.UpdatedAt = time.Now()
	if err := s.store.Update(existing); err != nil {
		return nil, err
	}

	s.audit.Append(AuditEntry{
		BannerId:    &existing.Id,
		Action:      AuditActionUpdate,
		PerformedBy: actor.Id,
		IpAddress:   actor.Ip,
		UserAgent:   actor.UserAgent,
	})
	s.afterChange(existing.Position, AuditActionUpdate, existing.Id)
	return existing, nil
}

// Reorder 按给定顺序重排运营位内的横幅，sort_order = 下标+1
// 不属于该运营位的id静默跳过（与线上行为保持一致），只打警告日志
func (s *BannerService) Reorder(position string, bannerIds []string, actor Actor) error {
	if _, ok := admin_model.GetPositionSpec(position); !ok {
		return ErrInvalidPosition
	}

	for i, id := range bannerIds {
		affected, err := s.store.SetSortOrder(id, position, i+1, actor.Id)
		if err != nil {
			return err
		}
		if affected == 0 {
			log.Printf("[WARN] 重排序跳过不属于运营位 %s 的横幅 id=%s", position, id)
		}
	}

	s.audit.Append(AuditEntry{
		BannerId:    nil,
		Action:      AuditActionUpdate,
		PerformedBy: actor.Id,
		IpAddress:   actor.Ip,
		UserAgent:   actor.UserAgent,
	})
	s.afterChange(position, AuditActionUpdate, "")
	return nil
}

// probeImage 读取位图尺寸，SVG直接跳过
func (s *BannerService) probeImage(image *ImageUpload) (int, int, error) {
	if utils.IsSvg(image.MimeType) {
		return 0, 0, nil
	}
	// 先走类型白名单，避免对已被拒绝的文件做无谓的解码
	if typeErr := utils.ValidateFileType(image.MimeType, admin_model.AllowedImageTypes); typeErr != nil {
		return 0, 0, &FileError{Detail: typeErr}
	}
	meta, err := utils.ReadImageMeta(image.Bytes)
	if err != nil {
		return 0, 0, &FileError{Detail: &utils.FileValidationError{
			Type:    utils.FileErrFormat,
			Message: "无法读取图片文件",
		}}
	}
	return meta.Width, meta.Height, nil
}

// afterChange 变更后的尽力而为动作：读缓存失效、事件广播
func (s *BannerService) afterChange(position, action, bannerId string) {
	if s.cache != nil {
		s.cache.Invalidate(position)
	}
	if s.events != nil {
		s.events.PublishChange(position, action, bannerId)
	}
}
