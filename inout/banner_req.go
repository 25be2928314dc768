package inout

// GetBannerListReq 横幅列表查询参数
type GetBannerListReq struct {
	Position  string `form:"position" binding:"omitempty,banner_position"`
	IsActive  *bool  `form:"is_active"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=50"`
	SortBy    string `form:"sort_by,default=sort_order" binding:"omitempty,oneof=created_at updated_at sort_order name"`
	SortOrder string `form:"sort_order,default=asc" binding:"omitempty,oneof=asc desc"`
}

// CreateBannerReq 创建横幅表单字段（multipart，图片在image部分）
type CreateBannerReq struct {
	Name         string `form:"name"`
	Description  string `form:"description"`
	Position     string `form:"position" binding:"required,banner_position"`
	LinkUrl      string `form:"link_url"`
	LinkType     string `form:"link_type" binding:"omitempty,oneof=internal external none"`
	OpenInNewTab bool   `form:"open_in_new_tab"`
	AltText      string `form:"alt_text"`
	IsActive     *bool  `form:"is_active"`
	SortOrder    *int   `form:"sort_order"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
}

// UpdateBannerReq 更新横幅表单字段，全部可选
// 指针为nil表示不修改，传空串表示清空
type UpdateBannerReq struct {
	Name         *string `form:"name"`
	Description  *string `form:"description"`
	LinkUrl      *string `form:"link_url"`
	LinkType     *string `form:"link_type" binding:"omitempty,oneof=internal external none"`
	OpenInNewTab *bool   `form:"open_in_new_tab"`
	AltText      *string `form:"alt_text"`
	IsActive     *bool   `form:"is_active"`
	SortOrder    *int    `form:"sort_order"`
	StartDate    *string `form:"start_date"`
	EndDate      *string `form:"end_date"`
}

// ReorderBannersReq 重排序请求体
type ReorderBannersReq struct {
	Position  string   `json:"position" binding:"required,banner_position"`
	BannerIds []string `json:"banner_ids" binding:"required"`
}
