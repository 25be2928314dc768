package admin

import (
	"errors"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"usprime-go-admin/inout"
	"usprime-go-admin/model/admin_model"
	"usprime-go-admin/pkg/response"
	"usprime-go-admin/services/admin_service"
)

var bannerService *admin_service.BannerService

// SetupBanner 注入横幅服务，路由注册前调用
func SetupBanner(svc *admin_service.BannerService) {
	bannerService = svc
}

// GetBannerList 横幅列表，带分页和运营位规格
func GetBannerList(c *gin.Context) {
	var params inout.GetBannerListReq
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	banners, total, err := bannerService.List(admin_service.BannerFilter{
		Position:  params.Position,
		IsActive:  params.IsActive,
		Page:      params.Page,
		Limit:     params.Limit,
		SortBy:    params.SortBy,
		SortOrder: params.SortOrder,
	})
	if err != nil {
		respondBannerError(c, err)
		return
	}

	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	response.Paged(c, banners, response.Pagination{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, admin_model.AllPositionSpecs())
}

// GetBannerDetail 横幅详情，附带所属运营位的规格
func GetBannerDetail(c *gin.Context) {
	banner, err := bannerService.Get(c.Param("id"))
	if err != nil {
		respondBannerError(c, err)
		return
	}

	spec, _ := admin_model.GetPositionSpec(banner.Position)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      banner,
		"size_spec": spec,
	})
}

// GetSizeSpecs 全部运营位规格
func GetSizeSpecs(c *gin.Context) {
	specs := make([]admin_model.BannerSizeSpec, 0, len(admin_model.BannerPositions))
	for pos := range admin_model.BannerPositions {
		spec, _ := admin_model.GetPositionSpec(pos)
		specs = append(specs, spec)
	}
	response.Success(c, specs)
}

// AddBanner 创建横幅（multipart，图片在image部分）
func AddBanner(c *gin.Context) {
	var params inout.CreateBannerReq
	if err := c.ShouldBind(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	image, err := readUploadedImage(c)
	if err != nil {
		response.ServerError(c, "读取上传文件失败")
		return
	}

	startDate, err := parseDateField(params.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "start_date 格式错误", "start_date", response.CodeMissingRequiredField)
		return
	}
	endDate, err := parseDateField(params.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "end_date 格式错误", "end_date", response.CodeMissingRequiredField)
		return
	}

	banner, err := bannerService.Create(admin_service.CreateBannerInput{
		Name:         params.Name,
		Description:  params.Description,
		Position:     params.Position,
		LinkUrl:      params.LinkUrl,
		LinkType:     params.LinkType,
		OpenInNewTab: params.OpenInNewTab,
		AltText:      params.AltText,
		IsActive:     params.IsActive,
		SortOrder:    params.SortOrder,
		StartDate:    startDate,
		EndDate:      endDate,
	}, image, actorFrom(c))
	if err != nil {
		respondBannerError(c, err)
		return
	}

	response.Created(c, banner, "横幅创建成功")
}

// UpdateBanner 更新横幅，未提交的字段保持原值
func UpdateBanner(c *gin.Context) {
	var params inout.UpdateBannerReq
	if err := c.ShouldBind(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	image, err := readUploadedImage(c)
	if err != nil {
		response.ServerError(c, "读取上传文件失败")
		return
	}

	input := admin_service.UpdateBannerInput{
		Name:         params.Name,
		Description:  params.Description,
		LinkUrl:      params.LinkUrl,
		LinkType:     params.LinkType,
		OpenInNewTab: params.OpenInNewTab,
		AltText:      params.AltText,
		IsActive:     params.IsActive,
		SortOrder:    params.SortOrder,
	}

	// 日期字段：传空串表示清空投放窗口
	if params.StartDate != nil {
		if *params.StartDate == "" {
			input.ClearStart = true
		} else {
			t, err := parseDateField(*params.StartDate)
			if err != nil {
				response.Error(c, http.StatusBadRequest, "start_date 格式错误", "start_date", response.CodeMissingRequiredField)
				return
			}
			input.StartDate = t
		}
	}
	if params.EndDate != nil {
		if *params.EndDate == "" {
			input.ClearEnd = true
		} else {
			t, err := parseDateField(*params.EndDate)
			if err != nil {
				response.Error(c, http.StatusBadRequest, "end_date 格式错误", "end_date", response.CodeMissingRequiredField)
				return
			}
			input.EndDate = t
		}
	}

	banner, err := bannerService.Update(c.Param("id"), input, image, actorFrom(c))
	if err != nil {
		respondBannerError(c, err)
		return
	}

	response.Success(c, banner, "横幅更新成功")
}

// DeleteBanner 删除横幅，?permanent=true 时物理删除（含资产）
func DeleteBanner(c *gin.Context) {
	id := c.Param("id")
	permanent := c.Query("permanent") == "true"

	if err := bannerService.Delete(id, permanent, actorFrom(c)); err != nil {
		respondBannerError(c, err)
		return
	}

	msg := "横幅已下线"
	if permanent {
		msg = "横幅已永久删除"
	}
	response.Success(c, gin.H{"id": id}, msg)
}

// ToggleBanner 翻转横幅可见状态
func ToggleBanner(c *gin.Context) {
	banner, err := bannerService.ToggleActive(c.Param("id"), actorFrom(c))
	if err != nil {
		respondBannerError(c, err)
		return
	}

	msg := "横幅已下线"
	if banner.IsActive {
		msg = "横幅已上线"
	}
	response.Success(c, banner, msg)
}

// ReorderBanners 重排序某运营位内的横幅
func ReorderBanners(c *gin.Context) {
	var params inout.ReorderBannersReq
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := bannerService.Reorder(params.Position, params.BannerIds, actorFrom(c)); err != nil {
		respondBannerError(c, err)
		return
	}

	response.Success(c, gin.H{
		"position":   params.Position,
		"banner_ids": params.BannerIds,
	}, "横幅排序已更新")
}

// readUploadedImage 读取multipart中的image部分，没有上传时返回nil
func readUploadedImage(c *gin.Context) (*admin_service.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return bufferUpload(fileHeader)
}

func bufferUpload(fileHeader *multipart.FileHeader) (*admin_service.ImageUpload, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &admin_service.ImageUpload{
		Bytes:            data,
		MimeType:         fileHeader.Header.Get("Content-Type"),
		OriginalFilename: fileHeader.Filename,
	}, nil
}

// actorFrom 从上下文提取操作者（JWT中间件已写入uid）
func actorFrom(c *gin.Context) admin_service.Actor {
	actorId := ""
	if uid, exists := c.Get("uid"); exists {
		if id, ok := uid.(int); ok {
			actorId = strconv.Itoa(id)
		}
	}
	return admin_service.Actor{
		Id:        actorId,
		Ip:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}
}

// 日期字段支持日期和RFC3339两种格式
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDateField(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	var lastErr error
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		} else {
			lastErr = err
		}
	}
	return nil, lastErr
}

// respondBindingError 参数绑定失败的统一映射
// 校验规则失败按字段上报，banner_position规则对应运营位错误码
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		response.Error(c, http.StatusBadRequest, "请求参数错误: "+err.Error(), "body", response.CodeMissingRequiredField)
		return
	}

	fieldErrs := make([]response.FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		code := response.CodeMissingRequiredField
		msg := "字段 " + e.Field() + " 不合法"
		if e.Tag() == "banner_position" {
			code = response.CodeInvalidPosition
			msg = "无效的运营位"
		} else if e.Tag() == "required" {
			msg = "字段 " + e.Field() + " 必填"
		}
		fieldErrs = append(fieldErrs, response.FieldError{
			Field:   e.Field(),
			Message: msg,
			Code:    code,
		})
	}
	response.Errors(c, http.StatusBadRequest, "请求参数错误", fieldErrs)
}

// respondBannerError 业务错误到HTTP响应的统一映射
func respondBannerError(c *gin.Context, err error) {
	var formErr *admin_service.FormError
	var fileErr *admin_service.FileError
	var storageErr *admin_service.StorageError

	switch {
	case errors.As(err, &formErr):
		fieldErrs := make([]response.FieldError, 0, len(formErr.Fields))
		for field, msg := range formErr.Fields {
			fieldErrs = append(fieldErrs, response.FieldError{
				Field:   field,
				Message: msg,
				Code:    response.CodeMissingRequiredField,
			})
		}
		response.Errors(c, http.StatusBadRequest, "表单校验失败", fieldErrs)

	case errors.As(err, &fileErr):
		code := response.CodeInvalidFileType
		switch fileErr.Detail.Type {
		case "size":
			code = response.CodeFileTooLarge
		case "dimensions", "aspect_ratio":
			code = response.CodeInvalidDimensions
		}
		response.Error(c, http.StatusBadRequest, fileErr.Error(), "image", code)

	case errors.As(err, &storageErr):
		log.Printf("[ERROR] 横幅资产存储失败: %v", storageErr)
		response.Error(c, http.StatusInternalServerError, "图片上传失败", "image", response.CodeUploadFailed)

	case errors.Is(err, admin_service.ErrBannerNotFound):
		response.Error(c, http.StatusNotFound, "横幅不存在", "id", response.CodeBannerNotFound)

	case errors.Is(err, admin_service.ErrInvalidPosition):
		response.Error(c, http.StatusBadRequest, "无效的运营位", "position", response.CodeInvalidPosition)

	case errors.Is(err, admin_service.ErrPositionLimitReached):
		response.Error(c, http.StatusBadRequest, "该运营位横幅数量已达上限", "position", response.CodePositionLimitReached)

	case errors.Is(err, admin_service.ErrImageRequired):
		response.Error(c, http.StatusBadRequest, "请上传横幅图片", "image", response.CodeMissingRequiredField)

	default:
		log.Printf("[ERROR] 横幅操作失败: %v", err)
		response.ServerError(c, "服务器内部错误")
	}
}
