package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"usprime-go-admin/model/admin_model"
	"usprime-go-admin/pkg/response"
	"usprime-go-admin/services/app_service"
)

var bannerService *app_service.BannerService

// SetupBanner 注入前台横幅服务
func SetupBanner(svc *app_service.BannerService) {
	bannerService = svc
}

// GetBanners 商城前台按运营位取当前可投放的横幅
func GetBanners(c *gin.Context) {
	position := c.Query("position")
	if _, ok := admin_model.GetPositionSpec(position); !ok {
		response.Error(c, http.StatusBadRequest, "无效的运营位", "position", response.CodeInvalidPosition)
		return
	}

	banners, err := bannerService.GetActiveBanners(c.Request.Context(), position)
	if err != nil {
		response.ServerError(c, "获取横幅失败")
		return
	}

	response.Success(c, banners)
}
