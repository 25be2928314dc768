package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"usprime-go-admin/api"
	adminController "usprime-go-admin/controllers/admin"
	appController "usprime-go-admin/controllers/app"
	"usprime-go-admin/middleware"
)

func Init(r *gin.Engine) {
	// 使用 cookie 存储会话数据，验证码校验依赖
	r.Use(sessions.Sessions("usprime_session", cookie.NewStore([]byte("captcha-session-key"))))
	r.Use(middleware.RequestID())
	r.Use(middleware.Cors())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 商城前台，无需认证
	r.GET("/api/banners", appController.GetBanners)

	r.POST("/auth/login", api.Auth.Login)
	r.GET("/auth/captcha", api.Auth.Captcha)

	apiAdminGroup := r.Group("/admin")
	apiAdminGroup.Use(middleware.Jwt())
	{
		apiAdminGroup.POST("/auth/logout", api.Auth.Logout)

		// 查看角色可读列表与详情
		apiAdminGroup.GET("/banners", adminController.GetBannerList)
		apiAdminGroup.GET("/banners/size-specs", adminController.GetSizeSpecs)
		apiAdminGroup.GET("/banners/:id", adminController.GetBannerDetail)

		// 写操作仅限管理员角色
		writeGroup := apiAdminGroup.Group("")
		writeGroup.Use(middleware.RequireBannerAdmin())
		{
			writeGroup.POST("/banners", adminController.AddBanner)
			writeGroup.PUT("/banners/:id", adminController.UpdateBanner)
			writeGroup.DELETE("/banners/:id", adminController.DeleteBanner)
			writeGroup.PATCH("/banners/:id/toggle", adminController.ToggleBanner)
			writeGroup.PATCH("/banners/reorder", adminController.ReorderBanners)
		}
	}
}
