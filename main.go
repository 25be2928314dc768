package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	adminController "usprime-go-admin/controllers/admin"
	appController "usprime-go-admin/controllers/app"
	"usprime-go-admin/db"
	"usprime-go-admin/middleware"
	"usprime-go-admin/model/admin_model"
	"usprime-go-admin/mongodb"
	"usprime-go-admin/pkg/config"
	"usprime-go-admin/pkg/security"
	"usprime-go-admin/redis"
	"usprime-go-admin/router"
	"usprime-go-admin/services/admin_service"
	"usprime-go-admin/services/app_service"
	"usprime-go-admin/services/public_service"
	"usprime-go-admin/utils"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.Fatalf("配置初始化失败: %v", err)
	}
	cfg := config.GetConfig()

	gin.SetMode(cfg.Server.Mode)

	db.Init()
	seedAdminUser()
	mongodb.InitMongoDB()
	if err := redis.InitRedis(cfg.Redis); err != nil {
		log.Printf("WARNING: Redis不可用，前台横幅缓存降级为直查数据库: %v", err)
	}

	oss, err := utils.NewOSSUtil(utils.OSSConfig{
		Endpoint:        cfg.OSS.Endpoint,
		Region:          cfg.OSS.Region,
		AccessKeyID:     cfg.OSS.AccessKey,
		AccessKeySecret: cfg.OSS.SecretKey,
		BucketName:      cfg.OSS.Bucket,
		BaseURL:         cfg.OSS.BaseURL,
	})
	if err != nil {
		log.Fatalf("对象存储初始化失败: %v", err)
	}
	defer oss.Close()

	// 变更事件广播，未配置时跳过
	var events admin_service.BannerEvents
	var publisher *public_service.BannerEventPublisher
	if cfg.AMQP.Enabled {
		publisher, err = public_service.NewBannerEventPublisher(cfg.AMQP.URL)
		if err != nil {
			log.Printf("WARNING: 消息队列不可用，变更事件广播已禁用: %v", err)
		} else {
			events = publisher
			defer publisher.Close()
		}
	}

	appBannerService := app_service.NewBannerService(db.Dao, redis.GetClient())
	appController.SetupBanner(appBannerService)

	adminBannerService := admin_service.NewBannerService(
		admin_service.NewBannerStore(db.Dao),
		admin_service.NewOSSUploader(oss),
		admin_service.NewMongoAuditLogger(mongodb.GetAuditCollection()),
		appBannerService,
		events,
	)
	adminController.SetupBanner(adminBannerService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	router.Init(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("服务启动，监听端口 %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，开始优雅停机...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("服务停机出错: %v", err)
	}

	redis.CloseRedis()
	mongodb.Close()
	log.Println("服务已退出")
}

// seedAdminUser 首次部署时从环境变量初始化管理员账号
// 已有任何管理员或未设置 ADMIN_SEED_PASSWORD 时跳过
func seedAdminUser() {
	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if password == "" {
		return
	}

	var count int64
	if err := db.Dao.Model(&admin_model.AdminUser{}).Count(&count).Error; err != nil {
		log.Printf("WARNING: 管理员账号检查失败: %v", err)
		return
	}
	if count > 0 {
		return
	}

	username := os.Getenv("ADMIN_SEED_USERNAME")
	if username == "" {
		username = "admin"
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		log.Fatalf("管理员初始密码不合法: %v", err)
	}

	user := admin_model.AdminUser{
		Username:       username,
		PasswordBcrypt: hash,
		Role:           admin_model.RoleAdmin,
		Enable:         true,
	}
	if err := db.Dao.Create(&user).Error; err != nil {
		log.Fatalf("管理员账号初始化失败: %v", err)
	}
	log.Printf("已初始化管理员账号: %s", username)
}
