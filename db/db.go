package db

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"usprime-go-admin/pkg/config"
	"usprime-go-admin/pkg/monitoring"
)

var Dao *gorm.DB

func Init() {
	cfg := config.GetConfig()

	dsn := cfg.Database.DSN
	if dsn == "" {
		log.Fatalf("数据库连接字符串未配置，请设置环境变量 MYSQL_DSN 或配置文件中的 database.dsn")
	}

	// GORM日志按天落盘
	logDir := "gormlog"
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}
	logFile := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}

	var logLevel logger.LogLevel
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	default:
		logLevel = logger.Info
	}

	dbLogger := logger.New(
		log.New(file, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			Colorful:                  false,
			IgnoreRecordNotFoundError: true,
			LogLevel:                  logLevel,
		},
	)

	openDb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                                   dbLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("db connection error is %s", err.Error())
	}

	dbCon, err := openDb.DB()
	if err != nil {
		log.Fatalf("openDb.DB error is  %s", err.Error())
	}

	dbCon.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbCon.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbCon.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	dbCon.SetConnMaxIdleTime(30 * time.Minute)

	log.Printf("数据库连接池配置 - MaxOpen: %d, MaxIdle: %d, MaxLifetime: %v",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)
	Dao = openDb

	go startDBMonitoring(dbCon)
}

// 定期上报连接池指标，使用异常时额外记录日志
func startDBMonitoring(dbCon *sql.DB) {
	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats := dbCon.Stats()

		poolUsageRate := float64(stats.OpenConnections) / float64(stats.MaxOpenConnections)
		if poolUsageRate > 0.7 || stats.WaitCount > 0 {
			log.Printf("数据库连接池监控 - 打开: %d/%d (%.1f%%), 使用中: %d, 空闲: %d, 等待: %d",
				stats.OpenConnections, stats.MaxOpenConnections, poolUsageRate*100,
				stats.InUse, stats.Idle, stats.WaitCount)
		}

		monitoring.UpdateDBConnections(stats.InUse)
	}
}
