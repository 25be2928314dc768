package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"usprime-go-admin/pkg/config"
)

var (
	rdb         *redis.Client
	initOnce    sync.Once
	initialized bool
	initErr     error
	ErrNil      = errors.New("redis: nil")
)

// InitRedis 初始化 Redis 客户端
func InitRedis(cfg config.RedisConfig) error {
	initOnce.Do(func() {
		log.Printf("Initializing Redis client with address: %s, DB: %d", cfg.Addr, cfg.DB)

		rdb = redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  cfg.DialTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			PoolSize:     cfg.PoolSize,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := rdb.Ping(ctx).Err(); err != nil {
			initErr = fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
			log.Printf("ERROR: %v", initErr)
			return
		}

		initialized = true
		log.Printf("Successfully connected to Redis at %s, DB: %d", cfg.Addr, cfg.DB)
	})

	return initErr
}

// GetClient 获取 Redis 客户端实例，未初始化时返回nil，调用方需容忍降级
func GetClient() *redis.Client {
	if !initialized {
		log.Print("WARNING: Redis client not initialized, caching disabled")
	}
	return rdb
}

// IsConnected 检查 Redis 是否已连接
func IsConnected() bool {
	if rdb == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return rdb.Ping(ctx).Err() == nil
}

// CloseRedis 关闭 Redis 连接
func CloseRedis() error {
	if rdb != nil {
		log.Print("Closing Redis connection")
		return rdb.Close()
	}
	return nil
}
