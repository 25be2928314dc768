package mongodb

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"usprime-go-admin/pkg/config"
)

var client *mongo.Client

// InitMongoDB 初始化MongoDB连接，审计日志依赖这里
func InitMongoDB() {
	cfg := config.GetConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	client = c
	log.Printf("MongoDB连接已初始化: %s", cfg.MongoDB.Database)
}

// GetAuditCollection 审计日志集合
func GetAuditCollection() *mongo.Collection {
	if client == nil {
		return nil
	}
	cfg := config.GetConfig()
	return client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
}

// Close 关闭MongoDB连接
func Close() {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect MongoDB: %v", err)
	}
}
