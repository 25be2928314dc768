package admin_service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"usprime-go-admin/pkg/monitoring"
)

// 审计动作
const (
	AuditActionCreate     = "create"
	AuditActionUpdate     = "update"
	AuditActionDelete     = "delete"
	AuditActionDeactivate = "deactivate"
)

// AuditEntry 横幅操作审计记录，只追加，永不修改
type AuditEntry struct {
	BannerId    *string   `bson:"banner_id" json:"banner_id"`
	Action      string    `bson:"action" json:"action"`
	OldImageUrl string    `bson:"old_image_url,omitempty" json:"old_image_url,omitempty"`
	NewImageUrl string    `bson:"new_image_url,omitempty" json:"new_image_url,omitempty"`
	PerformedBy string    `bson:"performed_by" json:"performed_by"`
	IpAddress   string    `bson:"ip_address" json:"ip_address"`
	UserAgent   string    `bson:"user_agent" json:"user_agent"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// AuditLogger 审计日志接口
// 写入失败只记日志并计数，绝不让主操作回滚
type AuditLogger interface {
	Append(entry AuditEntry)
}

type mongoAuditLogger struct {
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoAuditLogger 基于MongoDB的审计日志
func NewMongoAuditLogger(collection *mongo.Collection) AuditLogger {
	return &mongoAuditLogger{collection: collection, timeout: 5 * time.Second}
}

func (l *mongoAuditLogger) Append(entry AuditEntry) {
	if l.collection == nil {
		log.Printf("[WARN] 审计日志集合未初始化，丢弃记录 action=%s", entry.Action)
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()

	if _, err := l.collection.InsertOne(ctx, entry); err != nil {
		monitoring.IncAuditWriteFailure()
		log.Printf("[ERROR] 审计日志写入失败 action=%s err=%v", entry.Action, err)
	}
}
