package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP请求指标
var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "usprime_http_requests_total",
		Help: "HTTP请求总数",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "usprime_http_request_duration_seconds",
		Help:    "HTTP请求耗时",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// 横幅业务指标
var (
	uploadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "usprime_banner_upload_failures_total",
		Help: "横幅资产上传失败次数",
	})

	auditWriteFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "usprime_banner_audit_write_failures_total",
		Help: "审计日志写入失败次数（主操作不受影响，需要运维关注）",
	})

	dbConnectionsInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "usprime_db_connections_in_use",
		Help: "数据库连接池使用中的连接数",
	})
)

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// IncUploadFailure 上传失败计数
func IncUploadFailure() {
	uploadFailuresTotal.Inc()
}

// IncAuditWriteFailure 审计写入失败计数
func IncAuditWriteFailure() {
	auditWriteFailuresTotal.Inc()
}

// UpdateDBConnections 更新数据库连接数
func UpdateDBConnections(inUse int) {
	dbConnectionsInUse.Set(float64(inUse))
}
