package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"
)

// OSSConfig 对象存储配置
type OSSConfig struct {
	Endpoint        string
	AccessKeyID     string
	AccessKeySecret string
	BucketName      string
	BaseURL         string // 访问URL前缀
	Timeout         int    // 超时时间(秒)
	Region          string // 区域
}

// OSSUtil 对象存储工具类，横幅图片统一走这里
type OSSUtil struct {
	config OSSConfig
	client *tos.ClientV2
}

// NewOSSUtil 创建对象存储工具实例
func NewOSSUtil(config OSSConfig) (*OSSUtil, error) {
	if config.Endpoint == "" || config.AccessKeyID == "" || config.AccessKeySecret == "" || config.BucketName == "" {
		return nil, errors.New("TOS配置参数不完整")
	}

	if config.Timeout <= 0 {
		config.Timeout = 30
	}
	if config.BaseURL != "" && !strings.HasSuffix(config.BaseURL, "/") {
		config.BaseURL += "/"
	}

	credential := tos.NewStaticCredentials(config.AccessKeyID, config.AccessKeySecret)
	tosClient, err := tos.NewClientV2(config.Endpoint,
		tos.WithCredentials(credential),
		tos.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("初始化TOS客户端失败: %w", err)
	}

	return &OSSUtil{config: config, client: tosClient}, nil
}

// Close 关闭客户端并释放资源
func (u *OSSUtil) Close() {
	if u.client != nil {
		u.client.Close()
	}
}

// PutObject 上传字节到指定key，返回可访问的URL
// 失败不自动重试，由调用方或基础设施决定是否重试
func (u *OSSUtil) PutObject(data []byte, key, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("对象key不能为空")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(u.config.Timeout)*time.Second)
	defer cancel()

	input := &tos.PutObjectV2Input{
		PutObjectBasicInput: tos.PutObjectBasicInput{
			Bucket:      u.config.BucketName,
			Key:         key,
			ContentType: contentType,
		},
		Content: bytes.NewReader(data),
	}

	if _, err := u.client.PutObjectV2(ctx, input); err != nil {
		return "", fmt.Errorf("上传文件到TOS失败: %w", err)
	}

	return u.config.BaseURL + key, nil
}

// DeleteObject 删除指定key的对象
// 支持传完整URL，会自动剥掉前缀
func (u *OSSUtil) DeleteObject(key string) error {
	if strings.HasPrefix(key, u.config.BaseURL) {
		key = strings.TrimPrefix(key, u.config.BaseURL)
	}
	if key == "" {
		return errors.New("无效的对象key")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(u.config.Timeout)*time.Second)
	defer cancel()

	input := &tos.DeleteObjectV2Input{
		Bucket: u.config.BucketName,
		Key:    key,
	}

	if _, err := u.client.DeleteObjectV2(ctx, input); err != nil {
		return fmt.Errorf("删除TOS文件失败: %w", err)
	}
	return nil
}

const filenameRandChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBannerFilename 生成防冲突的对象key
// 形如 banners/<position>/<时间戳>-<随机串>.<扩展名>
func GenerateBannerFilename(originalFilename, position string) string {
	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = ".jpg"
	}

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = filenameRandChars[rand.Intn(len(filenameRandChars))]
	}

	return fmt.Sprintf("banners/%s/%d-%s%s", position, time.Now().UnixMilli(), suffix, ext)
}
