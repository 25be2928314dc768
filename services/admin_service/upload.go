package admin_service

import (
	"log"

	"usprime-go-admin/pkg/monitoring"
	"usprime-go-admin/utils"
)

// Uploader 横幅资产上传接口
type Uploader interface {
	// Store 存储文件字节，返回可访问URL和存储文件名
	Store(fileBytes []byte, mimeType, originalFilename, position string) (url, filename string, err error)
	// Delete 尽力删除，失败只记日志，不阻塞主流程
	Delete(filename string) error
}

type ossUploader struct {
	oss *utils.OSSUtil
}

// NewOSSUploader 基于TOS对象存储的上传器
func NewOSSUploader(oss *utils.OSSUtil) Uploader {
	return &ossUploader{oss: oss}
}

func (u *ossUploader) Store(fileBytes []byte, mimeType, originalFilename, position string) (string, string, error) {
	filename := utils.GenerateBannerFilename(originalFilename, position)
	url, err := u.oss.PutObject(fileBytes, filename, mimeType)
	if err != nil {
		monitoring.IncUploadFailure()
		return "", "", &StorageError{Err: err}
	}
	return url, filename, nil
}

func (u *ossUploader) Delete(filename string) error {
	if filename == "" {
		return nil
	}
	if err := u.oss.DeleteObject(filename); err != nil {
		// 删除资产永远是补偿/清理动作，失败不升级
		log.Printf("[WARN] 删除横幅资产失败 filename=%s err=%v", filename, err)
		return err
	}
	return nil
}
