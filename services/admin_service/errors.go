package admin_service

import (
	"errors"
	"fmt"

	"usprime-go-admin/utils"
)

// 业务错误，控制器按类型映射到HTTP状态码和错误码
var (
	ErrBannerNotFound       = errors.New("横幅不存在")
	ErrInvalidPosition      = errors.New("无效的运营位")
	ErrPositionLimitReached = errors.New("运营位数量已达上限")
	ErrImageRequired        = errors.New("请上传横幅图片")
)

// FormError 表单校验失败，携带全部字段错误
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	return fmt.Sprintf("表单校验失败: %d 个字段不合法", len(e.Fields))
}

// FileError 文件校验失败
type FileError struct {
	Detail *utils.FileValidationError
}

func (e *FileError) Error() string {
	return e.Detail.Error()
}

// StorageError 对象存储写入失败
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("对象存储操作失败: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
