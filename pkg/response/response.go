package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 统一错误码定义（字符串码，前端按码分支，保持稳定不可更改）
const (
	CodeInvalidPosition      = "INVALID_POSITION"
	CodeInvalidFileType      = "INVALID_FILE_TYPE"
	CodeFileTooLarge         = "FILE_TOO_LARGE"
	CodeInvalidDimensions    = "INVALID_DIMENSIONS"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeBannerNotFound       = "BANNER_NOT_FOUND"
	CodePositionLimitReached = "POSITION_LIMIT_REACHED"
	CodeUploadFailed         = "UPLOAD_FAILED"
	CodeStorageError         = "STORAGE_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeServerError          = "SERVER_ERROR"
)

// FieldError 字段级错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Response 统一响应结构
type Response struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Pagination 分页信息
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PagedResponse 带分页的列表响应
type PagedResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
	SizeSpecs  interface{} `json:"size_specs,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}, message ...string) {
	resp := Response{Success: true, Data: data}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.JSON(http.StatusOK, resp)
}

// Created 创建成功响应，返回201
func Created(c *gin.Context, data interface{}, message ...string) {
	resp := Response{Success: true, Data: data}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	c.JSON(http.StatusCreated, resp)
}

// Paged 分页列表响应
func Paged(c *gin.Context, data interface{}, p Pagination, sizeSpecs interface{}) {
	c.JSON(http.StatusOK, PagedResponse{
		Success:    true,
		Data:       data,
		Pagination: p,
		SizeSpecs:  sizeSpecs,
	})
}

// Error 单字段错误响应
func Error(c *gin.Context, status int, message, field, code string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Errors:  []FieldError{{Field: field, Message: message, Code: code}},
	})
}

// Errors 多字段错误响应（表单校验结果一次性返回）
func Errors(c *gin.Context, status int, message string, errs []FieldError) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// ServerError 服务器内部错误，细节只进日志不出网
func ServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message, "server", CodeServerError)
}

// Abort 中断请求并返回错误
func Abort(c *gin.Context, status int, message, field, code string) {
	Error(c, status, message, field, code)
	c.Abort()
}
