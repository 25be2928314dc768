package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setup() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := setup()
	Success(c, map[string]string{"id": "b-1"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("success 应为 true")
	}
	if len(resp.Errors) != 0 {
		t.Errorf("成功响应不应带 errors: %v", resp.Errors)
	}
}

func TestErrorEnvelope(t *testing.T) {
	c, w := setup()
	Error(c, http.StatusBadRequest, "无效的运营位", "position", CodeInvalidPosition)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success {
		t.Error("success 应为 false")
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("errors = %v", resp.Errors)
	}
	if resp.Errors[0].Field != "position" || resp.Errors[0].Code != CodeInvalidPosition {
		t.Errorf("字段错误内容不符: %+v", resp.Errors[0])
	}
}

func TestPagedEnvelope(t *testing.T) {
	c, w := setup()
	Paged(c, []string{"a", "b"}, Pagination{Page: 2, Limit: 50, Total: 120, TotalPages: 3}, nil)

	var resp PagedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.Success {
		t.Error("success 应为 true")
	}
	if resp.Pagination.Total != 120 || resp.Pagination.TotalPages != 3 {
		t.Errorf("分页信息不符: %+v", resp.Pagination)
	}
}
