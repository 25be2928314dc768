package inout

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"usprime-go-admin/model/admin_model"
)

// 注册自定义校验规则，binding标签里用 banner_position
// 字段名按form/json标签上报，错误信息直接对应请求字段
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("banner_position", validBannerPosition)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

func validBannerPosition(fl validator.FieldLevel) bool {
	_, ok := admin_model.GetPositionSpec(fl.Field().String())
	return ok
}
