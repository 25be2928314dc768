package api

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"usprime-go-admin/db"
	"usprime-go-admin/inout"
	"usprime-go-admin/model/admin_model"
	"usprime-go-admin/pkg/config"
	"usprime-go-admin/pkg/jwt"
	"usprime-go-admin/pkg/response"
	"usprime-go-admin/pkg/security"
	"usprime-go-admin/utils"
)

var Auth = &auth{}

type auth struct {
}

func (auth) Captcha(c *gin.Context) {
	svg, code := utils.GenerateSVG(80, 40)
	session := sessions.Default(c)
	session.Set("captcha", code)
	session.Save()
	c.Header("Content-Type", "image/svg+xml; charset=utf-8")
	c.Data(http.StatusOK, "image/svg+xml", svg)
}

func (auth) Login(c *gin.Context) {
	var params inout.LoginReq
	if err := c.ShouldBindJSON(&params); err != nil {
		response.Error(c, http.StatusBadRequest, "请求参数错误", "body", response.CodeMissingRequiredField)
		return
	}

	if err := security.ValidateInput(params.Username); err != nil {
		response.Error(c, http.StatusBadRequest, "用户名包含非法字符", "username", response.CodeMissingRequiredField)
		return
	}

	session := sessions.Default(c)
	if params.Captcha != session.Get("captcha") {
		response.Error(c, http.StatusBadRequest, "验证码不正确", "captcha", response.CodeMissingRequiredField)
		return
	}
	// 验证码一次性使用
	session.Delete("captcha")
	session.Save()

	var info admin_model.AdminUser
	db.Dao.Model(admin_model.AdminUser{}).Where("username = ?", params.Username).Find(&info)
	if info.Id == 0 || !info.Enable {
		response.Error(c, http.StatusUnauthorized, "账号或密码不正确", "username", response.CodeUnauthorized)
		return
	}

	if !security.CheckPasswordHash(params.Password, info.PasswordBcrypt) {
		response.Error(c, http.StatusUnauthorized, "账号或密码不正确", "password", response.CodeUnauthorized)
		return
	}

	token, err := jwt.GenerateAdminToken(info.Id, info.Role, config.GetConfig().JWT.Expiry)
	if err != nil {
		response.ServerError(c, "生成令牌失败")
		return
	}

	response.Success(c, inout.LoginRes{AccessToken: token})
}

func (auth) Logout(c *gin.Context) {
	response.Success(c, true)
}
