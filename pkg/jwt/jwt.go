package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"usprime-go-admin/pkg/config"
)

// JWT错误定义
var (
	ErrTokenExpired   = errors.New("token已过期")
	ErrTokenMalformed = errors.New("token格式错误")
	ErrTokenInvalid   = errors.New("token无效")
)

// AdminClaims 后台令牌载荷
type AdminClaims struct {
	UID  int    `json:"uid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// 签名密钥走统一配置，yaml和环境变量都在那里汇合
func signingKey() []byte {
	key := config.GetConfig().JWT.SigningKey
	if key == "" {
		key = "default-secret-key" // 开发环境默认值，生产环境必须设置
	}
	return []byte(key)
}

// GenerateAdminToken 签发后台令牌
func GenerateAdminToken(uid int, role string, expiry time.Duration) (string, error) {
	claims := AdminClaims{
		UID:  uid,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    config.GetConfig().JWT.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// ParseAdminToken 解析后台令牌
func ParseAdminToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名方法: %v", token.Header["alg"])
		}
		return signingKey(), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
