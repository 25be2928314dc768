package jwt

import (
	"testing"
	"time"

	"usprime-go-admin/pkg/config"
)

func setTestConfig(t *testing.T, key string) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{SigningKey: key, Issuer: "usprime-go-admin"},
	}
	t.Cleanup(func() { config.AppConfig = old })
}

func TestAdminTokenRoundTrip(t *testing.T) {
	setTestConfig(t, "test-key")

	token, err := GenerateAdminToken(7, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	claims, err := ParseAdminToken(token)
	if err != nil {
		t.Fatalf("ParseAdminToken: %v", err)
	}
	if claims.UID != 7 {
		t.Errorf("UID = %d", claims.UID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.Issuer != "usprime-go-admin" {
		t.Errorf("Issuer = %q, 应取自配置", claims.Issuer)
	}
}

// 密钥只在配置里设置（未经过环境变量）也必须生效
func TestSigningKeyFromConfig(t *testing.T) {
	setTestConfig(t, "config-only-key")

	token, err := GenerateAdminToken(1, "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}
	if _, err := ParseAdminToken(token); err != nil {
		t.Fatalf("ParseAdminToken: %v", err)
	}

	// 换密钥后旧令牌必须失效
	config.AppConfig.JWT.SigningKey = "rotated-key"
	if _, err := ParseAdminToken(token); err == nil {
		t.Error("换密钥后旧令牌不应通过")
	}
}

func TestParseExpiredToken(t *testing.T) {
	setTestConfig(t, "test-key")

	token, err := GenerateAdminToken(7, "admin", -time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	if _, err := ParseAdminToken(token); err != ErrTokenExpired {
		t.Errorf("期望 ErrTokenExpired, got %v", err)
	}
}

func TestParseGarbageToken(t *testing.T) {
	setTestConfig(t, "test-key")

	if _, err := ParseAdminToken("not.a.token"); err == nil {
		t.Error("期望解析失败")
	}
}
