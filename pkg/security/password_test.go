package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-admin")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-admin" {
		t.Fatal("哈希不得等于明文")
	}

	if !CheckPasswordHash("s3cret-admin", hash) {
		t.Error("正确密码应通过")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("错误密码不应通过")
	}
	if CheckPasswordHash("s3cret-admin", "not-a-bcrypt-hash") {
		t.Error("非法哈希不应通过")
	}
}

func TestHashPasswordLength(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Error("过短密码应拒绝")
	}
	if _, err := HashPassword(string(make([]byte, 65))); err == nil {
		t.Error("过长密码应拒绝")
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"正常用户名", "banner_admin", false},
		{"带数字", "ops2026", false},
		{"union注入", "x UNION SELECT password", true},
		{"恒真条件", "a or 1=1", true},
		{"引号注释", "admin'--", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInput(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
