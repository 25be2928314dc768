package security

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt成本，管理端登录频率低，用偏高的值
const hashCost = 12

// HashPassword 生成密码哈希，建号工具和密码重置用
func HashPassword(password string) (string, error) {
	if len(password) < 6 || len(password) > 64 {
		return "", errors.New("密码长度须在6到64位之间")
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	return string(bytes), err
}

// CheckPasswordHash 验证密码
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// 常见SQL注入特征
var sqlInjectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*(union|select|insert|update|delete|drop)\s+`),
	regexp.MustCompile(`(?i)\s*(or|and)\s+\d+\s*=\s*\d+`),
	regexp.MustCompile(`(?i)['";](\s*--|\s*/\*)`),
}

// ValidateInput 登录用户名的输入检查
func ValidateInput(input string) error {
	for _, pattern := range sqlInjectionPatterns {
		if pattern.MatchString(input) {
			return errors.New("输入包含不安全的字符")
		}
	}
	return nil
}
