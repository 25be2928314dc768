package admin_model

import "time"

// 管理角色
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// AdminUser 后台管理账号
type AdminUser struct {
	Id             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username       string    `json:"username" gorm:"column:username;size:64;uniqueIndex"`
	PasswordBcrypt string    `json:"-" gorm:"column:password_bcrypt;size:128"`
	Role           string    `json:"role" gorm:"column:role;size:32;default:viewer"`
	Enable         bool      `json:"enable" gorm:"column:enable;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// CanManageBanners 是否允许写横幅（查看角色只读）
func (u *AdminUser) CanManageBanners() bool {
	return u.Role == RoleAdmin
}
