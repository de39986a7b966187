package model

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin UserRole = "admin" // 管理员，绕过记录级权限检查
	RoleUser  UserRole = "user"  // 普通用户
)

// User 用户
type User struct {
	ID           string   `gorm:"primaryKey;size:36" json:"id"`
	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"size:20;default:'user'" json:"role"`
	// Permissions 按权限键覆盖全局默认值，如 {"workspace.datasets": true}
	Permissions JSON  `gorm:"type:text" json:"permissions,omitempty"`
	IsActive    bool  `gorm:"default:true" json:"is_active"`
	CreatedAt   int64 `json:"created_at"`
	UpdatedAt   int64 `json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserInfo 用户公开信息（不含敏感数据）
type UserInfo struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// ToUserInfo 转换为 UserInfo
func (u *User) ToUserInfo() *UserInfo {
	return &UserInfo{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Group 用户群组，ACL 中的 group_ids 引用于此
type Group struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	UserIDs     StringList `gorm:"type:text" json:"user_ids"`
	CreatedAt   int64      `json:"created_at"`
	UpdatedAt   int64      `json:"updated_at"`
}

// TableName 指定表名
func (Group) TableName() string {
	return "groups"
}

// AuthToken 已签发令牌记录，用于撤销
type AuthToken struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	UserID    string `gorm:"index;size:36;not null" json:"user_id"`
	Token     string `gorm:"type:text;not null" json:"-"`
	ExpiresAt int64  `json:"expires_at"`
	IsRevoked bool   `gorm:"default:false" json:"is_revoked"`
	CreatedAt int64  `json:"created_at"`
}

// TableName 指定表名
func (AuthToken) TableName() string {
	return "auth_tokens"
}
