package repository

import (
	"errors"
	"time"

	"github.com/ashwinyue/dataset-hub/internal/model"
	"gorm.io/gorm"
)

// UserRepository 用户、群组与令牌数据访问
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser 创建用户
func (r *UserRepository) CreateUser(user *model.User) error {
	now := time.Now().Unix()
	user.CreatedAt = now
	user.UpdatedAt = now
	return r.db.Create(user).Error
}

// GetUserByID 获取用户，不存在时返回 nil
func (r *UserRepository) GetUserByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail 获取用户，不存在时返回 nil
func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountUsers 统计用户数量
func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// UpdateUser 更新用户
func (r *UserRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now().Unix()
	return r.db.Save(user).Error
}

// CreateGroup 创建群组
func (r *UserRepository) CreateGroup(group *model.Group) error {
	now := time.Now().Unix()
	group.CreatedAt = now
	group.UpdatedAt = now
	return r.db.Create(group).Error
}

// GroupIDs 解析用户所属的群组 ID
// 成员列表为 JSON 存储，在内存中过滤
func (r *UserRepository) GroupIDs(userID string) ([]string, error) {
	var groups []*model.Group
	if err := r.db.Find(&groups).Error; err != nil {
		return nil, err
	}
	var ids []string
	for _, g := range groups {
		for _, member := range g.UserIDs {
			if member == userID {
				ids = append(ids, g.ID)
				break
			}
		}
	}
	return ids, nil
}

// CreateToken 记录已签发令牌
func (r *UserRepository) CreateToken(token *model.AuthToken) error {
	token.CreatedAt = time.Now().Unix()
	return r.db.Create(token).Error
}

// GetTokenByValue 获取未撤销且未过期的令牌记录，不存在时返回 nil
func (r *UserRepository) GetTokenByValue(tokenValue string) (*model.AuthToken, error) {
	var token model.AuthToken
	err := r.db.Where("token = ? AND is_revoked = ?", tokenValue, false).
		Where("expires_at > ?", time.Now().Unix()).
		First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// RevokeToken 撤销令牌
func (r *UserRepository) RevokeToken(tokenValue string) error {
	return r.db.Model(&model.AuthToken{}).
		Where("token = ?", tokenValue).
		Update("is_revoked", true).Error
}
