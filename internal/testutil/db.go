// Package testutil 提供测试辅助工具
package testutil

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
)

// NewTestDB 创建内存 SQLite 数据库并完成迁移
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// 内存库绑定单连接，避免连接切换丢库
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(model.AllModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// NewTestRepos 创建基于内存库的仓库集合
func NewTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	return repository.NewRepositories(NewTestDB(t))
}

// SeedUser 写入测试用户
func SeedUser(t *testing.T, repos *repository.Repositories, id string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		ID:           id,
		Name:         id,
		Email:        fmt.Sprintf("%s@example.com", id),
		PasswordHash: "test-hash",
		Role:         role,
		IsActive:     true,
	}
	if err := repos.User.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user %s: %v", id, err)
	}
	return user
}

// SeedUserWithPermissions 写入带权限覆盖的测试用户
func SeedUserWithPermissions(t *testing.T, repos *repository.Repositories, id string, permissions model.JSON) *model.User {
	t.Helper()

	user := &model.User{
		ID:           id,
		Name:         id,
		Email:        fmt.Sprintf("%s@example.com", id),
		PasswordHash: "test-hash",
		Role:         model.RoleUser,
		Permissions:  permissions,
		IsActive:     true,
	}
	if err := repos.User.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user %s: %v", id, err)
	}
	return user
}

// SeedGroup 写入测试群组
func SeedGroup(t *testing.T, repos *repository.Repositories, id string, memberIDs ...string) *model.Group {
	t.Helper()

	group := &model.Group{
		ID:      id,
		Name:    id,
		UserIDs: memberIDs,
	}
	if err := repos.User.CreateGroup(group); err != nil {
		t.Fatalf("failed to seed group %s: %v", id, err)
	}
	return group
}
