// Package dataset 提供数据集服务
package dataset

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashwinyue/dataset-hub/internal/access"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
	"github.com/ashwinyue/dataset-hub/internal/service/types"
)

// Service 数据集服务
type Service struct {
	repo  *repository.Repositories
	guard *access.Guard
}

// NewService 创建数据集服务
func NewService(repo *repository.Repositories, guard *access.Guard) *Service {
	return &Service{repo: repo, guard: guard}
}

// Form 数据集表单，ID 由调用方指定
type Form struct {
	ID               string               `json:"id" binding:"required"`
	Name             string               `json:"name" binding:"required"`
	Version          string               `json:"version"`
	EvaluationMethod string               `json:"evaluation_method"`
	Meta             model.DatasetMeta    `json:"meta"`
	AccessControl    *model.AccessControl `json:"access_control"`
}

// Response 数据集加属主公开信息
type Response struct {
	model.Dataset
	User *model.UserInfo `json:"user"`
}

// Create 创建数据集
// 重复 ID 的并发创建由预检加主键约束保证只成功一次
func (s *Service) Create(ctx context.Context, caller *model.User, form *Form) (*model.Dataset, error) {
	if !s.guard.CanCreate(caller) {
		return nil, types.ErrUnauthorized
	}

	existing, err := s.repo.Dataset.GetByID(form.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check dataset id: %w", err)
	}
	if existing != nil {
		return nil, types.ErrDuplicateID
	}

	if form.Version == "" {
		form.Version = "1.0"
	}
	if form.EvaluationMethod == "" {
		form.EvaluationMethod = "Criteria Based"
	}

	ds := &model.Dataset{
		ID:               form.ID,
		UserID:           caller.ID,
		Name:             form.Name,
		Version:          form.Version,
		EvaluationMethod: form.EvaluationMethod,
		Meta:             form.Meta,
		AccessControl:    form.AccessControl,
	}

	if err := s.repo.Dataset.Create(ds); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, types.ErrDuplicateID
		}
		return nil, types.ErrWriteFailed
	}
	return ds, nil
}

// Get 按 ID 读取数据集
// 不可访问与不存在返回同一错误，不暴露记录是否存在
func (s *Service) Get(ctx context.Context, caller *model.User, id string) (*model.Dataset, error) {
	ds, err := s.repo.Dataset.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	if ds == nil || !s.guard.CanRead(caller, ds.UserID, ds.AccessControl) {
		return nil, types.ErrNotFound
	}
	return ds, nil
}

// List 列出数据集，带属主公开信息
// 管理员看到全量，其他用户在同一全量结果上按属主或 ACL read 过滤
func (s *Service) List(ctx context.Context, caller *model.User) ([]*Response, error) {
	datasets, err := s.repo.Dataset.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}

	responses := make([]*Response, 0, len(datasets))
	for _, ds := range datasets {
		if !caller.IsAdmin() && !s.guard.CanRead(caller, ds.UserID, ds.AccessControl) {
			continue
		}
		responses = append(responses, &Response{Dataset: *ds, User: s.ownerInfo(ds.UserID)})
	}
	return responses, nil
}

// Update 按 ID 整体更新表单字段，ID、属主与创建时间不变
func (s *Service) Update(ctx context.Context, caller *model.User, id string, form *Form) (*model.Dataset, error) {
	ds, err := s.repo.Dataset.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	if ds == nil {
		return nil, types.ErrNotFound
	}
	if !s.guard.CanWrite(caller, ds.UserID, ds.AccessControl) {
		return nil, types.ErrAccessProhibited
	}

	if form.Version == "" {
		form.Version = "1.0"
	}
	if form.EvaluationMethod == "" {
		form.EvaluationMethod = "Criteria Based"
	}

	updated, err := s.repo.Dataset.Update(id, map[string]interface{}{
		"name":              form.Name,
		"version":           form.Version,
		"evaluation_method": form.EvaluationMethod,
		"meta":              form.Meta,
		"access_control":    form.AccessControl,
	})
	if err != nil {
		return nil, types.ErrWriteFailed
	}
	return updated, nil
}

// Delete 按 ID 删除数据集
// 引用它的任务与评估不级联删除，允许悬挂引用
func (s *Service) Delete(ctx context.Context, caller *model.User, id string) (bool, error) {
	ds, err := s.repo.Dataset.GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to get dataset: %w", err)
	}
	if ds == nil {
		return false, types.ErrNotFound
	}
	if !s.guard.CanWrite(caller, ds.UserID, ds.AccessControl) {
		return false, types.ErrAccessProhibited
	}

	ok, err := s.repo.Dataset.Delete(id)
	if err != nil {
		return false, types.ErrWriteFailed
	}
	return ok, nil
}

func (s *Service) ownerInfo(userID string) *model.UserInfo {
	owner, err := s.repo.User.GetUserByID(userID)
	if err != nil || owner == nil {
		return nil
	}
	return owner.ToUserInfo()
}
