// Package task 提供训练任务服务
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ashwinyue/dataset-hub/internal/access"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
	"github.com/ashwinyue/dataset-hub/internal/service/types"
)

// Service 训练任务服务
type Service struct {
	repo  *repository.Repositories
	guard *access.Guard
}

// NewService 创建任务服务
func NewService(repo *repository.Repositories, guard *access.Guard) *Service {
	return &Service{repo: repo, guard: guard}
}

// Form 任务表单
type Form struct {
	DatasetID          string               `json:"dataset_id"`
	Instruction        string               `json:"instruction" binding:"required"`
	Input              string               `json:"input"`
	Output             string               `json:"output"`
	EvaluationCriteria string               `json:"evaluation_criteria"`
	Meta               model.JSON           `json:"meta"`
	IsTrainingExample  bool                 `json:"is_training_example"`
	AccessControl      *model.AccessControl `json:"access_control"`
}

// Response 任务加属主公开信息
type Response struct {
	model.DatasetTask
	User *model.UserInfo `json:"user"`
}

// Create 创建任务，服务端生成 ID
// dataset_id 是软引用，不校验数据集是否存在
func (s *Service) Create(ctx context.Context, caller *model.User, form *Form) (*model.DatasetTask, error) {
	if !s.guard.CanCreate(caller) {
		return nil, types.ErrUnauthorized
	}

	t := &model.DatasetTask{
		ID:                 uuid.New().String(),
		DatasetID:          form.DatasetID,
		UserID:             caller.ID,
		Instruction:        form.Instruction,
		Input:              form.Input,
		Output:             form.Output,
		EvaluationCriteria: form.EvaluationCriteria,
		Meta:               form.Meta,
		IsTrainingExample:  form.IsTrainingExample,
		AccessControl:      form.AccessControl,
	}

	if err := s.repo.Task.Create(t); err != nil {
		return nil, types.ErrWriteFailed
	}
	return t, nil
}

// Get 按 ID 读取任务
// 不可访问与不存在返回同一错误，不暴露记录是否存在
func (s *Service) Get(ctx context.Context, caller *model.User, id string) (*model.DatasetTask, error) {
	t, err := s.repo.Task.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil || !s.guard.CanRead(caller, t.UserID, t.AccessControl) {
		return nil, types.ErrNotFound
	}
	return t, nil
}

// List 列出任务，带属主公开信息
// 管理员看到全量，其他用户在同一全量结果上按属主或 ACL read 过滤
func (s *Service) List(ctx context.Context, caller *model.User) ([]*Response, error) {
	tasks, err := s.repo.Task.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]*Response, 0, len(tasks))
	for _, t := range tasks {
		if !caller.IsAdmin() && !s.guard.CanRead(caller, t.UserID, t.AccessControl) {
			continue
		}
		responses = append(responses, &Response{DatasetTask: *t, User: s.ownerInfo(t.UserID)})
	}
	return responses, nil
}

// ListByDataset 列出数据集下的全部任务
// 此路径不做记录级过滤，任何已认证用户可见全部匹配行
func (s *Service) ListByDataset(ctx context.Context, caller *model.User, datasetID string) ([]*model.DatasetTask, error) {
	tasks, err := s.repo.Task.ListByDataset(datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by dataset: %w", err)
	}
	return tasks, nil
}

// Update 按 ID 整体更新表单字段，ID、属主与创建时间不变
func (s *Service) Update(ctx context.Context, caller *model.User, id string, form *Form) (*model.DatasetTask, error) {
	t, err := s.repo.Task.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil {
		return nil, types.ErrNotFound
	}
	if !s.guard.CanWrite(caller, t.UserID, t.AccessControl) {
		return nil, types.ErrUnauthorized
	}

	updated, err := s.repo.Task.Update(id, map[string]interface{}{
		"dataset_id":          form.DatasetID,
		"instruction":         form.Instruction,
		"input":               form.Input,
		"output":              form.Output,
		"evaluation_criteria": form.EvaluationCriteria,
		"meta":                form.Meta,
		"is_training_example": form.IsTrainingExample,
		"access_control":      form.AccessControl,
	})
	if err != nil {
		return nil, types.ErrWriteFailed
	}
	return updated, nil
}

// Delete 按 ID 删除任务
func (s *Service) Delete(ctx context.Context, caller *model.User, id string) (bool, error) {
	t, err := s.repo.Task.GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to get task: %w", err)
	}
	if t == nil {
		return false, types.ErrNotFound
	}
	if !s.guard.CanWrite(caller, t.UserID, t.AccessControl) {
		return false, types.ErrUnauthorized
	}

	ok, err := s.repo.Task.Delete(id)
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
