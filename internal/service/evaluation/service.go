// Package evaluation 提供评估服务
package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ashwinyue/dataset-hub/internal/access"
	"github.com/ashwinyue/dataset-hub/internal/model"
	"github.com/ashwinyue/dataset-hub/internal/repository"
	"github.com/ashwinyue/dataset-hub/internal/service/types"
)

// Service 评估服务
type Service struct {
	repo  *repository.Repositories
	guard *access.Guard
}

// NewService 创建评估服务
func NewService(repo *repository.Repositories, guard *access.Guard) *Service {
	return &Service{repo: repo, guard: guard}
}

// Form 评估表单
// passed_task_ids 不校验是否为 task_ids 的子集
type Form struct {
	DatasetID     string               `json:"dataset_id"`
	TargetModelID string               `json:"target_model_id"`
	JudgeModelID  string               `json:"judge_model_id"`
	Meta          model.EvaluationMeta `json:"meta"`
	TaskIDs       []string             `json:"task_ids" binding:"required"`
	PassedTaskIDs []string             `json:"passed_task_ids"`
	Status        string               `json:"status"`
	AccessControl *model.AccessControl `json:"access_control"`
}

// Response 评估加属主公开信息
type Response struct {
	model.DatasetEvaluation
	User *model.UserInfo `json:"user"`
}

// Create 创建评估，服务端生成 ID，状态默认 pending
func (s *Service) Create(ctx context.Context, caller *model.User, form *Form) (*model.DatasetEvaluation, error) {
	if !s.guard.CanCreate(caller) {
		return nil, types.ErrUnauthorized
	}

	if form.Status == "" {
		form.Status = model.EvaluationStatusPending
	}

	e := &model.DatasetEvaluation{
		ID:            uuid.New().String(),
		DatasetID:     form.DatasetID,
		UserID:        caller.ID,
		TargetModelID: form.TargetModelID,
		JudgeModelID:  form.JudgeModelID,
		Meta:          form.Meta,
		Status:        form.Status,
		TaskIDs:       form.TaskIDs,
		PassedTaskIDs: form.PassedTaskIDs,
		AccessControl: form.AccessControl,
	}

	if err := s.repo.Evaluation.Create(e); err != nil {
		return nil, types.ErrWriteFailed
	}
	return e, nil
}

// Get 按 ID 读取评估
// 不可访问与不存在返回同一错误，不暴露记录是否存在
func (s *Service) Get(ctx context.Context, caller *model.User, id string) (*model.DatasetEvaluation, error) {
	e, err := s.repo.Evaluation.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	if e == nil || !s.guard.CanRead(caller, e.UserID, e.AccessControl) {
		return nil, types.ErrNotFound
	}
	return e, nil
}

// List 列出评估，带属主公开信息
// 管理员看到全量，其他用户在同一全量结果上按属主或 ACL read 过滤
func (s *Service) List(ctx context.Context, caller *model.User) ([]*Response, error) {
	evaluations, err := s.repo.Evaluation.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	responses := make([]*Response, 0, len(evaluations))
	for _, e := range evaluations {
		if !caller.IsAdmin() && !s.guard.CanRead(caller, e.UserID, e.AccessControl) {
			continue
		}
		responses = append(responses, &Response{DatasetEvaluation: *e, User: s.ownerInfo(e.UserID)})
	}
	return responses, nil
}

// ListByDataset 列出数据集下的全部评估
// 此路径不做记录级过滤，任何已认证用户可见全部匹配行
func (s *Service) ListByDataset(ctx context.Context, caller *model.User, datasetID string) ([]*model.DatasetEvaluation, error) {
	evaluations, err := s.repo.Evaluation.ListByDataset(datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations by dataset: %w", err)
	}
	return evaluations, nil
}

// UpdateStatus 仅更新状态字段，task_ids 等其余字段不动
func (s *Service) UpdateStatus(ctx context.Context, caller *model.User, id string, status string) (*model.DatasetEvaluation, error) {
	e, err := s.repo.Evaluation.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	if e == nil {
		return nil, types.ErrNotFound
	}
	if !s.guard.CanWrite(caller, e.UserID, e.AccessControl) {
		return nil, types.ErrUnauthorized
	}

	updated, err := s.repo.Evaluation.UpdateStatus(id, status)
	if err != nil {
		return nil, types.ErrWriteFailed
	}
	return updated, nil
}

// Delete 按 ID 删除评估
func (s *Service) Delete(ctx context.Context, caller *model.User, id string) (bool, error) {
	e, err := s.repo.Evaluation.GetByID(id)
	if err != nil {
		return false, fmt.Errorf("failed to get evaluation: %w", err)
	}
	if e == nil {
		return false, types.ErrNotFound
	}
	if !s.guard.CanWrite(caller, e.UserID, e.AccessControl) {
		return false, types.ErrUnauthorized
	}

	ok, err := s.repo.Evaluation.Delete(id)
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
