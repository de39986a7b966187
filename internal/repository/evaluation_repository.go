package repository

import (
	"errors"
	"time"

	"github.com/ashwinyue/dataset-hub/internal/model"
	"gorm.io/gorm"
)

// EvaluationRepository 评估仓库
type EvaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository 创建评估仓库
func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create 插入评估，创建与更新时间设为当前秒
func (r *EvaluationRepository) Create(evaluation *model.DatasetEvaluation) error {
	now := time.Now().Unix()
	evaluation.CreatedAt = now
	evaluation.UpdatedAt = now
	return r.db.Create(evaluation).Error
}

// GetByID 根据 ID 获取评估，不存在时返回 nil
func (r *EvaluationRepository) GetByID(id string) (*model.DatasetEvaluation, error) {
	var evaluation model.DatasetEvaluation
	err := r.db.Where("id = ?", id).First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// ListAll 列出全部评估，按更新时间倒序
func (r *EvaluationRepository) ListAll() ([]*model.DatasetEvaluation, error) {
	var evaluations []*model.DatasetEvaluation
	err := r.db.Order("updated_at DESC").Find(&evaluations).Error
	return evaluations, err
}

// ListByDataset 列出数据集下的全部评估
func (r *EvaluationRepository) ListByDataset(datasetID string) ([]*model.DatasetEvaluation, error) {
	var evaluations []*model.DatasetEvaluation
	err := r.db.Where("dataset_id = ?", datasetID).Find(&evaluations).Error
	return evaluations, err
}

// UpdateStatus 仅更新状态与更新时间，其余字段不动
func (r *EvaluationRepository) UpdateStatus(id string, status string) (*model.DatasetEvaluation, error) {
	err := r.db.Model(&model.DatasetEvaluation{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().Unix(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 按 ID 删除，返回记录是否存在并被删除
func (r *EvaluationRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&model.DatasetEvaluation{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
