package repository

import (
	"errors"
	"time"

	"github.com/ashwinyue/dataset-hub/internal/model"
	"gorm.io/gorm"
)

// TaskRepository 训练任务仓库
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository 创建任务仓库
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create 插入任务，创建与更新时间设为当前秒
func (r *TaskRepository) Create(task *model.DatasetTask) error {
	now := time.Now().Unix()
	task.CreatedAt = now
	task.UpdatedAt = now
	return r.db.Create(task).Error
}

// GetByID 根据 ID 获取任务，不存在时返回 nil
func (r *TaskRepository) GetByID(id string) (*model.DatasetTask, error) {
	var task model.DatasetTask
	err := r.db.Where("id = ?", id).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListAll 列出全部任务，按更新时间倒序
func (r *TaskRepository) ListAll() ([]*model.DatasetTask, error) {
	var tasks []*model.DatasetTask
	err := r.db.Order("updated_at DESC").Find(&tasks).Error
	return tasks, err
}

// ListByDataset 列出数据集下的全部任务
func (r *TaskRepository) ListByDataset(datasetID string) ([]*model.DatasetTask, error) {
	var tasks []*model.DatasetTask
	err := r.db.Where("dataset_id = ?", datasetID).Find(&tasks).Error
	return tasks, err
}

// Update 按 ID 整体替换表单字段，刷新更新时间，返回更新后的记录
func (r *TaskRepository) Update(id string, values map[string]interface{}) (*model.DatasetTask, error) {
	values["updated_at"] = time.Now().Unix()
	err := r.db.Model(&model.DatasetTask{}).Where("id = ?", id).Updates(values).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 按 ID 删除，返回记录是否存在并被删除
func (r *TaskRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&model.DatasetTask{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
