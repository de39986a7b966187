package repository

import (
	"errors"
	"time"

	"github.com/ashwinyue/dataset-hub/internal/model"
	"gorm.io/gorm"
)

// DatasetRepository 数据集仓库
type DatasetRepository struct {
	db *gorm.DB
}

// NewDatasetRepository 创建数据集仓库
func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

// Create 插入数据集，创建与更新时间设为当前秒
// 主键冲突由数据库约束兜底，并发同 ID 创建只会成功一次
func (r *DatasetRepository) Create(dataset *model.Dataset) error {
	now := time.Now().Unix()
	dataset.CreatedAt = now
	dataset.UpdatedAt = now
	return r.db.Create(dataset).Error
}

// GetByID 根据 ID 获取数据集，不存在时返回 nil
func (r *DatasetRepository) GetByID(id string) (*model.Dataset, error) {
	var dataset model.Dataset
	err := r.db.Where("id = ?", id).First(&dataset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// ListAll 列出全部数据集，按更新时间倒序
func (r *DatasetRepository) ListAll() ([]*model.Dataset, error) {
	var datasets []*model.Dataset
	err := r.db.Order("updated_at DESC").Find(&datasets).Error
	return datasets, err
}

// Update 按 ID 整体替换表单字段，刷新更新时间，返回更新后的记录
// ID、属主与创建时间不变
func (r *DatasetRepository) Update(id string, values map[string]interface{}) (*model.Dataset, error) {
	values["updated_at"] = time.Now().Unix()
	err := r.db.Model(&model.Dataset{}).Where("id = ?", id).Updates(values).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// Delete 按 ID 删除，返回记录是否存在并被删除
// 不级联删除引用该数据集的任务与评估
func (r *DatasetRepository) Delete(id string) (bool, error) {
	result := r.db.Delete(&model.Dataset{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
