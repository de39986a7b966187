// Package repository 提供基于 gorm 的持久化访问
package repository

import "gorm.io/gorm"

// Repositories 仓库集合，用于统一管理所有仓库
type Repositories struct {
	DB         *gorm.DB // 直接访问数据库
	User       *UserRepository
	Dataset    *DatasetRepository
	Task       *TaskRepository
	Evaluation *EvaluationRepository
}

// NewRepositories 创建所有仓库
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:         db,
		User:       NewUserRepository(db),
		Dataset:    NewDatasetRepository(db),
		Task:       NewTaskRepository(db),
		Evaluation: NewEvaluationRepository(db),
	}
}
